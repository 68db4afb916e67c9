package eventrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/nexilab/agent-credit/internal/domain"
	"github.com/nexilab/agent-credit/internal/pg"
)

// Filter narrows event listings. Zero-value fields are ignored.
type Filter struct {
	EventType string
	TargetID  string
}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const eventColumns = "id, event_type, target_id, event_data, description, created_by, timestamp"

func scanEvent(row pgx.Row) (*domain.CreditEvent, error) {
	var (
		event   domain.CreditEvent
		rawData []byte
	)
	err := row.Scan(&event.ID, &event.EventType, &event.TargetID, &rawData, &event.Description, &event.CreatedBy, &event.Timestamp)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rawData, &event.Payload); err != nil {
		return nil, fmt.Errorf("decode event payload: %w", err)
	}
	return &event, nil
}

// Insert appends a new ledger entry. Events are never updated or deleted
// afterwards, except by cascade when the target user is removed.
func (r *Repository) Insert(ctx context.Context, event *domain.CreditEvent) (*domain.CreditEvent, error) {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode event payload: %w", err)
	}
	query := `
        INSERT INTO agent_event (id, event_type, target_id, event_data, description, created_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING timestamp
    `
	err = r.db.QueryRow(ctx, query, event.ID, event.EventType, event.TargetID, payload, event.Description, event.CreatedBy).Scan(&event.Timestamp)
	if err != nil {
		zap.L().Error("can't insert credit event", zap.Error(err))
		return nil, err
	}
	return event, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.CreditEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM agent_event WHERE id = $1`
	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find event", zap.Error(err))
		return nil, err
	}
	return event, nil
}

// FindRefundOf returns the refund event referencing the given original event,
// or nil when it has not been refunded yet.
func (r *Repository) FindRefundOf(ctx context.Context, originalEventID string) (*domain.CreditEvent, error) {
	query := `
        SELECT ` + eventColumns + `
        FROM agent_event
        WHERE event_type = $1 AND event_data->>'refund_event_id' = $2
    `
	event, err := scanEvent(r.db.QueryRow(ctx, query, domain.EventTypeRefund, originalEventID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't look up refund event", zap.Error(err))
		return nil, err
	}
	return event, nil
}

func buildWhere(filter Filter, args []any) (string, []any) {
	var conds []string
	if filter.EventType != "" {
		args = append(args, filter.EventType)
		conds = append(conds, fmt.Sprintf("event_type = $%d", len(args)))
	}
	if filter.TargetID != "" {
		args = append(args, filter.TargetID)
		conds = append(conds, fmt.Sprintf("target_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns events newest first; the ULID id breaks timestamp ties in
// insertion order.
func (r *Repository) List(ctx context.Context, filter Filter, skip, limit int) ([]domain.CreditEvent, error) {
	where, args := buildWhere(filter, nil)
	args = append(args, skip, limit)
	query := fmt.Sprintf(
		"SELECT "+eventColumns+" FROM agent_event%s ORDER BY timestamp DESC, id DESC OFFSET $%d LIMIT $%d",
		where, len(args)-1, len(args),
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.CreditEvent
	for rows.Next() {
		var (
			event   domain.CreditEvent
			rawData []byte
		)
		err := rows.Scan(&event.ID, &event.EventType, &event.TargetID, &rawData, &event.Description, &event.CreatedBy, &event.Timestamp)
		if err != nil {
			zap.L().Error("can't scan event row", zap.Error(err))
			return nil, err
		}
		if err := json.Unmarshal(rawData, &event.Payload); err != nil {
			zap.L().Error("can't decode event payload", zap.Error(err))
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func (r *Repository) Count(ctx context.Context, filter Filter) (int, error) {
	where, args := buildWhere(filter, nil)
	var total int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM agent_event"+where, args...).Scan(&total)
	if err != nil {
		zap.L().Error("can't count events", zap.Error(err))
		return 0, err
	}
	return total, nil
}
