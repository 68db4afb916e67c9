package consumablerepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/nexilab/agent-credit/internal/domain"
	"github.com/nexilab/agent-credit/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const consumableColumns = "id, name, cost, meta_data, created_at, updated_at"

func scanConsumable(row pgx.Row) (*domain.Consumable, error) {
	var (
		c       domain.Consumable
		rawMeta []byte
	)
	err := row.Scan(&c.ID, &c.Name, &c.Cost, &rawMeta, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(rawMeta) > 0 {
		if err := json.Unmarshal(rawMeta, &c.Metadata); err != nil {
			return nil, fmt.Errorf("decode consumable metadata: %w", err)
		}
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, c *domain.Consumable) (*domain.Consumable, error) {
	meta, err := json.Marshal(c.Metadata)
	if err != nil {
		return nil, fmt.Errorf("encode consumable metadata: %w", err)
	}
	query := `
        INSERT INTO consumable (id, name, cost, meta_data)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + consumableColumns
	created, err := scanConsumable(r.db.QueryRow(ctx, query, c.ID, c.Name, c.Cost, meta))
	if err != nil {
		zap.L().Error("can't create consumable", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Consumable, error) {
	query := `SELECT ` + consumableColumns + ` FROM consumable WHERE id = $1`
	c, err := scanConsumable(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find consumable", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) List(ctx context.Context, skip, limit int) ([]domain.Consumable, error) {
	query := `
        SELECT ` + consumableColumns + `
        FROM consumable
        ORDER BY name
        OFFSET $1 LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		zap.L().Error("can't list consumables", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var consumables []domain.Consumable
	for rows.Next() {
		var (
			c       domain.Consumable
			rawMeta []byte
		)
		err := rows.Scan(&c.ID, &c.Name, &c.Cost, &rawMeta, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan consumable row", zap.Error(err))
			return nil, err
		}
		if len(rawMeta) > 0 {
			if err := json.Unmarshal(rawMeta, &c.Metadata); err != nil {
				zap.L().Error("can't decode consumable metadata", zap.Error(err))
				return nil, err
			}
		}
		consumables = append(consumables, c)
	}
	return consumables, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM consumable`).Scan(&total)
	if err != nil {
		zap.L().Error("can't count consumables", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) Update(ctx context.Context, c *domain.Consumable) (*domain.Consumable, error) {
	meta, err := json.Marshal(c.Metadata)
	if err != nil {
		return nil, fmt.Errorf("encode consumable metadata: %w", err)
	}
	query := `
        UPDATE consumable
        SET name = $1, cost = $2, meta_data = $3, updated_at = NOW()
        WHERE id = $4
        RETURNING ` + consumableColumns
	updated, err := scanConsumable(r.db.QueryRow(ctx, query, c.Name, c.Cost, meta, c.ID))
	if err != nil {
		zap.L().Error("can't update consumable", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM consumable WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete consumable", zap.Error(err))
		return err
	}
	return nil
}
