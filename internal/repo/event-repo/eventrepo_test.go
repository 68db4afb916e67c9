package eventrepo

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nexilab/agent-credit/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	return repo, mockDB
}

func sampleEvent() *domain.CreditEvent {
	return &domain.CreditEvent{
		ID:        "01J5ZX5B8J0000000000000001",
		EventType: domain.EventTypeCredit,
		TargetID:  "user-1",
		Payload: domain.EventPayload{
			Amount:          decimal.RequireFromString("25.00"),
			PreviousBalance: decimal.RequireFromString("10.00"),
			NewBalance:      decimal.RequireFromString("35.00"),
		},
		Description: "Top up",
		Timestamp:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func eventRows(t *testing.T, event *domain.CreditEvent) *pgxmock.Rows {
	raw, err := json.Marshal(event.Payload)
	assert.NoError(t, err)
	return pgxmock.NewRows([]string{"id", "event_type", "target_id", "event_data", "description", "created_by", "timestamp"}).
		AddRow(event.ID, event.EventType, event.TargetID, raw, event.Description, event.CreatedBy, event.Timestamp)
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)
	event := sampleEvent()
	now := time.Date(2025, 3, 1, 12, 0, 1, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO agent_event`).
		WithArgs(event.ID, event.EventType, event.TargetID, pgxmock.AnyArg(), event.Description, event.CreatedBy).
		WillReturnRows(pgxmock.NewRows([]string{"timestamp"}).AddRow(now))

	inserted, err := repo.Insert(context.Background(), event)
	assert.NoError(t, err)
	assert.Equal(t, now, inserted.Timestamp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	event := sampleEvent()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM agent_event WHERE id = $1`)).
			WithArgs(event.ID).
			WillReturnRows(eventRows(t, event))

		got, err := repo.FindByID(context.Background(), event.ID)
		assert.NoError(t, err)
		assert.Equal(t, event.ID, got.ID)
		assert.True(t, got.Payload.Amount.Equal(event.Payload.Amount))
		assert.True(t, got.Payload.NewBalance.Equal(event.Payload.PreviousBalance.Add(event.Payload.Amount)))
	})

	t.Run("missing returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM agent_event WHERE id = $1`)).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.FindByID(context.Background(), "missing")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindRefundOf(t *testing.T) {
	repo, mock := NewMock(t)
	original := sampleEvent()

	t.Run("not refunded yet", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`event_data->>'refund_event_id' = $2`)).
			WithArgs(domain.EventTypeRefund, original.ID).
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.FindRefundOf(context.Background(), original.ID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("refund exists", func(t *testing.T) {
		refund := sampleEvent()
		refund.ID = "01J5ZX5B8J0000000000000002"
		refund.EventType = domain.EventTypeRefund
		refund.Payload.Amount = original.Payload.Amount.Neg()
		refund.Payload.RefundEventID = original.ID

		mock.ExpectQuery(regexp.QuoteMeta(`event_data->>'refund_event_id' = $2`)).
			WithArgs(domain.EventTypeRefund, original.ID).
			WillReturnRows(eventRows(t, refund))

		got, err := repo.FindRefundOf(context.Background(), original.ID)
		assert.NoError(t, err)
		assert.Equal(t, original.ID, got.Payload.RefundEventID)
		assert.True(t, got.Payload.Amount.Equal(original.Payload.Amount.Neg()))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	event := sampleEvent()

	tests := []struct {
		name      string
		filter    Filter
		mockSetup func()
	}{
		{
			name:   "no filter",
			filter: Filter{},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM agent_event ORDER BY timestamp DESC, id DESC OFFSET $1 LIMIT $2`)).
					WithArgs(0, 100).
					WillReturnRows(eventRows(t, event))
			},
		},
		{
			name:   "by event type",
			filter: Filter{EventType: domain.EventTypeCredit},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE event_type = $1 ORDER BY timestamp DESC, id DESC OFFSET $2 LIMIT $3`)).
					WithArgs(domain.EventTypeCredit, 0, 100).
					WillReturnRows(eventRows(t, event))
			},
		},
		{
			name:   "by event type and target",
			filter: Filter{EventType: domain.EventTypeCredit, TargetID: "user-1"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE event_type = $1 AND target_id = $2 ORDER BY timestamp DESC, id DESC OFFSET $3 LIMIT $4`)).
					WithArgs(domain.EventTypeCredit, "user-1", 0, 100).
					WillReturnRows(eventRows(t, event))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			events, err := repo.List(context.Background(), tt.filter, 0, 100)
			assert.NoError(t, err)
			assert.Len(t, events, 1)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Count(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM agent_event WHERE target_id = $1`)).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(12))

	total, err := repo.Count(context.Background(), Filter{TargetID: "user-1"})
	assert.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
