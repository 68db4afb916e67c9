package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nexilab/agent-credit/internal/domain"
	"github.com/nexilab/agent-credit/internal/dto"
)

func NewMock(t *testing.T) (*EventHandler, *MockService, *MockRefundService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	refunder := NewMockRefundService(ctrl)
	handler := New(service, refunder)
	return handler, service, refunder
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
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

func TestListHandler(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedLen  int
	}{
		{
			name: "lists all events",
			url:  "/api/system/events",
			prepareMock: func(service *MockService) {
				service.EXPECT().
					List(gomock.Any(), "", "", 0, 100).
					Return([]domain.CreditEvent{*sampleEvent()}, 1, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "filters by event type and paginates",
			url:  "/api/system/events?event_type=refund&skip=10&limit=5",
			prepareMock: func(service *MockService) {
				service.EXPECT().
					List(gomock.Any(), "refund", "", 10, 5).
					Return([]domain.CreditEvent{}, 0, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name: "internal error",
			url:  "/api/system/events",
			prepareMock: func(service *MockService) {
				service.EXPECT().
					List(gomock.Any(), "", "", 0, 100).
					Return(nil, 0, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, _ := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			handler.List(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.EventsListResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Len(t, body.Events, tt.expectedLen)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		handler, service, _ := NewMock(t)
		event := sampleEvent()
		service.EXPECT().Get(gomock.Any(), event.ID).Return(event, nil)

		r := withURLParam(httptest.NewRequest(http.MethodGet, "/api/system/events/"+event.ID, nil), "id", event.ID)
		w := httptest.NewRecorder()
		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.EventResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, event.ID, body.ID)
		assert.True(t, body.EventData.Amount.Equal(event.Payload.Amount))
	})

	t.Run("not found", func(t *testing.T) {
		handler, service, _ := NewMock(t)
		service.EXPECT().Get(gomock.Any(), "missing").Return(nil, domain.ErrEventNotFound)

		r := withURLParam(httptest.NewRequest(http.MethodGet, "/api/system/events/missing", nil), "id", "missing")
		w := httptest.NewRecorder()
		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRefundHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(refunder *MockRefundService)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "successful refund",
			body: `{"user_id":"user-1"}`,
			prepareMock: func(refunder *MockRefundService) {
				refunder.EXPECT().
					Refund(gomock.Any(), "evt-1", "user-1", false, gomock.Nil()).
					Return(sampleEvent(), nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Refund successful",
		},
		{
			name: "dry run",
			body: `{"user_id":"user-1","dry_run":true}`,
			prepareMock: func(refunder *MockRefundService) {
				refunder.EXPECT().
					Refund(gomock.Any(), "evt-1", "user-1", true, gomock.Nil()).
					Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Dry run successful",
		},
		{
			name:         "missing user id",
			body:         `{}`,
			prepareMock:  func(refunder *MockRefundService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "event not found",
			body: `{"user_id":"user-1"}`,
			prepareMock: func(refunder *MockRefundService) {
				refunder.EXPECT().
					Refund(gomock.Any(), "evt-1", "user-1", false, gomock.Nil()).
					Return(nil, domain.ErrEventNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "already refunded",
			body: `{"user_id":"user-1"}`,
			prepareMock: func(refunder *MockRefundService) {
				refunder.EXPECT().
					Refund(gomock.Any(), "evt-1", "user-1", false, gomock.Nil()).
					Return(nil, domain.ErrAlreadyRefunded)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "lock timeout is retryable",
			body: `{"user_id":"user-1"}`,
			prepareMock: func(refunder *MockRefundService) {
				refunder.EXPECT().
					Refund(gomock.Any(), "evt-1", "user-1", false, gomock.Nil()).
					Return(nil, domain.ErrLockTimeout)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _, refunder := NewMock(t)
			tt.prepareMock(refunder)

			r := httptest.NewRequest(http.MethodPost, "/api/system/events/evt-1/refund", bytes.NewBufferString(tt.body))
			r = withURLParam(r, "id", "evt-1")
			w := httptest.NewRecorder()
			handler.Refund(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedMsg != "" {
				var body dto.RefundResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.True(t, body.Success)
				assert.Equal(t, tt.expectedMsg, body.Message)
			}
		})
	}
}
