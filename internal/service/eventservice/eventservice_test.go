package eventservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nexilab/agent-credit/internal/domain"
	eventrepo "github.com/nexilab/agent-credit/internal/repo/event-repo"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	service := New(repo, userRepo)
	return service, repo, userRepo
}

func TestList(t *testing.T) {
	tests := []struct {
		name          string
		eventType     string
		skip, limit   int
		prepareMock   func(repo *MockRepo)
		expectedTotal int
		expectedLen   int
		expectedError error
	}{
		{
			name:  "passes filter and window through",
			skip:  0,
			limit: 100,
			prepareMock: func(repo *MockRepo) {
				filter := eventrepo.Filter{}
				repo.EXPECT().List(gomock.Any(), filter, 0, 100).Return(make([]domain.CreditEvent, 100), nil)
				repo.EXPECT().Count(gomock.Any(), filter).Return(150, nil)
			},
			expectedTotal: 150,
			expectedLen:   100,
		},
		{
			name:  "second page returns the remainder",
			skip:  100,
			limit: 100,
			prepareMock: func(repo *MockRepo) {
				filter := eventrepo.Filter{}
				repo.EXPECT().List(gomock.Any(), filter, 100, 100).Return(make([]domain.CreditEvent, 50), nil)
				repo.EXPECT().Count(gomock.Any(), filter).Return(150, nil)
			},
			expectedTotal: 150,
			expectedLen:   50,
		},
		{
			name:      "filters by event type",
			eventType: domain.EventTypeRefund,
			skip:      0,
			limit:     10,
			prepareMock: func(repo *MockRepo) {
				filter := eventrepo.Filter{EventType: domain.EventTypeRefund}
				repo.EXPECT().List(gomock.Any(), filter, 0, 10).Return([]domain.CreditEvent{{ID: "e1"}}, nil)
				repo.EXPECT().Count(gomock.Any(), filter).Return(1, nil)
			},
			expectedTotal: 1,
			expectedLen:   1,
		},
		{
			name:  "clamps out-of-range window",
			skip:  -5,
			limit: 500,
			prepareMock: func(repo *MockRepo) {
				filter := eventrepo.Filter{}
				repo.EXPECT().List(gomock.Any(), filter, 0, 100).Return(nil, nil)
				repo.EXPECT().Count(gomock.Any(), filter).Return(0, nil)
			},
		},
		{
			name:  "propagates repo errors",
			skip:  0,
			limit: 10,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().List(gomock.Any(), gomock.Any(), 0, 10).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			tt.prepareMock(repo)

			events, total, err := service.List(context.Background(), tt.eventType, "", tt.skip, tt.limit)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, total)
			assert.Len(t, events, tt.expectedLen)
		})
	}
}

func TestGet(t *testing.T) {
	t.Run("returns event", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().FindByID(gomock.Any(), "e1").Return(&domain.CreditEvent{ID: "e1"}, nil)

		event, err := service.Get(context.Background(), "e1")
		assert.NoError(t, err)
		assert.Equal(t, "e1", event.ID)
	})

	t.Run("not found", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)

		event, err := service.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
		assert.Nil(t, event)
	})
}

func TestUserHistory(t *testing.T) {
	t.Run("resolves mobile to target filter", func(t *testing.T) {
		service, repo, userRepo := NewMock(t)
		userRepo.EXPECT().FindByMobile(gomock.Any(), "+6598765432").Return(&domain.AgentUser{ID: "u1"}, nil)
		filter := eventrepo.Filter{TargetID: "u1"}
		repo.EXPECT().List(gomock.Any(), filter, 0, 20).Return([]domain.CreditEvent{{ID: "e1", TargetID: "u1"}}, nil)
		repo.EXPECT().Count(gomock.Any(), filter).Return(1, nil)

		events, total, err := service.UserHistory(context.Background(), "+6598765432", 0, 20)
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, events, 1)
	})

	t.Run("unknown mobile", func(t *testing.T) {
		service, _, userRepo := NewMock(t)
		userRepo.EXPECT().FindByMobile(gomock.Any(), "+650000").Return(nil, nil)

		_, _, err := service.UserHistory(context.Background(), "+650000", 0, 20)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
