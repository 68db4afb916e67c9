package agentuserservice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nexilab/agent-credit/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with rounded starting credit", func(t *testing.T) {
		svc, repo := NewMock(t)

		repo.EXPECT().FindByMobile(ctx, "13800000001").Return(nil, nil)
		repo.EXPECT().FindByEmail(ctx, "a@example.com").Return(nil, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, user *domain.AgentUser) (*domain.AgentUser, error) {
				assert.NotEmpty(t, user.ID)
				assert.Equal(t, "13800000001", user.Mobile)
				assert.True(t, user.Credit.Equal(decimal.RequireFromString("10.56")))
				return user, nil
			})

		user, err := svc.Create(ctx, "13800000001", "a@example.com", "Agent", decimal.RequireFromString("10.555"))
		assert.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("duplicate mobile", func(t *testing.T) {
		svc, repo := NewMock(t)

		repo.EXPECT().FindByMobile(ctx, "13800000001").Return(&domain.AgentUser{ID: "u1"}, nil)

		user, err := svc.Create(ctx, "13800000001", "a@example.com", "Agent", decimal.Zero)
		assert.ErrorIs(t, err, domain.ErrDuplicateMobile)
		assert.Nil(t, user)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, repo := NewMock(t)

		repo.EXPECT().FindByMobile(ctx, "13800000001").Return(nil, nil)
		repo.EXPECT().FindByEmail(ctx, "a@example.com").Return(&domain.AgentUser{ID: "u1"}, nil)

		user, err := svc.Create(ctx, "13800000001", "a@example.com", "Agent", decimal.Zero)
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
		assert.Nil(t, user)
	})
}

func TestGetByMobile(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, repo := NewMock(t)
		repo.EXPECT().FindByMobile(ctx, "13800000001").Return(&domain.AgentUser{ID: "u1"}, nil)

		user, err := svc.GetByMobile(ctx, "13800000001")
		assert.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("missing maps to not found", func(t *testing.T) {
		svc, repo := NewMock(t)
		repo.EXPECT().FindByMobile(ctx, "000").Return(nil, nil)

		user, err := svc.GetByMobile(ctx, "000")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	svc, repo := NewMock(t)

	repo.EXPECT().List(ctx, 20, 10).Return([]domain.AgentUser{{ID: "u1"}, {ID: "u2"}}, nil)
	repo.EXPECT().Count(ctx).Return(57, nil)

	users, total, err := svc.List(ctx, 20, 10)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, 57, total)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("changes email after uniqueness check", func(t *testing.T) {
		svc, repo := NewMock(t)
		current := &domain.AgentUser{ID: "u1", Mobile: "13800000001", Email: "old@example.com", Name: "Old"}

		repo.EXPECT().FindByMobile(ctx, "13800000001").Return(current, nil)
		repo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, user *domain.AgentUser) (*domain.AgentUser, error) {
				assert.Equal(t, "new@example.com", user.Email)
				assert.Equal(t, "Old", user.Name)
				return user, nil
			})

		updated, err := svc.Update(ctx, "13800000001", "new@example.com", "")
		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", updated.Email)
	})

	t.Run("taken email rejected", func(t *testing.T) {
		svc, repo := NewMock(t)
		current := &domain.AgentUser{ID: "u1", Mobile: "13800000001", Email: "old@example.com"}

		repo.EXPECT().FindByMobile(ctx, "13800000001").Return(current, nil)
		repo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&domain.AgentUser{ID: "u2"}, nil)

		updated, err := svc.Update(ctx, "13800000001", "taken@example.com", "")
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
		assert.Nil(t, updated)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, repo := NewMock(t)
		repo.EXPECT().FindByMobile(ctx, "000").Return(nil, nil)

		updated, err := svc.Update(ctx, "000", "", "New Name")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, updated)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes by resolved id", func(t *testing.T) {
		svc, repo := NewMock(t)
		repo.EXPECT().FindByMobile(ctx, "13800000001").Return(&domain.AgentUser{ID: "u1"}, nil)
		repo.EXPECT().Delete(ctx, "u1").Return(nil)

		assert.NoError(t, svc.Delete(ctx, "13800000001"))
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, repo := NewMock(t)
		repo.EXPECT().FindByMobile(ctx, "000").Return(nil, nil)

		assert.ErrorIs(t, svc.Delete(ctx, "000"), domain.ErrUserNotFound)
	})
}
