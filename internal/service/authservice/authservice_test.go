package authservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/nexilab/agent-credit/internal/domain"
	"github.com/nexilab/agent-credit/pkg/auth"
)

func newService(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	svc := New(repo, auth.NewHashService(), auth.NewJWTService("test-secret", time.Hour))
	return svc, repo
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates active admin with hashed password", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().FindByUsername(ctx, "root").Return(nil, nil)
		repo.EXPECT().FindByEmail(ctx, "root@example.com").Return(nil, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, admin *domain.AdminUser) (*domain.AdminUser, error) {
				assert.NotEmpty(t, admin.ID)
				assert.Equal(t, "root", admin.Username)
				assert.True(t, admin.IsActive)
				assert.NotEqual(t, "pa55word", admin.PasswordHash)
				return admin, nil
			})

		admin, err := svc.Register(ctx, "root", "root@example.com", "pa55word")
		assert.NoError(t, err)
		assert.NotNil(t, admin)
		assert.NoError(t, auth.NewHashService().ComparePassword(admin.PasswordHash, "pa55word"))
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().FindByUsername(ctx, "root").Return(&domain.AdminUser{ID: "a1", Username: "root"}, nil)

		admin, err := svc.Register(ctx, "root", "root@example.com", "pa55word")
		assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
		assert.Nil(t, admin)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().FindByUsername(ctx, "root").Return(nil, nil)
		repo.EXPECT().FindByEmail(ctx, "root@example.com").Return(&domain.AdminUser{ID: "a1"}, nil)

		admin, err := svc.Register(ctx, "root", "root@example.com", "pa55word")
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
		assert.Nil(t, admin)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	hash, _ := auth.NewHashService().HashPassword("pa55word")

	t.Run("valid credentials record login time", func(t *testing.T) {
		svc, repo := newService(t)

		stored := &domain.AdminUser{ID: "a1", Username: "root", PasswordHash: hash, IsActive: true}
		repo.EXPECT().FindByUsername(ctx, "root").Return(stored, nil)
		repo.EXPECT().UpdateLastLogin(ctx, "a1", gomock.Any()).Return(nil)

		admin, err := svc.Authenticate(ctx, "root", "pa55word")
		assert.NoError(t, err)
		assert.Equal(t, "a1", admin.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := newService(t)

		stored := &domain.AdminUser{ID: "a1", Username: "root", PasswordHash: hash, IsActive: true}
		repo.EXPECT().FindByUsername(ctx, "root").Return(stored, nil)

		admin, err := svc.Authenticate(ctx, "root", "not-it")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, admin)
	})

	t.Run("unknown username", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, nil)

		admin, err := svc.Authenticate(ctx, "ghost", "pa55word")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, admin)
	})

	t.Run("disabled account", func(t *testing.T) {
		svc, repo := newService(t)

		stored := &domain.AdminUser{ID: "a1", Username: "root", PasswordHash: hash, IsActive: false}
		repo.EXPECT().FindByUsername(ctx, "root").Return(stored, nil)

		admin, err := svc.Authenticate(ctx, "root", "pa55word")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, admin)
	})
}

func TestGenerateToken(t *testing.T) {
	svc, _ := newService(t)

	token, err := svc.GenerateToken("a1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := auth.NewJWTService("test-secret", time.Hour).ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "a1", claims.AdminID)
}

func TestVerifyActive(t *testing.T) {
	ctx := context.Background()

	t.Run("active admin passes", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().FindByID(ctx, "a1").Return(&domain.AdminUser{ID: "a1", IsActive: true}, nil)
		assert.NoError(t, svc.VerifyActive(ctx, "a1"))
	})

	t.Run("deactivated admin rejected", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().FindByID(ctx, "a1").Return(&domain.AdminUser{ID: "a1", IsActive: false}, nil)
		assert.ErrorIs(t, svc.VerifyActive(ctx, "a1"), domain.ErrAdminNotFound)
	})

	t.Run("missing admin rejected", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().FindByID(ctx, "gone").Return(nil, nil)
		assert.ErrorIs(t, svc.VerifyActive(ctx, "gone"), domain.ErrAdminNotFound)
	})
}
