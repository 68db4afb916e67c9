package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nexilab/agent-credit/internal/domain"
	"github.com/nexilab/agent-credit/pkg/auth"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Repo interface {
	Create(ctx context.Context, admin *domain.AdminUser) (*domain.AdminUser, error)
	FindByID(ctx context.Context, id string) (*domain.AdminUser, error)
	FindByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

type Service struct {
	adminRepo   Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		adminRepo:   repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Register(ctx context.Context, username, email, password string) (*domain.AdminUser, error) {
	existing, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find admin: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("admin already exists", zap.String("username", username))
		return nil, domain.ErrDuplicateUsername
	}
	existing, err = s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find admin: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	admin := &domain.AdminUser{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}
	created, err := s.adminRepo.Create(ctx, admin)
	if err != nil {
		zap.L().Error("can't create admin: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("admin successfully registered", zap.String("username", username))
	return created, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.AdminUser, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil || admin == nil || !admin.IsActive {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if err := s.hashService.ComparePassword(admin.PasswordHash, password); err != nil {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if err := s.adminRepo.UpdateLastLogin(ctx, admin.ID, time.Now().UTC()); err != nil {
		zap.L().Error("can't record login time: ", zap.Error(err))
	}

	zap.L().Info("admin successfully authenticated", zap.String("username", username))
	return admin, nil
}

func (s *Service) GenerateToken(adminID string) (string, error) {
	token, err := s.jwtService.GenerateJWT(adminID)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrAdminNotFound
	}
	return admin, nil
}

// VerifyActive satisfies auth.AdminVerifier for the token middleware.
func (s *Service) VerifyActive(ctx context.Context, adminID string) error {
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return err
	}
	if admin == nil || !admin.IsActive {
		return domain.ErrAdminNotFound
	}
	return nil
}
