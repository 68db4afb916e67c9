package adminuserrepo

import (
	"context"
	"errors"
	"time"

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

const adminColumns = "id, username, email, password_hash, is_active, created_at, last_login"

func scanAdmin(row pgx.Row) (*domain.AdminUser, error) {
	var admin domain.AdminUser
	err := row.Scan(&admin.ID, &admin.Username, &admin.Email, &admin.PasswordHash, &admin.IsActive, &admin.CreatedAt, &admin.LastLogin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *Repository) Create(ctx context.Context, admin *domain.AdminUser) (*domain.AdminUser, error) {
	query := `
        INSERT INTO admin_user (id, username, email, password_hash, is_active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + adminColumns
	created, err := scanAdmin(r.db.QueryRow(ctx, query, admin.ID, admin.Username, admin.Email, admin.PasswordHash, admin.IsActive))
	if err != nil {
		zap.L().Error("can't create admin user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_user WHERE id = $1`
	admin, err := scanAdmin(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find admin user by id", zap.Error(err))
		return nil, err
	}
	return admin, nil
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_user WHERE username = $1`
	admin, err := scanAdmin(r.db.QueryRow(ctx, query, username))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find admin user by username", zap.Error(err))
		return nil, err
	}
	return admin, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_user WHERE email = $1`
	admin, err := scanAdmin(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find admin user by email", zap.Error(err))
		return nil, err
	}
	return admin, nil
}

func (r *Repository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE admin_user SET last_login = $2 WHERE id = $1`, id, at)
	if err != nil {
		zap.L().Error("can't update admin last login", zap.Error(err))
		return err
	}
	return nil
}
