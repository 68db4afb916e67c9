package cmsuserrepo

import (
	"context"
	"errors"

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

const cmsColumns = "mobile, email, name, created_at, updated_at"

func scanCMSUser(row pgx.Row) (*domain.CMSUser, error) {
	var user domain.CMSUser
	err := row.Scan(&user.Mobile, &user.Email, &user.Name, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.CMSUser) (*domain.CMSUser, error) {
	query := `
        INSERT INTO cms_user (mobile, email, name)
        VALUES ($1, $2, $3)
        RETURNING ` + cmsColumns
	created, err := scanCMSUser(r.db.QueryRow(ctx, query, user.Mobile, user.Email, user.Name))
	if err != nil {
		zap.L().Error("can't create cms user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByMobile(ctx context.Context, mobile string) (*domain.CMSUser, error) {
	query := `SELECT ` + cmsColumns + ` FROM cms_user WHERE mobile = $1`
	user, err := scanCMSUser(r.db.QueryRow(ctx, query, mobile))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find cms user by mobile", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.CMSUser, error) {
	query := `SELECT ` + cmsColumns + ` FROM cms_user WHERE email = $1`
	user, err := scanCMSUser(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find cms user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) List(ctx context.Context, skip, limit int) ([]domain.CMSUser, error) {
	query := `
        SELECT ` + cmsColumns + `
        FROM cms_user
        ORDER BY created_at DESC
        OFFSET $1 LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		zap.L().Error("can't list cms users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.CMSUser
	for rows.Next() {
		var user domain.CMSUser
		err := rows.Scan(&user.Mobile, &user.Email, &user.Name, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan cms user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cms_user`).Scan(&total)
	if err != nil {
		zap.L().Error("can't count cms users", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) Update(ctx context.Context, user *domain.CMSUser) (*domain.CMSUser, error) {
	query := `
        UPDATE cms_user
        SET email = $1, name = $2, updated_at = NOW()
        WHERE mobile = $3
        RETURNING ` + cmsColumns
	updated, err := scanCMSUser(r.db.QueryRow(ctx, query, user.Email, user.Name, user.Mobile))
	if err != nil {
		zap.L().Error("can't update cms user", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, mobile string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cms_user WHERE mobile = $1`, mobile)
	if err != nil {
		zap.L().Error("can't delete cms user", zap.Error(err))
		return err
	}
	return nil
}
