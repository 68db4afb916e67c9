package agentuserrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

const userColumns = "id, mobile, email, name, credit, created_at, updated_at"

func scanUser(row pgx.Row) (*domain.AgentUser, error) {
	var user domain.AgentUser
	err := row.Scan(&user.ID, &user.Mobile, &user.Email, &user.Name, &user.Credit, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.AgentUser) (*domain.AgentUser, error) {
	query := `
        INSERT INTO agent_user (id, mobile, email, name, credit)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + userColumns
	created, err := scanUser(r.db.QueryRow(ctx, query, user.ID, user.Mobile, user.Email, user.Name, user.Credit))
	if err != nil {
		zap.L().Error("can't create agent user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.AgentUser, error) {
	query := `SELECT ` + userColumns + ` FROM agent_user WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find agent user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByMobile(ctx context.Context, mobile string) (*domain.AgentUser, error) {
	query := `SELECT ` + userColumns + ` FROM agent_user WHERE mobile = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, mobile))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find agent user by mobile", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.AgentUser, error) {
	query := `SELECT ` + userColumns + ` FROM agent_user WHERE email = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find agent user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// FindByIDForUpdate locks the user row for the remainder of the surrounding
// transaction. Callers must run inside TXManager.Begin.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id string) (*domain.AgentUser, error) {
	query := `SELECT ` + userColumns + ` FROM agent_user WHERE id = $1 FOR UPDATE`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock agent user row", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) UpdateCredit(ctx context.Context, id string, credit decimal.Decimal) error {
	query := `
        UPDATE agent_user
        SET credit = $1, updated_at = NOW()
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, credit, id)
	if err != nil {
		zap.L().Error("can't update agent user credit", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, skip, limit int) ([]domain.AgentUser, error) {
	query := `
        SELECT ` + userColumns + `
        FROM agent_user
        ORDER BY created_at DESC
        OFFSET $1 LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		zap.L().Error("can't list agent users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.AgentUser
	for rows.Next() {
		var user domain.AgentUser
		err := rows.Scan(&user.ID, &user.Mobile, &user.Email, &user.Name, &user.Credit, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan agent user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM agent_user`).Scan(&total)
	if err != nil {
		zap.L().Error("can't count agent users", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) Update(ctx context.Context, user *domain.AgentUser) (*domain.AgentUser, error) {
	query := `
        UPDATE agent_user
        SET email = $1, name = $2, updated_at = NOW()
        WHERE id = $3
        RETURNING ` + userColumns
	updated, err := scanUser(r.db.QueryRow(ctx, query, user.Email, user.Name, user.ID))
	if err != nil {
		zap.L().Error("can't update agent user", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM agent_user WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete agent user", zap.Error(err))
		return err
	}
	return nil
}
