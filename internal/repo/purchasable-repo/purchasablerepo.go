package purchasablerepo

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

const purchasableColumns = "id, name, price, credit_amount, meta_data, created_at, updated_at"

func scanPurchasable(row pgx.Row) (*domain.Purchasable, error) {
	var (
		p       domain.Purchasable
		rawMeta []byte
	)
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.CreditAmount, &rawMeta, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(rawMeta) > 0 {
		if err := json.Unmarshal(rawMeta, &p.Metadata); err != nil {
			return nil, fmt.Errorf("decode purchasable metadata: %w", err)
		}
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.Purchasable) (*domain.Purchasable, error) {
	meta, err := json.Marshal(p.Metadata)
	if err != nil {
		return nil, fmt.Errorf("encode purchasable metadata: %w", err)
	}
	query := `
        INSERT INTO purchasable (id, name, price, credit_amount, meta_data)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + purchasableColumns
	created, err := scanPurchasable(r.db.QueryRow(ctx, query, p.ID, p.Name, p.Price, p.CreditAmount, meta))
	if err != nil {
		zap.L().Error("can't create purchasable", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Purchasable, error) {
	query := `SELECT ` + purchasableColumns + ` FROM purchasable WHERE id = $1`
	p, err := scanPurchasable(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find purchasable", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) List(ctx context.Context, skip, limit int) ([]domain.Purchasable, error) {
	query := `
        SELECT ` + purchasableColumns + `
        FROM purchasable
        ORDER BY name
        OFFSET $1 LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		zap.L().Error("can't list purchasables", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchasables []domain.Purchasable
	for rows.Next() {
		var (
			p       domain.Purchasable
			rawMeta []byte
		)
		err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.CreditAmount, &rawMeta, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan purchasable row", zap.Error(err))
			return nil, err
		}
		if len(rawMeta) > 0 {
			if err := json.Unmarshal(rawMeta, &p.Metadata); err != nil {
				zap.L().Error("can't decode purchasable metadata", zap.Error(err))
				return nil, err
			}
		}
		purchasables = append(purchasables, p)
	}
	return purchasables, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM purchasable`).Scan(&total)
	if err != nil {
		zap.L().Error("can't count purchasables", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) Update(ctx context.Context, p *domain.Purchasable) (*domain.Purchasable, error) {
	meta, err := json.Marshal(p.Metadata)
	if err != nil {
		return nil, fmt.Errorf("encode purchasable metadata: %w", err)
	}
	query := `
        UPDATE purchasable
        SET name = $1, price = $2, credit_amount = $3, meta_data = $4, updated_at = NOW()
        WHERE id = $5
        RETURNING ` + purchasableColumns
	updated, err := scanPurchasable(r.db.QueryRow(ctx, query, p.Name, p.Price, p.CreditAmount, meta, p.ID))
	if err != nil {
		zap.L().Error("can't update purchasable", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM purchasable WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete purchasable", zap.Error(err))
		return err
	}
	return nil
}
