package pg

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Row locks taken inside a transaction wait at most this long before the
// statement fails with SQLSTATE 55P03.
const lockTimeout = "5s"

//go:generate mockgen -source=txmanager.go -destination=mock.go -package=pg

// TXManager runs a function inside a database transaction. The transaction is
// committed when fn returns nil and rolled back otherwise; fn receives a
// context that routes all Database calls onto the transaction.
type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type txManager struct {
	pool Pool
}

func NewTXManager(pool Pool) TXManager {
	return &txManager{pool: pool}
}

func (m *txManager) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		// Already inside a transaction, join it.
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txCtx := context.WithValue(ctx, txKey{}, tx)

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				zap.L().Error("rollback after panic failed", zap.Error(rbErr))
			}
			panic(p)
		}
	}()

	if _, err := tx.Exec(txCtx, "SET LOCAL lock_timeout = '"+lockTimeout+"'"); err != nil {
		tx.Rollback(ctx)
		return fmt.Errorf("set lock_timeout: %w", err)
	}

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			zap.L().Error("transaction rollback failed", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
