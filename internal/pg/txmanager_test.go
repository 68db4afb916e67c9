package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestTXManager_CommitOnSuccess(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectBegin()
	mockPool.ExpectExec(`SET LOCAL lock_timeout`).
		WillReturnResult(pgxmock.NewResult("SET", 0))
	mockPool.ExpectQuery(`SELECT 1`).
		WillReturnRows(pgxmock.NewRows([]string{"one"}).AddRow(1))
	mockPool.ExpectCommit()

	manager := NewTXManager(mockPool)
	conn := New(mockPool)

	err = manager.Begin(context.Background(), func(ctx context.Context) error {
		var one int
		return conn.QueryRow(ctx, "SELECT 1").Scan(&one)
	})
	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestTXManager_RollbackOnError(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectBegin()
	mockPool.ExpectExec(`SET LOCAL lock_timeout`).
		WillReturnResult(pgxmock.NewResult("SET", 0))
	mockPool.ExpectRollback()

	manager := NewTXManager(mockPool)

	boom := errors.New("boom")
	err = manager.Begin(context.Background(), func(ctx context.Context) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestTXManager_NestedBeginJoins(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectBegin()
	mockPool.ExpectExec(`SET LOCAL lock_timeout`).
		WillReturnResult(pgxmock.NewResult("SET", 0))
	mockPool.ExpectCommit()

	manager := NewTXManager(mockPool)

	var innerRan bool
	err = manager.Begin(context.Background(), func(ctx context.Context) error {
		return manager.Begin(ctx, func(ctx context.Context) error {
			innerRan = true
			return nil
		})
	})
	assert.NoError(t, err)
	assert.True(t, innerRan)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestDatabase_OutsideTransaction(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectExec(`DELETE FROM agent_user`).
		WithArgs("user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	conn := New(mockPool)
	_, err = conn.Exec(context.Background(), "DELETE FROM agent_user WHERE id = $1", "user-1")
	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
