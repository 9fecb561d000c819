package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxRunner_WithTx(t *testing.T) {
	t.Run("Commit", func(t *testing.T) {
		db, mock := newMockDB(t)
		runner := NewTxRunner(db)
		repo := NewUserWriteRepository(db, GetTxFromContext)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := runner.WithTx(context.Background(), func(ctx context.Context) error {
			require.NotNil(t, GetTxFromContext(ctx))
			return repo.Delete(ctx, 1)
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollbackOnError", func(t *testing.T) {
		db, mock := newMockDB(t)
		runner := NewTxRunner(db)
		fail := errors.New("fail")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := runner.WithTx(context.Background(), func(ctx context.Context) error {
			return fail
		})
		assert.ErrorIs(t, err, fail)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollbackOnPanic", func(t *testing.T) {
		db, mock := newMockDB(t)
		runner := NewTxRunner(db)

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.PanicsWithValue(t, "boom", func() {
			_ = runner.WithTx(context.Background(), func(ctx context.Context) error {
				panic("boom")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("BeginFails", func(t *testing.T) {
		db, mock := newMockDB(t)
		runner := NewTxRunner(db)

		mock.ExpectBegin().WillReturnError(errors.New("no connection"))

		called := false
		err := runner.WithTx(context.Background(), func(ctx context.Context) error {
			called = true
			return nil
		})
		assert.EqualError(t, err, "no connection")
		assert.False(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CommitFails", func(t *testing.T) {
		db, mock := newMockDB(t)
		runner := NewTxRunner(db)

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

		err := runner.WithTx(context.Background(), func(ctx context.Context) error { return nil })
		assert.EqualError(t, err, "serialization failure")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NestedJoinsOuterTx", func(t *testing.T) {
		db, mock := newMockDB(t)
		runner := NewTxRunner(db)

		mock.ExpectBegin()
		mock.ExpectCommit()

		err := runner.WithTx(context.Background(), func(outer context.Context) error {
			return runner.WithTx(outer, func(inner context.Context) error {
				assert.Same(t, GetTxFromContext(outer), GetTxFromContext(inner))
				return nil
			})
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetTxFromContext_Empty(t *testing.T) {
	assert.Nil(t, GetTxFromContext(context.Background()))
}
