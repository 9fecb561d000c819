package repositories

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	assert.NoError(t, classifyError(nil))

	plain := errors.New("plain")
	assert.Same(t, plain, classifyError(plain))

	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	err := classifyError(unique)
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, unique)

	notNull := &pgconn.PgError{Code: pgerrcode.NotNullViolation}
	assert.NotErrorIs(t, classifyError(notNull), ErrConflict)
}
