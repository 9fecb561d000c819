package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// newMockDB returns a sqlx handle backed by sqlmock.
func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

var userRowColumns = []string{
	"id", "type_code", "username", "email", "password_hash", "failed_logins", "fullname",
	"active", "created_at", "updated_at", "last_login", "last_failed_login",
}

var tokenRowColumns = []string{"id", "type_code", "user_id", "token", "created_at", "updated_at", "expires_at"}
