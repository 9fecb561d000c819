package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sbilibin2017/gw-user-identity/internal/logger"
)

// ErrConflict is returned when a write violates a unique constraint
// (username, email, token, (user, type) or (user, network)).
var ErrConflict = errors.New("conflict")

// ErrNotFound is returned when an update or delete matches no row.
// Lookups report absence as a nil result instead.
var ErrNotFound = errors.New("not found")

// classifyError maps storage unique violations onto ErrConflict, keeping the
// driver error in the chain.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}

// noRows turns sql.ErrNoRows into an absent result.
func noRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// logQuery logs the query in a single line with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
