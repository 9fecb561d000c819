package migrations

import (
	"errors"
	"regexp"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok, "expected oops error, got %T", err)
	assert.Equal(t, code, oopsErr.Code())
}

type fakeMigrate struct {
	upErr          error
	downErr        error
	version        uint
	dirty          bool
	versionErr     error
	closeSourceErr error
	closeDbErr     error
}

func (f *fakeMigrate) Up() error                    { return f.upErr }
func (f *fakeMigrate) Down() error                  { return f.downErr }
func (f *fakeMigrate) Version() (uint, bool, error) { return f.version, f.dirty, f.versionErr }
func (f *fakeMigrate) Close() (error, error)        { return f.closeSourceErr, f.closeDbErr }

func TestMigrationsFS_EmbeddedFiles(t *testing.T) {
	entries, err := migrationsFS.ReadDir("sql")
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, e := range entries {
		names[e.Name()] = true
	}

	for _, expected := range []string{
		"000001_users.up.sql",
		"000001_users.down.sql",
		"000002_access_tokens.up.sql",
		"000002_access_tokens.down.sql",
	} {
		assert.True(t, names[expected], "should contain %s", expected)
	}

	pattern := regexp.MustCompile(`^\d{6}_\w+\.(up|down)\.sql$`)
	for name := range names {
		assert.True(t, pattern.MatchString(name), "file %s should match NNNNNN_name.(up|down).sql", name)
	}
}

func TestMigrationsFS_Seeds(t *testing.T) {
	users, err := migrationsFS.ReadFile("sql/000001_users.up.sql")
	require.NoError(t, err)
	for _, code := range []string{"'UNR'", "'REG', 'Registered', TRUE", "'ADMIN'"} {
		assert.Contains(t, string(users), code)
	}

	tokens, err := migrationsFS.ReadFile("sql/000002_access_tokens.up.sql")
	require.NoError(t, err)
	for _, code := range []string{"('API', 'Machine Interface', 3600)", "('REMEMBER', 'Remember Me', 3600)", "('RESET', 'Password Reset', 3600)"} {
		assert.Contains(t, string(tokens), code)
	}
}

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@localhost:5432/db", migrateURL("postgres://u:p@localhost:5432/db"))
	assert.Equal(t, "pgx5://u:p@localhost:5432/db", migrateURL("postgresql://u:p@localhost:5432/db"))
	assert.Equal(t, "pgx5://localhost/db", migrateURL("pgx5://localhost/db"))
}

func TestNewMigrator_InvalidURL(t *testing.T) {
	_, err := NewMigrator("badscheme://localhost:5432/testdb")
	require.Error(t, err)
	assertErrorCode(t, err, "MIGRATION_INIT_FAILED")
}

func TestMigrator_Up(t *testing.T) {
	tests := []struct {
		name     string
		upErr    error
		wantCode string
	}{
		{name: "success"},
		{name: "no change", upErr: migrate.ErrNoChange},
		{name: "failure", upErr: errors.New("database locked"), wantCode: "MIGRATION_UP_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Migrator{m: &fakeMigrate{upErr: tt.upErr, version: 2}}
			err := m.Up()
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assertErrorCode(t, err, tt.wantCode)
		})
	}
}

func TestMigrator_Down(t *testing.T) {
	m := &Migrator{m: &fakeMigrate{downErr: migrate.ErrNoChange}}
	assert.NoError(t, m.Down())

	m = &Migrator{m: &fakeMigrate{downErr: errors.New("constraint violation")}}
	assertErrorCode(t, m.Down(), "MIGRATION_DOWN_FAILED")
}

func TestMigrator_Version(t *testing.T) {
	m := &Migrator{m: &fakeMigrate{versionErr: migrate.ErrNilVersion}}
	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(0), version)
	assert.False(t, dirty)

	m = &Migrator{m: &fakeMigrate{version: 2, dirty: true}}
	version, dirty, err = m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
	assert.True(t, dirty)

	m = &Migrator{m: &fakeMigrate{versionErr: errors.New("connection refused")}}
	_, _, err = m.Version()
	assertErrorCode(t, err, "MIGRATION_VERSION_FAILED")
}

func TestMigrator_Close(t *testing.T) {
	m := &Migrator{m: &fakeMigrate{}}
	assert.NoError(t, m.Close())

	m = &Migrator{m: &fakeMigrate{closeSourceErr: errors.New("source")}}
	assertErrorCode(t, m.Close(), "MIGRATION_CLOSE_FAILED")

	m = &Migrator{m: &fakeMigrate{closeDbErr: errors.New("db")}}
	assertErrorCode(t, m.Close(), "MIGRATION_CLOSE_FAILED")

	m = &Migrator{m: &fakeMigrate{closeSourceErr: errors.New("source"), closeDbErr: errors.New("db")}}
	err := m.Close()
	assertErrorCode(t, err, "MIGRATION_CLOSE_FAILED")
	assert.Contains(t, err.Error(), "source: source; database: db")
}
