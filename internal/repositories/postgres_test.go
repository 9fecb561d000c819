package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-user-identity/internal/logger"
	"github.com/sbilibin2017/gw-user-identity/internal/migrations"
	"github.com/sbilibin2017/gw-user-identity/internal/models"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	require.NoError(t, logger.Initialize("debug", logger.FormatConsole))
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	migrator, err := migrations.NewMigrator(dsn)
	require.NoError(t, err)
	require.NoError(t, migrator.Up())
	require.NoError(t, migrator.Close())

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func seedUser(t *testing.T, repo *UserWriteRepository, typeCode, username, email, fullname string) *models.User {
	t.Helper()
	user := &models.User{TypeCode: typeCode, Username: username, Email: email, Fullname: fullname, Active: true}
	require.NoError(t, repo.Create(context.Background(), user))
	require.NotZero(t, user.ID)
	return user
}

func TestPostgres_UserRepositories(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	reader := NewUserReadRepository(db)
	writer := NewUserWriteRepository(db, GetTxFromContext)
	types := NewUserTypeReadRepository(db)

	def, err := types.GetDefault(ctx)
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, models.UserTypeRegistered, def.Code)

	vito := seedUser(t, writer, models.UserTypeAdministrator, "vito", "vitolibrarius@gmail.com", "Vito Librarius")
	superman := seedUser(t, writer, models.UserTypeRegistered, "superman", "clark.kent@gmail.com", "Clark Kent")

	t.Run("LookupsAreExact", func(t *testing.T) {
		got, err := reader.GetByUsername(ctx, "superman")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, superman.ID, got.ID)

		got, err = reader.GetByUsername(ctx, "Superman")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = reader.GetByEmail(ctx, "vitolibrarius@gmail.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, vito.ID, got.ID)
	})

	t.Run("UsernameOrEmailMatchesTwoUsers", func(t *testing.T) {
		users, err := reader.ListByUsernameOrEmail(ctx, "superman", "vitolibrarius@gmail.com")
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("DuplicateUsernameIsConflict", func(t *testing.T) {
		err := writer.Create(ctx, &models.User{TypeCode: models.UserTypeRegistered, Username: "superman", Email: "other@gmail.com", Active: true})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("DuplicateEmailIsConflict", func(t *testing.T) {
		err := writer.Create(ctx, &models.User{TypeCode: models.UserTypeRegistered, Username: "clarkkent", Email: "clark.kent@gmail.com", Active: true})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("SecondDefaultTypeRejected", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `UPDATE user_type SET is_default = TRUE WHERE code = 'ADMIN'`)
		assert.Error(t, err)
	})

	t.Run("UpdatePersistsColumns", func(t *testing.T) {
		hash := "$2a$12$abcdefghijklmnopqrstuv"
		superman.PasswordHash = &hash
		superman.FailedLogins = 2
		require.NoError(t, writer.Update(ctx, superman))

		got, err := reader.GetByID(ctx, superman.ID)
		require.NoError(t, err)
		require.NotNil(t, got.PasswordHash)
		assert.Equal(t, hash, *got.PasswordHash)
		assert.Equal(t, 2, got.FailedLogins)
	})
}

func TestPostgres_TokensAndCascadeDelete(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	users := NewUserWriteRepository(db, GetTxFromContext)
	userReader := NewUserReadRepository(db)
	tokens := NewAccessTokenWriteRepository(db, GetTxFromContext)
	tokenReader := NewAccessTokenReadRepository(db)
	tokenTypes := NewAccessTokenTypeReadRepository(db)
	networks := NewNetworkWriteRepository(db, GetTxFromContext)
	networkReader := NewNetworkReadRepository(db)
	runner := NewTxRunner(db)

	user := seedUser(t, users, models.UserTypeRegistered, "superman", "clark.kent@gmail.com", "Clark Kent")

	tt, err := tokenTypes.GetByCode(ctx, models.TokenTypeAPI)
	require.NoError(t, err)
	require.NotNil(t, tt)
	assert.Equal(t, models.DefaultTokenExpirationInterval, tt.ExpirationInterval)

	expires := time.Now().Add(tt.Expiration())
	token := &models.AccessToken{TypeCode: models.TokenTypeAPI, UserID: user.ID, Token: "token-one", ExpiresAt: &expires}
	require.NoError(t, tokens.Create(ctx, token))

	err = tokens.Create(ctx, &models.AccessToken{TypeCode: models.TokenTypeAPI, UserID: user.ID, Token: "token-two", ExpiresAt: &expires})
	assert.ErrorIs(t, err, ErrConflict)

	token.SetExpired(true)
	require.NoError(t, tokens.Update(ctx, token))

	stored, err := tokenReader.GetByToken(ctx, "token-one")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsExpired())

	network := &models.Network{IPAddress: "10.0.0.1", IPHash: "10.0.0.1", Active: true}
	require.NoError(t, networks.Create(ctx, network))
	require.NoError(t, networks.AttachUser(ctx, user.ID, network.ID))
	require.NoError(t, networks.AttachUser(ctx, user.ID, network.ID))

	attached, err := networkReader.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, attached, 1)

	t.Run("FailedCascadeRollsBack", func(t *testing.T) {
		err := runner.WithTx(ctx, func(ctx context.Context) error {
			if _, err := tokens.DeleteByUser(ctx, user.ID); err != nil {
				return err
			}
			return fmt.Errorf("abort")
		})
		assert.EqualError(t, err, "abort")

		list, err := tokenReader.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("UserRowAloneCannotBeDeleted", func(t *testing.T) {
		assert.Error(t, users.Delete(ctx, user.ID))
	})

	t.Run("CascadeDelete", func(t *testing.T) {
		var deleted []string
		err := runner.WithTx(ctx, func(ctx context.Context) error {
			var err error
			if deleted, err = tokens.DeleteByUser(ctx, user.ID); err != nil {
				return err
			}
			if err := networks.DeleteJoinsByUser(ctx, user.ID); err != nil {
				return err
			}
			return users.Delete(ctx, user.ID)
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"token-one"}, deleted)

		gone, err := userReader.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		list, err := tokenReader.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, list)

		// the network row itself survives
		n, err := networkReader.GetByIPAddress(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.NotNil(t, n)
	})
}
