//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/chosundeveloper/rollbook/internal/store/postgres"
)

// setupTestStore는 testcontainers로 Postgres를 띄우고 collections
// 스키마까지 준비된 스토어를 반환한다
func setupTestStore(t *testing.T) *postgres.Store {
	ctx := context.Background()

	postgresContainer, err := pgcontainer.RunContainer(ctx,
		testcontainers.WithImage("postgres:17.7"),
		pgcontainer.WithDatabase("test_db"),
		pgcontainer.WithUsername("test"),
		pgcontainer.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	t.Cleanup(func() {
		db.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	store := postgres.NewStore(db)
	require.NoError(t, store.EnsureSchema(ctx))
	return store
}
