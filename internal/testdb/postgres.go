package testdb

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type DB struct {
	Pool *pgxpool.Pool
}

// NewPostgres starts a throwaway Postgres container with the schema applied.
// Tests calling it are skipped under -short.
func NewPostgres(t *testing.T) *DB {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test: needs docker")
	}
	ctx := context.Background()

	pg, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(pg) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool := connect(t, ctx, connStr)
	t.Cleanup(pool.Close)

	applyMigrations(t, pool)
	return &DB{Pool: pool}
}

// Postgres may not accept connections immediately even if the container is "ready".
func connect(t *testing.T, ctx context.Context, connStr string) *pgxpool.Pool {
	t.Helper()

	var lastErr error
	for range 40 { // ~10s total
		pool, err := pgxpool.New(ctx, connStr)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool
			}
			pool.Close()
		}
		lastErr = err
		time.Sleep(250 * time.Millisecond)
	}
	require.NoError(t, lastErr)
	return nil
}

func applyMigrations(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(), readAllMigrations(t))
	require.NoError(t, err)
}

func readAllMigrations(t *testing.T) string {
	t.Helper()

	// find repo root by walking up until we see /migrations
	dir, err := os.Getwd()
	require.NoError(t, err)

	var migDir string
	for i := 0; i < 10; i++ {
		candidate := filepath.Join(dir, "migrations")
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			migDir = candidate
			break
		}
		dir = filepath.Dir(dir)
	}
	require.NotEmpty(t, migDir, "could not find migrations directory")

	names, err := filepath.Glob(filepath.Join(migDir, "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, names, "no .sql migrations found")

	// 0001_ prefix means lexical == numeric order
	sort.Strings(names)

	var b strings.Builder
	for _, path := range names {
		body, err := os.ReadFile(path)
		require.NoError(t, err)
		b.WriteString("\n-- ")
		b.WriteString(filepath.Base(path))
		b.WriteString("\n")
		b.Write(body)
		b.WriteString("\n")
	}

	return b.String()
}
