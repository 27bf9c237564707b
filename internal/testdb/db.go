//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"
	"testing"

	"github.com/phrazzld/authors-api/internal/config"
	"github.com/phrazzld/authors-api/internal/platform/postgres"
	"github.com/phrazzld/authors-api/internal/redact"
	"github.com/stretchr/testify/require"
)

var (
	migrateOnce sync.Once
	migrateErr  error
)

// GetTestDB opens a connection to the test database, applying pending
// migrations once per test binary. The connection is closed at test cleanup.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := GetTestDatabaseURL()
	if url == "" {
		t.Skipf("%s or %s not set; skipping database test", EnvTestDatabaseURL, EnvDatabaseURL)
	}

	ctx := context.Background()
	db, err := postgres.Open(ctx, config.DatabaseConfig{
		URL:                    url,
		MaxOpenConns:           4,
		MaxIdleConns:           2,
		ConnMaxLifetimeMinutes: 1,
	})
	require.NoError(t, err, "failed to connect to test database: %s", redact.String(url))
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close test database: %v", err)
		}
	})

	migrateOnce.Do(func() {
		migrateErr = postgres.RunMigrations(ctx, db, postgres.MigrateUp, slog.Default())
	})
	require.NoError(t, migrateErr, "failed to migrate test database")

	return db
}
