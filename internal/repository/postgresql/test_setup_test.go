// Package postgresql_test holds integration tests for the repositories.
// They run against a real database and are skipped unless TEST_DATABASE_URL
// is set. The schema from migrations/001_init.sql must be applied first.
package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
)

// testDatabase returns the shared test connection, skipping the test when no
// test database is configured.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database integration test")
	}

	testDBOnce.Do(func() {
		db, err := database.NewPostgreSQLDB(dsn)
		if err != nil {
			t.Fatalf("failed to connect to test database: %v", err)
		}
		testDB = db
	})

	return testDB
}

// resetTables truncates everything the repositories write to.
func resetTables(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	for _, table := range []string{"attendance_records", "refresh_tokens", "settings", "users"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}
