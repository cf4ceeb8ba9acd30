package testutil

import (
	"log"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/parlorchat/go-parlor/internal/database"
)

func TestLogger(t *testing.T) *log.Logger {
	logger := log.New(os.Stdout, "[test] ", log.LstdFlags)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
	})
	return logger
}

// SetupTestDB connects to the database named by TEST_DATABASE_URL and
// recreates the schema. Tests that need a real engine are skipped when the
// variable is unset.
func SetupTestDB(t *testing.T) *database.PgParlorRepository {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	db, err := database.NewPgParlorRepository(dsn, TestLogger(t))
	if err != nil {
		t.Fatalf("connect to test database: %s", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close test database: %s", err)
		}
	})

	if err := db.Sync(true); err != nil {
		t.Fatalf("sync schema: %s", err)
	}

	return db
}
