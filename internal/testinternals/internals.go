package testinternals

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitplan/internal/db"
)

const testDBName = "fitplan"

// tables are listed children first, so a plain DELETE never trips a foreign key.
var tables = []string{
	"template_exercise",
	"template",
	"set_detail",
	"exercise_set",
	"exercise_exercise_type",
	"exercise",
	"exercise_type",
	"body_composition",
	"journal_entry",
	"app_user",
}

// NewTestDBPool connects to the postgres found at POSTGRES_HOST (localhost by default),
// applies the schema and empties all tables. The pool is closed when the test ends.
func NewTestDBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}
	t.Logf("using postgres host: %s:%s", host, port)

	dbPool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		DBHost:         host,
		DBPort:         port,
		DBName:         testDBName,
		DBPassword:     os.Getenv("POSTGRES_PASSWORD"),
		TracingEnabled: false,
	})
	require.NoError(t, err)
	t.Cleanup(dbPool.Close)

	require.NoError(t, db.ApplySchema(timeoutCtx, dbPool))
	for _, table := range tables {
		_, err := dbPool.Exec(timeoutCtx, fmt.Sprintf("DELETE FROM %s", table))
		require.NoError(t, err, "clean table %s", table)
	}

	return dbPool
}

// AddTestUser inserts a user directly and returns its id.
func AddTestUser(t *testing.T, dbPool *pgxpool.Pool, username string) int {
	t.Helper()

	var id int
	err := dbPool.QueryRow(
		context.Background(),
		`INSERT INTO app_user (username, password_hash) VALUES ($1, 'not-a-real-hash') RETURNING id`,
		username,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// AddTestExerciseType inserts an exercise type directly and returns its id.
func AddTestExerciseType(t *testing.T, dbPool *pgxpool.Pool, name string) int {
	t.Helper()

	var id int
	err := dbPool.QueryRow(
		context.Background(),
		`INSERT INTO exercise_type (name) VALUES ($1) RETURNING id`,
		name,
	).Scan(&id)
	require.NoError(t, err)
	return id
}
