package db

import (
	"os"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/greenrows/currex/internal/errors"
)

// Open opens the curriculum SQLite database at path for reading.
// The driver would happily create a missing file, so existence is checked
// up front: a missing source is a fatal SOURCE_UNAVAILABLE, never an
// implicit empty database.
func Open(path string) (*sqlx.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NewSourceUnavailable(path, err)
	}

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=query_only(1)"
	database, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.NewSourceUnavailable(path, err)
	}

	// Force a real connection so corrupt or non-SQLite files fail here
	// instead of on the first query.
	if err := database.Ping(); err != nil {
		database.Close()
		return nil, errors.NewSourceUnavailable(path, err)
	}

	return database, nil
}
