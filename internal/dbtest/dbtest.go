// Package dbtest builds throwaway curriculum databases for tests.
// The exporter itself never creates or mutates the source schema, so the
// fixture machinery lives here instead of internal/db.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE days (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  module      TEXT,
  day_number  INTEGER,
  theme       TEXT
);

CREATE TABLE learning_blocks (
  id     INTEGER PRIMARY KEY AUTOINCREMENT,
  focus  TEXT
);

CREATE TABLE activities (
  id                 INTEGER PRIMARY KEY AUTOINCREMENT,
  day_id             INTEGER REFERENCES days(id),
  block_id           INTEGER REFERENCES learning_blocks(id),
  name               TEXT NOT NULL,
  sequence_order     INTEGER NOT NULL,
  purpose            TEXT,
  duration           TEXT,
  facilitator_script TEXT,
  transition_script  TEXT
);

CREATE TABLE homework_assignments (
  id      INTEGER PRIMARY KEY AUTOINCREMENT,
  day_id  INTEGER REFERENCES days(id),
  title   TEXT
);

CREATE TABLE homework_tasks (
  id             INTEGER PRIMARY KEY AUTOINCREMENT,
  assignment_id  INTEGER REFERENCES homework_assignments(id),
  task           TEXT NOT NULL
);
`

// Create builds an empty curriculum database in a temp dir and returns its
// path and a writable handle for seeding. The handle is closed via t.Cleanup.
func Create(t *testing.T) (string, *sqlx.DB) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "curriculum.db")
	database, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatalf("open fixture db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if _, err := database.Exec(schema); err != nil {
		t.Fatalf("create fixture schema: %v", err)
	}

	return path, database
}

// Str returns a pointer to s, for nullable seed columns.
func Str(s string) *string { return &s }

// InsertDay seeds one day row and returns its ID. A nil module produces a
// day that fails the export join.
func InsertDay(t *testing.T, database *sqlx.DB, module *string, dayNumber int, theme *string) int64 {
	t.Helper()

	res, err := database.Exec(
		`INSERT INTO days (module, day_number, theme) VALUES (?, ?, ?)`,
		module, dayNumber, theme,
	)
	if err != nil {
		t.Fatalf("insert day: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("day id: %v", err)
	}
	return id
}

// InsertBlock seeds one learning block and returns its ID.
func InsertBlock(t *testing.T, database *sqlx.DB, focus string) int64 {
	t.Helper()

	res, err := database.Exec(`INSERT INTO learning_blocks (focus) VALUES (?)`, focus)
	if err != nil {
		t.Fatalf("insert learning block: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("learning block id: %v", err)
	}
	return id
}

// Activity describes one seed activity row.
type Activity struct {
	DayID             *int64
	BlockID           *int64
	Name              string
	SequenceOrder     int
	Purpose           *string
	Duration          *string
	FacilitatorScript *string
	TransitionScript  *string
}

// InsertActivity seeds one activity row and returns its ID.
func InsertActivity(t *testing.T, database *sqlx.DB, a Activity) int64 {
	t.Helper()

	res, err := database.Exec(
		`INSERT INTO activities
		   (day_id, block_id, name, sequence_order, purpose, duration, facilitator_script, transition_script)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.DayID, a.BlockID, a.Name, a.SequenceOrder,
		a.Purpose, a.Duration, a.FacilitatorScript, a.TransitionScript,
	)
	if err != nil {
		t.Fatalf("insert activity: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("activity id: %v", err)
	}
	return id
}

// InsertAssignment seeds one homework assignment and returns its ID.
func InsertAssignment(t *testing.T, database *sqlx.DB, dayID int64, title *string) int64 {
	t.Helper()

	res, err := database.Exec(
		`INSERT INTO homework_assignments (day_id, title) VALUES (?, ?)`,
		dayID, title,
	)
	if err != nil {
		t.Fatalf("insert assignment: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("assignment id: %v", err)
	}
	return id
}

// InsertTask seeds one homework task.
func InsertTask(t *testing.T, database *sqlx.DB, assignmentID int64, task string) {
	t.Helper()

	if _, err := database.Exec(
		`INSERT INTO homework_tasks (assignment_id, task) VALUES (?, ?)`,
		assignmentID, task,
	); err != nil {
		t.Fatalf("insert task: %v", err)
	}
}
