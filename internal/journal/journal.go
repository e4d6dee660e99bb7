// Package journal persists tap session events to SQLite.
//
// Every forwarded value, terminal signal, and state transition of a CLI
// session is recorded with the session id, so a tap can be inspected after
// the fact with `streamtap log`.
package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// Entry kinds.
const (
	KindValue    = "value"
	KindError    = "error"
	KindComplete = "complete"
	KindState    = "state"
)

// Entry is a single recorded event.
type Entry struct {
	ID      int64
	Session string
	Kind    string
	Detail  string
	At      time.Time
}

// Journal handles persistence of session events.
//
// Journal is safe for concurrent use; the underlying sql.DB serializes
// access. Individual Record calls are atomic.
type Journal struct {
	db      *sql.DB
	session string
}

// Open creates or opens the journal database at path and binds it to the
// given session id. The schema is migrated automatically.
func Open(path, session string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	// WAL mode keeps concurrent readers cheap
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	j := &Journal{db: db, session: session}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return j, nil
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session TEXT NOT NULL,
		kind TEXT NOT NULL,
		detail TEXT,
		at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_events_session ON events(session, id);
	`
	_, err := j.db.Exec(schema)
	return err
}

// Record appends an event to the journal under the bound session.
func (j *Journal) Record(kind, detail string) error {
	_, err := j.db.Exec(
		"INSERT INTO events (session, kind, detail, at) VALUES (?, ?, ?, ?)",
		j.session, kind, detail, time.Now().UTC(),
	)
	return err
}

// Recent returns up to n most recent entries across all sessions, newest
// first.
func (j *Journal) Recent(n int) ([]Entry, error) {
	rows, err := j.db.Query(
		"SELECT id, session, kind, detail, at FROM events ORDER BY id DESC LIMIT ?", n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Session, &e.Kind, &e.Detail, &e.At); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database handle.
func (j *Journal) Close() error {
	return j.db.Close()
}
