// Package persistence provides SQLite-based storage for simulation runs:
// full-fidelity nation snapshots per year, the event log, and run metadata.
// The engine never imports this package; it is the save/load collaborator
// at the simulation boundary.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/statecraft/internal/crisis"
	"github.com/talgya/statecraft/internal/economy"
	"github.com/talgya/statecraft/internal/engine"
	"github.com/talgya/statecraft/internal/military"
	"github.com/talgya/statecraft/internal/nation"
)

// DB wraps a SQLite connection for run storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		start_year INTEGER NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS snapshots (
		run_id TEXT NOT NULL,
		nation_tag TEXT NOT NULL,
		year INTEGER NOT NULL,
		name TEXT NOT NULL,
		military INTEGER NOT NULL,
		economy INTEGER NOT NULL,
		stability INTEGER NOT NULL,
		innovation INTEGER NOT NULL,
		prestige INTEGER NOT NULL,
		at_war INTEGER NOT NULL,
		war_years INTEGER NOT NULL,
		economy_json TEXT NOT NULL,
		military_json TEXT NOT NULL,
		demographics_json TEXT,
		consequences_json TEXT NOT NULL,
		PRIMARY KEY (run_id, nation_tag, year)
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		year INTEGER NOT NULL,
		nation TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_meta (
		run_id TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (run_id, key)
	);

	CREATE INDEX IF NOT EXISTS idx_events_run_year ON events(run_id, year);
	CREATE INDEX IF NOT EXISTS idx_snapshots_year ON snapshots(run_id, year);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// CreateRun registers a new run and returns its ID.
func (db *DB) CreateRun(seed int64, startYear int) (string, error) {
	id := uuid.NewString()
	_, err := db.conn.Exec(
		"INSERT INTO runs (id, seed, start_year) VALUES (?, ?, ?)",
		id, seed, startYear,
	)
	if err != nil {
		return "", fmt.Errorf("create run: %w", err)
	}
	return id, nil
}

// LatestRun returns the most recently created run's ID, seed, and start
// year. sql.ErrNoRows when the database holds no runs yet.
func (db *DB) LatestRun() (id string, seed int64, startYear int, err error) {
	row := db.conn.QueryRow(
		"SELECT id, seed, start_year FROM runs ORDER BY created_at DESC, id DESC LIMIT 1")
	err = row.Scan(&id, &seed, &startYear)
	return id, seed, startYear, err
}

// SaveYear writes every nation's snapshot and the year's events, in one
// transaction. Nested records go into JSON side-columns; the stat scores
// get real columns so history queries stay cheap.
func (db *DB) SaveYear(runID string, year int, nations []*engine.NationState, events []engine.Event) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT OR REPLACE INTO snapshots
		(run_id, nation_tag, year, name,
		 military, economy, stability, innovation, prestige,
		 at_war, war_years,
		 economy_json, military_json, demographics_json, consequences_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, n := range nations {
		econJSON, err := json.Marshal(n.Economy)
		if err != nil {
			return fmt.Errorf("marshal economy %s: %w", n.Tag, err)
		}
		milJSON, err := json.Marshal(n.Military)
		if err != nil {
			return fmt.Errorf("marshal military %s: %w", n.Tag, err)
		}
		var demoJSON []byte
		if n.Demographics != nil {
			if demoJSON, err = json.Marshal(n.Demographics); err != nil {
				return fmt.Errorf("marshal demographics %s: %w", n.Tag, err)
			}
		}
		consJSON, err := json.Marshal(n.Active)
		if err != nil {
			return fmt.Errorf("marshal consequences %s: %w", n.Tag, err)
		}

		atWar := 0
		if n.AtWar {
			atWar = 1
		}

		_, err = stmt.Exec(
			runID, n.Tag, year, n.Name,
			n.Stats.Military, n.Stats.Economy, n.Stats.Stability, n.Stats.Innovation, n.Stats.Prestige,
			atWar, n.WarYears,
			string(econJSON), string(milJSON), nullable(demoJSON), string(consJSON),
		)
		if err != nil {
			return fmt.Errorf("insert snapshot %s/%d: %w", n.Tag, year, err)
		}
	}

	for _, e := range events {
		_, err := tx.Exec(
			"INSERT INTO events (run_id, year, nation, category, description) VALUES (?, ?, ?, ?, ?)",
			runID, e.Year, e.Nation, e.Category, e.Description,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadLatestYear restores every nation's state at the newest saved year of
// a run, counters included, so a run resumes exactly where it stopped.
func (db *DB) LoadLatestYear(runID string) ([]*engine.NationState, int, error) {
	// MAX() over an empty set yields NULL: a run registered but never
	// saved reports sql.ErrNoRows so callers can start it fresh.
	var latest sql.NullInt64
	err := db.conn.Get(&latest,
		"SELECT MAX(year) FROM snapshots WHERE run_id = ?", runID)
	if err != nil {
		return nil, 0, fmt.Errorf("latest year: %w", err)
	}
	if !latest.Valid {
		return nil, 0, fmt.Errorf("latest year: %w", sql.ErrNoRows)
	}
	year := int(latest.Int64)

	rows, err := db.conn.Queryx(`SELECT nation_tag, name,
			military, economy, stability, innovation, prestige,
			at_war, war_years,
			economy_json, military_json, demographics_json, consequences_json
		FROM snapshots WHERE run_id = ? AND year = ? ORDER BY nation_tag`,
		runID, year)
	if err != nil {
		return nil, 0, fmt.Errorf("load snapshots: %w", err)
	}
	defer rows.Close()

	var nations []*engine.NationState
	for rows.Next() {
		var (
			tag, name                              string
			mil, eco, sta, inn, pre, atWar, warYrs int
			econJSON, milJSON, consJSON            string
			demoJSON                               sql.NullString
		)
		if err := rows.Scan(&tag, &name, &mil, &eco, &sta, &inn, &pre,
			&atWar, &warYrs, &econJSON, &milJSON, &demoJSON, &consJSON); err != nil {
			return nil, 0, fmt.Errorf("scan snapshot: %w", err)
		}

		n := &engine.NationState{
			Tag:  tag,
			Name: name,
			Stats: nation.Stats{
				Military: mil, Economy: eco, Stability: sta,
				Innovation: inn, Prestige: pre,
			},
			AtWar:    atWar == 1,
			WarYears: warYrs,
		}

		n.Economy = &economy.NationalEconomy{}
		if err := json.Unmarshal([]byte(econJSON), n.Economy); err != nil {
			return nil, 0, fmt.Errorf("unmarshal economy %s: %w", tag, err)
		}
		n.Military = &military.NationalMilitary{}
		if err := json.Unmarshal([]byte(milJSON), n.Military); err != nil {
			return nil, 0, fmt.Errorf("unmarshal military %s: %w", tag, err)
		}
		if demoJSON.Valid && demoJSON.String != "" {
			n.Demographics = &nation.Demographics{}
			if err := json.Unmarshal([]byte(demoJSON.String), n.Demographics); err != nil {
				return nil, 0, fmt.Errorf("unmarshal demographics %s: %w", tag, err)
			}
		}
		if err := json.Unmarshal([]byte(consJSON), &n.Active); err != nil {
			return nil, 0, fmt.Errorf("unmarshal consequences %s: %w", tag, err)
		}
		if n.Active == nil {
			n.Active = []crisis.ActiveConsequence{}
		}

		nations = append(nations, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if len(nations) == 0 {
		return nil, 0, errors.New("run has no snapshots")
	}

	return nations, year, nil
}

// RecentEvents returns the most recent N events of a run.
func (db *DB) RecentEvents(runID string, limit int) ([]engine.Event, error) {
	var events []engine.Event
	err := db.conn.Select(&events,
		"SELECT year, nation, category, description FROM events WHERE run_id = ? ORDER BY id DESC LIMIT ?",
		runID, limit,
	)
	return events, err
}

// SaveMeta stores a key-value pair for a run.
func (db *DB) SaveMeta(runID, key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO run_meta (run_id, key, value) VALUES (?, ?, ?)",
		runID, key, value,
	)
	return err
}

// GetMeta retrieves a run metadata value.
func (db *DB) GetMeta(runID, key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM run_meta WHERE run_id = ? AND key = ?", runID, key)
	return value, err
}

// SaveWorld persists the world's current year: all nations plus the events
// those nations just produced.
func (db *DB) SaveWorld(runID string, w *engine.World, results []engine.TickResult) error {
	year, nations := w.Snapshot()
	var events []engine.Event
	for _, r := range results {
		events = append(events, r.Events...)
	}

	if err := db.SaveYear(runID, year, nations, events); err != nil {
		return fmt.Errorf("save year %d: %w", year, err)
	}
	slog.Debug("world saved", "run", runID, "year", year, "nations", len(nations))
	return nil
}

func nullable(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
