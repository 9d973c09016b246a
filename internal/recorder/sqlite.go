package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists the lookup audit trail to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the server's writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS lookups (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			ticker      TEXT NOT NULL,
			period      TEXT,
			price       REAL,
			change_pct  REAL,
			cache_hit   INTEGER,
			duration_ms INTEGER,
			source      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lookups_ts ON lookups(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_lookups_ticker ON lookups(ticker)`,

		`CREATE TABLE IF NOT EXISTS warm_runs (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			tickers   INTEGER,
			failures  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_warm_ts ON warm_runs(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordLookup(evt *LookupEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	hit := 0
	if evt.CacheHit {
		hit = 1
	}
	_, err := r.db.Exec(`INSERT INTO lookups
		(timestamp, ticker, period, price, change_pct, cache_hit, duration_ms, source)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Ticker, evt.Period, evt.Price, evt.ChangePct,
		hit, evt.DurationMs, evt.Source,
	)
	return err
}

func (r *SQLiteRecorder) RecordWarmRun(run *WarmRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO warm_runs (timestamp, tickers, failures) VALUES (?,?,?)`,
		time.Now().Unix(), run.Tickers, run.Failures,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
