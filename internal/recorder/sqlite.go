package recorder

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists advisory history to a SQLite database.
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

	// WAL mode so dashboards can read while the bot writes.
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
		`CREATE TABLE IF NOT EXISTS advisory_snapshots (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp          INTEGER NOT NULL,
			crop               TEXT,
			district           TEXT,
			source             TEXT,
			weather_risk_score REAL,
			market_risk_score  REAL,
			yield_risk_score   REAL,
			health_score       INTEGER,
			risk_level         TEXT,
			protection_gap     TEXT,
			actions_json       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_advisory_ts ON advisory_snapshots(timestamp)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// RecordAdvisory inserts one advisory evaluation row.
func (r *SQLiteRecorder) RecordAdvisory(snap *AdvisorySnapshot) error {
	if snap == nil || snap.Result == nil {
		return fmt.Errorf("record advisory: empty snapshot")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	actions, err := json.Marshal(snap.Result.RecommendedActions)
	if err != nil {
		return fmt.Errorf("marshal actions: %w", err)
	}

	_, err = r.db.Exec(`INSERT INTO advisory_snapshots
		(timestamp, crop, district, source,
		 weather_risk_score, market_risk_score, yield_risk_score,
		 health_score, risk_level, protection_gap, actions_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(),
		snap.Crop,
		snap.District,
		snap.Source,
		snap.Result.RiskBreakdown.Weather,
		snap.Result.RiskBreakdown.Market,
		snap.Result.RiskBreakdown.Yield,
		snap.Result.FinancialHealthScore,
		string(snap.Result.RiskLevel),
		snap.Result.ProtectionGap,
		string(actions),
	)
	if err != nil {
		return fmt.Errorf("insert advisory snapshot: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
