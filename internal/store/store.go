// Package store manages all DuckDB persistence operations.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"wrapped/internal/model"

	_ "github.com/duckdb/duckdb-go/v2"
)

// Store wraps a DuckDB connection holding the normalized message table and
// run bookkeeping between extraction and analysis.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the given DuckDB file.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open duckdb %s: %w", dbPath, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Init creates the tables and indexes if they don't exist.
func (s *Store) Init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// ReplaceMessages swaps the full message table for a fresh extraction
// atomically. Re-extraction always replaces: message ids are only stable
// within one chat.db snapshot.
func (s *Store) ReplaceMessages(msgs []model.Message) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM messages`); err != nil {
		return fmt.Errorf("clear messages: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO messages (message_id, contact_id, is_from_me, timestamp, text, service)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, m := range msgs {
		if _, err := stmt.Exec(m.ID, m.ContactID, m.FromMe, m.Timestamp, m.Text, nullStr(m.Service)); err != nil {
			return fmt.Errorf("insert message %d: %w", m.ID, err)
		}
	}

	return tx.Commit()
}

// Messages returns all stored messages within the year range, ordered by
// (contact_id, timestamp).
func (s *Store) Messages(yr model.YearRange) ([]model.Message, error) {
	query := `
		SELECT message_id, contact_id, is_from_me, timestamp, text, service
		FROM messages
	`
	var params []interface{}
	if yr.From != 0 {
		query += ` WHERE timestamp >= ?`
		params = append(params, time.Date(yr.From, 1, 1, 0, 0, 0, 0, time.Local))
	}
	if yr.To != 0 {
		if len(params) == 0 {
			query += ` WHERE `
		} else {
			query += ` AND `
		}
		query += `timestamp < ?`
		params = append(params, time.Date(yr.To+1, 1, 1, 0, 0, 0, 0, time.Local))
	}
	query += ` ORDER BY contact_id, timestamp`

	rows, err := s.db.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Message
	for rows.Next() {
		var m model.Message
		var service sql.NullString
		if err := rows.Scan(&m.ID, &m.ContactID, &m.FromMe, &m.Timestamp, &m.Text, &service); err != nil {
			return nil, err
		}
		if service.Valid {
			m.Service = service.String
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MessageCount returns the number of stored messages.
func (s *Store) MessageCount() (int64, error) {
	var n int64
	err := s.db.QueryRow(`SELECT count(*) FROM messages`).Scan(&n)
	return n, err
}

// RecordRun persists bookkeeping for one analysis run.
func (s *Store) RecordRun(runID string, generatedAt time.Time, messageCount, contactCount int, reportPath string) error {
	_, err := s.db.Exec(`
		INSERT INTO runs (run_id, generated_at, message_count, contact_count, report_path)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (run_id) DO NOTHING
	`, runID, generatedAt, messageCount, contactCount, nullStr(reportPath))
	return err
}

// LastRun returns the most recent run record, or ok=false when none exists.
func (s *Store) LastRun() (RunRecord, bool, error) {
	var r RunRecord
	var reportPath sql.NullString
	err := s.db.QueryRow(`
		SELECT run_id, generated_at, message_count, contact_count, report_path
		FROM runs
		ORDER BY generated_at DESC
		LIMIT 1
	`).Scan(&r.RunID, &r.GeneratedAt, &r.MessageCount, &r.ContactCount, &reportPath)
	if err == sql.ErrNoRows {
		return RunRecord{}, false, nil
	}
	if err != nil {
		return RunRecord{}, false, err
	}
	if reportPath.Valid {
		r.ReportPath = reportPath.String
	}
	return r, true, nil
}

// SaveDerived persists one derived table for a run as a JSON payload.
// Saving under an existing (run, name) pair replaces the payload.
func (s *Store) SaveDerived(runID, name string, rows interface{}) error {
	payload, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal derived table %s: %w", name, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO derived_tables (run_id, name, payload)
		VALUES (?, ?, ?)
		ON CONFLICT (run_id, name) DO UPDATE SET payload = excluded.payload
	`, runID, name, string(payload))
	if err != nil {
		return fmt.Errorf("save derived table %s: %w", name, err)
	}
	return nil
}

// Derived loads one derived table from a run into out, which must be a
// pointer to the slice type the table was saved from. ok is false when
// the table was never saved for that run.
func (s *Store) Derived(runID, name string, out interface{}) (bool, error) {
	var payload string
	err := s.db.QueryRow(`
		SELECT CAST(payload AS VARCHAR) FROM derived_tables WHERE run_id = ? AND name = ?
	`, runID, name).Scan(&payload)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return false, fmt.Errorf("decode derived table %s: %w", name, err)
	}
	return true, nil
}

// RunRecord is one row of the runs table.
type RunRecord struct {
	RunID        string
	GeneratedAt  time.Time
	MessageCount int64
	ContactCount int64
	ReportPath   string
}

func nullStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
