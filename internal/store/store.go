// Package store persists generation records to SQLite so dataset runs
// can be resumed, inspected, and exported for publishing.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	_ "github.com/mattn/go-sqlite3"
)

// Record is one persisted generation result.
type Record struct {
	Object      string
	Description string
	Script      string
	Model       string
	RunID       string
	CreatedAt   time.Time
}

// RecordStore keeps generation records in a single SQLite database.
type RecordStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
	logger *zap.Logger
}

// NewRecordStore opens (creating if needed) the SQLite database at path.
func NewRecordStore(path string, logger *zap.Logger) (*RecordStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logger.Debug("failed to set sqlite busy_timeout", zap.Error(err))
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logger.Debug("failed to set sqlite journal_mode=WAL", zap.Error(err))
	}

	s := &RecordStore{db: db, dbPath: path, logger: logger}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	logger.Debug("record store opened", zap.String("path", path))
	return s, nil
}

func (s *RecordStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		object TEXT PRIMARY KEY,
		description TEXT,
		script TEXT NOT NULL,
		model TEXT,
		run_id TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_records_run ON records(run_id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// SaveRecord inserts or replaces the record for one object.
func (s *RecordStore) SaveRecord(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO records (object, description, script, model, run_id, created_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		r.Object, r.Description, r.Script, r.Model, r.RunID)
	if err != nil {
		return fmt.Errorf("failed to save record for %q: %w", r.Object, err)
	}
	s.logger.Debug("saved record", zap.String("object", r.Object))
	return nil
}

// GetRecord returns the record for one object, or sql.ErrNoRows wrapped
// when none exists.
func (s *RecordStore) GetRecord(object string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var r Record
	err := s.db.QueryRow(`
		SELECT object, COALESCE(description, ''), script, COALESCE(model, ''), COALESCE(run_id, ''), created_at
		FROM records WHERE object = ?`, object).
		Scan(&r.Object, &r.Description, &r.Script, &r.Model, &r.RunID, &r.CreatedAt)
	if err != nil {
		return Record{}, fmt.Errorf("failed to load record for %q: %w", object, err)
	}
	return r, nil
}

// HasRecord reports whether a record exists for the object.
func (s *RecordStore) HasRecord(object string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM records WHERE object = ?`, object).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check record for %q: %w", object, err)
	}
	return n > 0, nil
}

// ListRecords returns every record ordered by object name.
func (s *RecordStore) ListRecords() ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT object, COALESCE(description, ''), script, COALESCE(model, ''), COALESCE(run_id, ''), created_at
		FROM records ORDER BY object`)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Object, &r.Description, &r.Script, &r.Model, &r.RunID, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return out, nil
}

// Count returns the number of stored records.
func (s *RecordStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}

// ExportScripts writes one Python file per record into dir, named after
// the object with spaces replaced by underscores. Returns the number of
// files written.
func (s *RecordStore) ExportScripts(dir string) (int, error) {
	records, err := s.ListRecords()
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create export directory: %w", err)
	}

	written := 0
	for _, r := range records {
		name := strings.ReplaceAll(r.Object, " ", "_") + "_code.py"
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(r.Script), 0644); err != nil {
			return written, fmt.Errorf("failed to export %q: %w", r.Object, err)
		}
		written++
	}
	s.logger.Info("exported scripts", zap.Int("count", written), zap.String("dir", dir))
	return written, nil
}

// Close closes the underlying database.
func (s *RecordStore) Close() error {
	return s.db.Close()
}
