package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"ticket-value-alert/utils"
)

// PostgresStore persists seen fingerprints in PostgreSQL. The table is
// grow-only: fingerprints are never pruned or expired.
type PostgresStore struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresStore opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresStore.
func NewPostgresStore(dsn string, logger *utils.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	// Startup-only retry; nothing inside a polling cycle ever retries.
	connect := &utils.RetryConfig{MaxAttempts: 5, BaseDelay: 2 * time.Second, Logger: logger}
	if err := connect.Do("postgres-connect", db.Ping); err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}

	ps := &PostgresStore{db: db, logger: logger}
	if err := ps.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return ps, nil
}

func (ps *PostgresStore) migrate() error {
	_, err := ps.db.Exec(`
		CREATE TABLE IF NOT EXISTS seen_fingerprints (
			fingerprint VARCHAR(64) PRIMARY KEY,
			first_seen  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	return err
}

// Load reads all persisted fingerprints. Failures are logged and reported as
// an empty set so persistence problems never block startup.
func (ps *PostgresStore) Load() []string {
	rows, err := ps.db.Query(`SELECT fingerprint FROM seen_fingerprints`)
	if err != nil {
		ps.logger.Warn("[postgres] Load failed: %v — starting with empty set", err)
		return nil
	}
	defer rows.Close()

	var fingerprints []string
	for rows.Next() {
		var fp string
		if err := rows.Scan(&fp); err != nil {
			ps.logger.Warn("[postgres] Scan failed: %v — starting with empty set", err)
			return nil
		}
		fingerprints = append(fingerprints, fp)
	}
	if err := rows.Err(); err != nil {
		ps.logger.Warn("[postgres] Load failed: %v — starting with empty set", err)
		return nil
	}
	return fingerprints
}

// Save batch-inserts the fingerprint set, skipping rows already present.
func (ps *PostgresStore) Save(fingerprints []string) error {
	if len(fingerprints) == 0 {
		return nil
	}

	const batchSize = 500
	for i := 0; i < len(fingerprints); i += batchSize {
		end := i + batchSize
		if end > len(fingerprints) {
			end = len(fingerprints)
		}
		if err := ps.insertBatch(fingerprints[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (ps *PostgresStore) insertBatch(batch []string) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch))

	for idx, fp := range batch {
		valueStrings = append(valueStrings, fmt.Sprintf("($%d)", idx+1))
		valueArgs = append(valueArgs, fp)
	}

	query := fmt.Sprintf(`
		INSERT INTO seen_fingerprints (fingerprint)
		VALUES %s
		ON CONFLICT (fingerprint) DO NOTHING
	`, strings.Join(valueStrings, ","))

	_, err := ps.db.Exec(query, valueArgs...)
	if err != nil {
		return fmt.Errorf("postgres: insert batch: %w", err)
	}
	return nil
}

func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
