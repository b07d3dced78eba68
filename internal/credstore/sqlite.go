package credstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// SQLiteStore implements [Store] backed by a SQLite database.
//
// The header map is stored as a JSON document in a single credentials table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new [SQLiteStore] with the given database connection.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Init creates the credentials table if it does not exist.
func (s *SQLiteStore) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS credentials (
			user_id TEXT PRIMARY KEY,
			headers TEXT NOT NULL,
			cookie TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMP NOT NULL
		)
	`

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create credentials table: %w", err)
	}

	return nil
}

// Get retrieves the credential record for a user.
func (s *SQLiteStore) Get(ctx context.Context, userID string) (*Record, error) {
	query := `
		SELECT headers, cookie, updated_at FROM credentials WHERE user_id = ?
	`

	var (
		headersJSON string
		cookie      string
		updatedAt   time.Time
	)

	err := s.db.QueryRowContext(ctx, query, userID).Scan(&headersJSON, &cookie, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query credentials: %w", err)
	}

	var headers map[string]string
	if err := json.Unmarshal([]byte(headersJSON), &headers); err != nil {
		return nil, fmt.Errorf("failed to decode stored headers: %w", err)
	}

	return &Record{
		Headers:   headers,
		Cookie:    cookie,
		UpdatedAt: updatedAt,
	}, nil
}

// Put stores or replaces the credential record for a user.
func (s *SQLiteStore) Put(ctx context.Context, userID string, record *Record) error {
	headersJSON, err := json.Marshal(record.Headers)
	if err != nil {
		return fmt.Errorf("failed to encode headers: %w", err)
	}

	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO credentials (user_id, headers, cookie, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET headers = excluded.headers, cookie = excluded.cookie, updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, userID, string(headersJSON), record.Cookie, record.UpdatedAt); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}

	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
