package repository

import (
	"context"
	"fmt"
	"time"

	"propsearch/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS search_logs (
	search_id        TEXT PRIMARY KEY,
	query            TEXT NOT NULL,
	criteria         JSONB,
	result_count     INTEGER NOT NULL,
	returned_slugs   TEXT[],
	response_time_ms INTEGER NOT NULL,
	clicked_slug     TEXT,
	action           TEXT,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresRepository records searches and user feedback in PostgreSQL
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository and makes sure
// the search_logs table exists
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return NewPostgresRepositoryFromDB(db)
}

// NewPostgresRepositoryFromDB wraps an open connection pool
func NewPostgresRepositoryFromDB(db *sqlx.DB) (*PostgresRepository, error) {
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create search_logs table: %w", err)
	}
	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// LogSearch logs a search query
func (r *PostgresRepository) LogSearch(ctx context.Context, entry model.SearchLog) error {
	logQuery := `
		INSERT INTO search_logs (search_id, query, criteria, result_count, returned_slugs, response_time_ms)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, logQuery,
		entry.SearchID,
		entry.Query,
		entry.Criteria,
		entry.ResultCount,
		pq.Array(entry.Slugs),
		entry.ResponseTimeMs,
	)
	if err != nil {
		return fmt.Errorf("failed to log search: %w", err)
	}
	return nil
}

// LogFeedback logs user feedback/action
func (r *PostgresRepository) LogFeedback(ctx context.Context, searchID, slug, action string) error {
	query := `
		UPDATE search_logs
		SET clicked_slug = $2, action = $3
		WHERE search_id = $1
	`
	res, err := r.db.ExecContext(ctx, query, searchID, slug, action)
	if err != nil {
		return fmt.Errorf("failed to log feedback: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownSearch, searchID)
	}
	return nil
}
