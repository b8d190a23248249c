package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQL keeps every collection as one row of a key/document table:
//
//	CREATE TABLE IF NOT EXISTS collections (
//	    coll_key VARCHAR(64) PRIMARY KEY,
//	    doc      LONGBLOB NOT NULL,
//	    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
//	        ON UPDATE CURRENT_TIMESTAMP
//	)
//
// REPLACE INTO makes the last-write-wins semantics of the store contract
// literal at the SQL level.
type MySQL struct {
	db *sql.DB
}

// OpenMySQL connects to MySQL, verifies the connection and ensures the
// collections table exists.
func OpenMySQL(user, pass, host, port, name string) (*MySQL, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	const ddl = `CREATE TABLE IF NOT EXISTS collections (
        coll_key VARCHAR(64) PRIMARY KEY,
        doc LONGBLOB NOT NULL,
        updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
    )`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure collections table: %w", err)
	}
	return &MySQL{db: db}, nil
}

// Read fetches the document for a collection key.  A missing row is
// reported as absent.
func (m *MySQL) Read(ctx context.Context, key string) ([]byte, bool, error) {
	var raw []byte
	err := m.db.QueryRowContext(ctx,
		"SELECT doc FROM collections WHERE coll_key=?", key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("select %s: %w", key, err)
	}
	return raw, true, nil
}

// Write replaces the document for a collection key.
func (m *MySQL) Write(ctx context.Context, key string, raw []byte) error {
	if _, err := m.db.ExecContext(ctx,
		"REPLACE INTO collections (coll_key, doc) VALUES (?,?)", key, raw); err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

// Close closes the connection pool.
func (m *MySQL) Close() error { return m.db.Close() }
