package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// SQLiteDB wraps the embedded store used when STORE_DRIVER=sqlite
type SQLiteDB struct {
	*sql.DB
	Path string
}

// OpenSQLite opens (creating if needed) the database file at path.
// A single connection is kept: SQLite has one writer, and every
// connection to ":memory:" would otherwise see its own empty database.
func OpenSQLite(path string) (*SQLiteDB, error) {
	if path == "" {
		path = MemoryPath
	}

	if path != MemoryPath {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if path != MemoryPath {
		if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	log.Printf("[DATABASE] SQLite store opened at %s", path)
	return &SQLiteDB{DB: db, Path: path}, nil
}

func (db *SQLiteDB) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.DB.PingContext(pingCtx); err != nil {
		return fmt.Errorf("sqlite ping failed: %w", err)
	}
	return nil
}

func (db *SQLiteDB) Close() error {
	log.Println("[DATABASE] Closing SQLite store...")
	return db.DB.Close()
}
