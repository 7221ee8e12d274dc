package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"quizhub/internal/config"
)

// Open builds the process-wide connection pool. The pool is constructed once
// at startup and injected into repositories; it is closed on shutdown.
func Open(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.PoolSize)
	db.SetMaxIdleConns(cfg.PoolSize)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}
