// internal/db/db.go
package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/districtfive/survey-backend/internal/config"
)

// Open creates the data directory if needed and connects to the configured
// store: Postgres when DATABASE_URL is set, otherwise a SQLite file under
// the data directory. The caller owns the returned handle and closes it at
// shutdown.
func Open(cfg config.ServerConfig) (*sql.DB, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", cfg.DataDir, err)
	}

	driver := cfg.Driver()
	dsn := cfg.DatabaseURL
	if driver == "sqlite" {
		dsn = filepath.Join(cfg.DataDir, config.DBFileName)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	log.Printf("✅ Connected to %s database", driver)
	return conn, nil
}
