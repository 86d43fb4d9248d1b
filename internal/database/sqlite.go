package database

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/jengzang/stopsearch-backend-go/internal/logging"

	_ "modernc.org/sqlite"
)

var (
	db      *sql.DB
	once    sync.Once
	initErr error
)

// Config holds database configuration
type Config struct {
	Path string
}

// DSN builds a read-only SQLite connection string for path.
func DSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	return fmt.Sprintf("file:%s?mode=ro&_pragma=query_only(1)&_pragma=busy_timeout(5000)", path)
}

// Init opens the shared read-only handle. Later calls return the first result.
func Init(cfg Config) error {
	once.Do(func() {
		var conn *sql.DB
		conn, initErr = sql.Open("sqlite", DSN(cfg.Path))
		if initErr != nil {
			initErr = fmt.Errorf("failed to open database: %w", initErr)
			return
		}

		// Set connection pool settings
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(5)

		if initErr = conn.Ping(); initErr != nil {
			conn.Close()
			initErr = fmt.Errorf("failed to connect to database: %w", initErr)
			return
		}

		var total int64
		if initErr = conn.QueryRow("SELECT COUNT(*) FROM stop_search").Scan(&total); initErr != nil {
			conn.Close()
			initErr = fmt.Errorf("failed to read stop_search: %w", initErr)
			return
		}

		db = conn
		logging.Info().Str("path", cfg.Path).Int64("records", total).Msg("Database connected")
	})

	return initErr
}

// GetDB returns the database instance
func GetDB() *sql.DB {
	if db == nil {
		logging.Fatal().Msg("Database not initialized. Call Init() first.")
	}
	return db
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
