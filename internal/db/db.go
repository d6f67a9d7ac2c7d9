package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const memoryPath = ":memory:"

type openConfig struct {
	logger      *zap.Logger
	busyTimeout time.Duration
}

// OpenOption configures OpenDB.
type OpenOption func(*openConfig)

// WithLogger logs schema setup at debug level.
func WithLogger(logger *zap.Logger) OpenOption {
	return func(c *openConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithBusyTimeout sets how long a connection waits on a locked database
// before failing with SQLITE_BUSY.
func WithBusyTimeout(d time.Duration) OpenOption {
	return func(c *openConfig) { c.busyTimeout = d }
}

// OpenDB opens a SQLite database at the given path.
// If path is ":memory:", uses an in-memory database.
// Foreign keys and the busy timeout are set on every pooled connection,
// WAL mode is requested, and migrations run automatically.
func OpenDB(path string, opts ...OpenOption) (*sql.DB, error) {
	cfg := openConfig{logger: zap.NewNop(), busyTimeout: 5 * time.Second}
	for _, opt := range opts {
		opt(&cfg)
	}

	if path != memoryPath {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(path, cfg.busyTimeout))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Each connection to ":memory:" is a separate database.
	if path == memoryPath {
		db.SetMaxOpenConns(1)
	}

	// Enable WAL mode for better concurrent read performance
	var mode string
	if err := db.QueryRow("PRAGMA journal_mode = WAL").Scan(&mode); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	var fk int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil || fk != 1 {
		db.Close()
		return nil, fmt.Errorf("foreign keys are not enabled (value %d): %v", fk, err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	cfg.logger.Debug("database ready",
		zap.String("path", path),
		zap.String("journal_mode", mode),
		zap.Duration("busy_timeout", cfg.busyTimeout))
	return db, nil
}

// dsn appends the per-connection pragmas understood by modernc.org/sqlite.
func dsn(path string, busyTimeout time.Duration) string {
	return fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)",
		path, busyTimeout.Milliseconds())
}
