// ABOUTME: SQLite-based cache implementation for persistent caching
// ABOUTME: Provides a file-based cache that survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	coreerrors "chatkit/core/errors"

	_ "github.com/mattn/go-sqlite3"
)

// cleanupInterval is how often expired rows are purged in the background.
const cleanupInterval = 5 * time.Minute

// SQLiteCache implements the Cache interface using SQLite.
// Entries survive restarts; an expiry of 0 marks a row that never expires.
type SQLiteCache struct {
	db        *sql.DB
	filePath  string
	done      chan struct{}
	closeOnce sync.Once
}

// NewSQLiteCache creates a new SQLite cache client
func NewSQLiteCache(filePath string) (*SQLiteCache, error) {
	if filePath == "" {
		filePath = "cache.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	cache := &SQLiteCache{
		db:       db,
		filePath: filePath,
		done:     make(chan struct{}),
	}

	if err := cache.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go cache.cleanupRoutine()

	return cache, nil
}

// initSchema creates the cache table if it doesn't exist
func (c *SQLiteCache) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_expiry ON cache(expiry);
	`

	_, err := c.db.Exec(query)
	return err
}

// Get retrieves a value from the cache. An expired row is deleted before
// the miss is reported.
func (c *SQLiteCache) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	var expiry int64

	query := "SELECT value, expiry FROM cache WHERE key = ?"
	err := c.db.QueryRowContext(ctx, query, key).Scan(&value, &expiry)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, coreerrors.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	now := time.Now().UnixMilli()
	if expiry != 0 && expiry <= now {
		// The expiry predicate keeps a concurrent replacement with a
		// fresh deadline from being removed here.
		del := "DELETE FROM cache WHERE key = ? AND expiry != 0 AND expiry <= ?"
		_, _ = c.db.ExecContext(ctx, del, key, now)
		return nil, coreerrors.ErrCacheMiss
	}

	return value, nil
}

// Set stores a value in the cache, replacing any existing entry and its
// expiry. A ttl of 0 stores the entry without an expiry.
func (c *SQLiteCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if value == nil {
		value = []byte{}
	}

	var expiry int64
	if ttl != 0 {
		expiry = time.Now().Add(ttl).UnixMilli()
	}

	query := `
		INSERT OR REPLACE INTO cache (key, value, expiry)
		VALUES (?, ?, ?)
	`

	_, err := c.db.ExecContext(ctx, query, key, value, expiry)
	if err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a value from the cache. Deleting an absent key is not
// an error.
func (c *SQLiteCache) Delete(ctx context.Context, key string) error {
	query := "DELETE FROM cache WHERE key = ?"
	_, err := c.db.ExecContext(ctx, query, key)

	if err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// Clear removes all values from the cache
func (c *SQLiteCache) Clear(ctx context.Context) error {
	query := "DELETE FROM cache"
	_, err := c.db.ExecContext(ctx, query)

	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	return nil
}

// cleanupRoutine periodically removes expired entries until Close is called
func (c *SQLiteCache) cleanupRoutine() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.done:
			return
		}
	}
}

// cleanup removes expired entries
func (c *SQLiteCache) cleanup() {
	query := "DELETE FROM cache WHERE expiry != 0 AND expiry <= ?"
	_, _ = c.db.Exec(query, time.Now().UnixMilli())
}

// Close stops the cleanup routine and closes the database connection
func (c *SQLiteCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
	})
	return c.db.Close()
}

// Stats returns cache statistics
func (c *SQLiteCache) Stats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM cache").Scan(&count)
	if err != nil {
		return nil, err
	}
	stats["total_entries"] = count

	var expired int
	err = c.db.QueryRow("SELECT COUNT(*) FROM cache WHERE expiry != 0 AND expiry <= ?", time.Now().UnixMilli()).Scan(&expired)
	if err != nil {
		return nil, err
	}
	stats["expired_entries"] = expired

	var pageCount, pageSize int
	err = c.db.QueryRow("PRAGMA page_count").Scan(&pageCount)
	if err == nil {
		err = c.db.QueryRow("PRAGMA page_size").Scan(&pageSize)
		if err == nil {
			stats["db_size_bytes"] = pageCount * pageSize
		}
	}

	stats["file_path"] = c.filePath

	return stats, nil
}
