// Package sqlite implements the flight-network store on SQLite. JSONL files
// in the data directory are the source of truth; SQLite is rebuilt from them
// on every Attach and serves as the query engine.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/flights/pkg/types"
)

// dbFileName is the SQLite file rebuilt inside DataDir on every Attach.
const dbFileName = "flights.db"

// Backend implements types.Store using SQLite as the query engine and JSONL
// files as the dataset.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

var _ types.Store = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach validates config, creates DataDir if needed, rebuilds the SQLite
// database from scratch and loads the JSONL dataset into it.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	if err := initDatasetFiles(dataDir); err != nil {
		return err
	}

	// The database is a cache of the JSONL files; start from a clean file.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dbPath, err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return err
	}

	if err := loadAllJSONL(db, dataDir); err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach releases the SQLite connection. Detach is idempotent. After Detach,
// every query returns ErrNetworkDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	return nil
}

// Stats counts the records loaded into the backend.
type Stats struct {
	Airports int `json:"airports"`
	Airlines int `json:"airlines"`
	Routes   int `json:"routes"`
}

// Stats returns the dataset size.
func (b *Backend) Stats(ctx context.Context) (Stats, error) {
	db, unlock, err := b.acquire()
	if err != nil {
		return Stats{}, err
	}
	defer unlock()

	var s Stats
	counts := []struct {
		table string
		dst   *int
	}{
		{"airports", &s.Airports},
		{"airlines", &s.Airlines},
		{"routes", &s.Routes},
	}
	for _, c := range counts {
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.table).Scan(c.dst); err != nil {
			return Stats{}, fmt.Errorf("counting %s: %w", c.table, err)
		}
	}
	return s, nil
}

// acquire returns the open database under a read lock. The caller must call
// unlock when its query is done.
func (b *Backend) acquire() (*sql.DB, func(), error) {
	b.mu.RLock()
	if !b.attached {
		b.mu.RUnlock()
		return nil, nil, types.ErrNetworkDetached
	}
	return b.db, b.mu.RUnlock, nil
}

// newRouteID generates a UUID v7 for route rows.
func newRouteID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
