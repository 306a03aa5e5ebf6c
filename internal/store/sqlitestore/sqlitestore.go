package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/idilsaglam/wardrobe/internal/errs"

	_ "modernc.org/sqlite"
)

const fileName = "wardrobe.sqlite"

// Blobs keeps each named blob as one row of a key-value table.
type Blobs struct {
	db *sql.DB
}

// Open opens (creating if needed) the database under dir.
func Open(ctx context.Context, dir string) (*Blobs, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", filepath.Join(dir, fileName))
	if err != nil {
		return nil, err
	}
	// WAL allows a reader (e.g. `wardrobe ls`) while the TUI writes.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA synchronous=NORMAL;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS blobs(
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL,
		updated_at_unixms INTEGER NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Blobs{db: db}, nil
}

func (b *Blobs) Close() error { return b.db.Close() }

func (b *Blobs) Get(ctx context.Context, key string) ([]byte, error) {
	var v string
	err := b.db.QueryRowContext(ctx, `SELECT v FROM blobs WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrNoBlob
	}
	if err != nil {
		return nil, fmt.Errorf("select blob: %w", err)
	}
	return []byte(v), nil
}

func (b *Blobs) Put(ctx context.Context, key string, data []byte) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO blobs(k, v, updated_at_unixms) VALUES(?, ?, ?)`,
		key, string(data), time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("upsert blob: %w", err)
	}
	return nil
}
