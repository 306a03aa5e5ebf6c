package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/wardrobe/internal/errs"
)

// File-backed blobs. One human-readable file per key under Dir.
// No locking; fine for a local single-user tool.

type Blobs struct {
	Dir string
}

func New(dir string) *Blobs { return &Blobs{Dir: dir} }

func (b *Blobs) path(key string) string {
	return filepath.Join(b.Dir, key+".json")
}

func (b *Blobs) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errs.ErrNoBlob
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

// Put rewrites the whole file. Valid JSON is re-indented so the file stays readable.
func (b *Blobs) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(b.Dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	var pretty bytes.Buffer
	if json.Indent(&pretty, data, "", "  ") == nil {
		data = pretty.Bytes()
	}
	tmp, err := os.CreateTemp(b.Dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.path(key)); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
