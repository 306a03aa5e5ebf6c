package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/wardrobe/internal/errs"
)

func TestBlobs_GetMissing(t *testing.T) {
	b := New(t.TempDir())
	_, err := b.Get(context.Background(), "wardrobe_items_v3")
	require.ErrorIs(t, err, errs.ErrNoBlob)
}

func TestBlobs_PutGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	b := New(dir)
	ctx := context.Background()

	require.NoError(t, b.Put(ctx, "k", []byte(`[{"id":"a"}]`)))
	got, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a"}]`, string(got))

	raw, err := os.ReadFile(filepath.Join(dir, "k.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  {", "expected indented file")
}

func TestBlobs_PutOverwritesAndKeepsInvalidBytes(t *testing.T) {
	b := New(t.TempDir())
	ctx := context.Background()

	require.NoError(t, b.Put(ctx, "k", []byte(`[1,2]`)))
	require.NoError(t, b.Put(ctx, "k", []byte(`not json`)))
	got, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "not json", string(got))

	entries, err := os.ReadDir(b.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should be cleaned up")
}

func TestBlobs_CanceledContext(t *testing.T) {
	b := New(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, b.Put(ctx, "k", []byte(`[]`)), context.Canceled)
}
