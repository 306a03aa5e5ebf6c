package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/wardrobe/internal/errs"
	"github.com/idilsaglam/wardrobe/internal/model"
)

const img = "data:image/png;base64,AAAA"

func newTestStore(t *testing.T) (*Store, *MemBlob) {
	t.Helper()
	blob := NewMemBlob()
	n := 0
	clock := time.UnixMilli(1_700_000_000_000)
	s := New(blob, "",
		WithIDFunc(func() string { n++; return fmt.Sprintf("id-%d", n) }),
		WithClock(func() time.Time { clock = clock.Add(time.Second); return clock }),
	)
	s.Load(context.Background())
	return s, blob
}

func persisted(t *testing.T, blob *MemBlob) []model.Item {
	t.Helper()
	b, err := blob.Get(context.Background(), DefaultKey)
	require.NoError(t, err)
	var items []model.Item
	require.NoError(t, json.Unmarshal(b, &items))
	return items
}

func TestLoad_MissingBlobIsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, 0, s.Len())
	assert.NotNil(t, s.Items())
}

func TestLoad_MalformedBlobIsEmpty(t *testing.T) {
	blob := NewMemBlob()
	require.NoError(t, blob.Put(context.Background(), DefaultKey, []byte("{not json")))
	s := New(blob, DefaultKey)
	s.Load(context.Background())
	assert.Equal(t, 0, s.Len())
}

func TestLoad_NullBlobIsEmpty(t *testing.T) {
	blob := NewMemBlob()
	require.NoError(t, blob.Put(context.Background(), DefaultKey, []byte("null")))
	s := New(blob, DefaultKey)
	s.Load(context.Background())
	assert.NotNil(t, s.Items())
	assert.Equal(t, 0, s.Len())
}

func TestLoad_ReadsBrowserBlob(t *testing.T) {
	blob := NewMemBlob()
	raw := `[{"id":"lq1x2abcd","name":"Blue shirt","type":"top","season":"","style":"casual","color":"blue","favorite":true,"dataUrl":"data:image/png;base64,AAAA","created":1700000000000,"updated":1700000001000}]`
	require.NoError(t, blob.Put(context.Background(), DefaultKey, []byte(raw)))
	s := New(blob, DefaultKey)
	s.Load(context.Background())

	it, ok := s.Get("lq1x2abcd")
	require.True(t, ok)
	assert.Equal(t, "Blue shirt", it.Name)
	assert.True(t, it.Favorite)
	up, ok := it.UpdatedAt()
	require.True(t, ok)
	assert.Equal(t, int64(1700000001000), up.UnixMilli())
}

func TestCreate_PrependsAndPersists(t *testing.T) {
	s, blob := newTestStore(t)
	ctx := context.Background()

	a, err := s.Create(ctx, model.Fields{Name: "A", DataURL: img})
	require.NoError(t, err)
	b, err := s.Create(ctx, model.Fields{Name: "B", DataURL: img})
	require.NoError(t, err)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, b.ID, items[0].ID)
	assert.Equal(t, a.ID, items[1].ID)
	assert.Nil(t, items[0].Updated)
	assert.NotZero(t, items[0].Created)
	assert.Equal(t, items, persisted(t, blob))
}

func TestCreate_RequiresImage(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Create(context.Background(), model.Fields{Name: "A"})
	require.ErrorIs(t, err, errs.ErrImageRequired)
	assert.Equal(t, 0, s.Len())
}

func TestUpdate_MergesAndStamps(t *testing.T) {
	s, blob := newTestStore(t)
	ctx := context.Background()
	a, err := s.Create(ctx, model.Fields{Name: "A", Type: "top", DataURL: img})
	require.NoError(t, err)

	got, err := s.Update(ctx, a.ID, model.Fields{Name: "A2", Type: "bottom", Favorite: true, DataURL: img})
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, a.Created, got.Created)
	require.NotNil(t, got.Updated)
	assert.Greater(t, *got.Updated, got.Created)
	assert.Equal(t, "bottom", got.Type)
	assert.Equal(t, s.Items(), persisted(t, blob))
}

func TestUpdate_UnknownIDIsNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Update(context.Background(), "nope", model.Fields{DataURL: img})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDelete_RemovesAndIgnoresUnknown(t *testing.T) {
	s, blob := newTestStore(t)
	ctx := context.Background()
	a, _ := s.Create(ctx, model.Fields{Name: "A", DataURL: img})
	b, _ := s.Create(ctx, model.Fields{Name: "B", DataURL: img})

	require.NoError(t, s.Delete(ctx, a.ID))
	require.NoError(t, s.Delete(ctx, "missing"))
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)
	assert.Equal(t, items, persisted(t, blob))
}

func TestMutations_PersistFailureKeepsMemory(t *testing.T) {
	s, blob := newTestStore(t)
	ctx := context.Background()
	a, err := s.Create(ctx, model.Fields{Name: "A", DataURL: img})
	require.NoError(t, err)

	blob.Err = errors.New("disk full")
	_, err = s.Create(ctx, model.Fields{Name: "B", DataURL: img})
	require.Error(t, err)
	_, err = s.Update(ctx, a.ID, model.Fields{Name: "A2", DataURL: img})
	require.Error(t, err)
	require.Error(t, s.Delete(ctx, a.ID))

	blob.Err = nil
	assert.Equal(t, []model.Item{a}, s.Items())
	assert.Equal(t, s.Items(), persisted(t, blob))
}

func TestRoundTrip_SequenceOfOperations(t *testing.T) {
	s, blob := newTestStore(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		it, err := s.Create(ctx, model.Fields{Name: fmt.Sprintf("n%d", i), DataURL: img})
		require.NoError(t, err)
		ids = append(ids, it.ID)
		assert.Equal(t, s.Items(), persisted(t, blob))
	}
	_, err := s.Update(ctx, ids[2], model.Fields{Name: "changed", Color: "red", DataURL: img})
	require.NoError(t, err)
	assert.Equal(t, s.Items(), persisted(t, blob))

	require.NoError(t, s.Delete(ctx, ids[0]))
	assert.Equal(t, s.Items(), persisted(t, blob))

	// A fresh store over the same blob sees the same list.
	s2 := New(blob, DefaultKey)
	s2.Load(ctx)
	assert.Equal(t, s.Items(), s2.Items())
}

func TestNewID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := newID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Create(context.Background(), model.Fields{Name: "A", DataURL: img})
	require.NoError(t, err)
	items := s.Items()
	items[0].Name = "mutated"
	it := s.Items()[0]
	assert.Equal(t, "A", it.Name)
}
