// Package store owns the ordered wardrobe item list and its persisted blob.
//
// The whole list is serialized as one JSON array under a single key and rewritten on
// every mutation. Newest items come first.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/idilsaglam/wardrobe/internal/errs"
	"github.com/idilsaglam/wardrobe/internal/model"
)

// DefaultKey is the blob name used by the browser gallery.
const DefaultKey = "wardrobe_items_v3"

// Blob is a named key-value slot. Get returns errs.ErrNoBlob when key was never written.
type Blob interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

type Store struct {
	blob  Blob
	key   string
	log   *zap.Logger
	now   func() time.Time
	newID func() string

	items []model.Item
}

type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides time.Now for created/updated stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc overrides id generation.
func WithIDFunc(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

func New(blob Blob, key string, opts ...Option) *Store {
	if key == "" {
		key = DefaultKey
	}
	s := &Store{
		blob:  blob,
		key:   key,
		log:   zap.NewNop(),
		now:   time.Now,
		newID: newID,
		items: []model.Item{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// newID returns a UUIDv7: a millisecond time prefix plus random bits.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Load reads the persisted list. A missing or malformed blob yields an empty list.
func (s *Store) Load(ctx context.Context) {
	s.items = []model.Item{}
	data, err := s.blob.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, errs.ErrNoBlob) {
			s.log.Warn("read blob, starting empty", zap.String("key", s.key), zap.Error(err))
		}
		return
	}
	var items []model.Item
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn("malformed blob, starting empty", zap.String("key", s.key), zap.Error(err))
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	s.items = items
	s.log.Debug("loaded items", zap.Int("count", len(items)))
}

// SaveAll persists items as the full list. The in-memory list only changes on success.
func (s *Store) SaveAll(ctx context.Context, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := s.blob.Put(ctx, s.key, b); err != nil {
		return fmt.Errorf("write blob: %w", err)
	}
	s.items = items
	return nil
}

// Create prepends a new item built from f.
func (s *Store) Create(ctx context.Context, f model.Fields) (model.Item, error) {
	if f.DataURL == "" {
		return model.Item{}, errs.ErrImageRequired
	}
	it := model.Item{ID: s.newID(), Created: s.now().UnixMilli()}
	it.Apply(f)

	next := make([]model.Item, 0, len(s.items)+1)
	next = append(next, it)
	next = append(next, s.items...)
	if err := s.SaveAll(ctx, next); err != nil {
		return model.Item{}, err
	}
	s.log.Info("item created", zap.String("id", it.ID))
	return it, nil
}

// Update overwrites the editable fields of item id and stamps updated.
// A missing id reports errs.ErrNotFound and changes nothing.
func (s *Store) Update(ctx context.Context, id string, f model.Fields) (model.Item, error) {
	if f.DataURL == "" {
		return model.Item{}, errs.ErrImageRequired
	}
	idx := s.index(id)
	if idx < 0 {
		return model.Item{}, fmt.Errorf("update %s: %w", id, errs.ErrNotFound)
	}
	next := s.Items()
	it := next[idx]
	it.Apply(f)
	ts := s.now().UnixMilli()
	it.Updated = &ts
	next[idx] = it
	if err := s.SaveAll(ctx, next); err != nil {
		return model.Item{}, err
	}
	s.log.Info("item updated", zap.String("id", id))
	return it, nil
}

// Delete removes item id. A missing id is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	idx := s.index(id)
	if idx < 0 {
		s.log.Debug("delete of unknown id ignored", zap.String("id", id))
		return nil
	}
	next := make([]model.Item, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)
	if err := s.SaveAll(ctx, next); err != nil {
		return err
	}
	s.log.Info("item deleted", zap.String("id", id))
	return nil
}

// Items returns a copy of the list in store order.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Get(id string) (model.Item, bool) {
	idx := s.index(id)
	if idx < 0 {
		return model.Item{}, false
	}
	return s.items[idx], true
}

func (s *Store) Len() int { return len(s.items) }

func (s *Store) index(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
