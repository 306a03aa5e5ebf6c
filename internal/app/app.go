// Package app holds the session state shared by the TUI and the CLI commands.
package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/idilsaglam/wardrobe/internal/editor"
	"github.com/idilsaglam/wardrobe/internal/gallery"
	"github.com/idilsaglam/wardrobe/internal/model"
	"github.com/idilsaglam/wardrobe/internal/store"
)

// State is one gallery session: the persisted items plus transient filter and editor state.
type State struct {
	Store   *store.Store
	Catalog gallery.Catalog
	Filters gallery.Filters
	Editor  *editor.Controller
	Log     *zap.Logger
}

// New loads the store and wires an editor over it.
func New(ctx context.Context, st *store.Store, catalog gallery.Catalog, reader editor.ImageReader, log *zap.Logger) *State {
	if log == nil {
		log = zap.NewNop()
	}
	st.Load(ctx)
	return &State{
		Store:   st,
		Catalog: catalog,
		Editor:  editor.New(st, reader, catalog, log.Named("editor")),
		Log:     log,
	}
}

// View renders the gallery for the current filters.
func (s *State) View() gallery.View {
	return gallery.Render(s.Store.Items(), s.Filters)
}

// Chips lists the filter values for g.
func (s *State) Chips(g model.Group) []string {
	return s.Catalog.Chips(g, s.Store.Items())
}
