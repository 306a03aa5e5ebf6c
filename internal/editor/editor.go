// Package editor is the add/edit form controller.
//
// It is a three-state machine (Closed, Adding, Editing) over a store.Store. Reading a
// chosen image file is the only slow step; front ends that cannot block may read the
// file themselves and hand the result to Commit.
package editor

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/idilsaglam/wardrobe/internal/errs"
	"github.com/idilsaglam/wardrobe/internal/gallery"
	"github.com/idilsaglam/wardrobe/internal/model"
	"github.com/idilsaglam/wardrobe/internal/store"
)

type State int

const (
	Closed State = iota
	Adding
	Editing
)

func (s State) String() string {
	switch s {
	case Adding:
		return "adding"
	case Editing:
		return "editing"
	}
	return "closed"
}

// ImageReader turns a chosen file into embedded image data.
type ImageReader interface {
	ReadDataURL(ctx context.Context, path string) (string, error)
}

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(prompt string) bool

const DeletePrompt = "Delete this item?"

// Form holds the metadata fields shown in the modal.
type Form struct {
	Name     string
	Type     string
	Season   string
	Style    string
	Color    string
	Favorite bool
}

type Controller struct {
	store   *store.Store
	reader  ImageReader
	catalog gallery.Catalog
	log     *zap.Logger

	state     State
	editingID string

	Form    Form
	preview string // data URL currently shown
	file    string // chosen but not yet committed
}

func New(st *store.Store, reader ImageReader, catalog gallery.Catalog, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{store: st, reader: reader, catalog: catalog, log: log}
}

func (c *Controller) State() State { return c.state }

// EditingID is the id open for edit, or "".
func (c *Controller) EditingID() string { return c.editingID }

func (c *Controller) Open() bool { return c.state != Closed }

// ShowDelete reports whether the delete control is offered.
func (c *Controller) ShowDelete() bool { return c.state == Editing }

func (c *Controller) Preview() string { return c.preview }

// PendingFile is the chosen image file not yet read for save, or "".
func (c *Controller) PendingFile() string { return c.file }

func (c *Controller) OpenAdd() {
	c.state = Adding
	c.editingID = ""
	c.Form = Form{}
	c.preview = ""
	c.file = ""
}

// OpenEdit loads item id into the form. Unknown ids leave the editor as it was.
func (c *Controller) OpenEdit(id string) error {
	it, ok := c.store.Get(id)
	if !ok {
		return fmt.Errorf("edit %s: %w", id, errs.ErrNotFound)
	}
	c.state = Editing
	c.editingID = id
	c.Form = Form{
		Name:     it.Name,
		Type:     it.Type,
		Season:   it.Season,
		Style:    it.Style,
		Color:    it.Color,
		Favorite: it.Favorite,
	}
	c.preview = it.DataURL
	c.file = ""
	return nil
}

func (c *Controller) Close() {
	c.state = Closed
	c.editingID = ""
	c.file = ""
}

// ChooseFile records a newly selected image file. The preview is refreshed by SetPreview.
func (c *Controller) ChooseFile(path string) { c.file = path }

// SetPreview shows dataURL without committing anything.
func (c *Controller) SetPreview(dataURL string) {
	if dataURL != "" {
		c.preview = dataURL
	}
}

// LoadPreview reads the chosen file and shows it.
func (c *Controller) LoadPreview(ctx context.Context) error {
	if c.file == "" {
		return nil
	}
	s, err := c.reader.ReadDataURL(ctx, c.file)
	if err != nil {
		return err
	}
	c.SetPreview(s)
	return nil
}

// Save reads the chosen file, if any, and commits.
func (c *Controller) Save(ctx context.Context) (model.Item, error) {
	var (
		dataURL string
		readErr error
	)
	if c.file != "" {
		dataURL, readErr = c.reader.ReadDataURL(ctx, c.file)
	}
	return c.Commit(ctx, dataURL, readErr)
}

// Commit finishes a save with the result of reading the chosen file. An empty
// dataURL falls back to the current preview. On any error the state is unchanged.
func (c *Controller) Commit(ctx context.Context, dataURL string, readErr error) (model.Item, error) {
	if c.state == Closed {
		return model.Item{}, errs.ErrNotEditing
	}
	if readErr != nil {
		c.log.Warn("image read failed", zap.String("file", c.file), zap.Error(readErr))
		return model.Item{}, fmt.Errorf("%w: %v", errs.ErrSaveFailed, readErr)
	}
	if dataURL == "" {
		dataURL = c.preview
	}
	if dataURL == "" {
		return model.Item{}, errs.ErrImageRequired
	}
	f := c.fields(dataURL)
	if err := c.catalog.Validate(f); err != nil {
		return model.Item{}, err
	}

	var (
		it  model.Item
		err error
	)
	switch c.state {
	case Adding:
		it, err = c.store.Create(ctx, f)
	case Editing:
		it, err = c.store.Update(ctx, c.editingID, f)
		if errors.Is(err, errs.ErrNotFound) {
			// The item vanished underneath us; nothing left to edit.
			c.log.Info("edited item no longer exists", zap.String("id", c.editingID))
			c.Close()
			return model.Item{}, nil
		}
	}
	if err != nil {
		c.log.Error("persist item", zap.Error(err))
		return model.Item{}, fmt.Errorf("%w: %v", errs.ErrSaveFailed, err)
	}
	c.Close()
	return it, nil
}

// Delete removes the item open for edit once confirm agrees.
// It reports whether the item was deleted.
func (c *Controller) Delete(ctx context.Context, confirm ConfirmFunc) (bool, error) {
	if c.state != Editing {
		return false, errs.ErrNotEditing
	}
	return c.DeleteItem(ctx, c.editingID, confirm)
}

// DeleteItem removes item id once confirm agrees. If id is open for edit the editor closes.
func (c *Controller) DeleteItem(ctx context.Context, id string, confirm ConfirmFunc) (bool, error) {
	if confirm != nil && !confirm(DeletePrompt) {
		return false, nil
	}
	if err := c.store.Delete(ctx, id); err != nil {
		return false, err
	}
	if c.state == Editing && c.editingID == id {
		c.Close()
	}
	return true, nil
}

func (c *Controller) fields(dataURL string) model.Fields {
	return model.Fields{
		Name:     trim(c.Form.Name),
		Type:     c.Form.Type,
		Season:   c.Form.Season,
		Style:    c.Form.Style,
		Color:    c.Form.Color,
		Favorite: c.Form.Favorite,
		DataURL:  dataURL,
	}
}
