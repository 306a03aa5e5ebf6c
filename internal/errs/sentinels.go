// Package errs contains sentinel errors shared by the store, editor and front ends.
package errs

import "errors"

var (
	// ErrNotFound indicates the item id is not in the store.
	ErrNotFound = errors.New("not found")

	// ErrNoBlob indicates the named blob has never been written.
	ErrNoBlob = errors.New("no blob")

	// ErrImageRequired indicates a save without any image data.
	ErrImageRequired = errors.New("image required")

	// ErrSaveFailed indicates the image could not be read or the item could not be persisted.
	ErrSaveFailed = errors.New("save failed")

	// ErrNotEditing indicates an editor action that needs an item open for edit.
	ErrNotEditing = errors.New("not editing")

	// ErrInvalidOption indicates a tag outside the fixed option list.
	ErrInvalidOption = errors.New("invalid option")
)
