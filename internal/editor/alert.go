package editor

import (
	"errors"
	"strings"

	"github.com/idilsaglam/wardrobe/internal/errs"
)

// Alert maps an editor error to the message shown to the user.
func Alert(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, errs.ErrImageRequired):
		return "Please choose an image."
	case errors.Is(err, errs.ErrInvalidOption):
		return "Invalid option: " + strings.TrimSuffix(err.Error(), ": "+errs.ErrInvalidOption.Error())
	case errors.Is(err, errs.ErrNotFound):
		return "Item no longer exists."
	}
	return "Could not save item."
}

func trim(s string) string { return strings.TrimSpace(s) }
