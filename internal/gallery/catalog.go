package gallery

import (
	"fmt"
	"slices"
	"strings"

	"github.com/idilsaglam/wardrobe/internal/errs"
	"github.com/idilsaglam/wardrobe/internal/model"
)

// Variant decides whether tags are free text or limited to the option lists.
type Variant string

const (
	VariantFree  Variant = "free"
	VariantFixed Variant = "fixed"
)

// ChipMode decides whether every group's chip row is shown or only the active group's.
type ChipMode string

const (
	ChipRows        ChipMode = "rows"
	ChipActiveGroup ChipMode = "active-group"
)

// DefaultOptions are the built-in option lists per group.
var DefaultOptions = map[model.Group][]string{
	model.GroupType:   {"top", "bottom", "dress", "outerwear", "shoes", "accessory"},
	model.GroupSeason: {"spring", "summer", "autumn", "winter", "all-season"},
	model.GroupStyle:  {"casual", "formal", "sport", "party", "work"},
	model.GroupColor:  {"black", "white", "gray", "beige", "brown", "red", "orange", "yellow", "green", "blue", "purple", "pink"},
}

// Catalog is the gallery configuration shared by the TUI and the CLI.
type Catalog struct {
	Variant  Variant
	ChipMode ChipMode
	Options  map[model.Group][]string
}

func DefaultCatalog() Catalog {
	opts := make(map[model.Group][]string, len(DefaultOptions))
	for g, o := range DefaultOptions {
		opts[g] = slices.Clone(o)
	}
	return Catalog{Variant: VariantFree, ChipMode: ChipRows, Options: opts}
}

// Chips lists the filter values offered for g. The free variant appends values
// found on items that are not already in the option list.
func (c Catalog) Chips(g model.Group, items []model.Item) []string {
	out := slices.Clone(c.Options[g])
	if c.Variant != VariantFree {
		return out
	}
	for _, it := range items {
		v := it.Attr(g)
		if v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// Validate rejects tags outside the option lists in the fixed variant.
func (c Catalog) Validate(f model.Fields) error {
	if c.Variant != VariantFixed {
		return nil
	}
	for _, g := range model.Groups {
		v := f.Attr(g)
		if v == "" || slices.Contains(c.Options[g], v) {
			continue
		}
		return fmt.Errorf("%s %q (allowed: %s): %w", g, v, strings.Join(c.Options[g], ", "), errs.ErrInvalidOption)
	}
	return nil
}
