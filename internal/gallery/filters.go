package gallery

import "github.com/idilsaglam/wardrobe/internal/model"

// Filters is the transient filter selection: at most one value per group plus a
// favorites-only flag. The zero value filters nothing.
type Filters struct {
	values       map[model.Group]string
	FavoriteOnly bool
}

// Select applies a chip click: choosing the active value clears the group,
// anything else replaces the group's value.
func (f *Filters) Select(g model.Group, value string) {
	if f.values == nil {
		f.values = map[model.Group]string{}
	}
	if value == "" || f.values[g] == value {
		delete(f.values, g)
		return
	}
	f.values[g] = value
}

// Value returns the selected value for g, or "".
func (f Filters) Value(g model.Group) string { return f.values[g] }

func (f *Filters) ToggleFavoriteOnly() bool {
	f.FavoriteOnly = !f.FavoriteOnly
	return f.FavoriteOnly
}

func (f *Filters) Clear() {
	f.values = nil
	f.FavoriteOnly = false
}

// Active reports whether any filter is set.
func (f Filters) Active() bool {
	return f.FavoriteOnly || len(f.values) > 0
}

// Match reports whether it passes every active filter. Values compare exactly.
func (f Filters) Match(it model.Item) bool {
	for g, v := range f.values {
		if v != "" && it.Attr(g) != v {
			return false
		}
	}
	if f.FavoriteOnly && !it.Favorite {
		return false
	}
	return true
}
