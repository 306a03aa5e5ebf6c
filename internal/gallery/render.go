package gallery

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/wardrobe/internal/model"
)

// EmptyState tells an empty gallery apart from an over-filtered one.
type EmptyState int

const (
	EmptyNone EmptyState = iota
	EmptyNoItems
	EmptyNoMatch
)

var emptyNames = map[EmptyState]string{
	EmptyNone:    "none",
	EmptyNoItems: "no-items",
	EmptyNoMatch: "no-match",
}

func (e EmptyState) String() string { return emptyNames[e] }

func (e EmptyState) MarshalText() ([]byte, error) {
	name, ok := emptyNames[e]
	if !ok {
		return nil, fmt.Errorf("unknown empty state %d", int(e))
	}
	return []byte(name), nil
}

func (e *EmptyState) UnmarshalText(b []byte) error {
	for k, name := range emptyNames {
		if name == string(b) {
			*e = k
			return nil
		}
	}
	return fmt.Errorf("unknown empty state %q", b)
}

func (e EmptyState) Message() string {
	switch e {
	case EmptyNoItems:
		return "No items yet — press a to add one."
	case EmptyNoMatch:
		return "No items match your filters."
	}
	return ""
}

type ActionKind string

const (
	ActionEdit   ActionKind = "edit"
	ActionDelete ActionKind = "delete"
)

// Action is an inline card control. It targets ItemID only and never opens the card itself.
type Action struct {
	Kind   ActionKind `json:"kind"`
	ItemID string     `json:"itemId"`
}

// Card is the display record for one visible item.
type Card struct {
	ID        string   `json:"id"`
	Thumbnail string   `json:"thumbnail"`
	Alt       string   `json:"alt"`
	Favorite  bool     `json:"favorite"`
	Label     string   `json:"label"`
	Badges    []string `json:"badges"`
	Actions   []Action `json:"actions"`
}

// View is the rendered gallery.
type View struct {
	Cards []Card     `json:"cards"`
	Total int        `json:"total"`
	Empty EmptyState `json:"empty"`
}

const placeholderLabel = "Item"

// Render keeps the items passing filters in their store order.
func Render(items []model.Item, filters Filters) View {
	v := View{Cards: []Card{}, Total: len(items)}
	for _, it := range items {
		if !filters.Match(it) {
			continue
		}
		v.Cards = append(v.Cards, cardFor(it))
	}
	if len(v.Cards) == 0 {
		v.Empty = EmptyNoMatch
		if len(items) == 0 {
			v.Empty = EmptyNoItems
		}
	}
	return v
}

func cardFor(it model.Item) Card {
	label := Label(it)
	alt := it.Name
	if alt == "" {
		alt = "Wardrobe item"
	}
	var badges []string
	for _, g := range model.Groups {
		if v := it.Attr(g); v != "" {
			badges = append(badges, v)
		}
	}
	return Card{
		ID:        it.ID,
		Thumbnail: it.DataURL,
		Alt:       alt,
		Favorite:  it.Favorite,
		Label:     label,
		Badges:    badges,
		Actions: []Action{
			{Kind: ActionEdit, ItemID: it.ID},
			{Kind: ActionDelete, ItemID: it.ID},
		},
	}
}

// Label is the item's name, else its type/style/color, else a placeholder.
func Label(it model.Item) string {
	if n := strings.TrimSpace(it.Name); n != "" {
		return n
	}
	var parts []string
	for _, v := range []string{it.Type, it.Style, it.Color} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " · ")
	}
	return placeholderLabel
}
