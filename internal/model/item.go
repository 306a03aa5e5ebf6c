package model

import "time"

// Group names one of the attribute groups an item is tagged and filtered by.
type Group string

const (
	GroupType   Group = "type"
	GroupSeason Group = "season"
	GroupStyle  Group = "style"
	GroupColor  Group = "color"
)

// Groups lists the attribute groups in display order.
var Groups = []Group{GroupType, GroupSeason, GroupStyle, GroupColor}

// ParseGroup maps a group name to its Group.
func ParseGroup(s string) (Group, bool) {
	for _, g := range Groups {
		if string(g) == s {
			return g, true
		}
	}
	return "", false
}

// Item is a single wardrobe entry.
// Timestamps are Unix milliseconds, matching the blob written by the browser gallery.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Season   string `json:"season"`
	Style    string `json:"style"`
	Color    string `json:"color"`
	Favorite bool   `json:"favorite"`
	DataURL  string `json:"dataUrl"`
	Created  int64  `json:"created"`
	Updated  *int64 `json:"updated,omitempty"`
}

// Fields is the editable part of an Item.
type Fields struct {
	Name     string
	Type     string
	Season   string
	Style    string
	Color    string
	Favorite bool
	DataURL  string
}

// Attr returns the item's tag for g.
func (it Item) Attr(g Group) string {
	switch g {
	case GroupType:
		return it.Type
	case GroupSeason:
		return it.Season
	case GroupStyle:
		return it.Style
	case GroupColor:
		return it.Color
	}
	return ""
}

// Fields returns the editable values of it.
func (it Item) Fields() Fields {
	return Fields{
		Name:     it.Name,
		Type:     it.Type,
		Season:   it.Season,
		Style:    it.Style,
		Color:    it.Color,
		Favorite: it.Favorite,
		DataURL:  it.DataURL,
	}
}

// Apply overwrites the editable values of it with f.
func (it *Item) Apply(f Fields) {
	it.Name = f.Name
	it.Type = f.Type
	it.Season = f.Season
	it.Style = f.Style
	it.Color = f.Color
	it.Favorite = f.Favorite
	it.DataURL = f.DataURL
}

func (it Item) CreatedAt() time.Time { return time.UnixMilli(it.Created) }

// UpdatedAt reports the last edit time; ok is false until the first edit.
func (it Item) UpdatedAt() (t time.Time, ok bool) {
	if it.Updated == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*it.Updated), true
}

// Attr returns the tag for g in f.
func (f Fields) Attr(g Group) string {
	return Item{Type: f.Type, Season: f.Season, Style: f.Style, Color: f.Color}.Attr(g)
}

// SetAttr sets the tag for g in f.
func (f *Fields) SetAttr(g Group, v string) {
	switch g {
	case GroupType:
		f.Type = v
	case GroupSeason:
		f.Season = v
	case GroupStyle:
		f.Style = v
	case GroupColor:
		f.Color = v
	}
}
