package gallery

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/wardrobe/internal/errs"
	"github.com/idilsaglam/wardrobe/internal/model"
)

func sample() []model.Item {
	return []model.Item{
		{ID: "1", Type: "top", Favorite: true, DataURL: "data:a"},
		{ID: "2", Type: "bottom", Favorite: false, DataURL: "data:b"},
	}
}

func ids(v View) []string {
	out := []string{}
	for _, c := range v.Cards {
		out = append(out, c.ID)
	}
	return out
}

func TestFilters_SelectToggle(t *testing.T) {
	var f Filters
	f.Select(model.GroupType, "top")
	assert.Equal(t, "top", f.Value(model.GroupType))

	f.Select(model.GroupType, "top")
	assert.Equal(t, "", f.Value(model.GroupType))
	assert.False(t, f.Active())

	f.Select(model.GroupType, "top")
	f.Select(model.GroupType, "bottom")
	assert.Equal(t, "bottom", f.Value(model.GroupType))

	f.Select(model.GroupColor, "red")
	assert.Equal(t, "bottom", f.Value(model.GroupType), "groups are independent")
}

func TestFilters_FavoriteIndependent(t *testing.T) {
	var f Filters
	f.Select(model.GroupType, "top")
	assert.True(t, f.ToggleFavoriteOnly())
	assert.Equal(t, "top", f.Value(model.GroupType))
	assert.False(t, f.ToggleFavoriteOnly())

	f.Clear()
	assert.False(t, f.Active())
}

func TestRender_Filtering(t *testing.T) {
	items := sample()

	var byType Filters
	byType.Select(model.GroupType, "top")
	assert.Equal(t, []string{"1"}, ids(Render(items, byType)))

	favOnly := Filters{FavoriteOnly: true}
	assert.Equal(t, []string{"1"}, ids(Render(items, favOnly)))

	var both Filters
	both.Select(model.GroupType, "bottom")
	both.FavoriteOnly = true
	v := Render(items, both)
	assert.Empty(t, v.Cards)
	assert.Equal(t, EmptyNoMatch, v.Empty)
	assert.Equal(t, "No items match your filters.", v.Empty.Message())
}

func TestRender_CaseSensitive(t *testing.T) {
	var f Filters
	f.Select(model.GroupType, "Top")
	assert.Empty(t, Render(sample(), f).Cards)
}

func TestRender_EmptyStatesDiffer(t *testing.T) {
	none := Render(nil, Filters{})
	assert.Equal(t, EmptyNoItems, none.Empty)
	assert.NotEqual(t, EmptyNoMatch.Message(), none.Empty.Message())

	all := Render(sample(), Filters{})
	assert.Equal(t, EmptyNone, all.Empty)
	assert.Equal(t, []string{"1", "2"}, ids(all))
	assert.Equal(t, 2, all.Total)
}

func TestRender_CardContents(t *testing.T) {
	items := []model.Item{
		{ID: "a", Name: "Linen shirt", Type: "top", Season: "summer", Color: "white", Favorite: true, DataURL: "data:x"},
		{ID: "b", Type: "bottom", Style: "casual", Color: "blue", DataURL: "data:y"},
		{ID: "c", DataURL: "data:z"},
	}
	v := Render(items, Filters{})
	require.Len(t, v.Cards, 3)

	a := v.Cards[0]
	assert.Equal(t, "Linen shirt", a.Label)
	assert.Equal(t, "Linen shirt", a.Alt)
	assert.True(t, a.Favorite)
	assert.Equal(t, []string{"top", "summer", "white"}, a.Badges)
	assert.Equal(t, "data:x", a.Thumbnail)
	assert.Equal(t, []Action{{ActionEdit, "a"}, {ActionDelete, "a"}}, a.Actions)

	assert.Equal(t, "bottom · casual · blue", v.Cards[1].Label)
	assert.Equal(t, "Item", v.Cards[2].Label)
	assert.Equal(t, "Wardrobe item", v.Cards[2].Alt)
	assert.Empty(t, v.Cards[2].Badges)
}

func TestCatalog_Chips(t *testing.T) {
	items := []model.Item{{Color: "teal"}, {Color: "red"}, {Color: "teal"}}

	c := DefaultCatalog()
	chips := c.Chips(model.GroupColor, items)
	assert.Equal(t, "teal", chips[len(chips)-1])
	assert.Equal(t, len(DefaultOptions[model.GroupColor])+1, len(chips))

	c.Variant = VariantFixed
	assert.Equal(t, DefaultOptions[model.GroupColor], c.Chips(model.GroupColor, items))
}

func TestCatalog_Validate(t *testing.T) {
	c := DefaultCatalog()
	require.NoError(t, c.Validate(model.Fields{Color: "teal"}))

	c.Variant = VariantFixed
	require.NoError(t, c.Validate(model.Fields{Color: "red", Type: ""}))
	err := c.Validate(model.Fields{Color: "teal"})
	require.ErrorIs(t, err, errs.ErrInvalidOption)
	assert.Contains(t, err.Error(), "color")
}

func TestDefaultCatalog_DoesNotAliasDefaults(t *testing.T) {
	c := DefaultCatalog()
	c.Options[model.GroupType][0] = "changed"
	assert.Equal(t, "top", DefaultOptions[model.GroupType][0])
}

func TestView_JSONNamesEmptyState(t *testing.T) {
	b, err := json.Marshal(Render(nil, Filters{}))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"empty":"no-items"`)

	var f Filters
	f.Select(model.GroupType, "dress")
	b, err = json.Marshal(Render(sample(), f))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"empty":"no-match"`)

	var back View
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, EmptyNoMatch, back.Empty)

	b, err = json.Marshal(Render(sample(), Filters{}))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"empty":"none"`)
}
