package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/wardrobe/internal/app"
	"github.com/idilsaglam/wardrobe/internal/gallery"
	"github.com/idilsaglam/wardrobe/internal/model"
	"github.com/idilsaglam/wardrobe/internal/ui"
)

const maxLabel = 48

type listOpts struct {
	tags      map[model.Group]*string
	favorites bool
	json      bool
}

func newListCmd(a *App) *cobra.Command {
	o := listOpts{tags: map[model.Group]*string{}}
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items, optionally filtered by tag or favorites",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withState(cmd, func(ctx context.Context, st *app.State) error {
				for g, v := range o.tags {
					if *v != "" {
						st.Filters.Select(g, *v)
					}
				}
				if o.favorites {
					st.Filters.ToggleFavoriteOnly()
				}
				v := st.View()
				if o.json {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(v)
				}
				ui.Panel(listLines(v))
				return nil
			})
		},
	}
	for _, g := range model.Groups {
		o.tags[g] = cmd.Flags().String(string(g), "", "Only items whose "+string(g)+" is exactly this")
	}
	cmd.Flags().BoolVar(&o.favorites, "favorites", false, "Only favorites")
	cmd.Flags().BoolVar(&o.json, "json", false, "Print the gallery view as JSON")
	return cmd
}

func listLines(v gallery.View) []string {
	t := ui.Current()
	favs := 0
	for _, c := range v.Cards {
		if c.Favorite {
			favs++
		}
	}
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Wardrobe"),
		ui.C(t.Favorite, t.Heart), favs,
		ui.C(t.Accent, "Shown"), len(v.Cards),
		ui.C(t.Muted, "Total"), v.Total,
	)

	lines := []string{header, ui.C(t.Muted, ui.Meter(len(v.Cards), v.Total, 28)), ""}
	if v.Empty != gallery.EmptyNone {
		msg := v.Empty.Message()
		if v.Empty == gallery.EmptyNoItems {
			msg = "No items yet."
		}
		lines = append(lines, ui.C(t.Muted, msg))
	}
	for i, c := range v.Cards {
		lines = append(lines, ui.CardLine(i, c, maxLabel))
	}
	lines = append(lines, "", ui.C(t.Muted, "Tip: add with `wardrobe add --image shirt.jpg --type top`"))
	return lines
}
