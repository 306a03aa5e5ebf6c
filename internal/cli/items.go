package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/wardrobe/internal/app"
	"github.com/idilsaglam/wardrobe/internal/editor"
	"github.com/idilsaglam/wardrobe/internal/errs"
	"github.com/idilsaglam/wardrobe/internal/gallery"
	"github.com/idilsaglam/wardrobe/internal/model"
	"github.com/idilsaglam/wardrobe/internal/thumb"
	"github.com/idilsaglam/wardrobe/internal/ui"
)

// alertError shows the editor's user-facing message while keeping the cause for errors.Is.
type alertError struct{ err error }

func (e alertError) Error() string { return editor.Alert(e.err) }
func (e alertError) Unwrap() error { return e.err }

type itemFlags struct {
	image    string
	name     string
	tags     map[model.Group]*string
	favorite bool
}

func bindItemFlags(cmd *cobra.Command, f *itemFlags) {
	f.tags = map[model.Group]*string{}
	cmd.Flags().StringVar(&f.image, "image", "", "Photo file (png, jpeg, gif)")
	cmd.Flags().StringVar(&f.name, "name", "", "Display name")
	for _, g := range model.Groups {
		f.tags[g] = cmd.Flags().String(string(g), "", strings.ToUpper(string(g)[:1])+string(g)[1:]+" tag")
	}
	cmd.Flags().BoolVar(&f.favorite, "favorite", false, "Mark as favorite")
}

// apply copies the flags the user actually set onto the form.
func (f *itemFlags) apply(cmd *cobra.Command, c *editor.Controller) {
	flags := cmd.Flags()
	if flags.Changed("name") {
		c.Form.Name = f.name
	}
	for g, v := range f.tags {
		if !flags.Changed(string(g)) {
			continue
		}
		switch g {
		case model.GroupType:
			c.Form.Type = *v
		case model.GroupSeason:
			c.Form.Season = *v
		case model.GroupStyle:
			c.Form.Style = *v
		case model.GroupColor:
			c.Form.Color = *v
		}
	}
	if flags.Changed("favorite") {
		c.Form.Favorite = f.favorite
	}
	if flags.Changed("image") {
		c.ChooseFile(f.image)
	}
}

func newAddCmd(a *App) *cobra.Command {
	var f itemFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item from a photo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(f.image) == "" {
				return usage("add: --image is required")
			}
			return a.withState(cmd, func(ctx context.Context, st *app.State) error {
				st.Editor.OpenAdd()
				f.apply(cmd, st.Editor)
				it, err := st.Editor.Save(ctx)
				if err != nil {
					return alertError{err}
				}
				ui.OK("added " + it.ID)
				return nil
			})
		},
	}
	bindItemFlags(cmd, &f)
	return cmd
}

func newEditCmd(a *App) *cobra.Command {
	var f itemFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an item; only the flags given are updated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return a.withState(cmd, func(ctx context.Context, st *app.State) error {
				if err := st.Editor.OpenEdit(id); err != nil {
					return alertError{err}
				}
				f.apply(cmd, st.Editor)
				it, err := st.Editor.Save(ctx)
				if err != nil {
					return alertError{err}
				}
				if it.ID == "" {
					return alertError{errs.ErrNotFound}
				}
				ui.OK("saved " + it.ID)
				return nil
			})
		},
	}
	bindItemFlags(cmd, &f)
	return cmd
}

func newRmCmd(a *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return a.withState(cmd, func(ctx context.Context, st *app.State) error {
				if _, ok := st.Store.Get(id); !ok {
					return alertError{errs.ErrNotFound}
				}
				var confirm editor.ConfirmFunc
				if !yes {
					confirm = promptYesNo(cmd.InOrStdin(), cmd.ErrOrStderr())
				}
				deleted, err := st.Editor.DeleteItem(ctx, id, confirm)
				if err != nil {
					return err
				}
				if !deleted {
					ui.Hint("kept")
					return nil
				}
				ui.OK("deleted")
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// promptYesNo asks on out and reads one line from in. Anything but y/yes declines.
func promptYesNo(in io.Reader, out io.Writer) editor.ConfirmFunc {
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N] ", prompt)
		line, _ := bufio.NewReader(in).ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	}
}

func newShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one item in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withState(cmd, func(ctx context.Context, st *app.State) error {
				it, ok := st.Store.Get(args[0])
				if !ok {
					return alertError{errs.ErrNotFound}
				}
				out := cmd.OutOrStdout()
				plain := termenv.NewOutput(out).ColorProfile() == termenv.Ascii
				if !plain {
					fmt.Fprintln(out, thumb.Render(it.DataURL, 24, 8))
				}
				fmt.Fprintln(out, renderMarkdown(detailMarkdown(it), plain))
				return nil
			})
		},
	}
}

func detailMarkdown(it model.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", gallery.Label(it))
	b.WriteString("| Tag | Value |\n|---|---|\n")
	for _, g := range model.Groups {
		v := it.Attr(g)
		if v == "" {
			v = "-"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", strings.ToUpper(string(g)[:1])+string(g)[1:], v)
	}
	b.WriteString("\n")
	fav := "no"
	if it.Favorite {
		fav = "yes"
	}
	fmt.Fprintf(&b, "- **Favorite:** %s\n", fav)
	fmt.Fprintf(&b, "- **Added:** %s\n", it.CreatedAt().Local().Format(time.DateTime))
	if u, ok := it.UpdatedAt(); ok {
		fmt.Fprintf(&b, "- **Updated:** %s\n", u.Local().Format(time.DateTime))
	}
	fmt.Fprintf(&b, "- **ID:** `%s`\n", it.ID)
	return b.String()
}

func renderMarkdown(md string, plain bool) string {
	style := styles.DarkStyle
	if plain {
		style = styles.NoTTYStyle
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
