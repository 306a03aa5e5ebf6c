package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/wardrobe/internal/app"
	"github.com/idilsaglam/wardrobe/internal/config"
	"github.com/idilsaglam/wardrobe/internal/dataurl"
	"github.com/idilsaglam/wardrobe/internal/logging"
	"github.com/idilsaglam/wardrobe/internal/store"
	"github.com/idilsaglam/wardrobe/internal/store/jsonstore"
	"github.com/idilsaglam/wardrobe/internal/store/sqlitestore"
	"github.com/idilsaglam/wardrobe/internal/tui"
	"github.com/idilsaglam/wardrobe/internal/ui"
)

// App carries the root flags and the session opened from them.
type App struct {
	ConfigPath string
	Dir        string
	Backend    string
	Theme      string

	log     *zap.Logger
	closers []func() error
}

func NewRootCmd() *cobra.Command {
	a := &App{}

	cmd := &cobra.Command{
		Use:           "wardrobe",
		Short:         "Wardrobe gallery: photos of your clothes, tagged and filterable",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Browse the gallery
  wardrobe

  # Scriptable commands
  wardrobe add --image shirt.jpg --type top --color blue --favorite
  wardrobe ls --season summer
  wardrobe rm 0192f3c4-... --yes
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withState(cmd, func(ctx context.Context, st *app.State) error {
				return tui.Run(ctx, st, dataurl.FileReader{})
			})
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		ui.Stdout = cmd.OutOrStdout()
		ui.Stderr = cmd.ErrOrStderr()
		return nil
	}

	cmd.PersistentFlags().StringVar(&a.ConfigPath, "config", "", "Config file (yaml or toml; default $WARDROBE_CONFIG or ~/.wardrobe/config.yaml)")
	cmd.PersistentFlags().StringVar(&a.Dir, "dir", envOr("WARDROBE_DIR", ""), "Storage directory (overrides storage.dir)")
	cmd.PersistentFlags().StringVar(&a.Backend, "backend", "", "Storage backend (json|sqlite)")
	cmd.PersistentFlags().StringVar(&a.Theme, "theme", "", "Output theme (classic|neon|mono)")

	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newAddCmd(a))
	cmd.AddCommand(newEditCmd(a))
	cmd.AddCommand(newRmCmd(a))
	cmd.AddCommand(newShowCmd(a))

	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

// withState opens a session for one command and closes it afterwards.
func (a *App) withState(cmd *cobra.Command, fn func(ctx context.Context, st *app.State) error) error {
	ctx := cmd.Context()
	defer a.close()
	st, err := a.open(ctx)
	if err != nil {
		return fail(err)
	}
	if err := fn(ctx, st); err != nil {
		a.log.Warn("command failed", zap.String("cmd", cmd.Name()), zap.Error(err))
		return fail(err)
	}
	return nil
}

// open loads config, the logger and the configured backend, then the item store.
func (a *App) open(ctx context.Context) (*app.State, error) {
	cfg, err := config.Load(config.Resolve(a.ConfigPath))
	if err != nil {
		return nil, err
	}
	if a.Dir != "" {
		cfg.Storage.Dir = a.Dir
	}
	if a.Backend != "" {
		cfg.Storage.Backend = a.Backend
	}
	if a.Theme != "" {
		cfg.UI.Theme = a.Theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ui.SetTheme(cfg.UI.Theme)

	log, err := logging.New(cfg.Logging.Level, cfg.LogFile())
	if err != nil {
		return nil, err
	}
	a.log = log
	a.closers = append(a.closers, func() error {
		_ = log.Sync()
		return nil
	})

	var blob store.Blob
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		b, err := sqlitestore.Open(ctx, cfg.Storage.Dir)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, b.Close)
		blob = b
	default:
		blob = jsonstore.New(cfg.Storage.Dir)
	}
	log.Debug("session opened",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("dir", cfg.Storage.Dir))

	st := store.New(blob, cfg.Storage.Key, store.WithLogger(log.Named("store")))
	return app.New(ctx, st, cfg.Catalog(), dataurl.FileReader{}, log), nil
}

func (a *App) close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// fail prints err as a red line and hands it back for the exit code.
func fail(err error) error {
	ui.Fail(err.Error())
	return err
}

func usage(format string, args ...any) error {
	return fail(fmt.Errorf(format, args...))
}
