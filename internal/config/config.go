// Package config loads wardrobe settings from YAML or TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/wardrobe/internal/gallery"
	"github.com/idilsaglam/wardrobe/internal/model"
	"github.com/idilsaglam/wardrobe/internal/store"
)

// EnvPath overrides the config file location.
const EnvPath = "WARDROBE_CONFIG"

type Config struct {
	Storage StorageConfig `yaml:"storage" toml:"storage"`
	Gallery GalleryConfig `yaml:"gallery" toml:"gallery"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	UI      UIConfig      `yaml:"ui" toml:"ui"`
}

type StorageConfig struct {
	Backend string `yaml:"backend" toml:"backend"` // json | sqlite
	Dir     string `yaml:"dir" toml:"dir"`
	Key     string `yaml:"key" toml:"key"`
}

type GalleryConfig struct {
	Variant string              `yaml:"variant" toml:"variant"` // free | fixed
	Chips   string              `yaml:"chips" toml:"chips"`     // rows | active-group
	Options map[string][]string `yaml:"options" toml:"options"`
}

type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file" toml:"file"`
}

type UIConfig struct {
	Theme string `yaml:"theme" toml:"theme"`
}

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Backend: BackendJSON, Dir: defaultDir(), Key: store.DefaultKey},
		Gallery: GalleryConfig{Variant: string(gallery.VariantFree), Chips: string(gallery.ChipRows)},
		Logging: LoggingConfig{Level: "info"},
		UI:      UIConfig{Theme: "classic"},
	}
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wardrobe"
	}
	return filepath.Join(home, ".wardrobe")
}

// Resolve picks the config file: explicit path, then $WARDROBE_CONFIG, then
// ~/.wardrobe/config.yaml if it exists. "" means use defaults.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := strings.TrimSpace(os.Getenv(EnvPath)); p != "" {
		return p
	}
	p := filepath.Join(defaultDir(), "config.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

// Load reads path over the defaults. An empty path returns the defaults.
// ${VAR} references are expanded before parsing.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	expanded := expandEnvVars(string(data))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(expanded, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	default:
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	cfg.Storage.Dir = expandHome(cfg.Storage.Dir)
	cfg.Logging.File = expandHome(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

var envRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} with the variable's value, or "" when unset.
func expandEnvVars(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envRef.FindStringSubmatch(match)[1])
	})
}

func expandHome(p string) string {
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return p
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("storage.backend must be %q or %q, got %q", BackendJSON, BackendSQLite, c.Storage.Backend)
	}
	if c.Storage.Dir == "" {
		return errors.New("storage.dir is required")
	}
	if c.Storage.Key == "" {
		return errors.New("storage.key is required")
	}
	switch gallery.Variant(c.Gallery.Variant) {
	case gallery.VariantFree, gallery.VariantFixed:
	default:
		return fmt.Errorf("gallery.variant must be free or fixed, got %q", c.Gallery.Variant)
	}
	switch gallery.ChipMode(c.Gallery.Chips) {
	case gallery.ChipRows, gallery.ChipActiveGroup:
	default:
		return fmt.Errorf("gallery.chips must be rows or active-group, got %q", c.Gallery.Chips)
	}
	for name, opts := range c.Gallery.Options {
		if _, ok := model.ParseGroup(name); !ok {
			return fmt.Errorf("gallery.options: unknown group %q", name)
		}
		if len(opts) == 0 {
			return fmt.Errorf("gallery.options.%s: empty list", name)
		}
	}
	return nil
}

// LogFile is the configured log path, defaulting to a file in the storage dir.
func (c *Config) LogFile() string {
	if c.Logging.File != "" {
		return c.Logging.File
	}
	return filepath.Join(c.Storage.Dir, "wardrobe.log")
}

// Catalog builds the gallery catalog. Configured option lists replace the built-in ones per group.
func (c *Config) Catalog() gallery.Catalog {
	cat := gallery.DefaultCatalog()
	cat.Variant = gallery.Variant(c.Gallery.Variant)
	cat.ChipMode = gallery.ChipMode(c.Gallery.Chips)
	for name, opts := range c.Gallery.Options {
		if g, ok := model.ParseGroup(name); ok {
			cat.Options[g] = append([]string(nil), opts...)
		}
	}
	return cat
}
