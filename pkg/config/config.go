// Package config loads emailfinder settings from a TOML file, the
// environment and an optional .env file.
//
// Values are layered: built-in defaults, then the config file, then the
// environment. Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	apperrors "github.com/matzehuels/emailfinder/pkg/errors"
)

// TokenEnv is the environment variable holding the GitHub token.
const TokenEnv = "GITHUB_TOKEN"

// Defaults.
const (
	DefaultAPIURL    = "https://api.github.com"
	DefaultPageDelay = 500 * time.Millisecond
	MinPageDelay     = 500 * time.Millisecond
	DefaultTimeout   = 10 * time.Second
	DefaultRetries   = 3
	DefaultFormat    = "table"
)

// Config holds resolved settings.
type Config struct {
	Token         string
	APIURL        string
	PageDelay     time.Duration
	Timeout       time.Duration
	Retries       int
	Contributions bool
	Format        string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		APIURL:    DefaultAPIURL,
		PageDelay: DefaultPageDelay,
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		Format:    DefaultFormat,
	}
}

// Duration is a time.Duration written as a Go duration string ("500ms").
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// file mirrors the TOML layout.
type file struct {
	Token         string   `toml:"token"`
	APIURL        string   `toml:"api_url"`
	PageDelay     Duration `toml:"page_delay"`
	Timeout       Duration `toml:"timeout"`
	Retries       int      `toml:"retries"`
	Contributions bool     `toml:"contributions"`
	Format        string   `toml:"format"`
}

// DefaultPath returns $XDG_CONFIG_HOME/emailfinder/config.toml, falling back
// to ~/.config/emailfinder/config.toml. Returns "" if neither can be
// determined.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "emailfinder", "config.toml")
}

// Load reads the config file at path over the defaults. An empty path
// selects DefaultPath, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	f := file{
		APIURL:    cfg.APIURL,
		PageDelay: Duration(cfg.PageDelay),
		Timeout:   Duration(cfg.Timeout),
		Retries:   cfg.Retries,
		Format:    cfg.Format,
	}
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, apperrors.New(apperrors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	cfg = Config{
		Token:         f.Token,
		APIURL:        f.APIURL,
		PageDelay:     time.Duration(f.PageDelay),
		Timeout:       time.Duration(f.Timeout),
		Retries:       f.Retries,
		Contributions: f.Contributions,
		Format:        f.Format,
	}
	if err := cfg.Validate(); err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// LoadDotEnv loads variables from the named .env files (".env" when none are
// given) without overriding variables already set. Missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "load %s", name)
		}
	}
	return nil
}

// ApplyEnv overlays environment values onto cfg. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(TokenEnv); ok && v != "" {
		c.Token = v
	}
}

// Validate checks ranges. A page delay is either 0, which disables pacing,
// or at least MinPageDelay. It does not validate Format, which is the
// renderer's concern.
func (c Config) Validate() error {
	switch {
	case c.APIURL == "":
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "api_url must not be empty")
	case c.PageDelay < 0:
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "page_delay must not be negative: %s", c.PageDelay)
	case c.PageDelay > 0 && c.PageDelay < MinPageDelay:
		return apperrors.New(apperrors.ErrCodeInvalidConfig,
			"page_delay must be 0 (no pacing) or at least %s: %s", MinPageDelay, c.PageDelay)
	case c.Timeout <= 0:
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "timeout must be positive: %s", c.Timeout)
	case c.Retries < 1:
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "retries must be at least 1: %d", c.Retries)
	}
	return nil
}
