package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/platform"
)

// EnvAPIURL overrides every other source of the catalog endpoint
const EnvAPIURL = "STOREFRONT_API_URL"

// Card width defaults and limits
const (
	DefaultCardWidth         float32 = 180
	DefaultTerminalCardWidth         = 26

	MinCardWidth         float32 = 120
	MaxCardWidth         float32 = 400
	MinTerminalCardWidth         = 16
	MaxTerminalCardWidth         = 80
)

// Config is the file-backed application configuration
type Config struct {
	APIURL            string  `toml:"api_url"`
	ImageBaseURL      string  `toml:"image_base_url"`
	FallbackImageURL  string  `toml:"fallback_image_url"`
	CardWidth         float32 `toml:"card_width"`
	TerminalCardWidth int     `toml:"terminal_card_width"`
}

// Default returns the compiled defaults
func Default() Config {
	return Config{
		ImageBaseURL:      model.DefaultImageBaseURL,
		FallbackImageURL:  model.DefaultFallbackImageURL,
		CardWidth:         DefaultCardWidth,
		TerminalCardWidth: DefaultTerminalCardWidth,
	}
}

// Load reads storefront.toml from the user config directory and resolves the
// endpoint against buildAPIURL and the environment. Failures fall back to
// the defaults.
func Load(buildAPIURL string) Config {
	path, err := platform.ConfigFilePath()
	if err != nil {
		log.Printf("No config directory, using defaults: err=%v", err)
		return Default().Resolve(buildAPIURL)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		log.Printf("Failed to load config, using defaults: path=%s err=%v", path, err)
		cfg = Default()
	}
	return cfg.Resolve(buildAPIURL)
}

// LoadFile overlays the TOML file at path onto the defaults.
// A missing file is not an error.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return Parse(string(data), cfg)
}

// Parse overlays TOML content onto base; keys absent from content keep
// their base values
func Parse(content string, base Config) (Config, error) {
	if strings.TrimSpace(content) == "" {
		return base.Clamp(), nil
	}

	overlay := base
	if _, err := toml.Decode(content, &overlay); err != nil {
		return base, fmt.Errorf("failed to parse config: %w", err)
	}
	return overlay.Clamp(), nil
}

// Clamp keeps card widths inside their usable ranges and restores blank URLs
func (c Config) Clamp() Config {
	defaults := Default()

	if c.CardWidth <= 0 {
		c.CardWidth = defaults.CardWidth
	}
	c.CardWidth = clampFloat(c.CardWidth, MinCardWidth, MaxCardWidth)

	if c.TerminalCardWidth <= 0 {
		c.TerminalCardWidth = defaults.TerminalCardWidth
	}
	c.TerminalCardWidth = clampInt(c.TerminalCardWidth, MinTerminalCardWidth, MaxTerminalCardWidth)

	c.APIURL = strings.TrimSpace(c.APIURL)
	if strings.TrimSpace(c.ImageBaseURL) == "" {
		c.ImageBaseURL = defaults.ImageBaseURL
	}
	if strings.TrimSpace(c.FallbackImageURL) == "" {
		c.FallbackImageURL = defaults.FallbackImageURL
	}
	return c
}

// Resolve applies the build-time endpoint and then the environment override.
// The file value is used only when neither is set.
func (c Config) Resolve(buildAPIURL string) Config {
	source := "file"
	if v := strings.TrimSpace(buildAPIURL); v != "" {
		c.APIURL = v
		source = "build"
	}
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		c.APIURL = v
		source = "env"
	}
	if c.APIURL == "" {
		source = "none"
	}
	log.Printf("Catalog endpoint resolved: source=%s url=%s", source, c.APIURL)
	return c
}

func clampFloat(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
