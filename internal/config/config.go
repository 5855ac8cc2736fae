package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/p5chmitz/mdtree/internal/render"
)

type Config struct {
	// Level excludes headings at and above it; 0 keeps everything.
	Level int `mapstructure:"level"`
	// Extensions are the file suffixes the scanner considers.
	Extensions []string `mapstructure:"extensions"`
	// Workers bounds how many documents are processed concurrently.
	Workers int `mapstructure:"workers"`
	// Style selects the connector glyphs: "unicode" or "ascii".
	Style string `mapstructure:"style"`
}

// RenderStyle maps the configured style name onto a glyph set, falling back
// to unicode for unknown names.
func (c *Config) RenderStyle() render.Style {
	if strings.EqualFold(c.Style, "ascii") {
		return render.ASCII
	}
	return render.Unicode
}

func InitializeViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "mdtree"))
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "mdtree"))
	}

	viper.SetDefault("level", 0)
	viper.SetDefault("extensions", []string{".md", ".mdx"})
	viper.SetDefault("workers", 4)
	viper.SetDefault("style", "unicode")

	viper.SetEnvPrefix("MDTREE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

func Load() (*Config, error) {
	if err := InitializeViper(); err != nil {
		return nil, err
	}

	var config Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		// MDTREE_EXTENSIONS=".md,.mdx" arrives as a single string.
		DecodeHook: mapstructure.StringToSliceHookFunc(","),
		Result:     &config,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(viper.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	normalizeExtensions(&config)
	if config.Workers < 1 {
		config.Workers = 1
	}

	return &config, nil
}

// normalizeExtensions lower-cases entries and guarantees the leading dot, so
// "md" and ".MD" both match ".md" files.
func normalizeExtensions(c *Config) {
	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extensions[i] = ext
	}
}
