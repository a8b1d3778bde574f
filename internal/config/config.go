// Package config loads the application configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/factory-ai/social-rss/pkg/feed"
	"github.com/factory-ai/social-rss/pkg/filesystem"
	"github.com/factory-ai/social-rss/pkg/urlutils"
)

// Config holds the central application configuration
type Config struct {
	// Feed holds channel metadata for generated documents. Empty fields
	// fall back to the built-in Factory AI defaults.
	Feed struct {
		Title       string `mapstructure:"title"`
		Link        string `mapstructure:"link"`
		Description string `mapstructure:"description"`
	} `mapstructure:"feed"`

	// Source describes where collected items are read from
	Source struct {
		Path string `mapstructure:"path"` // Items file path
		Type string `mapstructure:"type"` // Reader name, "auto" picks by file extension
	} `mapstructure:"source"`

	// Output holds the render target
	Output struct {
		Path string `mapstructure:"path"` // Output file path
	} `mapstructure:"output"`

	// Server holds the HTTP serving configuration
	Server struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"server"`
}

// LoadConfig loads the configuration from a file. A missing file is fine;
// defaults apply.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "config.yaml"
	}

	path = resolvePath(path)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set default values
	v.SetDefault("feed.title", "")
	v.SetDefault("feed.link", "")
	v.SetDefault("feed.description", "")
	v.SetDefault("source.path", "items.json")
	v.SetDefault("source.type", "auto")
	v.SetDefault("output.path", "feed.xml")
	v.SetDefault("server.port", 8080)

	if err := v.ReadInConfig(); err != nil {
		// With an explicit config file the not-found case surfaces as a
		// path error rather than viper's ConfigFileNotFoundError.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects values that would produce broken documents or an
// unbindable server.
func (c *Config) Validate() error {
	if c.Feed.Link != "" && !urlutils.IsValidURL(c.Feed.Link) {
		return fmt.Errorf("feed.link %q is not a valid URL", c.Feed.Link)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	return nil
}

// FeedOptions returns the configured channel metadata as feed options.
func (c *Config) FeedOptions() feed.Options {
	return feed.Options{
		Title:       c.Feed.Title,
		Link:        c.Feed.Link,
		Description: c.Feed.Description,
	}
}

// resolvePath tries a relative path in the current working directory first,
// then next to the executable. Only regular files count; a directory with
// the config's name is ignored.
func resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	if filesystem.FileExists(path) {
		return path
	}

	if execPath, err := filesystem.GetDefaultPath(path); err == nil {
		if filesystem.FileExists(execPath) {
			return execPath
		}
	}

	return path
}
