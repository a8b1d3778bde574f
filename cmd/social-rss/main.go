// Package main provides the CLI entry point for social-rss.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/factory-ai/social-rss/internal/config"
	"github.com/factory-ai/social-rss/internal/server"
	"github.com/factory-ai/social-rss/internal/source"
	"github.com/factory-ai/social-rss/pkg/feed"
	"github.com/factory-ai/social-rss/pkg/filesystem"
	"github.com/factory-ai/social-rss/pkg/preview"
)

// version is set at build time via ldflags.
var version = "dev"

// CLI structure
var CLI struct {
	Config string `help:"Configuration file path" default:"config.yaml"`
	Debug  bool   `help:"Enable debug logging" default:"false"`

	Render struct {
		Items       string `help:"Items file path" short:"i"`
		SourceType  string `help:"Items file format (json, yaml, sqlite); detected from the extension by default"`
		Outfile     string `help:"Output file path" short:"o"`
		Format      string `help:"Output format" enum:"rss,atom,html" default:"rss"`
		Stdout      bool   `help:"Write the document to stdout instead of a file"`
		Limit       int    `help:"Maximum number of items to include, 0 for all" default:"0"`
		Title       string `help:"Feed channel title"`
		Link        string `help:"Feed channel link"`
		Description string `help:"Feed channel description"`
	} `cmd:"render" help:"Render collected items as a feed document."`

	Preview struct {
		Items      string `help:"Items file path" short:"i"`
		SourceType string `help:"Items file format (json, yaml, sqlite); detected from the extension by default"`
		Index      int    `help:"Output XML for specific item index (0-based) to stdout" default:"-1"`
	} `cmd:"preview" help:"Preview feed items interactively."`

	Serve struct {
		Items       string `help:"Items file path" short:"i"`
		SourceType  string `help:"Items file format (json, yaml, sqlite); detected from the extension by default"`
		Port        int    `help:"HTTP port (defaults to server.port from the config)"`
		Title       string `help:"Feed channel title"`
		Link        string `help:"Feed channel link"`
		Description string `help:"Feed channel description"`
	} `cmd:"serve" help:"Serve feed documents over HTTP."`

	Version struct{} `cmd:"version" help:"Print the version."`
}

func main() {
	// Parse CLI with Kong YAML configuration file loading
	ctx := kong.Parse(&CLI,
		kong.Configuration(kongyaml.Loader, "config.yaml", "~/.social-rss/config.yaml"),
	)

	// Configure logging level based on debug flag
	if CLI.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	} else {
		slog.SetLogLoggerLevel(slog.LevelWarn)
	}

	cfg, err := config.LoadConfig(CLI.Config)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	switch ctx.Command() {
	case "render":
		renderFeed(cfg)

	case "preview":
		previewItems(cfg)

	case "serve":
		serveFeeds(cfg)

	case "version":
		fmt.Println(version)

	default:
		panic(ctx.Command())
	}
}

// renderFeed loads items and writes the requested document.
func renderFeed(cfg *config.Config) {
	items := loadItems(cfg, CLI.Render.Items, CLI.Render.SourceType)
	if CLI.Render.Limit > 0 && len(items) > CLI.Render.Limit {
		items = items[:CLI.Render.Limit]
	}
	opts := feedOptions(cfg, CLI.Render.Title, CLI.Render.Link, CLI.Render.Description)

	var (
		doc string
		err error
	)
	switch CLI.Render.Format {
	case "rss":
		doc = feed.RenderFeed(items, opts)
	case "atom":
		doc, err = feed.ToAtomFeed(items, opts)
	case "html":
		doc, err = feed.RenderHTML(items, opts)
	}
	if err != nil {
		slog.Error("Failed to render document", "format", CLI.Render.Format, "error", err)
		os.Exit(1)
	}

	if CLI.Render.Stdout {
		fmt.Print(doc)
		return
	}

	outfile := firstNonEmpty(CLI.Render.Outfile, cfg.Output.Path)
	if err := filesystem.EnsureDirectoryExists(outfile); err != nil {
		slog.Error("Failed to prepare output directory", "outfile", outfile, "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outfile, []byte(doc), 0o644); err != nil {
		slog.Error("Failed to write document", "outfile", outfile, "error", err)
		os.Exit(1)
	}

	slog.Info("Wrote feed document", "outfile", outfile, "format", CLI.Render.Format, "items", len(items))
}

// previewItems opens the interactive preview, or prints one item's XML when
// an index is given.
func previewItems(cfg *config.Config) {
	path := firstNonEmpty(CLI.Preview.Items, cfg.Source.Path)
	items := loadItems(cfg, CLI.Preview.Items, CLI.Preview.SourceType)

	if CLI.Preview.Index >= 0 {
		if CLI.Preview.Index >= len(items) {
			slog.Error("Index out of range", "index", CLI.Preview.Index, "total", len(items))
			os.Exit(1)
		}
		fmt.Println(preview.FormatXMLItem(items[CLI.Preview.Index]))
		return
	}

	if err := preview.Run(items, path); err != nil {
		slog.Error("Preview failed", "error", err)
		os.Exit(1)
	}
}

// serveFeeds runs the HTTP server until it stops.
func serveFeeds(cfg *config.Config) {
	port := cfg.Server.Port
	if CLI.Serve.Port != 0 {
		port = CLI.Serve.Port
	}

	srv := server.New(server.Config{
		ItemsPath:  firstNonEmpty(CLI.Serve.Items, cfg.Source.Path),
		SourceType: firstNonEmpty(CLI.Serve.SourceType, cfg.Source.Type),
		Feed:       feedOptions(cfg, CLI.Serve.Title, CLI.Serve.Link, CLI.Serve.Description),
	})

	if err := srv.Start(port); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

// loadItems reads the item source, exiting the process on failure.
func loadItems(cfg *config.Config, pathFlag, typeFlag string) []feed.Item {
	path := firstNonEmpty(pathFlag, cfg.Source.Path)
	sourceType := firstNonEmpty(typeFlag, cfg.Source.Type)

	items, err := source.Load(sourceType, path)
	if err != nil {
		slog.Error("Failed to load items", "path", path, "error", err)
		os.Exit(1)
	}
	return items
}

// feedOptions resolves channel metadata: flags win over the config file,
// and empty fields fall through to the built-in defaults at render time.
func feedOptions(cfg *config.Config, title, link, description string) feed.Options {
	opts := cfg.FeedOptions()
	if title != "" {
		opts.Title = title
	}
	if link != "" {
		opts.Link = link
	}
	if description != "" {
		opts.Description = description
	}
	return opts
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
