// Package server serves rendered feed documents over HTTP. Items are
// re-read from the source file on every request, so a collector can update
// the file underneath a running server.
package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/factory-ai/social-rss/internal/source"
	"github.com/factory-ai/social-rss/pkg/feed"
)

// Config describes what the server reads and serves.
type Config struct {
	ItemsPath  string
	SourceType string
	Feed       feed.Options
}

// Server serves RSS, Atom, and HTML preview documents for one item source.
type Server struct {
	echo *echo.Echo
	cfg  Config
}

// New builds a server with its routes registered.
func New(cfg Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			slog.Debug("Served request", "uri", v.URI, "status", v.Status)
			return nil
		},
	}))

	s := &Server{echo: e, cfg: cfg}

	e.GET("/feed.xml", s.handleRSS)
	e.GET("/feed.atom", s.handleAtom)
	e.GET("/preview", s.handlePreview)
	e.GET("/healthz", s.handleHealth)

	return s
}

// Start serves HTTP on the given port and blocks.
func (s *Server) Start(port int) error {
	slog.Info("Serving feeds", "port", port, "items", s.cfg.ItemsPath)
	return s.echo.Start(fmt.Sprintf(":%d", port))
}

func (s *Server) loadItems() ([]feed.Item, error) {
	return source.Load(s.cfg.SourceType, s.cfg.ItemsPath)
}

func (s *Server) handleRSS(c echo.Context) error {
	items, err := s.loadItems()
	if err != nil {
		slog.Error("Failed to load items", "error", err)
		return err
	}

	doc := feed.RenderFeed(items, s.cfg.Feed)
	return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(doc))
}

func (s *Server) handleAtom(c echo.Context) error {
	items, err := s.loadItems()
	if err != nil {
		slog.Error("Failed to load items", "error", err)
		return err
	}

	doc, err := feed.ToAtomFeed(items, s.cfg.Feed)
	if err != nil {
		slog.Error("Failed to render atom feed", "error", err)
		return err
	}
	return c.Blob(http.StatusOK, "application/atom+xml; charset=utf-8", []byte(doc))
}

func (s *Server) handlePreview(c echo.Context) error {
	items, err := s.loadItems()
	if err != nil {
		slog.Error("Failed to load items", "error", err)
		return err
	}

	page, err := feed.RenderHTML(items, s.cfg.Feed)
	if err != nil {
		slog.Error("Failed to render preview", "error", err)
		return err
	}
	return c.HTML(http.StatusOK, page)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
