// Package source loads collected feed items from the files the collector
// writes: JSON and YAML exports and sqlite item stores. Readers register
// themselves at init time and are picked by name or file extension.
package source

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/factory-ai/social-rss/pkg/feed"
)

// Reader loads feed items from a file written by the collector. Items come
// back in the order the collector stored them.
type Reader interface {
	Read(path string) ([]feed.Item, error)
}

// ReaderFactory creates a new instance of a reader.
type ReaderFactory func() Reader

// ReaderInfo contains metadata about a reader.
type ReaderInfo struct {
	Name        string
	Description string
	Extensions  []string
	Factory     ReaderFactory
}

// ReaderRegistry manages registered item readers.
type ReaderRegistry struct {
	mu      sync.RWMutex
	readers map[string]*ReaderInfo
}

// NewReaderRegistry creates a new reader registry.
func NewReaderRegistry() *ReaderRegistry {
	return &ReaderRegistry{
		readers: make(map[string]*ReaderInfo),
	}
}

// Register adds a reader to the registry.
func (r *ReaderRegistry) Register(name string, info *ReaderInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.readers[name]; exists {
		return fmt.Errorf("reader %s is already registered", name)
	}

	r.readers[name] = info
	return nil
}

// Get retrieves a reader by name.
func (r *ReaderRegistry) Get(name string) (*ReaderInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, exists := r.readers[name]
	if !exists {
		return nil, fmt.Errorf("reader %s not found (known readers: %s)", name, strings.Join(r.list(), ", "))
	}

	return info, nil
}

// Detect finds the reader that claims the path's file extension.
func (r *ReaderRegistry) Detect(path string) (*ReaderInfo, error) {
	ext := strings.ToLower(filepath.Ext(path))

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.list() {
		info := r.readers[name]
		for _, e := range info.Extensions {
			if e == ext {
				return info, nil
			}
		}
	}

	return nil, fmt.Errorf("no reader for extension %q (known readers: %s)", ext, strings.Join(r.list(), ", "))
}

// List returns all registered reader names, sorted.
func (r *ReaderRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list()
}

// list assumes the caller holds at least a read lock.
func (r *ReaderRegistry) list() []string {
	names := make([]string, 0, len(r.readers))
	for name := range r.readers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global registry instance
var DefaultRegistry = NewReaderRegistry()

// RegisterReader is a convenience function to register a reader with the default registry.
func RegisterReader(name string, info *ReaderInfo) {
	if err := DefaultRegistry.Register(name, info); err != nil {
		slog.Warn("Failed to register reader", "reader", name, "error", err)
	} else {
		slog.Debug("Registered reader", "reader", name, "description", info.Description)
	}
}

// ListReaders is a convenience function to list all readers in the default registry.
func ListReaders() []string {
	return DefaultRegistry.List()
}

// Load reads items from path using the named reader. An empty name or
// "auto" picks the reader by file extension.
func Load(name, path string) ([]feed.Item, error) {
	var (
		info *ReaderInfo
		err  error
	)

	if name == "" || name == "auto" {
		info, err = DefaultRegistry.Detect(path)
	} else {
		info, err = DefaultRegistry.Get(name)
	}
	if err != nil {
		return nil, err
	}

	items, err := info.Factory().Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items from %s: %w", path, err)
	}

	slog.Info("Loaded feed items", "path", path, "reader", info.Name, "items", len(items))
	return items, nil
}
