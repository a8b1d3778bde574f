package source

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/factory-ai/social-rss/pkg/feed"
	"github.com/factory-ai/social-rss/pkg/filesystem"
)

// YAMLReader loads items from the collector's YAML export, a top-level
// sequence of item mappings.
type YAMLReader struct{}

// Read implements Reader.
func (YAMLReader) Read(path string) ([]feed.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", filesystem.ErrFileNotFound, path)
		}
		return nil, err
	}

	var items []feed.Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return items, nil
}

func init() {
	RegisterReader("yaml", &ReaderInfo{
		Name:        "yaml",
		Description: "Collector YAML export (sequence of items)",
		Extensions:  []string{".yaml", ".yml"},
		Factory:     func() Reader { return YAMLReader{} },
	})
}
