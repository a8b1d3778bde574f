package source

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/factory-ai/social-rss/pkg/feed"
	"github.com/factory-ai/social-rss/pkg/filesystem"
)

// JSONReader loads items from the collector's JSON export, a top-level
// array of item objects.
type JSONReader struct{}

// Read implements Reader.
func (JSONReader) Read(path string) ([]feed.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", filesystem.ErrFileNotFound, path)
		}
		return nil, err
	}

	var items []feed.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return items, nil
}

func init() {
	RegisterReader("json", &ReaderInfo{
		Name:        "json",
		Description: "Collector JSON export (array of items)",
		Extensions:  []string{".json"},
		Factory:     func() Reader { return JSONReader{} },
	})
}
