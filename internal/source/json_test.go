package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/factory-ai/social-rss/pkg/filesystem"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestJSONReaderRead(t *testing.T) {
	payload := `[
  {
    "id": "tw-1001",
    "url": "https://twitter.com/factoryai/status/1001",
    "author": "@factoryai",
    "source": "twitter",
    "category": "product",
    "content": "Big news",
    "timestamp": "2024-10-01T12:30:00Z",
    "metadata": {"likes": 5, "retweets": 2, "replies": 1}
  },
  {
    "id": "gh-2002",
    "url": "https://github.com/factory-ai/factory/issues/42",
    "author": "octocat",
    "source": "github",
    "timestamp": 1727785800
  }
]`
	path := writeFixture(t, "items.json", payload)

	items, err := JSONReader{}.Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("Read() returned %d items, want 2", len(items))
	}

	first := items[0]
	if first.ID != "tw-1001" || first.Author != "@factoryai" || first.Source != "twitter" {
		t.Errorf("first item = %+v", first)
	}
	if first.Category == nil || *first.Category != "product" {
		t.Errorf("first item category = %v, want product", first.Category)
	}
	if first.Metadata == nil || first.Metadata.Likes != 5 || first.Metadata.Retweets != 2 || first.Metadata.Replies != 1 {
		t.Errorf("first item metadata = %+v", first.Metadata)
	}
	if got := first.Timestamp.RFC822(); got != "Tue, 01 Oct 2024 12:30:00 GMT" {
		t.Errorf("first item timestamp = %q", got)
	}

	second := items[1]
	if second.Category != nil {
		t.Errorf("second item category = %v, want nil", second.Category)
	}
	if second.Metadata != nil {
		t.Errorf("second item metadata = %+v, want nil", second.Metadata)
	}
	if got := second.Timestamp.RFC822(); got != "Tue, 01 Oct 2024 12:30:00 GMT" {
		t.Errorf("second item timestamp = %q", got)
	}
}

func TestJSONReaderEmpty(t *testing.T) {
	path := writeFixture(t, "items.json", "[]")

	items, err := JSONReader{}.Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Read() returned %d items, want 0", len(items))
	}
}

func TestJSONReaderMissingFile(t *testing.T) {
	_, err := JSONReader{}.Read(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, filesystem.ErrFileNotFound) {
		t.Errorf("Read() error = %v, want ErrFileNotFound", err)
	}
}

func TestJSONReaderMalformed(t *testing.T) {
	path := writeFixture(t, "items.json", `{"not": "an array"}`)

	if _, err := (JSONReader{}).Read(path); err == nil {
		t.Errorf("Read() expected a parse error")
	}
}
