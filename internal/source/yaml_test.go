package source

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/factory-ai/social-rss/pkg/filesystem"
)

func TestYAMLReaderRead(t *testing.T) {
	payload := `- id: tw-1001
  url: https://twitter.com/factoryai/status/1001
  author: "@factoryai"
  source: twitter
  category: product
  content: Big news
  timestamp: "2024-10-01T12:30:00Z"
  metadata:
    likes: 5
    retweets: 2
    replies: 1
- id: gh-2002
  url: https://github.com/factory-ai/factory/issues/42
  author: octocat
  source: github
  timestamp: 1727785800
`
	path := writeFixture(t, "items.yaml", payload)

	items, err := YAMLReader{}.Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("Read() returned %d items, want 2", len(items))
	}

	first := items[0]
	if first.ID != "tw-1001" || first.Author != "@factoryai" {
		t.Errorf("first item = %+v", first)
	}
	if first.Category == nil || *first.Category != "product" {
		t.Errorf("first item category = %v, want product", first.Category)
	}
	if first.Metadata == nil || first.Metadata.Likes != 5 {
		t.Errorf("first item metadata = %+v", first.Metadata)
	}
	if got := first.Timestamp.RFC822(); got != "Tue, 01 Oct 2024 12:30:00 GMT" {
		t.Errorf("first item timestamp = %q", got)
	}

	second := items[1]
	if second.Category != nil {
		t.Errorf("second item category = %v, want nil", second.Category)
	}
	if got := second.Timestamp.RFC822(); got != "Tue, 01 Oct 2024 12:30:00 GMT" {
		t.Errorf("second item timestamp = %q", got)
	}
}

func TestYAMLReaderMissingFile(t *testing.T) {
	_, err := YAMLReader{}.Read(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, filesystem.ErrFileNotFound) {
		t.Errorf("Read() error = %v, want ErrFileNotFound", err)
	}
}

func TestYAMLReaderMalformed(t *testing.T) {
	path := writeFixture(t, "items.yaml", "items:\n  - [unclosed")

	if _, err := (YAMLReader{}).Read(path); err == nil {
		t.Errorf("Read() expected a parse error")
	}
}
