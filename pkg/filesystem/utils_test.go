package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirectoryExists(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name     string
		filePath string
	}{
		{"bare filename", "feed.xml"},
		{"single directory", filepath.Join(tempDir, "out", "feed.xml")},
		{"nested directories", filepath.Join(tempDir, "a", "b", "c", "feed.xml")},
		{"directory already exists", filepath.Join(tempDir, "feed.xml")},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := EnsureDirectoryExists(tt.filePath); err != nil {
				t.Fatalf("EnsureDirectoryExists(%q) returned %v", tt.filePath, err)
			}

			if dir := filepath.Dir(tt.filePath); dir != "." {
				if _, err := os.Stat(dir); err != nil {
					t.Errorf("directory %q missing after EnsureDirectoryExists: %v", dir, err)
				}
			}
		})
	}
}

func TestEnsureDirectoryExistsPermissionDenied(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("Skipping permission test when running as root")
	}

	tempDir := t.TempDir()
	readOnlyDir := filepath.Join(tempDir, "readonly")
	if err := os.MkdirAll(readOnlyDir, 0o755); err != nil {
		t.Fatalf("Failed to create read-only dir: %v", err)
	}
	if err := os.Chmod(readOnlyDir, 0o444); err != nil {
		t.Fatalf("Failed to chmod: %v", err)
	}
	t.Cleanup(func() {
		os.Chmod(readOnlyDir, 0o755)
	})

	if err := EnsureDirectoryExists(filepath.Join(readOnlyDir, "out", "feed.xml")); err == nil {
		t.Errorf("EnsureDirectoryExists() succeeded under a read-only parent")
	}
}

func TestFileExists(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "items.json")

	if FileExists(path) {
		t.Errorf("FileExists(%q) = true before creation", path)
	}

	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if !FileExists(path) {
		t.Errorf("FileExists(%q) = false after creation", path)
	}

	if FileExists(tempDir) {
		t.Errorf("FileExists(%q) = true for a directory", tempDir)
	}
}

func TestGetDefaultPath(t *testing.T) {
	got, err := GetDefaultPath("items.json")
	if err != nil {
		t.Fatalf("GetDefaultPath() returned %v", err)
	}
	if filepath.Base(got) != "items.json" {
		t.Errorf("GetDefaultPath() = %q, want a path ending in items.json", got)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("GetDefaultPath() = %q, want an absolute path", got)
	}
}
