// Package testutil holds helpers shared across package tests.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

var update = flag.Bool("update", false, "rewrite golden files with the current output")

// CompareGolden asserts that actual matches the contents of the file at
// goldenPath. Running the tests with -update rewrites the file instead of
// comparing against it.
func CompareGolden(t *testing.T, goldenPath string, actual string) {
	t.Helper()

	if *update {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0o755); err != nil {
			t.Fatalf("Creating golden dir for %s: %v", goldenPath, err)
		}
		if err := os.WriteFile(goldenPath, []byte(actual), 0o644); err != nil {
			t.Fatalf("Rewriting %s: %v", goldenPath, err)
		}
		t.Logf("Rewrote %s", goldenPath)
		return
	}

	want, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("Reading %s (run with -update to create it): %v", goldenPath, err)
	}
	if actual != string(want) {
		t.Errorf("Output does not match %s\nwant:\n%s\ngot:\n%s", goldenPath, want, actual)
	}
}
