package input

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domains.txt")
	content := "# shortlist for the rename\nexample.com\n\nstartup.io\n  # indented comment\nkeep me.zzz\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	loader := NewLoader()
	lines, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Comments are dropped here; blank lines pass through untouched.
	want := []string{"example.com", "", "startup.io", "keep me.zzz"}
	if len(lines) != len(want) {
		t.Fatalf("Load() = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader()
	if _, err := loader.Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("Load() on missing file, want error")
	}
}
