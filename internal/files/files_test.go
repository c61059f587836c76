package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStem(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"coding.yaml", "coding"},
		{"/abs/path/research.yml", "research"},
		{"noext", "noext"},
		{"dotted.name.md", "dotted.name"},
	}
	for _, tt := range tests {
		if got := Stem(tt.name); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestIsYAMLAndIsMarkdown(t *testing.T) {
	if !IsYAML("a.yaml") || !IsYAML("b.YML") {
		t.Errorf("IsYAML should accept .yaml and .yml case-insensitively")
	}
	if IsYAML("a.md") || IsYAML("a.txt") {
		t.Errorf("IsYAML accepted a non-YAML extension")
	}
	if !IsMarkdown("a.md") || !IsMarkdown("b.markdown") {
		t.Errorf("IsMarkdown should accept .md and .markdown")
	}
	if IsMarkdown("a.yaml") {
		t.Errorf("IsMarkdown accepted a YAML extension")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "usage.json")

	if err := WriteFileAtomic(path, []byte(`{"v":1}`), 0644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != `{"v":1}` {
		t.Errorf("content = %q", data)
	}

	// Overwrite must replace, not append.
	if err := WriteFileAtomic(path, []byte(`{"v":2}`), 0644); err != nil {
		t.Fatalf("WriteFileAtomic() overwrite error = %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != `{"v":2}` {
		t.Errorf("content after overwrite = %q", data)
	}

	// No temp files left behind.
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}
