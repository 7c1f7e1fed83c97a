package templates

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedShipsAllTemplates(t *testing.T) {
	store := Embedded()
	for _, name := range []string{".czrc", ".git-cz.json", ".lintstagedrc", ".editorconfig", ".prettierrc", ".eslintrc"} {
		data, err := store.Read(name)
		if err != nil {
			t.Errorf("Read(%q) error: %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("Read(%q) returned empty content", name)
		}
	}

	names, err := store.Names()
	if err != nil {
		t.Fatalf("Names() error: %v", err)
	}
	if len(names) != 6 {
		t.Errorf("Names() = %v, want 6 templates", names)
	}
}

func TestReadMissingTemplate(t *testing.T) {
	_, err := Embedded().Read(".missingrc")
	if err == nil {
		t.Fatal("expected error for missing template, got nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap fs.ErrNotExist", err)
	}
}

func TestReadRejectsPaths(t *testing.T) {
	for _, name := range []string{"", "..", "../etc/passwd", "sub/.eslintrc", `sub\.eslintrc`} {
		if _, err := Embedded().Read(name); err == nil {
			t.Errorf("Read(%q): expected error, got nil", name)
		}
	}
}

func TestDirStore(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".eslintrc"), []byte(`{"root":false}`), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	data, err := store.Read(".eslintrc")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if string(data) != `{"root":false}` {
		t.Errorf("Read() = %q, want override content", data)
	}

	if _, err := store.Read(".prettierrc"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Read(.prettierrc) error = %v, want fs.ErrNotExist", err)
	}
}

func TestDirStoreNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Dir(file)
	if err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("Dir(file) error = %v, want not a directory", err)
	}
}
