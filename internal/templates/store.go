package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

//go:embed all:files
var embedded embed.FS

// Store reads template files by name.
type Store interface {
	// Read returns the verbatim content of the named template. A missing
	// template yields an error wrapping fs.ErrNotExist.
	Read(name string) ([]byte, error)
	// Names lists the available templates, sorted.
	Names() ([]string, error)
}

// FSStore is a Store backed by a flat fs.FS directory.
type FSStore struct {
	fsys   fs.FS
	origin string
}

// Embedded returns the store shipped inside the binary.
func Embedded() *FSStore {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		// The embed directive guarantees "files" exists.
		panic(fmt.Sprintf("embedded templates: %v", err))
	}
	return &FSStore{fsys: sub, origin: "embedded"}
}

// Dir returns a store reading templates from a directory on disk.
func Dir(path string) (*FSStore, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template path %s is not a directory", path)
	}
	return &FSStore{fsys: os.DirFS(path), origin: path}, nil
}

// Open returns the directory store when dir is set, the embedded store
// otherwise.
func Open(dir string) (Store, error) {
	if dir == "" {
		return Embedded(), nil
	}
	return Dir(dir)
}

// Read implements Store.
func (s *FSStore) Read(name string) ([]byte, error) {
	if !isPlainName(name) {
		return nil, fmt.Errorf("invalid template name %q", name)
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s from %s: %w", name, s.origin, err)
	}
	return data, nil
}

// Names implements Store.
func (s *FSStore) Names() ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("listing templates in %s: %w", s.origin, err)
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// String returns where the store reads from.
func (s *FSStore) String() string { return s.origin }

// isPlainName rejects paths; templates are keyed by bare filename.
func isPlainName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		fs.ValidPath(name) && !strings.ContainsAny(name, `/\`)
}
