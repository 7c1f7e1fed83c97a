package materialize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/projkit-labs/projkit/internal/templates"
)

// filePerm is the mode of copied configuration files.
const filePerm = 0644

// Conflict is a destination that already existed and was not overwritten.
type Conflict struct {
	Name string
	Path string
}

// Message returns the user-facing conflict notice.
func (c Conflict) Message() string {
	return fmt.Sprintf("File existed at: %s", c.Path)
}

// Result lists what a Copy call wrote and what it skipped.
type Result struct {
	Written   []string
	Conflicts []Conflict
}

// Copy writes each named template into dir. Existing destinations are
// recorded as conflicts and processing continues with the next name. A
// template that cannot be read stops the copy and returns the error together
// with the partial result.
func Copy(store templates.Store, dir string, names ...string) (*Result, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving target directory: %w", err)
	}

	result := &Result{}
	for _, name := range names {
		dst := filepath.Join(absDir, name)

		if _, err := os.Lstat(dst); err == nil {
			result.Conflicts = append(result.Conflicts, Conflict{Name: name, Path: dst})
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return result, fmt.Errorf("checking %s: %w", dst, err)
		}

		data, err := store.Read(name)
		if err != nil {
			return result, err
		}

		created, err := writeExclusive(dst, data)
		if err != nil {
			return result, fmt.Errorf("writing %s: %w", dst, err)
		}
		if !created {
			result.Conflicts = append(result.Conflicts, Conflict{Name: name, Path: dst})
			continue
		}
		result.Written = append(result.Written, name)
	}
	return result, nil
}

// writeExclusive stages data in a temp file next to dst and publishes it
// with a hard link, which fails if dst appeared meanwhile. Readers never see
// a partially written destination. It reports false when dst already exists.
func writeExclusive(dst string, data []byte) (bool, error) {
	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return false, err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return false, err
	}
	if err := tmp.Close(); err != nil {
		return false, err
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return false, err
	}

	err = os.Link(tmpName, dst)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrExist):
		return false, nil
	}

	// Some filesystems refuse hard links; fall back to a rename guarded by a
	// last-moment existence check.
	if _, statErr := os.Lstat(dst); statErr == nil {
		return false, nil
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return false, err
	}
	return true, nil
}
