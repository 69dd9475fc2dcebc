package storage

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode"
)

// ErrNotFound is returned when a requested file does not exist in the store.
var ErrNotFound = errors.New("file not found")

// FileStore abstracts the backing store for uploaded images.
type FileStore interface {
	// List returns the stored filenames in the order the backing store
	// reports them.
	List() ([]string, error)
	// Save persists data under filename, overwriting any existing file.
	Save(filename string, data []byte) error
	// Read returns the contents of filename, or ErrNotFound.
	Read(filename string) ([]byte, error)
}

// DiskStore keeps uploaded files in a single flat directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the uploads directory if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (d *DiskStore) List() ([]string, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func (d *DiskStore) Save(filename string, data []byte) error {
	if !safeName(filename) {
		return fmt.Errorf("unsafe filename %q", filename)
	}
	return os.WriteFile(filepath.Join(d.dir, filename), data, 0644)
}

func (d *DiskStore) Read(filename string) ([]byte, error) {
	// Traversal attempts look the same as missing files to the caller.
	if !safeName(filename) {
		return nil, ErrNotFound
	}
	data, err := os.ReadFile(filepath.Join(d.dir, filename))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func safeName(filename string) bool {
	return filename != "" &&
		filename != "." &&
		filename != ".." &&
		!strings.ContainsAny(filename, `/\`)
}

// SanitizeFilename reduces a client-supplied filename to a safe flat name:
// path components are dropped, whitespace becomes underscores, and anything
// outside [A-Za-z0-9_.-] is removed. Returns "" if nothing safe remains.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "._")
}
