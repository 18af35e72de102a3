package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultFile is the counter file used when none is configured.
const DefaultFile = "id.txt"

// ErrCorrupt is returned by Load when the stored value is not a
// non-negative decimal integer.
var ErrCorrupt = errors.New("store: corrupt id counter")

// File stores the counter as a single decimal integer in a text file.
type File struct {
	path string
}

// NewFile returns a File store at path. An empty path means DefaultFile.
func NewFile(path string) *File {
	if path == "" {
		path = DefaultFile
	}
	return &File{path: path}
}

// Path returns the file location.
func (f *File) Path() string { return f.path }

// Load reads the counter. A missing file is not an error and yields 0.
func (f *File) Load(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", f.path, err)
	}
	return parseCounter(string(data))
}

// Save writes the counter, replacing the previous value. Each call writes
// its own temporary file next to the final location and renames it into
// place, so concurrent saves never share a partial file.
func (f *File) Save(ctx context.Context, last uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(f.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp in %s: %w", dir, err)
	}
	name := tmp.Name()
	if err := writeTemp(tmp, last); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(name, f.path); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

// writeTemp fills and closes tmp.
func writeTemp(tmp *os.File, last uint64) error {
	if _, err := tmp.WriteString(strconv.FormatUint(last, 10)); err != nil {
		_ = tmp.Close()
		return err
	}
	// CreateTemp opens files 0600; the counter file has always been 0644.
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	return tmp.Close()
}

func parseCounter(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrCorrupt, s)
	}
	return v, nil
}
