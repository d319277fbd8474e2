// Package resource resolves bundled asset names to the file that should be
// used at runtime. An asset placed in an assets/ directory next to the
// executable (a packaged build) or in the working directory (running from
// source) overrides the copy embedded in the binary.
package resource

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"
)

// Dir is the directory assets live in, both on disk and in the embedded FS.
const Dir = "assets"

// ErrNotFound is returned when no source holds the asset.
var ErrNotFound = errors.New("asset not found")

// Resolver looks assets up on disk first and falls back to an embedded FS.
type Resolver struct {
	embedded fs.FS
	dirs     []string
}

// NewResolver creates a resolver over the embedded FS, searching the assets
// directory next to the executable and then the one in the working
// directory.
func NewResolver(embedded fs.FS) *Resolver {
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		if exe, err = filepath.EvalSymlinks(exe); err == nil {
			dirs = append(dirs, filepath.Join(filepath.Dir(exe), Dir))
		}
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, filepath.Join(wd, Dir))
	}
	return NewResolverWithDirs(embedded, dirs...)
}

// NewResolverWithDirs creates a resolver searching the given directories in
// order. A nil embedded FS disables the fallback.
func NewResolverWithDirs(embedded fs.FS, dirs ...string) *Resolver {
	return &Resolver{embedded: embedded, dirs: dirs}
}

// NotFoundError names the asset that could not be found.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string { return "asset not found: " + e.Name }

// Is reports ErrNotFound as a match.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func notFound(name string) error {
	return &NotFoundError{Name: name}
}

// Path returns the absolute on-disk path of the named asset.
func (r *Resolver) Path(name string) (string, error) {
	for _, dir := range r.dirs {
		p := filepath.Join(dir, filepath.FromSlash(name))
		fi, err := os.Stat(p)
		if err != nil || fi.IsDir() {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", errors.Wrapf(err, "resolve %s", name)
		}
		return abs, nil
	}
	return "", notFound(name)
}

// ReadFile returns the contents of the named asset.
func (r *Resolver) ReadFile(name string) ([]byte, error) {
	if p, err := r.Path(name); err == nil {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, errors.Wrapf(err, "read asset %s", p)
		}
		return data, nil
	}

	if r.embedded != nil {
		data, err := fs.ReadFile(r.embedded, path.Join(Dir, name))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "read embedded asset %s", name)
		}
	}
	return nil, notFound(name)
}

// Open returns a stream over the named asset. The caller closes it.
func (r *Resolver) Open(name string) (io.ReadCloser, error) {
	if p, err := r.Path(name); err == nil {
		f, err := os.Open(p)
		if err != nil {
			return nil, errors.Wrapf(err, "open asset %s", p)
		}
		return f, nil
	}

	data, err := r.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
