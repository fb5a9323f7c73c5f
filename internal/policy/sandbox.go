package policy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/steward/internal/domain"
)

// Root is the sandbox directory all filesystem actions are confined to.
type Root struct {
	path string
}

// NewRoot returns a Root for dir, made absolute and cleaned.
func NewRoot(dir string) (Root, error) {
	if dir == "" {
		return Root{}, fmt.Errorf("sandbox root is required")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Root{}, fmt.Errorf("resolving sandbox root: %w", err)
	}
	return Root{path: filepath.Clean(abs)}, nil
}

// MustRoot is NewRoot for roots known to be valid. It panics on error.
func MustRoot(dir string) Root {
	r, err := NewRoot(dir)
	if err != nil {
		panic(err)
	}
	return r
}

// Path returns the absolute root directory.
func (r Root) Path() string {
	return r.path
}

func (r Root) String() string {
	return r.path
}

// NormalizePath resolves userPath against root and returns the absolute
// result if it stays inside root. It performs no I/O.
func NormalizePath(userPath string, root Root) (string, error) {
	var resolved string
	if filepath.IsAbs(userPath) {
		resolved = filepath.Clean(userPath)
	} else {
		resolved = filepath.Join(root.path, userPath)
	}
	if !contains(root.path, resolved) {
		return "", fmt.Errorf("%q: %w", userPath, domain.ErrPathEscapesRoot)
	}
	return resolved, nil
}

// Normalize is NormalizePath bound to r.
func (r Root) Normalize(userPath string) (string, error) {
	return NormalizePath(userPath, r)
}

// Resolve normalizes userPath and, when the target exists, also rejects it
// if following symlinks lands outside the root.
func (r Root) Resolve(userPath string) (string, error) {
	resolved, err := NormalizePath(userPath, r)
	if err != nil {
		return "", err
	}

	target, err := filepath.EvalSymlinks(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return resolved, nil
		}
		return "", fmt.Errorf("resolving %q: %w", userPath, err)
	}
	realRoot, err := filepath.EvalSymlinks(r.path)
	if err != nil {
		realRoot = r.path
	}
	if !contains(realRoot, target) {
		return "", fmt.Errorf("%q links outside root: %w", userPath, domain.ErrPathEscapesRoot)
	}
	return resolved, nil
}

// contains reports whether path equals root or lies beneath it. The
// separator check keeps /srv/app2 from matching /srv/app.
func contains(root, path string) bool {
	if path == root {
		return true
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}
