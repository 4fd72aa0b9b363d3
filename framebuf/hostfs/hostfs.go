// Package hostfs implements framebuf.FileSystem over the host's real
// filesystem, sandboxed to a base directory. It is adapted from
// file_io.go's sanitizePath baseDir-jail logic: the same rejection of
// absolute paths and ".." components, the same filepath.Rel containment
// check, re-expressed against framebuf's open/read/seek/close interface
// instead of a memory-mapped register protocol.
package hostfs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/qq65412857/micropython-meowbit/framebuf"
)

// FS is a framebuf.FileSystem rooted at a base directory. Every Open call
// is rejected unless the resolved path stays within that directory.
type FS struct {
	baseDir string
}

// New creates an FS sandboxed to baseDir.
func New(baseDir string) (*FS, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("hostfs: %w", err)
	}
	return &FS{baseDir: absBase}, nil
}

// sanitizePath rejects absolute paths and ".." components, then verifies
// the joined, cleaned path is still contained within baseDir.
func (fs *FS) sanitizePath(path string) (string, bool) {
	if filepath.IsAbs(path) || strings.Contains(path, "..") {
		return "", false
	}
	fullPath := filepath.Join(fs.baseDir, path)
	rel, err := filepath.Rel(fs.baseDir, fullPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return fullPath, true
}

// Open implements framebuf.FileSystem.
func (fs *FS) Open(path string) (framebuf.File, error) {
	fullPath, ok := fs.sanitizePath(path)
	if !ok {
		return nil, fmt.Errorf("hostfs: path %q escapes sandbox", path)
	}
	f, err := os.Open(fullPath)
	if err != nil {
		return nil, err
	}
	return f, nil
}
