package hostfs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenWithinSandboxSucceeds(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "asset.bmp"), []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	fs, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	f, err := fs.Open("asset.bmp")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	buf := make([]byte, 4)
	n, err := f.Read(buf)
	if err != nil || n != 4 {
		t.Fatalf("Read() = %d, %v, want 4, nil", n, err)
	}
}

func TestOpenRejectsAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	fs, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fs.Open("/etc/passwd"); err == nil {
		t.Fatal("expected an error opening an absolute path")
	}
}

func TestOpenRejectsParentTraversal(t *testing.T) {
	dir := t.TempDir()
	fs, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fs.Open("../secret.txt"); err == nil {
		t.Fatal("expected an error opening a path with ..")
	}
	if _, err := fs.Open("sub/../../secret.txt"); err == nil {
		t.Fatal("expected an error opening a path that escapes via ..")
	}
}

func TestOpenMissingFileErrors(t *testing.T) {
	dir := t.TempDir()
	fs, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fs.Open("missing.bmp"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
