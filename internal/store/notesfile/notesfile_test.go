package notesfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/idilsaglam/notes/internal/errs"
)

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "notes.txt"))
	if !errors.Is(err, errs.ErrRead) {
		t.Fatalf("expected ErrRead, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected underlying ErrNotExist, got %v", err)
	}
}

func TestWrite_PreservesMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := Write(path, "new content"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if got != "new content" {
		t.Errorf("expected %q, got %q", "new content", got)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat error: %v", err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Errorf("expected mode 0600, got %o", fi.Mode().Perm())
	}
}

func TestWrite_Unwritable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing-dir")
	err := Write(filepath.Join(dir, "notes.txt"), "x")
	if !errors.Is(err, errs.ErrWrite) {
		t.Fatalf("expected ErrWrite, got %v", err)
	}
}
