package notesfile

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/idilsaglam/notes/internal/errs"
)

// Plain-text storage. The whole file is read into memory and rewritten in
// full; there is no locking and no temp-file rename, so concurrent runs
// against the same file can race.

const defaultMode fs.FileMode = 0o644

// Read returns the full contents of the notes file. A missing file is an
// error: notes files are created by the user, never by us.
func Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrRead, err)
	}
	return string(b), nil
}

// Write truncates path and writes content, keeping the file's mode.
func Write(path, content string) error {
	mode := defaultMode
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrWrite, err)
	}
	return nil
}

// Store adapts Read and Write to an interface value for callers that take
// their storage as a dependency.
type Store struct{}

func (Store) Read(path string) (string, error) { return Read(path) }

func (Store) Write(path, content string) error { return Write(path, content) }
