package launch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/idilsaglam/notes/internal/errs"
	"github.com/idilsaglam/notes/internal/logs"
	"github.com/idilsaglam/notes/internal/model"
)

// Launcher opens files in an external editor and blocks until it exits.
type Launcher struct {
	Commands map[model.Editor]string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Launcher wired to the process's standard streams.
func New(commands map[model.Editor]string) *Launcher {
	return &Launcher{
		Commands: commands,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}

// Command returns the binary used for editor.
func (l *Launcher) Command(editor model.Editor) string {
	if bin, ok := l.Commands[editor]; ok && bin != "" {
		return bin
	}
	return editor.Command()
}

// Open runs the editor with path as its only argument and returns the
// editor's exit code. A non-zero exit is reported through the code, not
// as an error; errors wrap errs.ErrEditorSpawn or errs.ErrEditorWait.
func (l *Launcher) Open(editor model.Editor, path string) (int, error) {
	bin := l.Command(editor)
	if bin == "" {
		return 1, fmt.Errorf("%w: no command configured for %s", errs.ErrEditorSpawn, editor)
	}

	cmd := exec.Command(bin, path)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	logs.Logger.Printf("launch: %s %s", bin, path)
	if err := cmd.Start(); err != nil {
		return 1, fmt.Errorf("%w: start %s: %w", errs.ErrEditorSpawn, bin, err)
	}

	err := cmd.Wait()
	if err == nil {
		logs.Logger.Printf("launch: %s exited 0", bin)
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Killed by a signal; there is no exit status to forward.
			return 1, fmt.Errorf("%w: %s: %w", errs.ErrEditorWait, bin, err)
		}
		logs.Logger.Printf("launch: %s exited %d", bin, code)
		return code, nil
	}
	return 1, fmt.Errorf("%w: %s: %w", errs.ErrEditorWait, bin, err)
}
