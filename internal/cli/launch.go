package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/notes/internal/config"
	"github.com/idilsaglam/notes/internal/header"
	"github.com/idilsaglam/notes/internal/launch"
	"github.com/idilsaglam/notes/internal/logs"
	"github.com/idilsaglam/notes/internal/model"
	"github.com/idilsaglam/notes/internal/ui"
)

func (a *app) runLaunch(cmd *cobra.Command, args []string) error {
	flags := config.CLIFlags{
		VSCode:  a.flags.vscode,
		Private: a.flags.private,
	}
	if len(args) == 1 {
		if _, err := model.ParseEditor(args[0]); err != nil {
			return usageError{err}
		}
		flags.Editor = args[0]
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logs.Initialize(cfg.LogFile, a.flags.verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logger: %v\n", err)
	}

	editor := cfg.Editor
	if a.flags.pick {
		editor, err = ui.PickEditor(cfg.EditorCommands(), editor)
		if errors.Is(err, ui.ErrPickCancelled) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("picker: %w", err)
		}
	}

	path := cfg.NotesPath(cfg.Profile)
	logs.Logger.Printf("notes file %s (profile=%s editor=%s clear=%t)",
		path, cfg.Profile, editor, a.flags.clear)

	if err := header.New().EnsureHeader(path, a.flags.clear); err != nil {
		return err
	}

	code, err := launch.New(cfg.EditorCommands()).Open(editor, path)
	a.exitCode = code
	return err
}
