package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/notes/internal/errs"
	"github.com/idilsaglam/notes/internal/logs"
	"github.com/idilsaglam/notes/internal/ui"
)

// rootFlags holds the flags shared by the launch command.
type rootFlags struct {
	clear   bool
	private bool
	vscode  bool
	pick    bool
	verbose bool
}

// app carries per-invocation state so a command tree can be built and run
// more than once in the same process.
type app struct {
	flags    rootFlags
	exitCode int
}

// usageError marks errors caused by bad arguments (exit code 2).
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func newRootCmd(a *app, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "notes [vim|cursor|vscode]",
		Short: "Open today's notes in your editor",
		Long: `notes stamps your notes file with today's date and opens it in an editor.

The first line of the file becomes today's date (MM/DD/YYYY) followed by a
---------- separator. With --clear, 50 blank lines are inserted under the
separator so earlier notes stay off-screen, e.g. while sharing your screen.`,
		Args:          usageArgs(cobra.MaximumNArgs(1)),
		RunE:          a.runLaunch, // Default action is launch
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	f := root.Flags()
	f.BoolVarP(&a.flags.clear, "clear", "c", false, "Insert 50 newlines to not show notes on startup")
	f.BoolVarP(&a.flags.private, "private", "p", false, "Open non-work notes")
	f.BoolVar(&a.flags.vscode, "vscode", false, "Use VSCode")
	f.BoolVar(&a.flags.pick, "pick", false, "Choose the editor interactively")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "Mirror debug log to stderr")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.AddCommand(newConfigCmd(), newVersionCmd(version))
	return root
}

// usageArgs marks positional argument failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the notes version",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "notes version %s\n", version)
		},
	}
}

// Run executes the CLI with args and returns the process exit code: the
// editor's own code after a launch, 1 on a runtime failure, 2 on misuse.
func Run(args []string, version string) int {
	a := &app{}
	root := newRootCmd(a, version)
	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}
	root.SetArgs(args)

	err := root.Execute()
	logs.Close()
	if err == nil {
		return a.exitCode
	}

	ui.Fail(err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(os.Stderr)
		ui.Hint(root.UsageString())
		return 2
	}
	switch {
	case errors.Is(err, errs.ErrRead):
		ui.Hint("The notes file must already exist; create it with `touch` first.")
	case errors.Is(err, errs.ErrHomeDirUnset):
		ui.Hint("Set HOME or NOTES_DIR to locate your notes.")
	case errors.Is(err, errs.ErrEditorSpawn):
		ui.Hint("Is the editor installed and on your PATH? See `notes config path`.")
	}
	return 1
}

