// Package errs defines the error kinds shared across the notes launcher.
//
// Every kind is fatal at the command line; callers wrap these with
// fmt.Errorf("...: %w", ...) and test for them with errors.Is.
package errs

import "errors"

var (
	// ErrHomeDirUnset indicates no base directory could be resolved.
	ErrHomeDirUnset = errors.New("home directory unset")

	// ErrRead indicates the notes file is missing or unreadable.
	ErrRead = errors.New("read error")

	// ErrWrite indicates the notes file could not be rewritten.
	ErrWrite = errors.New("write error")

	// ErrEditorSpawn indicates the editor binary could not be started.
	ErrEditorSpawn = errors.New("editor spawn error")

	// ErrEditorWait indicates a failure while waiting on the editor process.
	ErrEditorWait = errors.New("editor wait error")
)
