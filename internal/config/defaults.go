package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/notes/internal/model"
)

const (
	DefaultWorkFile    = "notes.txt"
	DefaultPrivateFile = "notes-personal.txt"
)

const defaultHeader = `# notes launcher configuration
#
# Every key can also be set through the environment:
#   NOTES_EDITOR, NOTES_PROFILE, NOTES_DIR
`

// DefaultConfig returns the configuration written by WriteDefault.
func DefaultConfig() *Config {
	commands := make(map[string]string, len(model.DefaultCommands))
	for e, bin := range model.DefaultCommands {
		commands[string(e)] = bin
	}
	return &Config{
		Editor:      model.EditorVim,
		Profile:     model.ProfileWork,
		WorkFile:    DefaultWorkFile,
		PrivateFile: DefaultPrivateFile,
		Commands:    commands,
	}
}

// WriteDefault writes DefaultConfig as YAML to path. An existing file is
// only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(defaultHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(DefaultConfig()); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
