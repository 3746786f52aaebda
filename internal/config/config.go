package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/idilsaglam/notes/internal/errs"
	"github.com/idilsaglam/notes/internal/logs"
	"github.com/idilsaglam/notes/internal/model"
)

// Config holds the resolved launcher configuration.
type Config struct {
	// BaseDir is the directory holding the notes files; $HOME unless overridden.
	BaseDir     string            `yaml:"dir,omitempty" mapstructure:"dir"`
	Editor      model.Editor      `yaml:"editor" mapstructure:"editor"`
	Profile     model.Profile     `yaml:"profile" mapstructure:"profile"`
	WorkFile    string            `yaml:"work_file" mapstructure:"work_file"`
	PrivateFile string            `yaml:"private_file" mapstructure:"private_file"`
	Commands    map[string]string `yaml:"commands" mapstructure:"commands"`
	LogFile     string            `yaml:"log_file,omitempty" mapstructure:"log_file"`
}

// CLIFlags holds the command-line overrides. Zero values mean "not set".
type CLIFlags struct {
	Editor  string
	VSCode  bool
	Private bool
}

// Load resolves configuration with priority:
// CLI flags > NOTES_* env vars > config file > defaults.
func Load(flags CLIFlags) (*Config, error) {
	path, err := Path()
	if err != nil {
		// No config dir means no config file; defaults and env still apply.
		logs.Logger.Printf("config: no config file: %v", err)
		path = ""
	}
	return LoadFile(path, flags)
}

// LoadFile is Load with an explicit config file path. A missing file is
// not an error; an empty path skips the file entirely.
func LoadFile(path string, flags CLIFlags) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("editor", string(model.EditorVim))
	v.SetDefault("profile", string(model.ProfileWork))
	v.SetDefault("work_file", DefaultWorkFile)
	v.SetDefault("private_file", DefaultPrivateFile)

	v.SetEnvPrefix("NOTES")
	for _, key := range []string{"dir", "editor", "profile"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if flags.Editor != "" {
		cfg.Editor = model.Editor(flags.Editor)
	}
	if flags.VSCode {
		cfg.Editor = model.EditorVSCode
	}
	if flags.Private {
		cfg.Profile = model.ProfilePrivate
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	editor, err := model.ParseEditor(string(c.Editor))
	if err != nil {
		return err
	}
	c.Editor = editor

	profile, err := model.ParseProfile(string(c.Profile))
	if err != nil {
		return err
	}
	c.Profile = profile

	commands := make(map[string]string, len(model.DefaultCommands))
	for e, bin := range model.DefaultCommands {
		commands[string(e)] = bin
	}
	for name, bin := range c.Commands {
		e, err := model.ParseEditor(name)
		if err != nil {
			return fmt.Errorf("commands: %w", err)
		}
		if bin = strings.TrimSpace(bin); bin != "" {
			commands[string(e)] = bin
		}
	}
	c.Commands = commands

	if c.BaseDir == "" {
		home, err := homeDir()
		if err != nil {
			return err
		}
		c.BaseDir = home
	}
	c.BaseDir = expandPath(c.BaseDir)

	if c.LogFile == "" {
		c.LogFile = DefaultLogPath()
	} else {
		c.LogFile = expandPath(c.LogFile)
	}
	return nil
}

// NotesPath returns the notes file for profile. Absolute file names are
// used as-is; relative ones are joined onto BaseDir.
func (c *Config) NotesPath(profile model.Profile) string {
	name := c.WorkFile
	if profile == model.ProfilePrivate {
		name = c.PrivateFile
	}
	name = expandPath(name)
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.BaseDir, name)
}

// Command returns the binary launched for editor.
func (c *Config) Command(editor model.Editor) string {
	if bin, ok := c.Commands[string(editor)]; ok {
		return bin
	}
	return editor.Command()
}

// EditorCommands returns Commands keyed by editor.
func (c *Config) EditorCommands() map[model.Editor]string {
	out := make(map[model.Editor]string, len(model.Editors))
	for _, e := range model.Editors {
		out[e] = c.Command(e)
	}
	return out
}

// Path returns the config file location, $XDG_CONFIG_HOME/notes/config.yaml
// or ~/.config/notes/config.yaml.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "notes", "config.yaml"), nil
}

// DefaultLogPath returns $XDG_STATE_HOME/notes/debug.log, falling back to
// ~/.local/state. It returns "" when neither can be resolved.
func DefaultLogPath() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "notes", "debug.log")
	}
	home, err := homeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "notes", "debug.log")
}

func homeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrHomeDirUnset, err)
	}
	if home == "" {
		return "", errs.ErrHomeDirUnset
	}
	return home, nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := homeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

