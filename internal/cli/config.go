package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/notes/internal/config"
	"github.com/idilsaglam/notes/internal/model"
	"github.com/idilsaglam/notes/internal/ui"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the notes configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return fmt.Errorf("config path: %w", err)
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			ui.OK("wrote " + path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show resolved config, notes, and log paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.CLIFlags{})
			if err != nil {
				return err
			}
			cfgPath, err := config.Path()
			if err != nil {
				cfgPath = "(unavailable)"
			}
			const w = 10
			lines := []string{
				ui.KeyValue("config", cfgPath, w),
				ui.KeyValue("work", cfg.NotesPath(model.ProfileWork), w),
				ui.KeyValue("private", cfg.NotesPath(model.ProfilePrivate), w),
				ui.KeyValue("log", cfg.LogFile, w),
				ui.KeyValue("editor", fmt.Sprintf("%s (%s)", cfg.Editor, cfg.Command(cfg.Editor)), w),
			}
			ui.Panel("notes", lines)
			return nil
		},
	}

	configCmd.AddCommand(initCmd, pathCmd)
	return configCmd
}
