package main

import (
	"errors"

	"github.com/spf13/cobra"

	"duecode-go/internal/config"
	"duecode-go/internal/log"
)

const OverwriteOptionName = "overwrite"

func newInitCommand(root *rootOptions) *cobra.Command {
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default scenario to --config",
		RunE: func(cmd *cobra.Command, args []string) error {
			if root.configPath == "" {
				return errors.New("--config is required")
			}
			if err := config.DefaultScenario().Save(root.configPath, overwrite); err != nil {
				return err
			}
			log.Info("wrote %s", root.configPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, OverwriteOptionName, false, "Replace an existing file")
	return cmd
}
