package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"duecode-go/internal/config"
	"duecode-go/internal/log"
)

const (
	LogLevelOptionName = "log-level"
	ConfigOptionName   = "config"
)

type rootOptions struct {
	logLevel   string
	configPath string
}

// scenario loads --config if given, else the defaults.
func (o *rootOptions) scenario() (config.Scenario, error) {
	if o.configPath == "" {
		return config.DefaultScenario(), nil
	}
	return config.Load(o.configPath)
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "duesim",
		Short:         "Run the Due blink firmware on simulated hardware",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := opts.logLevel
			if level == "" {
				level = config.DefaultLogLevel
				if sc, err := opts.scenario(); err == nil && sc.LogLevel != "" {
					level = sc.LogLevel
				}
			}
			return log.Init(cmd.ErrOrStderr(), level)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, LogLevelOptionName, "", fmt.Sprintf("Log level. %s", log.HelpLevels))
	cmd.PersistentFlags().StringVar(&opts.configPath, ConfigOptionName, "", "Scenario YAML file")
	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newInitCommand(opts))
	return cmd
}
