package main

import (
	"fmt"

	"github.com/AD2708/multi-part/internal/config"
	"github.com/spf13/cobra"
)

var initProject bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current settings",
	Long: `Write a config file with the current settings.

By default the global config is written to ~/.config/multipart/multipart.yml.
With --project a multipart.yml is written to the current directory instead;
project config overrides the global one.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initProject, "project", false, "write ./multipart.yml instead of the global config")
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if initProject {
		if err := config.WriteProject(cfg); err != nil {
			return fmt.Errorf("failed to write project config: %w", err)
		}
		fmt.Printf("Wrote %s\n", config.ProjectPath())
		return nil
	}

	if err := config.WriteGlobal(cfg); err != nil {
		return fmt.Errorf("failed to write global config: %w", err)
	}
	fmt.Printf("Wrote %s\n", config.GlobalPath())
	return nil
}
