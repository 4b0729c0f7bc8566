package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pulse-ui/pulse/internal/config"
)

func initCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a pulse.json in the given directory",
		Long: `Write a pulse.json with default settings.

Examples:
  pulse init
  pulse init ./my-app --name=my-app`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(dir, name)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name")

	return cmd
}

func runInit(dir, name string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	cfg := config.New()
	if name != "" {
		cfg.Name = name
	} else {
		abs, err := filepath.Abs(dir)
		if err == nil {
			cfg.Name = filepath.Base(abs)
		}
	}

	if err := cfg.SaveTo(path); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
