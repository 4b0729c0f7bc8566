package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulse-ui/pulse/internal/config"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Validate the project configuration",
		Long: `Load and validate pulse.json, reporting the effective settings.

Examples:
  pulse check
  pulse check ./my-app`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runCheck(dir)
		},
	}
	return cmd
}

func runCheck(dir string) error {
	root, err := config.FindProjectRoot(dir)
	if err != nil {
		return err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	fmt.Printf("config OK: %s\n", cfg.Path())
	fmt.Printf("  name:          %s\n", cfg.Name)
	fmt.Printf("  listen:        %s\n", cfg.Addr())
	fmt.Printf("  resume window: %s\n", cfg.ResumeWindow())
	fmt.Printf("  max sessions:  %d\n", cfg.Session.MaxSessions)
	if cfg.Assets.Bucket != "" {
		fmt.Printf("  assets:        s3://%s/%s (%s)\n", cfg.Assets.Bucket, cfg.Assets.Prefix, cfg.Assets.Region)
	} else {
		fmt.Printf("  assets:        %s\n", cfg.Assets.Dir)
	}
	fmt.Printf("  metrics:       %v\n", cfg.Metrics.Enabled)
	fmt.Printf("  tracing:       %v\n", cfg.Tracing.Enabled)
	return nil
}
