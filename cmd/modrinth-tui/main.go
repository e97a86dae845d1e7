package main

import (
	"fmt"
	"os"

	"github.com/handiism/modrinth-downloader/internal/config"
	"github.com/handiism/modrinth-downloader/internal/tui"
	"github.com/spf13/cobra"
)

func main() {
	var configPath string

	cmd := &cobra.Command{
		Use:           "modrinth-tui",
		Short:         "Interactive front end for modrinth-dl",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := settings.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			return tui.Run(settings)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "modrinth-dl.toml", "Configuration file path (TOML)")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
