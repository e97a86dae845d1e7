package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/handiism/modrinth-downloader/internal/config"
	ioutils "github.com/handiism/modrinth-downloader/internal/io"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "modrinth-dl.toml"

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				target = defaultConfigPath
			}

			if !overwrite {
				exists, err := ioutils.Exists(target)
				if err != nil {
					return fmt.Errorf("check config path: %w", err)
				}
				if exists {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				}
			}

			if err := config.DefaultSettings().Save(target); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Check a configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := defaultConfigPath
			if len(args) == 1 {
				target = args[0]
			}
			if _, err := os.Stat(target); err != nil {
				return fmt.Errorf("config %s: %w", target, err)
			}

			settings, err := config.Load(target)
			if err != nil {
				return err
			}
			if err := settings.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", target)
			return nil
		},
	}
}
