package cmd

import (
	"fmt"

	"github.com/arcanaland/cardseed/internal/config"
	"github.com/spf13/cobra"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the cardseed configuration",
	Long:  `Commands for managing the cardseed configuration file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		fmt.Fprintf(out, "  encoding = %s\n  strict   = %t\n  color    = %t\n", cfg.Encoding, cfg.Strict, cfg.Color)
		return nil
	},
}

// configSetEncodingCmd represents the config set-encoding command
var configSetEncodingCmd = &cobra.Command{
	Use:   "set-encoding [encoding]",
	Short: "Set the default output encoding (hex, base64 or bytes)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetEncoding(args[0]); err != nil {
			return fmt.Errorf("error setting encoding: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default encoding set to: %s\n", args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetEncodingCmd)
}
