package cmd

import (
	"io"
	"log/slog"

	"github.com/arcanaland/cardseed/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// logger writes diagnostics to stderr; it is silent unless --verbose is set
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardseed",
	Short: "Derive secrets from shuffled decks of playing cards",
	Long: `Cardseed turns a physically shuffled deck of 52 playing cards into a
deterministic 256-bit secret. Record the deck as text (e.g. "AS 7H TD ..."),
validate it, measure its entropy and hash it with PBKDF2-HMAC-SHA256,
optionally strengthened with a passphrase.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor {
			color.NoColor = true
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug logging to stderr")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	RootCmd.AddCommand(hashCmd)
	RootCmd.AddCommand(shuffleCmd)
	RootCmd.AddCommand(validateCmd)
	RootCmd.AddCommand(entropyCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig loads the user config and applies its color preference
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.Color {
		color.NoColor = true
	}
	logger.Debug("loaded config", "path", config.GetConfigFilePath(), "encoding", cfg.Encoding, "strict", cfg.Strict)
	return cfg, nil
}
