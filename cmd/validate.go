package cmd

import (
	"fmt"

	"github.com/arcanaland/cardseed/internal/validator"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a recorded deck",
	Long: `Validate checks that a recorded deck is a complete 52-card deck with no
duplicates, and reports its entropy. Reads from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(); err != nil {
			return err
		}

		d, err := readDeck(cmd, args)
		if err != nil {
			return err
		}

		results := validator.NewValidator(d).Validate()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintln(out, colorize.GreenString("✅ Deck of %d cards is valid (%.1f bits of entropy).", d.Len(), d.EntropyBits()))
		} else {
			fmt.Fprintln(out, colorize.RedString("❌ Deck has %d validation errors:", len(results.Errors)))
			for i, e := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, e)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if !results.Valid() {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
