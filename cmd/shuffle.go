package cmd

import (
	"fmt"

	"github.com/arcanaland/cardseed/internal/deck"
	"github.com/spf13/cobra"
)

// shuffleCmd represents the shuffle command
var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Print a deck shuffled with the system's secure random source",
	Long: `Shuffle prints a standard deck in a uniformly random order drawn from the
operating system's cryptographically secure random source. Use it when no
physical deck is at hand, or to practice recording decks.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		if count < 1 {
			return fmt.Errorf("count must be at least 1, got %d", count)
		}

		for i := 0; i < count; i++ {
			d, err := deck.New().Shuffle()
			if err != nil {
				return fmt.Errorf("error shuffling deck: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
		}

		logger.Debug("shuffled decks", "count", count, "entropy_bits", deck.New().EntropyBits())
		return nil
	},
}

func init() {
	shuffleCmd.Flags().IntP("count", "n", 1, "Number of decks to print")
}
