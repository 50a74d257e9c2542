package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/arcanaland/cardseed/internal/card"
	"github.com/arcanaland/cardseed/internal/deck"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// entropyCmd represents the entropy command
var entropyCmd = &cobra.Command{
	Use:   "entropy [n | file]",
	Short: "Print the entropy in bits of a shuffled deck",
	Long: `Entropy prints log2(n!), the number of bits of entropy in a uniformly
shuffled deck of n distinct cards. The argument is either the number of
cards or a file holding a recorded deck; with no argument the deck is read
from stdin, and with no input at all a full deck of 52 cards is assumed.

The figure assumes the deck has no duplicates and was shuffled uniformly.

Examples:
  cardseed entropy
  cardseed entropy 40
  cardseed entropy deck.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		// --cards and a numeric argument both skip reading a deck
		if cmd.Flags().Changed("cards") {
			n, _ := cmd.Flags().GetInt("cards")
			return printEntropy(cmd, n)
		}
		if len(args) == 1 {
			if n, err := strconv.Atoi(args[0]); err == nil {
				return printEntropy(cmd, n)
			}
		}

		// Nothing piped in and no file named: assume a full deck
		if len(args) == 0 && stdinIsTerminal(cmd) {
			return printEntropy(cmd, card.DeckSize)
		}

		d, err := readDeck(cmd, args)
		if err != nil {
			return err
		}

		// Empty stdin counts as no input
		if len(args) == 0 && d.Len() == 0 {
			return printEntropy(cmd, card.DeckSize)
		}

		if d.HasDuplicates() {
			fmt.Fprintln(cmd.ErrOrStderr(), colorize.YellowString("warning: deck has duplicate cards, entropy is overstated"))
		}

		fmt.Fprintf(out, "%.2f\n", d.EntropyBits())
		return nil
	},
}

func init() {
	entropyCmd.Flags().IntP("cards", "n", card.DeckSize, "Compute entropy for a deck of this many cards")
}

// printEntropy prints the entropy of a shuffled deck of n cards
func printEntropy(cmd *cobra.Command, n int) error {
	if n < 0 {
		return fmt.Errorf("number of cards must not be negative, got %d", n)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", deck.EntropyBits(n))
	return nil
}

// stdinIsTerminal reports whether the command reads from an interactive terminal
func stdinIsTerminal(cmd *cobra.Command) bool {
	return cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd()))
}
