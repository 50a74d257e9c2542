package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/arcanaland/cardseed/internal/card"
	"github.com/arcanaland/cardseed/internal/deck"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Display a deck as a colored card grid",
	Long: `Show displays a recorded deck as a grid of cards with suit symbols, next
to its length, entropy and any duplicate or missing cards. Reads from
stdin when no file is given.

Examples:
  cardseed show deck.txt
  cardseed shuffle | cardseed show
  cardseed show --sorted deck.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(); err != nil {
			return err
		}

		// Load the deck
		d, err := readDeck(cmd, args)
		if err != nil {
			return err
		}

		// Put cards in canonical order if asked
		sorted, _ := cmd.Flags().GetBool("sorted")
		if sorted {
			d = d.Sorted()
		}

		// Display the deck with its info column
		displayDeck(cmd.OutOrStdout(), d, terminalWidth())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolP("sorted", "s", false, "Show the cards in canonical order")
}

// terminalWidth returns the width of stdout, or 80 if it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// getSuitSymbol returns the Unicode symbol for a suit
func getSuitSymbol(s card.Suit) string {
	switch s {
	case card.Spades:
		return "♠"
	case card.Clubs:
		return "♣"
	case card.Hearts:
		return "♥"
	case card.Diamonds:
		return "♦"
	default:
		return "•"
	}
}

// formatCard renders a card as its face glyph and colored suit symbol
func formatCard(c card.Card) string {
	face := c.String()[:1]
	symbol := getSuitSymbol(c.Suit)
	if c.Suit == card.Hearts || c.Suit == card.Diamonds {
		return colorize.HiRedString("%s%s", face, symbol)
	}
	return colorize.HiWhiteString("%s%s", face, symbol)
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40 // Use a sensible default if width is too small
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		// Check if adding this word would exceed the width
		if len(currentLine) == 0 {
			// First word on the line, always add it
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			// Word fits on current line with a space
			currentLine += " " + word
		} else {
			// Word doesn't fit, start a new line
			result = append(result, currentLine)
			currentLine = word
		}
	}

	// Add the last line if not empty
	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// suitCounts summarizes how many cards of each suit the deck holds
func suitCounts(d *deck.Deck) string {
	var counts [4]int
	for _, c := range d.Cards {
		counts[c.Suit.Ordinal()]++
	}

	parts := make([]string, 0, len(counts))
	for _, s := range card.AllSuits() {
		parts = append(parts, fmt.Sprintf("%s %d", s.Name(), counts[s.Ordinal()]))
	}
	return strings.Join(parts, " · ")
}

// cardNames joins the canonical text of each card with spaces
func cardNames(cards []card.Card) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return strings.Join(names, " ")
}

// displayDeck prints the card grid on the left and deck info on the right
func displayDeck(w io.Writer, d *deck.Deck, width int) {
	// One suit's worth of cards per row, 3 columns per card
	const cellWidth = 3
	perRow := card.SuitSize

	// Build the card grid
	var gridLines []string
	for start := 0; start < d.Len(); start += perRow {
		end := min(start+perRow, d.Len())
		cells := make([]string, 0, end-start)
		for _, c := range d.Cards[start:end] {
			cells = append(cells, formatCard(c))
		}
		gridLines = append(gridLines, strings.Join(cells, " "))
	}
	gridWidth := perRow*cellWidth - 1

	// Calculate layout
	// The grid goes on the left and info on the right
	spacing := 4
	infoStartCol := gridWidth + spacing
	// Calculate available width for text, ensuring it's at least 20 characters
	infoWidth := width - infoStartCol - 2 // Leave a small margin
	if infoWidth < 20 {
		infoWidth = 20 // Minimum width for text
	}

	// Prepare the info lines
	var infoLines []string
	infoLines = append(infoLines, colorize.CyanString("Cards:   ")+colorize.HiWhiteString("%d", d.Len()))

	entropy := colorize.HiWhiteString("%.1f bits", d.EntropyBits())
	if d.HasDuplicates() {
		entropy += colorize.YellowString(" (overstated)")
	}
	infoLines = append(infoLines, colorize.CyanString("Entropy: ")+entropy)
	infoLines = append(infoLines, colorize.CyanString("Suits:   ")+colorize.HiWhiteString("%s", suitCounts(d)))

	// List duplicate and missing cards, wrapped to the info column
	if dups := d.Duplicates(); len(dups) > 0 {
		infoLines = append(infoLines, "", colorize.RedString("Duplicates:"))
		infoLines = append(infoLines, wrapText(cardNames(dups), infoWidth)...)
	}
	if d.Len() > 0 {
		if missing := d.Missing(); len(missing) > 0 {
			infoLines = append(infoLines, "", colorize.YellowString("Missing:"))
			infoLines = append(infoLines, wrapText(cardNames(missing), infoWidth)...)
		}
	}

	// Print the header
	fmt.Fprintln(w)

	// Print each line
	maxLines := max(len(gridLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		// Print 2-character wide left padding
		fmt.Fprint(w, "  ")
		// Print grid line if available
		if i < len(gridLines) {
			fmt.Fprint(w, gridLines[i])
			// Pad to infoStartCol
			visibleWidth := utf8.RuneCountInString(stripAnsi(gridLines[i]))
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol-visibleWidth))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol))
		}

		// Print info line if available
		if i < len(infoLines) {
			fmt.Fprint(w, infoLines[i])
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
