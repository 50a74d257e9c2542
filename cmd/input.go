package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/arcanaland/cardseed/internal/deck"
	"github.com/spf13/cobra"
)

// readDeck parses a deck from the file named in args, or from stdin when
// no file (or "-") is given
func readDeck(cmd *cobra.Command, args []string) (*deck.Deck, error) {
	var (
		data   []byte
		err    error
		source = "stdin"
	)

	if len(args) > 0 && args[0] != "-" {
		source = args[0]
		data, err = os.ReadFile(source)
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return nil, fmt.Errorf("error reading deck from %s: %w", source, err)
	}

	d, err := deck.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("error parsing deck from %s: %w", source, err)
	}

	logger.Debug("read deck", "source", source, "cards", d.Len())
	return d, nil
}
