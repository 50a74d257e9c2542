package validator

import (
	"fmt"
	"strings"

	"github.com/arcanaland/cardseed/internal/card"
	"github.com/arcanaland/cardseed/internal/deck"
)

// MinEntropyBits is the entropy below which a deck is flagged as weak.
const MinEntropyBits = 128

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether validation found no errors. Warnings do not count.
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Deck    *deck.Deck
	Results ValidationResults
}

func NewValidator(d *deck.Deck) *Validator {
	return &Validator{
		Deck:    d,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() ValidationResults {
	v.validateLength()
	v.validateDuplicates()
	v.validateMissing()
	v.validateEntropy()

	return v.Results
}

// validateLength warns when the deck is not a full 52-card deck
func (v *Validator) validateLength() {
	n := v.Deck.Len()
	if n == 0 {
		v.Results.Errors = append(v.Results.Errors, "deck is empty")
		return
	}
	if n != card.DeckSize {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("deck has %d cards (expected %d)", n, card.DeckSize))
	}
}

func (v *Validator) validateDuplicates() {
	for _, c := range v.Deck.Duplicates() {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("duplicate card: %s", c))
	}
}

// validateMissing reports standard cards absent from a non-empty deck.
// A deck that is short on purpose already carries a length warning, so
// missing cards only become an error once the deck claims to be complete.
func (v *Validator) validateMissing() {
	if v.Deck.Len() == 0 {
		return
	}
	missing := v.Deck.Missing()
	if len(missing) == 0 {
		return
	}

	names := make([]string, len(missing))
	for i, c := range missing {
		names[i] = c.String()
	}
	msg := fmt.Sprintf("missing %d card(s): %s", len(missing), strings.Join(names, " "))

	if v.Deck.Len() >= card.DeckSize {
		v.Results.Errors = append(v.Results.Errors, msg)
	} else {
		v.Results.Warnings = append(v.Results.Warnings, msg)
	}
}

func (v *Validator) validateEntropy() {
	// Entropy of a deck with repeats is overstated; the duplicate errors cover it.
	if v.Deck.Len() == 0 || v.Deck.HasDuplicates() {
		return
	}
	if bits := v.Deck.EntropyBits(); bits < MinEntropyBits {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("deck entropy is %.1f bits (recommended at least %d)", bits, MinEntropyBits))
	}
}
