package card

import (
	"fmt"
	"strings"
)

const (
	// DeckSize is the number of cards in a full deck with no duplicates.
	DeckSize = 52

	// SuitSize is the number of cards in a suit.
	SuitSize = DeckSize / 4
)

const faceGlyphs = "A23456789TJQK"

// Card represents a playing card.
// Value is the face, 0 for the ace up to 12 for the king.
type Card struct {
	Suit  Suit
	Value int
}

// AceOfSpades returns the card with canonical index 0
func AceOfSpades() Card {
	return Card{Suit: Spades, Value: 0}
}

// FromIndex decodes a canonical index in [0, 52)
func FromIndex(x int) (Card, error) {
	if x < 0 || x >= DeckSize {
		return Card{}, &BadIntegerError{Value: x}
	}
	suit, err := SuitFromOrdinal(x / SuitSize)
	if err != nil {
		return Card{}, err
	}
	return Card{Suit: suit, Value: x % SuitSize}, nil
}

// Index returns the canonical index of the card.
//
// A card built directly with an out-of-range Value or Suit is a broken
// invariant, not bad input, so Index panics instead of returning an error.
func (c Card) Index() int {
	if c.Value < 0 || c.Value >= SuitSize || !c.Suit.valid() {
		panic(fmt.Sprintf("card: invalid card {suit:%d value:%d}", int(c.Suit), c.Value))
	}
	return c.Suit.Ordinal()*SuitSize + c.Value
}

// String formats the card as its 2-character canonical text, e.g. "TH"
func (c Card) String() string {
	var b strings.Builder
	b.WriteByte(faceGlyphs[c.Index()%SuitSize])
	b.WriteRune(c.Suit.Code())
	return b.String()
}

// Parse reads a card from its canonical text. Only the first two
// characters are consumed; splitting tokens is up to the caller.
func Parse(s string) (Card, error) {
	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, &BadStringError{Value: s}
	}

	var value int
	switch f := runes[0]; {
	case f >= '2' && f <= '9':
		value = int(f-'0') - 1
	default:
		i := strings.IndexRune("ATJQK", f)
		if i < 0 {
			return Card{}, &BadStringError{Value: s}
		}
		value = [...]int{0, 9, 10, 11, 12}[i]
	}

	suit, err := SuitFromCode(runes[1])
	if err != nil {
		return Card{}, err
	}

	return Card{Suit: suit, Value: value}, nil
}
