package deck

import (
	"math"
	"sort"
	"strings"

	"github.com/arcanaland/cardseed/internal/card"
)

// Deck represents an ordered sequence of playing cards.
//
// The order is the order the cards were drawn in and is kept verbatim
// through Parse and String. A Deck may hold any number of cards and may
// contain duplicates; use HasDuplicates to check.
type Deck struct {
	Cards []card.Card
}

// New creates a standard deck sorted in ascending order from the ace of
// spades to the king of diamonds
func New() *Deck {
	d := &Deck{Cards: make([]card.Card, 0, card.DeckSize)}
	suits := card.AllSuits()
	for i := 0; i < card.DeckSize; i++ {
		d.Cards = append(d.Cards, card.Card{
			Suit:  suits[i/card.SuitSize],
			Value: i % card.SuitSize,
		})
	}
	return d
}

// Parse reads a deck from whitespace-delimited card tokens.
//
// Parsing accepts any sequence of valid cards, duplicates included.
// It stops at the first invalid token and returns no partial deck.
func Parse(s string) (*Deck, error) {
	tokens := strings.Fields(s)
	d := &Deck{Cards: make([]card.Card, 0, len(tokens))}
	for _, token := range tokens {
		c, err := card.Parse(token)
		if err != nil {
			return nil, err
		}
		d.Cards = append(d.Cards, c)
	}
	return d, nil
}

// String formats the deck as space-delimited canonical card text
func (d *Deck) String() string {
	var b strings.Builder
	for i, c := range d.Cards {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.Cards)
}

// HasDuplicates reports whether any two positions hold the same card
func (d *Deck) HasDuplicates() bool {
	seen := make(map[card.Card]struct{}, len(d.Cards))
	for _, c := range d.Cards {
		if _, ok := seen[c]; ok {
			return true
		}
		seen[c] = struct{}{}
	}
	return false
}

// Duplicates returns each card that appears more than once, in the order
// its first repeat was found
func (d *Deck) Duplicates() []card.Card {
	counts := make(map[card.Card]int, len(d.Cards))
	var dups []card.Card
	for _, c := range d.Cards {
		counts[c]++
		if counts[c] == 2 {
			dups = append(dups, c)
		}
	}
	return dups
}

// Missing returns the standard cards absent from the deck, in canonical order
func (d *Deck) Missing() []card.Card {
	present := make(map[card.Card]bool, len(d.Cards))
	for _, c := range d.Cards {
		present[c] = true
	}
	var missing []card.Card
	for _, c := range New().Cards {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// Sorted returns a copy of the deck ordered by canonical index
func (d *Deck) Sorted() *Deck {
	cards := make([]card.Card, len(d.Cards))
	copy(cards, d.Cards)
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Index() < cards[j].Index()
	})
	return &Deck{Cards: cards}
}

// EntropyBits returns log2(n!) for a deck of n cards: the Shannon entropy
// of a uniformly random ordering of n distinct cards.
//
// The result only means something if the deck has no duplicates and was
// shuffled uniformly. Neither is checked here; call HasDuplicates first.
func (d *Deck) EntropyBits() float64 {
	return EntropyBits(len(d.Cards))
}

// EntropyBits returns log2(n!) computed as a sum of logs, so it does not
// overflow for large n
func EntropyBits(n int) float64 {
	var bits float64
	for k := 2; k <= n; k++ {
		bits += math.Log2(float64(k))
	}
	return bits
}
