package deck

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/arcanaland/cardseed/internal/card"
)

// Sample draws k distinct indices from [0, n) uniformly at random, in
// draw order, reading randomness from r. It runs a partial Fisher-Yates
// shuffle with crypto/rand.Int, which is unbiased for any reader.
func Sample(r io.Reader, n, k int) ([]int, error) {
	if n < 0 || k < 0 || k > n {
		return nil, fmt.Errorf("cannot sample %d of %d indices", k, n)
	}

	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j, err := rand.Int(r, big.NewInt(int64(n-i)))
		if err != nil {
			return nil, fmt.Errorf("reading randomness: %w", err)
		}
		swap := i + int(j.Int64())
		pool[i], pool[swap] = pool[swap], pool[i]
	}
	return pool[:k], nil
}

// Shuffle returns a freshly shuffled standard deck using the operating
// system's secure random source. The receiver is not read or modified;
// every call shuffles all 52 cards.
func (d *Deck) Shuffle() (*Deck, error) {
	return ShuffleWith(rand.Reader)
}

// ShuffleWith shuffles a standard deck with randomness read from r.
// Passing anything other than a cryptographically secure reader gives up
// the security of the derived secret and is only meant for tests.
func ShuffleWith(r io.Reader) (*Deck, error) {
	order, err := Sample(r, card.DeckSize, card.DeckSize)
	if err != nil {
		return nil, err
	}

	standard := New()
	shuffled := &Deck{Cards: make([]card.Card, card.DeckSize)}
	for i, j := range order {
		shuffled.Cards[i] = standard.Cards[j]
	}
	return shuffled, nil
}
