package deck

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/arcanaland/cardseed/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardText = "AS 2S 3S 4S 5S 6S 7S 8S 9S TS JS QS KS " +
	"AC 2C 3C 4C 5C 6C 7C 8C 9C TC JC QC KC " +
	"AH 2H 3H 4H 5H 6H 7H 8H 9H TH JH QH KH " +
	"AD 2D 3D 4D 5D 6D 7D 8D 9D TD JD QD KD"

func TestNew(t *testing.T) {
	t.Parallel()

	d := New()
	require.Len(t, d.Cards, card.DeckSize)
	assert.Equal(t, card.Card{Suit: card.Clubs, Value: 2}, d.Cards[15])
	for i, c := range d.Cards {
		assert.Equal(t, i, c.Index())
	}
	assert.False(t, d.HasDuplicates())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, standardText, New().String())
	assert.Equal(t, "", (&Deck{}).String())
}

func TestParse(t *testing.T) {
	t.Parallel()

	d, err := Parse(" AS\n 2D 3C  8H \tQD\n")
	require.NoError(t, err)
	assert.Equal(t, []card.Card{
		{Suit: card.Spades, Value: 0},
		{Suit: card.Diamonds, Value: 1},
		{Suit: card.Clubs, Value: 2},
		{Suit: card.Hearts, Value: 7},
		{Suit: card.Diamonds, Value: 11},
	}, d.Cards)
	assert.Equal(t, "AS 2D 3C 8H QD", d.String())

	empty, err := Parse(" \n\t ")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	d, err := Parse(New().String())
	require.NoError(t, err)
	assert.Equal(t, New(), d)
}

func TestParseFailsFast(t *testing.T) {
	t.Parallel()

	d, err := Parse("AS 2C XX 3H")
	require.Error(t, err)
	assert.Nil(t, d)
	var badString *card.BadStringError
	require.ErrorAs(t, err, &badString)
	assert.Equal(t, "XX", badString.Value)

	_, err = Parse("AS 2Z")
	var badChar *card.BadCharacterError
	require.ErrorAs(t, err, &badChar)
	assert.Equal(t, 'Z', badChar.Char)
}

func TestHasDuplicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"AS 2C AS", true},
		{"9D 4H 3S", false},
		{"", false},
		{"KD", false},
		{"KD KD", true},
		{standardText + " QH", true},
	}
	for _, tt := range tests {
		d, err := Parse(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, d.HasDuplicates(), "deck %q", tt.in)
	}
}

func TestDuplicatesAndMissing(t *testing.T) {
	t.Parallel()

	d, err := Parse("AS 2C AS 2C AS")
	require.NoError(t, err)
	assert.Equal(t, []card.Card{
		{Suit: card.Spades, Value: 0},
		{Suit: card.Clubs, Value: 1},
	}, d.Duplicates())
	assert.Len(t, d.Missing(), card.DeckSize-2)

	assert.Empty(t, New().Duplicates())
	assert.Empty(t, New().Missing())
}

func TestSorted(t *testing.T) {
	t.Parallel()

	d, err := Parse("KD AS 7H")
	require.NoError(t, err)
	assert.Equal(t, "AS 7H KD", d.Sorted().String())
	assert.Equal(t, "KD AS 7H", d.String())
}

func TestEntropyBits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, (&Deck{}).EntropyBits())
	assert.Equal(t, 0.0, EntropyBits(1))
	assert.InDelta(t, 1.0, EntropyBits(2), 1e-12)
	assert.InDelta(t, math.Log2(6), EntropyBits(3), 1e-12)
	assert.InDelta(t, math.Log2(3628800), EntropyBits(10), 1e-9)
	assert.InDelta(t, 225.581, New().EntropyBits(), 0.001)

	large := EntropyBits(1000)
	assert.False(t, math.IsInf(large, 0))
	assert.Greater(t, large, 8000.0)
}

func TestHash(t *testing.T) {
	t.Parallel()

	got, err := New().Hash()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		204, 147, 92, 129, 195, 255, 197, 30, 16, 196, 216, 17, 114, 172, 27, 55, 31, 20,
		238, 190, 66, 93, 236, 204, 173, 229, 53, 227, 189, 76, 227, 224,
	}, got)

	got, err = New().Hash(WithPassword("slick"))
	require.NoError(t, err)
	assert.Equal(t, []byte{
		234, 182, 196, 8, 21, 159, 226, 239, 223, 128, 66, 185, 211, 166, 63, 83, 198, 254,
		27, 246, 199, 237, 44, 207, 237, 34, 164, 191, 222, 104, 17, 133,
	}, got)
}

func TestHashIgnoresInputWhitespace(t *testing.T) {
	t.Parallel()

	d, err := Parse("AS  2D\n3C")
	require.NoError(t, err)
	want, err := (&Deck{Cards: d.Cards}).Hash(WithIterations(1))
	require.NoError(t, err)

	other, err := Parse("\tAS 2D 3C  ")
	require.NoError(t, err)
	got, err := other.Hash(WithIterations(1))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPreimage(t *testing.T) {
	t.Parallel()

	d, err := Parse("AS 2D")
	require.NoError(t, err)
	empty := ""
	password := "slick"
	assert.Equal(t, "AS 2D", d.Preimage(nil))
	assert.Equal(t, "AS 2D:", d.Preimage(&empty))
	assert.Equal(t, "AS 2D:slick", d.Preimage(&password))

	withEmpty, err := d.Hash(WithIterations(1), WithPassword(""))
	require.NoError(t, err)
	without, err := d.Hash(WithIterations(1))
	require.NoError(t, err)
	assert.NotEqual(t, withEmpty, without)
}

func TestHashInvalidParameters(t *testing.T) {
	t.Parallel()

	_, err := New().Hash(WithKeySize(0))
	assert.ErrorIs(t, err, ErrInvalidKeySize)

	_, err = New().Hash(WithIterations(0))
	assert.ErrorIs(t, err, ErrInvalidIterations)
}

func TestSample(t *testing.T) {
	t.Parallel()

	got, err := Sample(rand.New(rand.NewSource(7)), 10, 4)
	require.NoError(t, err)
	require.Len(t, got, 4)
	seen := make(map[int]bool)
	for _, i := range got {
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 10)
		assert.False(t, seen[i])
		seen[i] = true
	}

	_, err = Sample(rand.New(rand.NewSource(7)), 3, 4)
	assert.Error(t, err)

	_, err = Sample(bytes.NewReader(nil), 10, 1)
	assert.Error(t, err)
}

func TestShufflePreservesCards(t *testing.T) {
	t.Parallel()

	source := New()
	firstIsAce := 0
	const trials = 20
	for i := 0; i < trials; i++ {
		shuffled, err := source.Shuffle()
		require.NoError(t, err)
		require.Len(t, shuffled.Cards, card.DeckSize)
		assert.False(t, shuffled.HasDuplicates())
		assert.Equal(t, New(), shuffled.Sorted())
		if shuffled.Cards[0] == card.AceOfSpades() {
			firstIsAce++
		}
	}
	assert.Less(t, firstIsAce, trials)
	assert.Equal(t, New(), source)
}

func TestShuffleWithIsDeterministic(t *testing.T) {
	t.Parallel()

	a, err := ShuffleWith(rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := ShuffleWith(rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, New(), a.Sorted())
}
