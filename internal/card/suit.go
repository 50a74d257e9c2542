package card

// Suit represents a playing card suit. The zero value is Spades.
type Suit uint8

const (
	Spades Suit = iota
	Clubs
	Hearts
	Diamonds
)

var suitCodes = [...]rune{'S', 'C', 'H', 'D'}

var suitNames = [...]string{"spades", "clubs", "hearts", "diamonds"}

// AllSuits returns every suit in canonical order
func AllSuits() [4]Suit {
	return [4]Suit{Spades, Clubs, Hearts, Diamonds}
}

// SuitFromOrdinal returns the suit with the given canonical ordinal
func SuitFromOrdinal(x int) (Suit, error) {
	if x < 0 || x >= len(suitCodes) {
		return 0, &BadIntegerError{Value: x}
	}
	return Suit(x), nil
}

// SuitFromCode returns the suit for an uppercase suit code (S, C, H or D)
func SuitFromCode(c rune) (Suit, error) {
	for i, code := range suitCodes {
		if code == c {
			return Suit(i), nil
		}
	}
	return 0, &BadCharacterError{Char: c}
}

// Ordinal returns the canonical ordinal in [0, 4)
func (s Suit) Ordinal() int {
	return int(s)
}

// Code returns the single-character suit code
func (s Suit) Code() rune {
	return suitCodes[s]
}

// Name returns the lowercase English name of the suit
func (s Suit) Name() string {
	return suitNames[s]
}

func (s Suit) String() string {
	return string(s.Code())
}

func (s Suit) valid() bool {
	return int(s) < len(suitCodes)
}
