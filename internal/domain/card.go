package domain

// Suit identifies one of the four French suits.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Color is the face color of a card, derived from its suit.
type Color int

const (
	Red Color = iota
	Black
)

// Rank runs ascending from Ace (0) to King (12). The int value doubles as the
// rank's index in the ascending order, so sequencing checks are plain arithmetic.
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Card is a single playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

var suitLetters = [4]string{"H", "D", "C", "S"}

var rankLetters = [13]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// String returns the compact card name, e.g. "AH" or "10S". Asset files and log
// lines use this exact form.
func (c Card) String() string {
	return rankLetters[c.Rank] + suitLetters[c.Suit]
}

func (s Suit) String() string {
	return suitLetters[s]
}

// Color returns Red for Hearts/Diamonds and Black for Clubs/Spades.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Color returns the card's face color.
func (c Card) Color() Color {
	return c.Suit.Color()
}

// IsOppositeColor reports whether the two cards have different face colors.
func IsOppositeColor(a, b Card) bool {
	return a.Color() != b.Color()
}

// NewDeck produces an ordered 52-card deck, one card per suit/rank combination.
// Shuffling is the caller's responsibility.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for s := Hearts; s <= Spades; s++ {
		for r := Ace; r <= King; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}
