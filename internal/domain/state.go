package domain

// TableauPile is one of the seven main columns. Both sequences are ordered
// bottom to top; Up cards are visible and draggable as a contiguous suffix run.
type TableauPile struct {
	Down []Card
	Up   []Card
}

// TopUp returns the top face-up card, if any.
func (p *TableauPile) TopUp() (Card, bool) {
	if len(p.Up) == 0 {
		return Card{}, false
	}
	return p.Up[len(p.Up)-1], true
}

// FoundationSuits fixes the suit assignment of the four foundations, top to
// bottom on the board.
var FoundationSuits = [4]Suit{Hearts, Diamonds, Clubs, Spades}

// GameState aggregates every pile on the board plus the move counter and the
// terminal flag. It is mutated only through the app.Engine action API.
type GameState struct {
	Tableau     [7]TableauPile
	Stock       []Card
	Waste       []Card
	Spent       []Card
	Foundations [4][]Card

	MoveCount int
	GameOver  bool
}

func cloneCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}

// Clone returns a deep copy sharing no slice storage with the receiver. It is
// the snapshot primitive for undo history.
func (s *GameState) Clone() *GameState {
	c := &GameState{
		Stock:     cloneCards(s.Stock),
		Waste:     cloneCards(s.Waste),
		Spent:     cloneCards(s.Spent),
		MoveCount: s.MoveCount,
		GameOver:  s.GameOver,
	}
	for i := range s.Tableau {
		c.Tableau[i] = TableauPile{
			Down: cloneCards(s.Tableau[i].Down),
			Up:   cloneCards(s.Tableau[i].Up),
		}
	}
	for i := range s.Foundations {
		c.Foundations[i] = cloneCards(s.Foundations[i])
	}
	return c
}

// CardCount sums the cards across every zone of the state. A state at rest
// (no active drag) must always count 52.
func (s *GameState) CardCount() int {
	n := len(s.Stock) + len(s.Waste) + len(s.Spent)
	for i := range s.Tableau {
		n += len(s.Tableau[i].Down) + len(s.Tableau[i].Up)
	}
	for i := range s.Foundations {
		n += len(s.Foundations[i])
	}
	return n
}

// FoundationTotal returns the number of cards across all four foundations.
// The game is won when this reaches 52.
func (s *GameState) FoundationTotal() int {
	n := 0
	for i := range s.Foundations {
		n += len(s.Foundations[i])
	}
	return n
}
