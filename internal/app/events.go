package app

import "github.com/evan-pb/solitaire/internal/domain"

// EventKind identifies events emitted by engine actions. The controller logs
// them and the presentation layer uses them as refresh hints.
type EventKind string

const (
	EventStockDrawn    EventKind = "stock_drawn"
	EventStockRecycled EventKind = "stock_recycled"
	EventRunMoved      EventKind = "run_moved"
	EventRunReturned   EventKind = "run_returned"
	EventCardFlipped   EventKind = "card_flipped"
	EventUndo          EventKind = "undo"
	EventGameWon       EventKind = "game_won"
	EventNewGame       EventKind = "new_game"
)

// Event is an engine action outcome with a typed payload.
type Event struct {
	Kind    EventKind
	Payload any
}

type StockDrawnPayload struct {
	Card domain.Card
}

type StockRecycledPayload struct {
	Cards int
}

type RunMovedPayload struct {
	From  Zone
	To    Zone
	Pile  int // destination pile/foundation index
	Cards []domain.Card
}

type RunReturnedPayload struct {
	To    Zone
	Pile  int // origin tableau index, -1 for waste
	Cards int
}

type CardFlippedPayload struct {
	Pile int
	Card domain.Card
}

type UndoPayload struct {
	MoveCount int
}
