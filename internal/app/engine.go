package app

import (
	"errors"
	"math/rand"
	"time"

	"github.com/evan-pb/solitaire/internal/domain"
)

// Zone names a board region an action refers to.
type Zone string

const (
	ZoneStock      Zone = "stock"
	ZoneWaste      Zone = "waste"
	ZoneTableau    Zone = "tableau"
	ZoneFoundation Zone = "foundation"
)

// wasteVisible is the size of the playable waste window (draw-3 rules).
const wasteVisible = 3

var (
	ErrDragActive  = errors.New("a drag run is already active")
	ErrNoDrag      = errors.New("no drag run is active")
	ErrNotLiftable = errors.New("target card is not visible or playable")
	ErrGameOver    = errors.New("game is over")
)

// DragRun is the run of cards currently held by the pointer. It is an owned,
// detached sequence: lifted out of its origin pile at pick-up time and
// reinserted or consumed exactly once at drop time.
type DragRun struct {
	Origin Zone
	Pile   int // origin tableau index; -1 when Origin is ZoneWaste
	Cards  []domain.Card
}

// DropTarget names where a pointer-up landed, as resolved by the controller.
// A zero DropTarget means no pile matched the release position.
type DropTarget struct {
	Zone  Zone
	Index int
}

// Engine owns the live GameState and applies player actions to it: draw, lift,
// drop, undo, reset. Every undoable action snapshots the state first, at the
// moment of pick-up or stock click, so undo reverts to the pre-action state
// even though a drag completes later.
type Engine struct {
	state     *domain.GameState
	history   History
	drag      *DragRun
	rng       *rand.Rand
	startedAt time.Time
}

// NewEngine constructs an engine with the provided rng, or a time-seeded
// default, and deals a fresh game.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e := &Engine{rng: rng}
	e.deal()
	return e
}

// NewEngineFromState constructs an engine over an existing position instead of
// dealing. The engine takes ownership of the state.
func NewEngineFromState(s *domain.GameState, rng *rand.Rand) *Engine {
	e := NewEngine(rng)
	e.state = s
	return e
}

// deal shuffles a full deck and lays out the opening position: pile i of the
// tableau gets i face-down cards plus one face-up, the remaining 24 cards
// become the stock (top of stock at the end of the slice).
func (e *Engine) deal() {
	deck := domain.NewDeck()
	e.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	s := &domain.GameState{}
	used := 0
	for i := 0; i < 7; i++ {
		for j := 0; j <= i; j++ {
			if j < i {
				s.Tableau[i].Down = append(s.Tableau[i].Down, deck[used])
			} else {
				s.Tableau[i].Up = append(s.Tableau[i].Up, deck[used])
			}
			used++
		}
	}
	s.Stock = append([]domain.Card{}, deck[used:]...)

	e.state = s
	e.drag = nil
	e.startedAt = time.Now()
}

// Draw services a click on the stock. With cards remaining it pops the top
// card into the waste, demoting the oldest visible waste card to the spent
// pile when the window is full. With the stock exhausted it instead recycles:
// spent then waste, reversed, rebuild the stock. Either way the click counts
// as a move and win detection re-runs.
func (e *Engine) Draw() ([]Event, error) {
	if e.drag != nil {
		return nil, ErrDragActive
	}
	if e.state.GameOver {
		return nil, ErrGameOver
	}

	e.history.Push(e.state)
	var events []Event

	if len(e.state.Stock) == 0 {
		if len(e.state.Waste) > 0 || len(e.state.Spent) > 0 {
			rebuilt := append(append([]domain.Card{}, e.state.Spent...), e.state.Waste...)
			for i, j := 0, len(rebuilt)-1; i < j; i, j = i+1, j-1 {
				rebuilt[i], rebuilt[j] = rebuilt[j], rebuilt[i]
			}
			e.state.Stock = rebuilt
			e.state.Waste = nil
			e.state.Spent = nil
			events = append(events, Event{Kind: EventStockRecycled, Payload: StockRecycledPayload{Cards: len(rebuilt)}})
		}
	} else {
		card := e.state.Stock[len(e.state.Stock)-1]
		e.state.Stock = e.state.Stock[:len(e.state.Stock)-1]
		if len(e.state.Waste) == wasteVisible {
			oldest := e.state.Waste[0]
			e.state.Waste = e.state.Waste[1:]
			e.state.Spent = append(e.state.Spent, oldest)
		}
		e.state.Waste = append(e.state.Waste, card)
		events = append(events, Event{Kind: EventStockDrawn, Payload: StockDrawnPayload{Card: card}})
	}

	e.state.MoveCount++
	return e.checkWin(events), nil
}

// Lift detaches a contiguous run starting at cardIndex from the targeted
// pile's visible sequence and holds it as the active drag run. Waste lifts are
// always the single top card (cardIndex ignored). The pre-action snapshot is
// taken here, before the run leaves its pile.
func (e *Engine) Lift(zone Zone, pile, cardIndex int) error {
	if e.drag != nil {
		return ErrDragActive
	}
	if e.state.GameOver {
		return ErrGameOver
	}

	switch zone {
	case ZoneWaste:
		if len(e.state.Waste) == 0 {
			return ErrNotLiftable
		}
		e.history.Push(e.state)
		n := len(e.state.Waste) - 1
		card := e.state.Waste[n]
		e.state.Waste = e.state.Waste[:n]
		e.drag = &DragRun{Origin: ZoneWaste, Pile: -1, Cards: []domain.Card{card}}
		return nil

	case ZoneTableau:
		if pile < 0 || pile >= len(e.state.Tableau) {
			return ErrNotLiftable
		}
		up := e.state.Tableau[pile].Up
		if cardIndex < 0 || cardIndex >= len(up) {
			return ErrNotLiftable
		}
		e.history.Push(e.state)
		run := append([]domain.Card{}, up[cardIndex:]...)
		e.state.Tableau[pile].Up = up[:cardIndex]
		e.drag = &DragRun{Origin: ZoneTableau, Pile: pile, Cards: run}
		return nil
	}

	return ErrNotLiftable
}

// Drop resolves the active drag run against a destination. Foundations accept
// only single cards; tableau piles accept whole runs. An invalid or missing
// destination returns the run to its origin pile in original order. Exactly
// one of placed or returned happens; cards are never left in limbo.
func (e *Engine) Drop(target DropTarget) (bool, []Event, error) {
	if e.drag == nil {
		return false, nil, ErrNoDrag
	}

	run := e.drag
	e.drag = nil
	bottom := run.Cards[0]
	placed := false

	switch target.Zone {
	case ZoneFoundation:
		if len(run.Cards) == 1 && target.Index >= 0 && target.Index < len(e.state.Foundations) &&
			domain.IsValidFoundationMove(e.state.Foundations[target.Index], bottom, domain.FoundationSuits[target.Index]) {
			e.state.Foundations[target.Index] = append(e.state.Foundations[target.Index], bottom)
			placed = true
		}
	case ZoneTableau:
		if target.Index >= 0 && target.Index < len(e.state.Tableau) &&
			domain.IsValidTableauMove(e.state.Tableau[target.Index].Up, bottom) {
			e.state.Tableau[target.Index].Up = append(e.state.Tableau[target.Index].Up, run.Cards...)
			placed = true
		}
	}

	if !placed {
		switch run.Origin {
		case ZoneWaste:
			e.state.Waste = append(e.state.Waste, run.Cards...)
		case ZoneTableau:
			e.state.Tableau[run.Pile].Up = append(e.state.Tableau[run.Pile].Up, run.Cards...)
		}
		ret := Event{Kind: EventRunReturned, Payload: RunReturnedPayload{To: run.Origin, Pile: run.Pile, Cards: len(run.Cards)}}
		return false, []Event{ret}, nil
	}

	events := []Event{{Kind: EventRunMoved, Payload: RunMovedPayload{
		From:  run.Origin,
		To:    target.Zone,
		Pile:  target.Index,
		Cards: run.Cards,
	}}}
	return true, e.settle(run, events), nil
}

// settle runs the post-move hook after a successful drop: auto-flip the origin
// tableau pile if its face-up run emptied, count the move, re-check the win.
func (e *Engine) settle(run *DragRun, events []Event) []Event {
	if run.Origin == ZoneTableau {
		p := &e.state.Tableau[run.Pile]
		if len(p.Up) == 0 && len(p.Down) > 0 {
			flipped := p.Down[len(p.Down)-1]
			p.Down = p.Down[:len(p.Down)-1]
			p.Up = append(p.Up, flipped)
			events = append(events, Event{Kind: EventCardFlipped, Payload: CardFlippedPayload{Pile: run.Pile, Card: flipped}})
		}
	}
	e.state.MoveCount++
	return e.checkWin(events)
}

func (e *Engine) checkWin(events []Event) []Event {
	if !e.state.GameOver && e.state.FoundationTotal() == 52 {
		e.state.GameOver = true
		events = append(events, Event{Kind: EventGameWon})
	}
	return events
}

// Undo restores the most recent snapshot, then decrements the restored move
// count by one, floored at zero. A no-op with empty history or mid-drag.
func (e *Engine) Undo() []Event {
	if e.drag != nil {
		return nil
	}
	prev := e.history.Pop()
	if prev == nil {
		return nil
	}
	e.state = prev
	if e.state.MoveCount > 0 {
		e.state.MoveCount--
	}
	return []Event{{Kind: EventUndo, Payload: UndoPayload{MoveCount: e.state.MoveCount}}}
}

// Reset discards everything and deals a brand-new game. History is cleared
// rather than snapshotted: a new deal is not undoable.
func (e *Engine) Reset() []Event {
	e.history.Clear()
	e.deal()
	return []Event{{Kind: EventNewGame}}
}

// Dragging reports whether a drag run is active.
func (e *Engine) Dragging() bool {
	return e.drag != nil
}

// GameOver reports whether the win screen is showing.
func (e *Engine) GameOver() bool {
	return e.state.GameOver
}

// StartedAt returns the start timestamp of the current deal, the basis for the
// elapsed-time display.
func (e *Engine) StartedAt() time.Time {
	return e.startedAt
}
