package app

import (
	"time"

	"github.com/evan-pb/solitaire/internal/domain"
)

// TableauView is the visible shape of one tableau column: how many backs to
// draw, then the identified face-up run.
type TableauView struct {
	DownCount int
	Up        []domain.Card
}

// View is a point-in-time copy of everything the presentation layer needs to
// draw a frame. It shares no storage with the live state, so rendering can
// never observe a half-applied action.
type View struct {
	Tableau     [7]TableauView
	StockCount  int
	Waste       []domain.Card
	Foundations [4][]domain.Card

	Drag       []domain.Card
	DragOrigin Zone

	MoveCount int
	GameOver  bool
	StartedAt time.Time
}

// Snapshot captures the current view of the board.
func (e *Engine) Snapshot() View {
	v := View{
		StockCount: len(e.state.Stock),
		Waste:      append([]domain.Card{}, e.state.Waste...),
		MoveCount:  e.state.MoveCount,
		GameOver:   e.state.GameOver,
		StartedAt:  e.startedAt,
	}
	for i := range e.state.Tableau {
		v.Tableau[i] = TableauView{
			DownCount: len(e.state.Tableau[i].Down),
			Up:        append([]domain.Card{}, e.state.Tableau[i].Up...),
		}
	}
	for i := range e.state.Foundations {
		v.Foundations[i] = append([]domain.Card{}, e.state.Foundations[i]...)
	}
	if e.drag != nil {
		v.Drag = append([]domain.Card{}, e.drag.Cards...)
		v.DragOrigin = e.drag.Origin
	}
	return v
}
