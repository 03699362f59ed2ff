package controller

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evan-pb/solitaire/internal/app"
	"github.com/evan-pb/solitaire/internal/config"
	"github.com/evan-pb/solitaire/internal/domain"
	"github.com/evan-pb/solitaire/internal/layout"
)

func testGeo() layout.Layout {
	return layout.FromConfig(config.DefaultConfig())
}

func newController(t *testing.T, e *app.Engine) *Controller {
	t.Helper()
	return New(e, testGeo(), zerolog.Nop())
}

func center(r layout.Rect) layout.Point {
	return layout.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func TestStockClickDraws(t *testing.T) {
	e := app.NewEngine(rand.New(rand.NewSource(1)))
	c := newController(t, e)

	c.OnPointerDown(center(testGeo().StockRect()))

	v := e.Snapshot()
	assert.Equal(t, 1, v.MoveCount)
	assert.Len(t, v.Waste, 1)
	assert.Equal(t, 23, v.StockCount)
}

func TestUndoButton(t *testing.T) {
	e := app.NewEngine(rand.New(rand.NewSource(1)))
	c := newController(t, e)
	geo := testGeo()

	c.OnPointerDown(center(geo.StockRect()))
	c.OnPointerDown(center(geo.UndoRect()))

	v := e.Snapshot()
	assert.Empty(t, v.Waste)
	assert.Equal(t, 24, v.StockCount)
	assert.Zero(t, v.MoveCount)
}

func TestReshuffleButton(t *testing.T) {
	e := app.NewEngine(rand.New(rand.NewSource(1)))
	c := newController(t, e)
	geo := testGeo()

	c.OnPointerDown(center(geo.StockRect()))
	c.OnPointerDown(center(geo.ReshuffleRect()))

	v := e.Snapshot()
	assert.Zero(t, v.MoveCount)
	assert.Equal(t, 24, v.StockCount)
	assert.Empty(t, v.Waste)
}

func TestWasteDragToFoundation(t *testing.T) {
	s := &domain.GameState{Waste: []domain.Card{{Suit: domain.Hearts, Rank: domain.Ace}}}
	e := app.NewEngineFromState(s, rand.New(rand.NewSource(1)))
	c := newController(t, e)
	geo := testGeo()

	c.OnPointerDown(center(geo.WasteTopRect(1)))
	require.True(t, e.Dragging())
	c.OnPointerMove(layout.Point{X: 700, Y: 100})
	c.OnPointerUp(center(geo.FoundationRect(0)))

	v := e.Snapshot()
	require.Len(t, v.Foundations[0], 1)
	assert.Equal(t, domain.Card{Suit: domain.Hearts, Rank: domain.Ace}, v.Foundations[0][0])
	assert.Empty(t, v.Waste)
	assert.Equal(t, 1, v.MoveCount)
}

func TestTableauDragReturnsOnMiss(t *testing.T) {
	s := &domain.GameState{}
	s.Tableau[0].Up = []domain.Card{
		{Suit: domain.Hearts, Rank: domain.Eight},
		{Suit: domain.Spades, Rank: domain.Seven},
	}
	e := app.NewEngineFromState(s, rand.New(rand.NewSource(1)))
	c := newController(t, e)
	geo := testGeo()

	c.OnPointerDown(center(geo.TableauCardRect(0, 0)))
	require.True(t, e.Dragging())
	// Release over the HUD area, far from any pile.
	c.OnPointerUp(layout.Point{X: 500, Y: 640})

	v := e.Snapshot()
	assert.False(t, e.Dragging())
	assert.Len(t, v.Tableau[0].Up, 2)
	assert.Zero(t, v.MoveCount)
}

func TestTableauHitTestsTopmostFirst(t *testing.T) {
	s := &domain.GameState{}
	s.Tableau[2].Up = []domain.Card{
		{Suit: domain.Hearts, Rank: domain.Eight},
		{Suit: domain.Spades, Rank: domain.Seven},
	}
	e := app.NewEngineFromState(s, rand.New(rand.NewSource(1)))
	c := newController(t, e)
	geo := testGeo()

	// The fanned cards overlap; a point inside the top card's header is also
	// inside the bottom card's rect, and must pick the top card only.
	top := geo.TableauCardRect(2, 1)
	press := layout.Point{X: top.X + 10, Y: top.Y + 5}
	require.True(t, geo.TableauCardRect(2, 0).Contains(press))

	c.OnPointerDown(press)

	v := e.Snapshot()
	require.Len(t, v.Drag, 1)
	assert.Equal(t, domain.Card{Suit: domain.Spades, Rank: domain.Seven}, v.Drag[0])
	assert.Len(t, v.Tableau[2].Up, 1)
}

func TestTableauFaceDownOffsetsHitTesting(t *testing.T) {
	s := &domain.GameState{}
	s.Tableau[4] = domain.TableauPile{
		Down: []domain.Card{{Suit: domain.Clubs, Rank: domain.Two}, {Suit: domain.Diamonds, Rank: domain.Nine}},
		Up:   []domain.Card{{Suit: domain.Spades, Rank: domain.King}},
	}
	e := app.NewEngineFromState(s, rand.New(rand.NewSource(1)))
	c := newController(t, e)
	geo := testGeo()

	// The face-up card sits two fan rows below the column top.
	c.OnPointerDown(center(geo.TableauCardRect(4, 2)))
	require.True(t, e.Dragging())

	v := e.Snapshot()
	assert.Equal(t, []domain.Card{{Suit: domain.Spades, Rank: domain.King}}, v.Drag)
}

func TestGameOverOnlyPlayAgainResponds(t *testing.T) {
	s := &domain.GameState{GameOver: true, MoveCount: 99}
	e := app.NewEngineFromState(s, rand.New(rand.NewSource(1)))
	c := newController(t, e)
	geo := testGeo()

	c.OnPointerDown(center(geo.StockRect()))
	c.OnPointerDown(center(geo.UndoRect()))
	assert.Equal(t, 99, e.Snapshot().MoveCount, "board input is dead on the win screen")

	c.OnPointerDown(center(geo.PlayAgainRect()))
	v := e.Snapshot()
	assert.False(t, v.GameOver)
	assert.Zero(t, v.MoveCount)
	assert.Equal(t, 24, v.StockCount)
}

func TestDragPositionFollowsGrabOffset(t *testing.T) {
	s := &domain.GameState{Waste: []domain.Card{{Suit: domain.Hearts, Rank: domain.Ace}}}
	e := app.NewEngineFromState(s, rand.New(rand.NewSource(1)))
	c := newController(t, e)
	geo := testGeo()

	r := geo.WasteTopRect(1)
	c.OnPointerDown(layout.Point{X: r.X + 5, Y: r.Y + 7})
	require.True(t, e.Dragging())

	c.OnPointerMove(layout.Point{X: 300, Y: 300})
	assert.Equal(t, layout.Point{X: 295, Y: 293}, c.DragPosition())
}

func TestPointerUpWithoutDragIsNoOp(t *testing.T) {
	e := app.NewEngine(rand.New(rand.NewSource(1)))
	c := newController(t, e)

	before := e.Snapshot()
	c.OnPointerUp(layout.Point{X: 400, Y: 300})
	assert.Equal(t, before, e.Snapshot())
}
