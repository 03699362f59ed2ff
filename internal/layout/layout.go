// Package layout owns the board geometry: where every pile, card and button
// sits in screen space, and which of them a pointer position hits. The engine
// and controller work purely in these coordinates; the presentation layer only
// translates its native events into them.
package layout

import "github.com/evan-pb/solitaire/internal/config"

// Point is a screen-space position in pixels.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p falls inside the rectangle. Edges follow the
// half-open convention: the left/top edge is inside, the right/bottom is not.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Button dimensions are fixed; only their anchors depend on the window size.
const (
	undoBtnW      = 80
	undoBtnH      = 30
	reshuffleBtnW = 100
	reshuffleBtnH = 30
	playAgainW    = 120
	playAgainH    = 40
)

// Layout computes all board rectangles from the configured window and card
// dimensions.
type Layout struct {
	WindowW, WindowH int
	CardW, CardH     int
	Fan              int // vertical offset between fanned cards

	stockX, stockY     int
	wasteX, wasteY     int
	tableauX, tableauY int
	tableauGap         int // horizontal gap between columns
}

// FromConfig builds the board layout from configuration, anchored the same way
// regardless of size: stock and waste on the left, tableau in the middle,
// foundations down the right edge, buttons along the bottom.
func FromConfig(cfg *config.Config) Layout {
	return Layout{
		WindowW:    cfg.Window.Width,
		WindowH:    cfg.Window.Height,
		CardW:      cfg.Cards.Width,
		CardH:      cfg.Cards.Height,
		Fan:        cfg.Cards.FanSpacing,
		stockX:     50,
		stockY:     50,
		wasteX:     50,
		wasteY:     200,
		tableauX:   160,
		tableauY:   50,
		tableauGap: 10,
	}
}

// StockRect is the clickable draw-pile region.
func (l Layout) StockRect() Rect {
	return Rect{X: l.stockX, Y: l.stockY, W: l.CardW, H: l.CardH}
}

// WasteCardRect positions waste card i of n (0 = oldest visible).
func (l Layout) WasteCardRect(i int) Rect {
	return Rect{X: l.wasteX, Y: l.wasteY + i*l.Fan, W: l.CardW, H: l.CardH}
}

// WasteTopRect is the grab region for the top of a waste of n cards.
// Only meaningful for n > 0.
func (l Layout) WasteTopRect(n int) Rect {
	return l.WasteCardRect(n - 1)
}

// TableauCardRect positions the card at stacking row `row` of a column, where
// rows count face-down and face-up cards together from the top of the column.
func (l Layout) TableauCardRect(pile, row int) Rect {
	return Rect{
		X: l.tableauX + pile*(l.CardW+l.tableauGap),
		Y: l.tableauY + row*l.Fan,
		W: l.CardW,
		H: l.CardH,
	}
}

// TableauDropRect is the release target for a column currently holding the
// given number of cards: the slot where the next card would land.
func (l Layout) TableauDropRect(pile, cards int) Rect {
	return l.TableauCardRect(pile, cards)
}

// FoundationRect positions foundation i (0..3) down the right edge.
func (l Layout) FoundationRect(i int) Rect {
	return Rect{
		X: l.WindowW - (l.CardW + 20),
		Y: 20 + i*(l.CardH+15),
		W: l.CardW,
		H: l.CardH,
	}
}

// UndoRect is the undo button in the bottom-left corner.
func (l Layout) UndoRect() Rect {
	return Rect{X: 10, Y: l.WindowH - 40, W: undoBtnW, H: undoBtnH}
}

// ReshuffleRect is the new-deal button in the bottom-right corner.
func (l Layout) ReshuffleRect() Rect {
	return Rect{X: l.WindowW - reshuffleBtnW - 10, Y: l.WindowH - 40, W: reshuffleBtnW, H: reshuffleBtnH}
}

// PlayAgainRect is the restart button on the win screen.
func (l Layout) PlayAgainRect() Rect {
	return Rect{X: l.WindowW/2 - playAgainW/2, Y: l.WindowH/2 + 50, W: playAgainW, H: playAgainH}
}

// HitFoundation resolves p against the four foundation regions.
func (l Layout) HitFoundation(p Point) (int, bool) {
	for i := 0; i < 4; i++ {
		if l.FoundationRect(i).Contains(p) {
			return i, true
		}
	}
	return 0, false
}

// HitTableauDrop resolves a release position against the seven column drop
// slots, given each column's current card count. The first matching column
// wins; the slots never overlap across columns.
func (l Layout) HitTableauDrop(p Point, counts [7]int) (int, bool) {
	for i := 0; i < 7; i++ {
		if l.TableauDropRect(i, counts[i]).Contains(p) {
			return i, true
		}
	}
	return 0, false
}
