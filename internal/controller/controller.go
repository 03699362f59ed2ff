// Package controller translates raw pointer events into engine actions. It is
// the only caller of the engine's mutating API; the presentation layer feeds
// it positions and reads the resulting board state back through the engine's
// query surface.
package controller

import (
	"github.com/rs/zerolog"

	"github.com/evan-pb/solitaire/internal/app"
	"github.com/evan-pb/solitaire/internal/layout"
)

// Controller dispatches pointer-down/up/move events onto the engine using the
// board geometry. It also tracks the live pointer position and the grab offset
// inside the picked-up card, which the renderer needs to draw the drag run
// under the cursor.
type Controller struct {
	engine *app.Engine
	geo    layout.Layout
	log    zerolog.Logger

	pointer layout.Point
	grab    layout.Point
}

// New constructs a controller for the given engine and board geometry.
func New(engine *app.Engine, geo layout.Layout, log zerolog.Logger) *Controller {
	return &Controller{engine: engine, geo: geo, log: log}
}

// OnPointerDown resolves a press. Priority order: on the win screen only the
// play-again button is live; otherwise buttons, then the stock, then the waste
// top card, then tableau cards tested top-most-first.
func (c *Controller) OnPointerDown(p layout.Point) {
	c.pointer = p
	v := c.engine.Snapshot()

	if v.GameOver {
		if c.geo.PlayAgainRect().Contains(p) {
			c.logEvents(c.engine.Reset())
		}
		return
	}

	if c.geo.UndoRect().Contains(p) {
		c.logEvents(c.engine.Undo())
		return
	}
	if c.geo.ReshuffleRect().Contains(p) {
		c.logEvents(c.engine.Reset())
		return
	}

	if c.geo.StockRect().Contains(p) {
		events, err := c.engine.Draw()
		if err != nil {
			c.log.Debug().Err(err).Msg("draw rejected")
			return
		}
		c.logEvents(events)
		return
	}

	if n := len(v.Waste); n > 0 {
		if r := c.geo.WasteTopRect(n); r.Contains(p) {
			if err := c.engine.Lift(app.ZoneWaste, -1, 0); err != nil {
				c.log.Debug().Err(err).Msg("waste lift rejected")
				return
			}
			c.grab = layout.Point{X: p.X - r.X, Y: p.Y - r.Y}
			return
		}
	}

	for i := 0; i < len(v.Tableau); i++ {
		pile := v.Tableau[i]
		for ci := len(pile.Up) - 1; ci >= 0; ci-- {
			r := c.geo.TableauCardRect(i, pile.DownCount+ci)
			if !r.Contains(p) {
				continue
			}
			if err := c.engine.Lift(app.ZoneTableau, i, ci); err != nil {
				c.log.Debug().Err(err).Int("pile", i).Msg("tableau lift rejected")
				return
			}
			c.grab = layout.Point{X: p.X - r.X, Y: p.Y - r.Y}
			return
		}
	}
}

// OnPointerUp drops the active run, if any, at the release position.
// Foundations take priority over tableau slots.
func (c *Controller) OnPointerUp(p layout.Point) {
	c.pointer = p
	if !c.engine.Dragging() {
		return
	}

	target := app.DropTarget{}
	if i, ok := c.geo.HitFoundation(p); ok {
		target = app.DropTarget{Zone: app.ZoneFoundation, Index: i}
	} else {
		v := c.engine.Snapshot()
		var counts [7]int
		for i := range v.Tableau {
			counts[i] = v.Tableau[i].DownCount + len(v.Tableau[i].Up)
		}
		if i, ok := c.geo.HitTableauDrop(p, counts); ok {
			target = app.DropTarget{Zone: app.ZoneTableau, Index: i}
		}
	}

	placed, events, err := c.engine.Drop(target)
	if err != nil {
		c.log.Debug().Err(err).Msg("drop rejected")
		return
	}
	c.logEvents(events)
	if !placed {
		c.log.Debug().Msg("run returned to origin")
	}
}

// OnPointerMove tracks the cursor; it has no state effect beyond positioning
// the drag run for rendering.
func (c *Controller) OnPointerMove(p layout.Point) {
	c.pointer = p
}

// DragPosition returns the top-left corner where the drag run's bottom card
// should be drawn, following the pointer minus the grab offset.
func (c *Controller) DragPosition() layout.Point {
	return layout.Point{X: c.pointer.X - c.grab.X, Y: c.pointer.Y - c.grab.Y}
}

func (c *Controller) logEvents(events []app.Event) {
	for _, ev := range events {
		evt := c.log.Info().Str("event", string(ev.Kind))
		switch p := ev.Payload.(type) {
		case app.StockDrawnPayload:
			evt = evt.Stringer("card", p.Card)
		case app.StockRecycledPayload:
			evt = evt.Int("cards", p.Cards)
		case app.RunMovedPayload:
			evt = evt.Str("from", string(p.From)).Str("to", string(p.To)).Int("pile", p.Pile).Int("cards", len(p.Cards))
		case app.RunReturnedPayload:
			evt = evt.Str("to", string(p.To)).Int("cards", p.Cards)
		case app.UndoPayload:
			evt = evt.Int("moves", p.MoveCount)
		case app.CardFlippedPayload:
			evt = evt.Int("pile", p.Pile).Stringer("card", p.Card)
		}
		evt.Msg("action")
	}
}
