package fyneui

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/evan-pb/solitaire/internal/app"
	"github.com/evan-pb/solitaire/internal/controller"
	"github.com/evan-pb/solitaire/internal/domain"
	"github.com/evan-pb/solitaire/internal/layout"
)

var (
	feltColor      = color.NRGBA{G: 128, A: 255}
	winFeltColor   = color.NRGBA{G: 100, A: 255}
	cardFaceColor  = color.NRGBA{R: 250, G: 250, B: 250, A: 255}
	cardEdgeColor  = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	cardBackColor  = color.NRGBA{R: 140, G: 30, B: 30, A: 255}
	redSuitColor   = color.NRGBA{R: 200, G: 20, B: 20, A: 255}
	blackSuitColor = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
	whiteColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	goldColor      = color.NRGBA{R: 255, G: 255, A: 255}
	undoBtnColor   = color.NRGBA{R: 200, G: 50, B: 50, A: 255}
	dealBtnColor   = color.NRGBA{R: 50, G: 50, B: 200, A: 255}
	againBtnColor  = color.NRGBA{G: 150, A: 255}
)

// Board is the single widget covering the whole window. It reads the engine's
// view snapshot to draw every frame and forwards raw mouse events to the
// controller.
type Board struct {
	widget.BaseWidget

	engine *app.Engine
	ctrl   *controller.Controller
	geo    layout.Layout
	assets *Assets
}

// NewBoard constructs the board widget.
func NewBoard(engine *app.Engine, ctrl *controller.Controller, geo layout.Layout, assets *Assets) *Board {
	b := &Board{engine: engine, ctrl: ctrl, geo: geo, assets: assets}
	b.ExtendBaseWidget(b)
	return b
}

func toPoint(pos fyne.Position) layout.Point {
	return layout.Point{X: int(pos.X), Y: int(pos.Y)}
}

// MouseDown implements desktop.Mouseable.
func (b *Board) MouseDown(ev *desktop.MouseEvent) {
	b.ctrl.OnPointerDown(toPoint(ev.Position))
	b.Refresh()
}

// MouseUp implements desktop.Mouseable.
func (b *Board) MouseUp(ev *desktop.MouseEvent) {
	b.ctrl.OnPointerUp(toPoint(ev.Position))
	b.Refresh()
}

// MouseIn implements desktop.Hoverable.
func (b *Board) MouseIn(*desktop.MouseEvent) {}

// MouseMoved implements desktop.Hoverable. Redraws are only needed while a
// run follows the cursor.
func (b *Board) MouseMoved(ev *desktop.MouseEvent) {
	b.ctrl.OnPointerMove(toPoint(ev.Position))
	if b.engine.Dragging() {
		b.Refresh()
	}
}

// MouseOut implements desktop.Hoverable.
func (b *Board) MouseOut() {}

// Cursor implements desktop.Cursorable: a hand while dragging.
func (b *Board) Cursor() desktop.Cursor {
	if b.engine.Dragging() {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

// CreateRenderer implements fyne.Widget.
func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.rebuild()
	return r
}

type boardRenderer struct {
	board   *Board
	objects []fyne.CanvasObject
}

func (r *boardRenderer) Destroy() {}

func (r *boardRenderer) Layout(fyne.Size) {}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.board.geo.WindowW), float32(r.board.geo.WindowH))
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

// rebuild regenerates the full object list from the current engine view.
// The board is small enough that redrawing everything per event is cheap.
func (r *boardRenderer) rebuild() {
	v := r.board.engine.Snapshot()
	if v.GameOver {
		r.objects = r.winScreen()
		return
	}

	geo := r.board.geo
	objs := []fyne.CanvasObject{r.rect(layout.Rect{W: geo.WindowW, H: geo.WindowH}, feltColor)}

	if v.StockCount > 0 {
		objs = append(objs, r.cardBack(geo.StockRect())...)
	}

	for i, c := range v.Waste {
		objs = append(objs, r.cardFace(c, geo.WasteCardRect(i))...)
	}

	for i := 0; i < 4; i++ {
		fr := geo.FoundationRect(i)
		frame := canvas.NewRectangle(color.Transparent)
		frame.StrokeColor = whiteColor
		frame.StrokeWidth = 2
		place(frame, fr)
		objs = append(objs, frame)
		objs = append(objs, r.centeredText(domain.FoundationSuits[i].String(), whiteColor, 14, fr))
		if n := len(v.Foundations[i]); n > 0 {
			objs = append(objs, r.cardFace(v.Foundations[i][n-1], fr)...)
		}
	}

	for i := range v.Tableau {
		row := 0
		for d := 0; d < v.Tableau[i].DownCount; d++ {
			objs = append(objs, r.cardBack(geo.TableauCardRect(i, row))...)
			row++
		}
		for _, c := range v.Tableau[i].Up {
			objs = append(objs, r.cardFace(c, geo.TableauCardRect(i, row))...)
			row++
		}
	}

	if len(v.Drag) > 0 {
		at := r.board.ctrl.DragPosition()
		for i, c := range v.Drag {
			rect := layout.Rect{X: at.X, Y: at.Y + i*geo.Fan, W: geo.CardW, H: geo.CardH}
			objs = append(objs, r.cardFace(c, rect)...)
		}
	}

	objs = append(objs, r.hud(v)...)
	objs = append(objs, r.button(geo.UndoRect(), undoBtnColor, "Undo")...)
	objs = append(objs, r.button(geo.ReshuffleRect(), dealBtnColor, "Reshuffle")...)

	r.objects = objs
}

func (r *boardRenderer) winScreen() []fyne.CanvasObject {
	geo := r.board.geo
	objs := []fyne.CanvasObject{r.rect(layout.Rect{W: geo.WindowW, H: geo.WindowH}, winFeltColor)}
	banner := layout.Rect{X: 0, Y: geo.WindowH/2 - 40, W: geo.WindowW, H: 40}
	objs = append(objs, r.centeredText("YOU WIN!", goldColor, 28, banner))
	objs = append(objs, r.button(geo.PlayAgainRect(), againBtnColor, "Play Again")...)
	return objs
}

func (r *boardRenderer) hud(v app.View) []fyne.CanvasObject {
	geo := r.board.geo
	elapsed := time.Since(v.StartedAt)
	mins := int(elapsed.Minutes())
	secs := int(elapsed.Seconds()) % 60
	text := fmt.Sprintf("%d:%02d   |   Moves: %d", mins, secs, v.MoveCount)
	bar := layout.Rect{X: 0, Y: geo.WindowH - 35, W: geo.WindowW, H: 30}
	return []fyne.CanvasObject{r.centeredText(text, whiteColor, 18, bar)}
}

func (r *boardRenderer) cardFace(c domain.Card, rect layout.Rect) []fyne.CanvasObject {
	if res := r.board.assets.Face(c); res != nil {
		img := canvas.NewImageFromResource(res)
		img.FillMode = canvas.ImageFillStretch
		place(img, rect)
		return []fyne.CanvasObject{img}
	}

	// No image pack: draw a plain face with the card name in its suit color.
	face := canvas.NewRectangle(cardFaceColor)
	face.StrokeColor = cardEdgeColor
	face.StrokeWidth = 1
	face.CornerRadius = 6
	place(face, rect)

	tc := blackSuitColor
	if c.Color() == domain.Red {
		tc = redSuitColor
	}
	label := canvas.NewText(c.String(), tc)
	label.TextStyle.Bold = true
	label.TextSize = 16
	label.Move(fyne.NewPos(float32(rect.X+6), float32(rect.Y+3)))
	return []fyne.CanvasObject{face, label}
}

func (r *boardRenderer) cardBack(rect layout.Rect) []fyne.CanvasObject {
	if res := r.board.assets.Back(); res != nil {
		img := canvas.NewImageFromResource(res)
		img.FillMode = canvas.ImageFillStretch
		place(img, rect)
		return []fyne.CanvasObject{img}
	}

	back := canvas.NewRectangle(cardBackColor)
	back.StrokeColor = cardEdgeColor
	back.StrokeWidth = 1
	back.CornerRadius = 6
	place(back, rect)
	return []fyne.CanvasObject{back}
}

func (r *boardRenderer) button(rect layout.Rect, fill color.Color, label string) []fyne.CanvasObject {
	return []fyne.CanvasObject{
		r.rect(rect, fill),
		r.centeredText(label, whiteColor, 14, rect),
	}
}

func (r *boardRenderer) rect(rect layout.Rect, fill color.Color) fyne.CanvasObject {
	o := canvas.NewRectangle(fill)
	place(o, rect)
	return o
}

func (r *boardRenderer) centeredText(text string, c color.Color, size float32, within layout.Rect) fyne.CanvasObject {
	t := canvas.NewText(text, c)
	t.TextSize = size
	measured := fyne.MeasureText(text, size, t.TextStyle)
	t.Move(fyne.NewPos(
		float32(within.X)+(float32(within.W)-measured.Width)/2,
		float32(within.Y)+(float32(within.H)-measured.Height)/2,
	))
	return t
}

func place(o fyne.CanvasObject, r layout.Rect) {
	o.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
	o.Resize(fyne.NewSize(float32(r.W), float32(r.H)))
}
