package fyneui

import (
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/evan-pb/solitaire/internal/app"
	"github.com/evan-pb/solitaire/internal/controller"
	"github.com/evan-pb/solitaire/internal/layout"
)

// UI owns the Fyne application and window hosting the board.
type UI struct {
	fyneApp fyne.App
	window  fyne.Window
	board   *Board
}

// New builds the window at the fixed board size and mounts the board widget.
func New(engine *app.Engine, ctrl *controller.Controller, geo layout.Layout, assets *Assets) *UI {
	a := fyneapp.New()
	w := a.NewWindow("Solitaire")

	board := NewBoard(engine, ctrl, geo, assets)
	w.SetContent(board)
	w.Resize(fyne.NewSize(float32(geo.WindowW), float32(geo.WindowH)))
	w.SetFixedSize(true)

	return &UI{fyneApp: a, window: w, board: board}
}

// Run shows the window and blocks until it closes. A once-per-second tick
// keeps the elapsed-time display moving between pointer events.
func (u *UI) Run() {
	ticker := time.NewTicker(time.Second)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fyne.Do(u.board.Refresh)
			}
		}
	}()
	defer func() {
		ticker.Stop()
		close(done)
	}()

	u.window.ShowAndRun()
}
