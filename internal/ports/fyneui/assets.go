// Package fyneui is the presentation adapter: it renders the board with Fyne
// and forwards mouse events to the interaction controller. The engine never
// sees any of these types.
package fyneui

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/evan-pb/solitaire/internal/config"
	"github.com/evan-pb/solitaire/internal/domain"
)

// Assets maps card names to their face images plus the shared back image.
// Missing images are tolerated: the board falls back to drawing text faces, so
// the game is playable without an asset pack.
type Assets struct {
	faces map[string]fyne.Resource
	back  fyne.Resource
}

// LoadAssets reads <name>.png for every card in the deck (e.g. AH.png,
// 10S.png) plus the configured back image from the asset directory.
func LoadAssets(cfg config.AssetsConfig) *Assets {
	a := &Assets{faces: make(map[string]fyne.Resource, 52)}
	for _, c := range domain.NewDeck() {
		if res := loadResource(filepath.Join(cfg.Dir, c.String()+".png")); res != nil {
			a.faces[c.String()] = res
		}
	}
	a.back = loadResource(filepath.Join(cfg.Dir, cfg.Back))
	return a
}

func loadResource(path string) fyne.Resource {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return fyne.NewStaticResource(filepath.Base(path), data)
}

// Face returns the face image for a card, or nil when no image is available.
func (a *Assets) Face(c domain.Card) fyne.Resource {
	return a.faces[c.String()]
}

// Back returns the card-back image, or nil when no image is available.
func (a *Assets) Back() fyne.Resource {
	return a.back
}
