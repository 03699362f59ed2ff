package fyneui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/evan-pb/solitaire/internal/config"
	"github.com/evan-pb/solitaire/internal/domain"
)

func TestLoadAssetsMissingPack(t *testing.T) {
	a := LoadAssets(config.AssetsConfig{
		Dir:  filepath.Join(t.TempDir(), "absent"),
		Back: "red_back.png",
	})

	if res := a.Face(domain.Card{Suit: domain.Hearts, Rank: domain.Ace}); res != nil {
		t.Errorf("expected nil face without an asset pack, got %v", res)
	}
	if res := a.Back(); res != nil {
		t.Errorf("expected nil back without an asset pack, got %v", res)
	}
}

func TestLoadAssetsReadsCardFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"AH.png", "10S.png", "red_back.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("png-bytes"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	a := LoadAssets(config.AssetsConfig{Dir: dir, Back: "red_back.png"})

	if res := a.Face(domain.Card{Suit: domain.Hearts, Rank: domain.Ace}); res == nil {
		t.Error("expected AH face to load")
	} else if res.Name() != "AH.png" {
		t.Errorf("expected resource name AH.png, got %q", res.Name())
	}
	if a.Face(domain.Card{Suit: domain.Spades, Rank: domain.Ten}) == nil {
		t.Error("expected 10S face to load")
	}
	if a.Face(domain.Card{Suit: domain.Clubs, Rank: domain.Two}) != nil {
		t.Error("expected missing card to stay nil")
	}
	if a.Back() == nil {
		t.Error("expected back image to load")
	}
}
