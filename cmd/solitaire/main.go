package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/evan-pb/solitaire/internal/app"
	"github.com/evan-pb/solitaire/internal/config"
	"github.com/evan-pb/solitaire/internal/controller"
	"github.com/evan-pb/solitaire/internal/layout"
	"github.com/evan-pb/solitaire/internal/ports/fyneui"
)

func main() {
	cfgPath := flag.String("config", "solitaire.toml", "path to the TOML configuration file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *cfgPath).Msg("failed to load configuration")
	}
	applyLogConfig(cfg)

	engine := app.NewEngine(nil)
	geo := layout.FromConfig(cfg)
	ctrl := controller.New(engine, geo, log.Logger)
	assets := fyneui.LoadAssets(cfg.Assets)

	// Live-reload the log settings when the config file changes; geometry
	// changes still need a restart since the window is fixed-size.
	stop, err := config.Watch(*cfgPath, func(c *config.Config) {
		applyLogConfig(c)
		log.Info().Str("path", *cfgPath).Msg("configuration reloaded")
	})
	if err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	} else {
		defer stop()
	}

	log.Info().
		Int("width", cfg.Window.Width).
		Int("height", cfg.Window.Height).
		Msg("starting solitaire")

	fyneui.New(engine, ctrl, geo, assets).Run()
}

func applyLogConfig(cfg *config.Config) {
	if cfg.App.PrettyLog {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if lvl, err := zerolog.ParseLevel(cfg.App.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}
