package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"corylus/internal/app"
	"corylus/internal/assets"
	"corylus/internal/config"
	"corylus/internal/ui/graphics"
	"corylus/internal/ui/link"
	"corylus/internal/ui/locale"
	"corylus/internal/ui/types"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("Failed to load config", err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		fatal("Invalid log level", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})))

	tr, err := locale.Load(cfg.Locale.Language)
	if err != nil {
		fatal("Failed to load locale", err)
	}

	fonts := assets.NewLoader()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = fonts.Preload(ctx, cfg.Menu.FontSize)
	cancel()
	if err != nil {
		fatal("Failed to preload fonts", err)
	}

	application, err := app.NewApp(app.Options{
		Config:  cfg,
		Text:    tr,
		Fonts:   fonts,
		Links:   link.NewBrowser(cfg.About.CopyOnFailure),
		Initial: types.ScreenSplash,
	})
	if err != nil {
		fatal("Failed to create app", err)
	}

	engine := graphics.NewEngine(cfg, application, fonts)
	if err := engine.Run(); err != nil {
		fatal("UI error", err)
	}
	slog.Info("Shutting down...")
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}
