package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"CurveBoard/internal/config"
	"CurveBoard/internal/ui"

	"fyne.io/fyne/v2/app"
)

const AppID = "io.curveboard.editor"

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (watched for changes)")
	logLevel := flag.String("log-level", "", "overrides the configured log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "path", *configPath, "err", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
		if err := cfg.Validate(); err != nil {
			slog.Error("bad -log-level flag", "err", err)
			os.Exit(2)
		}
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run(ctx, cfg, *configPath, log)
}

func run(ctx context.Context, cfg config.Config, configPath string, log *slog.Logger) {
	log.Info("starting curve editor", "config", configPath)
	a := app.NewWithID(AppID)
	ui.NewEditor(a, cfg, log).Run(ctx, configPath)
	log.Info("editor closed")
}
