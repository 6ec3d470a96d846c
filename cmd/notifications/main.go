package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhle/notifications/internal/app"
	"github.com/nhle/notifications/internal/logging"
	"github.com/nhle/notifications/internal/model"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "notifications:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", model.DefaultConfigPath(), "path to config.yaml")
	seed := flag.Int64("seed", 0, "random seed for the first session (overrides config)")
	count := flag.Int("count", -1, "notifications per session (overrides config)")
	flag.Parse()

	cfg, err := model.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Generator.Seed = *seed
	}
	if *count >= 0 {
		cfg.Generator.Count = *count
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	m, err := app.New(cfg,
		app.WithLogger(logger),
		app.WithConfigPath(*configPath),
	)
	if err != nil {
		return err
	}

	logger.Info("starting", zap.String("config", *configPath))

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
