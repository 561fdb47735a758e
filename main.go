package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"fitdash/internal/config"
	"fitdash/internal/feed"
	"fitdash/internal/logging"
	"fitdash/internal/service"
	"fitdash/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Optional .env in the working directory; env vars override the config
	// file either way.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("\nPlease edit the config file at:\n  %s/config.json\n\n", configDir)
		fmt.Println("You need to set data_sheet_url to your published CSV feed.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// The TUI owns stdout, so logs go to a file next to the config.
	configDir, err := config.GetConfigDir()
	if err != nil {
		return fmt.Errorf("locating config dir: %w", err)
	}
	logging.Setup(configDir, logging.SetupParams{
		LogFileName: cfg.Log.File,
		LogLevel:    cfg.Log.Level,
	})

	// Create services
	client := feed.NewClient(cfg.Feed.DataSheetURL, cfg.Feed.PlanURL)
	state := service.NewState()
	refresher := service.NewRefresher(client, state)
	query := service.NewQueryService(state, cfg.Targets.ProteinGrams, cfg.Targets.StepsPerDay)

	// Launch TUI
	app := tui.NewApp(state, query, refresher,
		time.Duration(cfg.Refresh.IntervalMinutes)*time.Minute)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
