package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"feedscan/internal/config"
	"feedscan/internal/core"
)

var (
	configPath = flag.String("config", "feedscan.toml", "Path to configuration file")
	verbose    = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		fmt.Printf("\nReceived signal: %v\n", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	scanner := core.NewScanner(cfg, os.Stdout)
	return scanner.Run(ctx)
}

// loadConfig falls back to built-in defaults when the config file is absent
// at the default path, so the tool runs with its fixed filenames out of the
// box. An explicitly given path must exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}

	flagSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			flagSet = true
		}
	})

	if !flagSet && errors.Is(err, os.ErrNotExist) {
		slog.Info("No config file found, using defaults", "path", path)
		return config.Default(), nil
	}

	return nil, err
}
