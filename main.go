package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"termdraw/canvas"
	"termdraw/config"
	"termdraw/editor"
	"termdraw/logging"
	"termdraw/terminal"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	logger, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()
	logging.SetLogger(logger)

	logger.Info("starting",
		"mode", cfg.Mode,
		"glyphs", cfg.GlyphsName,
		"junctions", cfg.Junctions,
		"interval", cfg.Interval)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	ed := editor.New(canvas.NewCanvas(cfg.Glyphs), editor.Options{
		Mode:       cfg.Mode,
		Junctions:  cfg.Junctions,
		StatusLine: cfg.StatusLine,
		Logger:     logger,
	})

	driver, err := terminal.NewDriver(screen, ed, cfg.Interval)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = driver.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	return err
}
