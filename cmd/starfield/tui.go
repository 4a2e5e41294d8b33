package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/litescript/ls-starfield/internal/camera"
	"github.com/litescript/ls-starfield/internal/catalog"
	"github.com/litescript/ls-starfield/internal/config"
	"github.com/litescript/ls-starfield/internal/session"
	"github.com/litescript/ls-starfield/internal/ui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}

	sess := session.New(store, cfg.Session(), logger.Named("session"))
	exec := camera.NewExecutor(camera.DefaultExecutorConfig())
	opts := []ui.Option{ui.WithLogger(logger)}

	if cfg.CatalogPath != "" {
		w, err := catalog.NewWatcher(cfg.CatalogPath, store, logger)
		if err != nil {
			return fmt.Errorf("watch catalog: %w", err)
		}
		if err := w.Start(); err != nil {
			return fmt.Errorf("watch catalog: %w", err)
		}
		defer w.Stop()
		opts = append(opts, ui.WithReloads(w.Reloads))
	}

	p := tea.NewProgram(ui.New(sess, exec, opts...), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
