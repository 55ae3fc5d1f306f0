// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/pocketcalc/internal/config"
	"github.com/jeranaias/pocketcalc/internal/logging"
	"github.com/jeranaias/pocketcalc/internal/ui/calculator"
	"github.com/jeranaias/pocketcalc/internal/ui/styles"
)

// TUICmd implements the 'tui' command.
type TUICmd struct {
	NoMouse bool `help:"Disable mouse support"`
	NoWatch bool `help:"Do not reload the config file when it changes"`
}

func (t *TUICmd) Run(g *Global) error {
	if err := requireTTY("run the calculator widget", g.Stdin, g.Stdout); err != nil {
		return err
	}

	cfg, err := g.Config()
	if err != nil {
		return err
	}
	logger, err := g.Logger()
	if err != nil {
		return err
	}
	mode, err := g.Mode()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mouse := cfg.UI.Mouse && !t.NoMouse
	opts := []calculator.Option{
		calculator.WithLogger(logger),
		calculator.WithMouse(mouse),
		calculator.WithDisplayWidth(cfg.UI.DisplayWidth),
	}

	if !t.NoWatch {
		w, err := config.NewWatcher(g.ConfigPath(), config.DefaultDebounce, logger)
		if err != nil {
			// A missing config directory just means nothing to watch.
			logger.Warn("config watcher disabled", logging.Path(g.ConfigPath()), logging.Error(err))
		} else {
			go w.Run(ctx)
			opts = append(opts, calculator.WithConfigUpdates(w.Updates()))
		}
	}

	m := calculator.New(styles.NewTheme(mode), opts...)
	logger.Info("calculator started", logging.Instance(m.ID()), logging.Theme(m.Theme().Name()))

	programOpts := []tea.ProgramOption{
		tea.WithInput(g.Stdin),
		tea.WithOutput(g.Stdout),
	}
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		return fmt.Errorf("calculator: %w", err)
	}
	logger.Info("calculator stopped", logging.Instance(m.ID()))
	return nil
}
