// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/jeranaias/pocketcalc/internal/repl"
	"github.com/jeranaias/pocketcalc/internal/ui/styles"
)

// ReplCmd implements the 'repl' command.
type ReplCmd struct{}

func (r *ReplCmd) Run(g *Global) error {
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := repl.NewSession(g.Stdout, styles.NewTheme(mode), logger)
	s.SetDisplayWidth(cfg.UI.DisplayWidth)
	return s.Start(ctx, g.Stdin)
}
