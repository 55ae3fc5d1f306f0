// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"github.com/jeranaias/pocketcalc/internal/calc"
	"github.com/jeranaias/pocketcalc/internal/logging"
	"github.com/jeranaias/pocketcalc/internal/ui/components"
)

// EvalCmd implements the 'eval' command.
type EvalCmd struct {
	Tokens []string `arg:"" optional:"" passthrough:"" help:"Button presses: digits, ., + - * /, AC, neg, %, ="`
	Full   bool     `help:"Print the whole display string instead of the visible digits"`
}

func (e *EvalCmd) Run(g *Global) error {
	cfg, err := g.Config()
	if err != nil {
		return err
	}
	logger, err := g.Logger()
	if err != nil {
		return err
	}

	tokens := calc.Tokenize(strings.Join(e.Tokens, " "))
	state, err := calc.Run(calc.New(), tokens)
	if err != nil {
		return &UsageError{Reason: "eval", Err: err}
	}
	logger.Debug("eval", logging.Display(state.Display))

	display := state.Display
	if !e.Full {
		display = components.DisplayText(display, cfg.UI.DisplayWidth)
	}
	fmt.Fprintln(g.Stdout, display)
	return nil
}
