// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ErrorStyle colors the "error:" prefix.
var ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w interface{}) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// DefaultTerminalWidth is the fallback width when detection fails.
const DefaultTerminalWidth = 80

// terminalWidth returns the width of w, or DefaultTerminalWidth.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return DefaultTerminalWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}

// TTYRequiredError is returned when an operation needs a terminal.
type TTYRequiredError struct {
	Operation string
}

func (e *TTYRequiredError) Error() string {
	return "not a terminal; cannot " + e.Operation
}

// requireTTY fails unless both ends of the session are terminals.
func requireTTY(operation string, in, out interface{}) error {
	if !isTerminal(in) || !isTerminal(out) {
		return &UsageError{Reason: "try 'pocketcalc repl' or 'pocketcalc eval' instead", Err: &TTYRequiredError{Operation: operation}}
	}
	return nil
}
