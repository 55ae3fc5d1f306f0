// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"golang.org/x/term"
	"golang.org/x/text/width"

	"github.com/jeranaias/pocketcalc/internal/calc"
	"github.com/jeranaias/pocketcalc/internal/logging"
	"github.com/jeranaias/pocketcalc/internal/ui/components"
	"github.com/jeranaias/pocketcalc/internal/ui/styles"
)

// Prompt is shown before each interactive line.
const Prompt = "calc> "

// ErrUnknownCommand is returned for a ":" command the session does not know.
var ErrUnknownCommand = errors.New("unknown command")

const helpText = `Enter button presses separated by spaces, or run them together:
  digits  0-9 and .
  ops     + - * / (also × ÷ − plus minus times div)
  keys    AC (clear), +/- or neg (sign), % (percent), = (equals)

Commands:
  :clear  reset the calculator
  :theme  toggle light/dark output colors
  :help   show this help
  :quit   leave the session`

// =============================================================================
// SESSION
// =============================================================================

// Session is one calculator and the writer its results go to.
type Session struct {
	state    calc.State
	out      io.Writer
	theme    *styles.Theme
	logger   *slog.Logger
	maxChars int
}

// NewSession creates a session showing "0".
func NewSession(out io.Writer, theme *styles.Theme, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		state:    calc.New(),
		out:      out,
		theme:    theme,
		logger:   logger,
		maxChars: components.DefaultDisplayChars,
	}
}

// SetDisplayWidth sets how many characters of the display are printed.
func (s *Session) SetDisplayWidth(chars int) {
	if chars > 0 {
		s.maxChars = chars
	}
}

// State returns the calculator state.
func (s *Session) State() calc.State {
	return s.state
}

// Eval handles one line of input and prints the result. It reports
// whether the session should end. An unknown token keeps the presses
// before it and returns the error.
func (s *Session) Eval(line string) (quit bool, err error) {
	line = strings.TrimSpace(width.Narrow.String(line))
	if line == "" {
		return false, nil
	}
	if strings.HasPrefix(line, ":") {
		return s.command(line)
	}

	tokens := calc.Tokenize(line)
	s.state, err = calc.Run(s.state, tokens)
	s.logger.Debug("line evaluated",
		slog.Int("tokens", len(tokens)),
		logging.Display(s.state.Display),
		logging.Error(err))
	s.printState()
	return false, err
}

func (s *Session) command(line string) (bool, error) {
	name := strings.ToLower(strings.Fields(line)[0])
	switch name {
	case ":quit", ":q", ":exit":
		return true, nil
	case ":clear", ":c":
		s.state = s.state.Clear()
		s.printState()
	case ":theme":
		s.theme.Toggle()
		fmt.Fprintf(s.out, "theme: %s\n", s.theme.Name())
	case ":help", ":h", ":?":
		fmt.Fprintln(s.out, helpText)
	default:
		return false, fmt.Errorf("%w: %s (try :help)", ErrUnknownCommand, name)
	}
	return false, nil
}

// printState writes the visible display, followed by the pending
// operation when there is one.
func (s *Session) printState() {
	text := components.DisplayText(s.state.Display, s.maxChars)
	out := lipgloss.NewStyle().Bold(true).Foreground(s.theme.Color(styles.TextPrimary)).Render(text)
	if s.state.Pending() {
		pending := fmt.Sprintf("[%s %s]", calc.Format(s.state.Previous), s.state.Operation.Symbol())
		out += "  " + lipgloss.NewStyle().Foreground(s.theme.Color(styles.Accent)).Render(pending)
	}
	fmt.Fprintln(s.out, out)
}

func (s *Session) printError(err error) {
	fmt.Fprintf(s.out, "error: %v\n", err)
}

// =============================================================================
// INPUT LOOPS
// =============================================================================

// Run reads lines from in until EOF, :quit or ctx is cancelled. Bad input
// is reported on the output and does not end the session.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		quit, err := s.Eval(scanner.Text())
		if err != nil {
			s.printError(err)
		}
		if quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// Interactive runs a line-editing prompt on the terminal. History is kept
// in memory for the session only. Ctrl+C and Ctrl+D end the session.
func (s *Session) Interactive(ctx context.Context) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Fprintln(s.out, "pocketcalc: type :help for usage, :quit to exit")
	s.printState()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		input, err := line.Prompt(Prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		quit, err := s.Eval(input)
		if err != nil {
			s.printError(err)
		}
		if quit {
			return nil
		}
	}
}

// Start picks the interactive prompt when in is a terminal and the plain
// line reader otherwise.
func (s *Session) Start(ctx context.Context, in *os.File) error {
	if IsTerminal(in) {
		return s.Interactive(ctx)
	}
	return s.Run(ctx, in)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
