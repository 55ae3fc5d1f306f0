// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calculator

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jeranaias/pocketcalc/internal/calc"
	"github.com/jeranaias/pocketcalc/internal/config"
	"github.com/jeranaias/pocketcalc/internal/logging"
	"github.com/jeranaias/pocketcalc/internal/ui/components"
	"github.com/jeranaias/pocketcalc/internal/ui/styles"
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the calculator screen.
type Model struct {
	// Calculator state, created with the model and dropped with it
	state calc.State

	// UI components
	theme   *styles.Theme
	header  *components.Header
	display *components.Display
	keypad  components.Keypad
	keys    KeyMap
	help    help.Model

	// Dimensions
	width  int
	height int

	// Options
	mouse   bool
	updates <-chan *config.Config

	id        string
	logger    *slog.Logger
	showFocus bool
	quitting  bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger for dispatched actions and theme changes.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMouse enables or disables click handling.
func WithMouse(enabled bool) Option {
	return func(m *Model) {
		m.mouse = enabled
	}
}

// WithDisplayWidth sets how many characters of the display are visible.
func WithDisplayWidth(chars int) Option {
	return func(m *Model) {
		if chars > 0 {
			m.display.MaxChars = chars
		}
	}
}

// WithConfigUpdates applies configurations received on updates while the
// program runs.
func WithConfigUpdates(updates <-chan *config.Config) Option {
	return func(m *Model) {
		m.updates = updates
	}
}

// New creates a calculator showing "0".
func New(theme *styles.Theme, opts ...Option) Model {
	m := Model{
		state:     calc.New(),
		theme:     theme,
		header:    components.NewHeader(theme),
		display:   components.NewDisplay(theme),
		keypad:    components.NewKeypad(),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		mouse:     true,
		id:        uuid.NewString(),
		logger:    slog.New(slog.DiscardHandler),
		showFocus: true,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.logger = m.logger.With(logging.Instance(m.id))
	m.header.Width = m.keypad.Width()
	m.display.Width = m.keypad.Width()
	m.applyHelpStyles()
	return m
}

// State returns the calculator state.
func (m Model) State() calc.State {
	return m.state
}

// Theme returns the theme, shared with every component.
func (m Model) Theme() *styles.Theme {
	return m.theme
}

// ID returns the instance id attached to every log line.
func (m Model) ID() string {
	return m.id
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts listening for configuration reloads, if any were wired.
func (m Model) Init() tea.Cmd {
	return WaitForConfig(m.updates)
}

// applyHelpStyles tints the help footer with the current palette.
func (m *Model) applyHelpStyles() {
	muted := m.theme.Help
	m.help.Styles.ShortKey = muted.Bold(true)
	m.help.Styles.ShortDesc = muted
	m.help.Styles.ShortSeparator = muted
	m.help.Styles.FullKey = muted.Bold(true)
	m.help.Styles.FullDesc = muted
	m.help.Styles.FullSeparator = muted
	m.help.Styles.Ellipsis = muted
}
