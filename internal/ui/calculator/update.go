// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calculator

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/pocketcalc/internal/calc"
	"github.com/jeranaias/pocketcalc/internal/logging"
	"github.com/jeranaias/pocketcalc/internal/ui/styles"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ThemeChangedMsg:
		m.setMode(msg.Mode)
		return m, nil

	case ConfigChangedMsg:
		return m.handleConfig(msg)
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()

	case key.Matches(msg, m.keys.Up):
		m.moveFocus(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(1, 0)

	case key.Matches(msg, m.keys.Press):
		m.showFocus = true
		m.dispatch(m.keypad.Focused().Action)
	}

	return m, nil
}

// handleMouse presses whatever sits under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.mouse || msg.Type != tea.MouseLeft {
		return m, nil
	}

	l := m.layout()
	if msg.Y == l.headerY {
		start, end := m.header.ToggleBounds()
		if msg.X >= l.contentX+start && msg.X < l.contentX+end {
			m.toggleTheme()
		}
		return m, nil
	}

	b, ok := m.keypad.HitTest(m.theme, msg.X-l.contentX, msg.Y-l.keypadY)
	if !ok {
		return m, nil
	}
	if k, found := m.keypad.Find(b.Action); found {
		m.keypad = k
	}
	m.showFocus = false
	m.dispatch(b.Action)
	return m, nil
}

func (m Model) handleConfig(msg ConfigChangedMsg) (tea.Model, tea.Cmd) {
	wait := WaitForConfig(m.updates)
	cfg := msg.Config
	if cfg == nil {
		return m, wait
	}

	m.mouse = cfg.UI.Mouse
	if cfg.UI.DisplayWidth > 0 {
		m.display.MaxChars = cfg.UI.DisplayWidth
	}

	mode, ok := styles.ParseMode(cfg.UI.Theme)
	if !ok || mode == m.theme.Mode {
		return m, wait
	}
	return m, tea.Batch(wait, func() tea.Msg {
		return ThemeChangedMsg{Mode: mode}
	})
}

// =============================================================================
// STATE CHANGES
// =============================================================================

func (m *Model) dispatch(a calc.Action) {
	m.state = m.state.Dispatch(a)
	m.logger.Debug("action dispatched",
		logging.Action(a.String()),
		logging.Display(m.state.Display))
}

// moveFocus moves the cursor and shows it again after a click hid it.
func (m *Model) moveFocus(dx, dy int) {
	m.keypad = m.keypad.Move(dx, dy)
	m.showFocus = true
}

func (m *Model) toggleTheme() {
	m.theme.Toggle()
	m.applyHelpStyles()
	m.logger.Debug("theme toggled", logging.Theme(m.theme.Name()))
}

func (m *Model) setMode(mode styles.Mode) {
	m.theme.SetMode(mode)
	m.applyHelpStyles()
	m.logger.Info("theme changed", logging.Theme(m.theme.Name()))
}
