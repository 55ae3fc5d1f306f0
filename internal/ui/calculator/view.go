// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calculator

import (
	"github.com/charmbracelet/lipgloss"
)

// frameSide is the horizontal padding inside the frame border.
const frameSide = 2

// layout is where each part of the screen lands, in terminal cells.
// View and the mouse handler both derive positions from it.
type layout struct {
	left, top      int // frame's top-left corner
	frameW, frameH int

	contentX int // left edge of header, display and keypad
	headerY  int
	displayY int
	keypadY  int
}

// framePadTop is the vertical padding inside the frame border.
func (m Model) framePadTop() int {
	if m.theme.Compact() {
		return 0
	}
	return 1
}

// sectionGap is the blank rows between header, display and keypad.
func (m Model) sectionGap() int {
	if m.theme.Compact() {
		return 0
	}
	return 1
}

func (m Model) helpView() string {
	return m.help.View(m.keys)
}

func (m Model) layout() layout {
	pad := m.framePadTop()
	gap := m.sectionGap()
	displayH := m.display.Lines() + 2
	contentH := 1 + gap + displayH + gap + m.keypad.Height(m.theme)

	l := layout{
		frameW: m.keypad.Width() + 2*frameSide + 2,
		frameH: contentH + 2*pad + 2,
	}

	// Center the frame and the help footer below it.
	if m.width > l.frameW {
		l.left = (m.width - l.frameW) / 2
	}
	total := l.frameH + 1 + lipgloss.Height(m.helpView())
	if m.height > total {
		l.top = (m.height - total) / 2
	}

	l.contentX = l.left + 1 + frameSide
	l.headerY = l.top + 1 + pad
	l.displayY = l.headerY + 1 + gap
	l.keypadY = l.displayY + displayH + gap
	return l
}

// View renders the calculator.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	l := m.layout()

	parts := []string{m.header.View()}
	if m.sectionGap() > 0 {
		parts = append(parts, "")
	}
	parts = append(parts, m.display.View(m.state.Display))
	if m.sectionGap() > 0 {
		parts = append(parts, "")
	}
	parts = append(parts, m.keypad.View(m.theme, m.state.Operation, m.showFocus))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	frame := m.theme.Frame.
		Padding(m.framePadTop(), frameSide).
		Render(content)

	body := lipgloss.JoinVertical(lipgloss.Left, frame, "", m.theme.Help.Render(m.helpView()))
	return lipgloss.NewStyle().
		MarginLeft(l.left).
		MarginTop(l.top).
		Render(body)
}
