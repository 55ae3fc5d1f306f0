// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calculator

import (
	"bytes"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/pocketcalc/internal/calc"
	"github.com/jeranaias/pocketcalc/internal/config"
	"github.com/jeranaias/pocketcalc/internal/ui/styles"
)

// =============================================================================
// HELPERS
// =============================================================================

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func newSized(t *testing.T, width, height int, opts ...Option) Model {
	t.Helper()
	m := New(styles.NewTheme(styles.ModeLight), opts...)
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return next.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// click sends a left click to the middle of the button carrying a.
func click(t *testing.T, m Model, a calc.Action) Model {
	t.Helper()
	l := m.layout()
	x, y, w, h, ok := m.keypad.Bounds(m.theme, a)
	require.True(t, ok, "no button for %s", a)
	m, _ = update(t, m, tea.MouseMsg{X: l.contentX + x + w/2, Y: l.keypadY + y + h/2, Type: tea.MouseLeft})
	return m
}

func clickAll(t *testing.T, m Model, tokens string) Model {
	t.Helper()
	for _, tok := range strings.Fields(tokens) {
		a, err := calc.ParseAction(tok)
		require.NoError(t, err)
		m = click(t, m, a)
	}
	return m
}

// =============================================================================
// CONSTRUCTION
// =============================================================================

func TestNew(t *testing.T) {
	m := New(styles.NewTheme(styles.ModeDark))

	assert.Equal(t, "0", m.State().Display)
	assert.False(t, m.State().Pending())
	assert.NotEmpty(t, m.ID())
	assert.True(t, m.Theme().IsDark)
	assert.Nil(t, m.Init(), "no config updates wired")
}

func TestNew_InstancesAreDistinct(t *testing.T) {
	theme := styles.NewTheme(styles.ModeLight)
	assert.NotEqual(t, New(theme).ID(), New(theme).ID())
}

// =============================================================================
// MOUSE
// =============================================================================

func TestMouse_Addition(t *testing.T) {
	m := newSized(t, 80, 50)
	m = clickAll(t, m, "5 + 3")

	assert.Equal(t, "3", m.State().Display)
	assert.Equal(t, calc.OpAdd, m.State().Operation)

	m = click(t, m, calc.EqualsAction)
	assert.Equal(t, "8", m.State().Display)
	assert.False(t, m.State().Pending())
}

func TestMouse_ChainAndClear(t *testing.T) {
	for _, size := range [][2]int{{80, 50}, {60, 24}, {0, 0}} {
		m := newSized(t, size[0], size[1])
		m = clickAll(t, m, "2 × 3 − 1 =")
		assert.Equal(t, "5", m.State().Display, "size %v", size)

		m = click(t, m, calc.ClearAction)
		assert.Equal(t, calc.New(), m.State(), "size %v", size)
	}
}

func TestMouse_ErrorDisplay(t *testing.T) {
	m := newSized(t, 80, 50)
	m = clickAll(t, m, "9 ÷ 0 =")
	assert.Equal(t, "Infinity", m.State().Display)
}

func TestMouse_MissesAndOtherButtons(t *testing.T) {
	m := newSized(t, 80, 50)
	l := m.layout()

	misses := []tea.MouseMsg{
		{X: 0, Y: 0, Type: tea.MouseLeft},
		{X: l.contentX + 9, Y: l.keypadY + 1, Type: tea.MouseLeft}, // gap between keys
		{X: l.contentX + 1, Y: l.displayY + 1, Type: tea.MouseLeft},
		{X: l.contentX + 1, Y: l.keypadY + 1, Type: tea.MouseRelease},
		{X: l.contentX + 1, Y: l.keypadY + 1, Type: tea.MouseRight},
		{X: l.contentX + 1, Y: l.keypadY + 1, Type: tea.MouseWheelUp},
	}
	m = click(t, m, calc.DigitAction('7'))
	for _, msg := range misses {
		m, _ = update(t, m, msg)
	}
	assert.Equal(t, "7", m.State().Display)
}

func TestMouse_Disabled(t *testing.T) {
	m := newSized(t, 80, 50, WithMouse(false))
	m = click(t, m, calc.DigitAction('7'))
	assert.Equal(t, "0", m.State().Display)
}

func TestMouse_ThemeToggle(t *testing.T) {
	m := newSized(t, 80, 50)
	l := m.layout()
	start, end := m.header.ToggleBounds()

	require.False(t, m.Theme().IsDark)
	m, _ = update(t, m, tea.MouseMsg{X: l.contentX + start, Y: l.headerY, Type: tea.MouseLeft})
	assert.True(t, m.Theme().IsDark)

	m, _ = update(t, m, tea.MouseMsg{X: l.contentX + end - 1, Y: l.headerY, Type: tea.MouseLeft})
	assert.False(t, m.Theme().IsDark)

	m, _ = update(t, m, tea.MouseMsg{X: l.contentX, Y: l.headerY, Type: tea.MouseLeft})
	assert.False(t, m.Theme().IsDark, "clicking the title does nothing")
	assert.Equal(t, "0", m.State().Display, "theme changes leave the state alone")
}

func TestMouse_ClickHidesFocus(t *testing.T) {
	m := newSized(t, 80, 50)
	m = click(t, m, calc.DigitAction('9'))

	assert.False(t, m.showFocus)
	assert.Equal(t, "9", m.keypad.Focused().Label(), "focus follows the click")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.True(t, m.showFocus)
	assert.Equal(t, "8", m.keypad.Focused().Label())
}

// =============================================================================
// KEYBOARD
// =============================================================================

func TestKeyboard_NavigateAndPress(t *testing.T) {
	m := newSized(t, 80, 50)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // "5"
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight}) // "−"
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, runeKey('j'))
	m, _ = update(t, m, runeKey('h'))
	m, _ = update(t, m, runeKey('h')) // "2"
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "2", m.State().Display)
	assert.Equal(t, calc.OpSubtract, m.State().Operation)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, runeKey('l'))
	m, _ = update(t, m, runeKey('l')) // "="
	require.Equal(t, "=", m.keypad.Focused().Label())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "3", m.State().Display)
}

func TestKeyboard_NoDigitEntry(t *testing.T) {
	m := newSized(t, 80, 50)
	for _, r := range "123+=" {
		m, _ = update(t, m, runeKey(r))
	}
	assert.Equal(t, calc.New(), m.State())
}

func TestKeyboard_ThemeAndHelp(t *testing.T) {
	m := newSized(t, 80, 50)

	m, _ = update(t, m, runeKey('t'))
	assert.True(t, m.Theme().IsDark)
	assert.Contains(t, stripANSI(m.View()), "[ light ]")

	m, _ = update(t, m, runeKey('?'))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, stripANSI(m.View()), "right")

	m, _ = update(t, m, runeKey('?'))
	assert.False(t, m.help.ShowAll)
}

func TestKeyboard_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		m := newSized(t, 80, 50)
		m, cmd := update(t, m, msg)
		require.NotNil(t, cmd, "%s", msg)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, m.View())
	}
}

// =============================================================================
// MESSAGES
// =============================================================================

func TestThemeChangedMsg(t *testing.T) {
	m := newSized(t, 80, 50)
	m, _ = update(t, m, ThemeChangedMsg{Mode: styles.ModeDark})
	assert.True(t, m.Theme().IsDark)

	m, _ = update(t, m, ThemeChangedMsg{Mode: styles.ModeLight})
	assert.False(t, m.Theme().IsDark)
}

func TestConfigUpdates(t *testing.T) {
	updates := make(chan *config.Config, 1)
	m := newSized(t, 80, 50, WithConfigUpdates(updates))

	cfg := config.Default()
	cfg.UI.Theme = "dark"
	cfg.UI.DisplayWidth = 5
	updates <- cfg

	init := m.Init()
	require.NotNil(t, init)
	msg := init()
	require.IsType(t, ConfigChangedMsg{}, msg)

	m, cmd := update(t, m, msg)
	require.NotNil(t, cmd)
	assert.Equal(t, 5, m.display.MaxChars)

	// The batch holds the next wait and the theme switch; only the switch
	// returns without blocking once the channel is closed.
	close(updates)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	var switched bool
	for _, c := range batch {
		if tm, ok := c().(ThemeChangedMsg); ok {
			assert.Equal(t, styles.ModeDark, tm.Mode)
			switched = true
		}
	}
	assert.True(t, switched)
}

func TestConfigUpdates_SameThemeOnlyWaits(t *testing.T) {
	updates := make(chan *config.Config)
	m := newSized(t, 80, 50, WithConfigUpdates(updates))

	cfg := config.Default()
	cfg.UI.Theme = "light"
	cfg.UI.Mouse = false
	m, cmd := update(t, m, ConfigChangedMsg{Config: cfg})

	assert.False(t, m.mouse)
	require.NotNil(t, cmd)
	close(updates)
	assert.Nil(t, cmd(), "closed channel ends the wait")
}

func TestWaitForConfig_Nil(t *testing.T) {
	assert.Nil(t, WaitForConfig(nil))
}

func TestLogging_DispatchCarriesInstance(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := newSized(t, 80, 50, WithLogger(logger))

	m = click(t, m, calc.DigitAction('4'))
	m, _ = update(t, m, runeKey('t'))

	out := buf.String()
	assert.Contains(t, out, "instance="+m.ID())
	assert.Contains(t, out, "action=digit:4")
	assert.Contains(t, out, "display=4")
	assert.Contains(t, out, "theme=dark")
}

// =============================================================================
// VIEW
// =============================================================================

// lineAt returns row y of the plain view as runes.
func lineAt(t *testing.T, view string, y int) []rune {
	t.Helper()
	lines := strings.Split(stripANSI(view), "\n")
	require.Less(t, y, len(lines))
	return []rune(lines[y])
}

func indexRunes(line []rune, sub string) int {
	return strings.Index(string(line), sub)
}

func TestView_LayoutMatchesRender(t *testing.T) {
	for _, size := range [][2]int{{80, 50}, {60, 24}} {
		m := newSized(t, size[0], size[1])
		m = clickAll(t, m, "1 2 +")
		view := m.View()
		l := m.layout()

		header := lineAt(t, view, l.headerY)
		title := indexRunes(header, "pocketcalc")
		require.GreaterOrEqual(t, title, 0, "size %v", size)
		assert.Equal(t, l.contentX, len([]rune(string(header)[:title])), "size %v: title column", size)

		start, _ := m.header.ToggleBounds()
		toggle := indexRunes(header, "[ dark ]")
		require.GreaterOrEqual(t, toggle, 0)
		assert.Equal(t, l.contentX+start, len([]rune(string(header)[:toggle])), "size %v: toggle column", size)

		display := lineAt(t, view, l.displayY)
		assert.Equal(t, '╭', display[l.contentX], "size %v: display border", size)

		pad := m.theme.KeyPadding()
		keys := lineAt(t, view, l.keypadY+1+pad)
		ac := indexRunes(keys, "AC")
		require.GreaterOrEqual(t, ac, 0, "size %v", size)
		col := len([]rune(string(keys)[:ac]))
		assert.Greater(t, col, l.contentX)
		assert.Less(t, col, l.contentX+m.keypad.Width()/4)

		assert.LessOrEqual(t, strings.Count(view, "\n")+1, size[1], "size %v: view fits", size)
	}
}

func TestView_ShowsTruncatedDisplay(t *testing.T) {
	m := newSized(t, 80, 50)
	m = clickAll(t, m, "1 2 3 4 5 6 7 8 9 0 1")

	assert.Equal(t, "12345678901", m.State().Display)
	view := stripANSI(m.View())
	assert.Contains(t, view, "123456789")
	assert.NotContains(t, view, "1234567890")
}

func TestView_DisplayWidthOption(t *testing.T) {
	m := newSized(t, 80, 50, WithDisplayWidth(4))
	m = clickAll(t, m, "1 2 3 4 5 6")

	view := stripANSI(m.View())
	assert.Contains(t, view, "1234")
	assert.NotContains(t, view, "12345")
}

func TestView_RendersFromOwnState(t *testing.T) {
	before := clickAll(t, newSized(t, 80, 50), "4 2")
	after := clickAll(t, before, "+ 7 =")

	first := before.View()
	assert.Contains(t, stripANSI(after.View()), "49")
	assert.Equal(t, first, before.View(), "rendering another model leaves this one unchanged")
	assert.Equal(t, "42", before.State().Display)
}
