// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pocketcalc/internal/calc"
	"github.com/jeranaias/pocketcalc/internal/ui/styles"
)

// =============================================================================
// KEYPAD LAYOUT
// =============================================================================

// KeyKind selects the color family of a key.
type KeyKind int

const (
	KindFunction KeyKind = iota // AC, ±, %
	KindDigit                   // 0-9 and .
	KindOperator                // ÷ × − +
	KindEquals                  // =
)

// Button is one control on the keypad.
type Button struct {
	Action calc.Action
	Kind   KeyKind
	Span   int // grid columns covered, 1 or 2
}

// Label returns the text printed on the key.
func (b Button) Label() string {
	return b.Action.Label()
}

// GridColumns is the number of key columns.
const GridColumns = 4

// keyGap is the blank column between keys.
const keyGap = 1

func fn(a calc.Action) Button { return Button{Action: a, Kind: KindFunction, Span: 1} }
func digit(d byte) Button { return Button{Action: calc.DigitAction(d), Kind: KindDigit, Span: 1} }
func operator(op calc.Op) Button { return Button{Action: calc.OperatorAction(op), Kind: KindOperator, Span: 1} }

// defaultLayout is the fixed button grid. The zero key spans two columns.
var defaultLayout = [][]Button{
	{fn(calc.ClearAction), fn(calc.ToggleSignAction), fn(calc.PercentAction), operator(calc.OpDivide)},
	{digit('7'), digit('8'), digit('9'), operator(calc.OpMultiply)},
	{digit('4'), digit('5'), digit('6'), operator(calc.OpSubtract)},
	{digit('1'), digit('2'), digit('3'), operator(calc.OpAdd)},
	{{Action: calc.DigitAction('0'), Kind: KindDigit, Span: 2}, {Action: calc.DecimalAction, Kind: KindDigit, Span: 1}, {Action: calc.EqualsAction, Kind: KindEquals, Span: 1}},
}

// =============================================================================
// KEYPAD COMPONENT
// =============================================================================

// Keypad is the button grid plus a focus cursor for keyboard navigation.
// It is a value type; Move returns the moved copy.
type Keypad struct {
	rows     [][]Button
	focusRow int
	focusIdx int // index within rows[focusRow]
}

// NewKeypad returns the standard keypad with focus on "5".
func NewKeypad() Keypad {
	return Keypad{rows: defaultLayout, focusRow: 2, focusIdx: 1}
}

// Rows returns the button grid, top row first.
func (k Keypad) Rows() [][]Button {
	return k.rows
}

// Focused returns the button under the cursor.
func (k Keypad) Focused() Button {
	return k.rows[k.focusRow][k.focusIdx]
}

// Find returns a keypad focused on the first button carrying the action.
func (k Keypad) Find(a calc.Action) (Keypad, bool) {
	for r, row := range k.rows {
		for i, b := range row {
			if b.Action == a {
				k.focusRow, k.focusIdx = r, i
				return k, true
			}
		}
	}
	return k, false
}

// Move shifts focus by dx keys horizontally and dy rows vertically,
// stopping at the edges. Vertical moves keep the grid column, so moving
// up from the wide zero lands on "1".
func (k Keypad) Move(dx, dy int) Keypad {
	if dy != 0 {
		col := k.gridColumn(k.focusRow, k.focusIdx)
		k.focusRow = clamp(k.focusRow+dy, 0, len(k.rows)-1)
		k.focusIdx = k.indexAt(k.focusRow, col)
	}
	if dx != 0 {
		k.focusIdx = clamp(k.focusIdx+dx, 0, len(k.rows[k.focusRow])-1)
	}
	return k
}

// gridColumn returns the first grid column covered by rows[row][idx].
func (k Keypad) gridColumn(row, idx int) int {
	col := 0
	for i := 0; i < idx; i++ {
		col += k.rows[row][i].Span
	}
	return col
}

// indexAt returns the index of the button covering a grid column.
func (k Keypad) indexAt(row, col int) int {
	start := 0
	for i, b := range k.rows[row] {
		if col < start+b.Span {
			return i
		}
		start += b.Span
	}
	return len(k.rows[row]) - 1
}

// =============================================================================
// GEOMETRY
// =============================================================================

// cellWidth is the outer width of a one-column key.
const cellWidth = styles.KeyWidth + 2

// Width returns the rendered width of the keypad.
func (k Keypad) Width() int {
	return GridColumns*cellWidth + (GridColumns-1)*keyGap
}

// RowHeight returns the rendered height of one key row.
func (k Keypad) RowHeight(theme *styles.Theme) int {
	return 1 + 2*theme.KeyPadding() + 2
}

// Height returns the rendered height of the keypad.
func (k Keypad) Height(theme *styles.Theme) int {
	return len(k.rows) * k.RowHeight(theme)
}

// HitTest maps a cell relative to the keypad's top-left corner to the
// button drawn there. Gaps between keys hit nothing.
func (k Keypad) HitTest(theme *styles.Theme, x, y int) (Button, bool) {
	if x < 0 || y < 0 || x >= k.Width() || y >= k.Height(theme) {
		return Button{}, false
	}

	row := k.rows[y/k.RowHeight(theme)]
	left := 0
	for _, b := range row {
		w := spanWidth(b.Span)
		if x >= left && x < left+w {
			return b, true
		}
		left += w + keyGap
	}
	return Button{}, false
}

// Bounds returns the rectangle, relative to the keypad's top-left corner,
// of the first button carrying the action.
func (k Keypad) Bounds(theme *styles.Theme, a calc.Action) (x, y, w, h int, ok bool) {
	rowHeight := k.RowHeight(theme)
	for r, row := range k.rows {
		left := 0
		for _, b := range row {
			if b.Action == a {
				return left, r * rowHeight, spanWidth(b.Span), rowHeight, true
			}
			left += spanWidth(b.Span) + keyGap
		}
	}
	return 0, 0, 0, 0, false
}

// spanWidth returns the outer width of a key covering span columns.
func spanWidth(span int) int {
	return span*cellWidth + (span-1)*keyGap
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the keypad. The key for the pending operator is drawn
// inverted; the focused key gets a contrasting border when showFocus is set.
func (k Keypad) View(theme *styles.Theme, pending calc.Op, showFocus bool) string {
	pad := theme.KeyPadding()
	gap := gapColumn(theme, k.RowHeight(theme))

	rows := make([]string, 0, len(k.rows))
	for r, row := range k.rows {
		keys := make([]string, 0, 2*len(row))
		for i, b := range row {
			if i > 0 {
				keys = append(keys, gap)
			}
			style := keyStyle(theme, b, pending).
				Width(spanWidth(b.Span) - 2).
				Padding(pad, 0)
			if showFocus && r == k.focusRow && i == k.focusIdx {
				style = style.BorderForeground(theme.FocusBorder).Bold(true)
			}
			keys = append(keys, style.Render(b.Label()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// keyStyle picks the base style for a button.
func keyStyle(theme *styles.Theme, b Button, pending calc.Op) lipgloss.Style {
	switch b.Kind {
	case KindFunction:
		return theme.FunctionKey
	case KindOperator:
		if pending != calc.OpNone && b.Action.Op == pending {
			return theme.OperatorSelected
		}
		return theme.OperatorKey
	case KindEquals:
		return theme.EqualsKey
	default:
		return theme.DigitKey
	}
}

// gapColumn renders the one-cell spacer between keys in the body color.
func gapColumn(theme *styles.Theme, height int) string {
	cell := lipgloss.NewStyle().Background(theme.Color(styles.Surface)).Render(strings.Repeat(" ", keyGap))
	lines := make([]string, height)
	for i := range lines {
		lines[i] = cell
	}
	return strings.Join(lines, "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
