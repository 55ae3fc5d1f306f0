// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual pieces of the pocketcalc widget.

Each component renders from a *styles.Theme and plain values; none of them
hold calculator state.

# Components

Header (header.go) - Title line with the light/dark toggle control.
Display (display.go) - Right-aligned number panel, truncated to nine characters.
Keypad (keypad.go) - The 5x4 button grid with focus, highlighting and hit testing.

# Keypad Layout

	AC  ±   %   ÷
	7   8   9   ×
	4   5   6   −
	1   2   3   +
	0 (wide) .  =

HitTest maps a mouse cell to a Button; Button.Action is what the owner
dispatches to the engine.
*/
package components
