// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package calculator is the Bubble Tea front end of pocketcalc.
//
// The Model owns exactly one calc.State for the lifetime of the program.
// Mouse clicks on the keypad dispatch actions; the keyboard only moves a
// focus cursor between keys and presses the focused one. The header holds
// a light/dark toggle, also reachable with "t".
//
// # Usage
//
//	theme := styles.NewTheme(styles.ModeAuto)
//	m := calculator.New(theme,
//	    calculator.WithLogger(logger),
//	    calculator.WithConfigUpdates(watcher.Updates()))
//	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
//	if _, err := p.Run(); err != nil {
//	    return err
//	}
package calculator
