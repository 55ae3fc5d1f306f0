// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for pocketcalc.

# Color System (colors.go)

Every color is a Lip Gloss AdaptiveColor pair. Unlike a plain adaptive
style, the pair is resolved by the Theme's own light/dark flag, so the
on-screen toggle wins over terminal detection.

	Accent        - Operator and equals keys (blue light, orange dark)
	SelectedBg    - Pending operator key, drawn inverted
	FunctionKeyBg - AC, ± and %
	DigitKeyBg    - Digits and the decimal point
	Surface       - Calculator body
	DisplayBg     - Display panel

# Theme System (theme.go)

	theme := styles.NewTheme(styles.ModeAuto)
	theme.Toggle()        // light <-> dark
	theme.SetSize(w, h)   // responsive key height
	if theme.Compact() {
		// short terminal, keys lose their vertical padding
	}
*/
package styles
