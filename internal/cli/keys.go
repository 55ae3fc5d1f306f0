// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/pocketcalc/internal/ui/calculator"
)

// KeysCmd implements the 'keys' command.
type KeysCmd struct {
	Raw bool `help:"Print the Markdown source instead of rendering it"`
}

func (k *KeysCmd) Run(g *Global) error {
	md := KeysMarkdown(calculator.DefaultKeyMap())
	if k.Raw {
		fmt.Fprint(g.Stdout, md)
		return nil
	}

	style := glamour.WithStandardStyle("notty")
	if isTerminal(g.Stdout) {
		style = glamour.WithAutoStyle()
	}
	renderer, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(terminalWidth(g.Stdout)),
	)
	if err != nil {
		return NewCommandError("keys", "render", "could not create markdown renderer", err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		return NewCommandError("keys", "render", "could not render controls", err)
	}
	fmt.Fprint(g.Stdout, out)
	return nil
}

// KeysMarkdown documents the calculator controls as Markdown.
func KeysMarkdown(km calculator.KeyMap) string {
	var b strings.Builder

	b.WriteString("# pocketcalc controls\n\n")
	b.WriteString("## Mouse\n\n")
	b.WriteString("- Click a key to press it.\n")
	b.WriteString("- Click the toggle in the top right corner to switch between light and dark.\n\n")

	b.WriteString("## Keyboard\n\n")
	b.WriteString("Digits are entered on the keypad; the keyboard moves the cursor between keys.\n\n")
	b.WriteString("| Key | Action |\n")
	b.WriteString("|-----|--------|\n")
	for _, group := range km.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}

	b.WriteString("\n## Line mode\n\n")
	b.WriteString("`pocketcalc repl` and `pocketcalc eval` take the same buttons as text: ")
	b.WriteString("`0-9 . + - * / AC neg % =`.\n")
	return b.String()
}
