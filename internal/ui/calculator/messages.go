// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calculator

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/pocketcalc/internal/config"
	"github.com/jeranaias/pocketcalc/internal/ui/styles"
)

// ThemeChangedMsg switches the palette to Mode.
type ThemeChangedMsg struct {
	Mode styles.Mode
}

// ConfigChangedMsg carries a configuration reloaded from disk.
type ConfigChangedMsg struct {
	Config *config.Config
}

// WaitForConfig blocks on the next value from updates. A closed channel
// ends the wait with no message.
func WaitForConfig(updates <-chan *config.Config) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return ConfigChangedMsg{Config: cfg}
	}
}
