// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads, validates, saves and watches pocketcalc settings.
//
// Settings only shape the presentation: starting theme, mouse support,
// display width and the debug log. Nothing here changes how numbers are
// computed.
//
// # Configuration Precedence
//
//   - Environment variables (POCKETCALC_THEME, POCKETCALC_LOG_FILE,
//     POCKETCALC_LOG_LEVEL, NO_MOUSE)
//   - The file named by --config, or $XDG_CONFIG_HOME/pocketcalc/config.toml
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//
//	w, err := config.NewWatcher(path, config.DefaultDebounce, logger)
//	go w.Run(ctx)
//	for cfg := range w.Updates() {
//	    // apply cfg.UI.Theme
//	}
package config
