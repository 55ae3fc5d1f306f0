// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import "log/slog"

// Canonical log field names.
const (
	KeyInstance = "instance"
	KeyAction   = "action"
	KeyDisplay  = "display"
	KeyTheme    = "theme"
	KeyPath     = "path"
	KeyError    = "error"
)

func Instance(id string) slog.Attr { return slog.String(KeyInstance, id) }
func Action(name string) slog.Attr { return slog.String(KeyAction, name) }
func Display(s string) slog.Attr { return slog.String(KeyDisplay, s) }
func Theme(name string) slog.Attr { return slog.String(KeyTheme, name) }
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
