// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the slog logger used across pocketcalc.
//
// The TUI owns the terminal, so logs never go to stdout or stderr. They are
// appended to the file named in the [log] config section, and discarded
// when no file is configured.
//
// Attribute helpers keep field names consistent between packages:
//
//	logger.Debug("action dispatched",
//	    logging.Instance(id),
//	    logging.Action(a.String()),
//	    logging.Display(s.Display))
package logging
