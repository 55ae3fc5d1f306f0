// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the pocketcalc command line.
//
// # Commands
//
//   - tui: interactive calculator widget (default)
//   - repl: line-mode calculator, also usable in pipes
//   - eval: press a list of buttons and print the display
//   - keys: control reference
//   - config: show, path, get, set, init
//   - version: print the version
//
// # Exit Codes
//
//   - 0: success
//   - 1: general error
//   - 2: usage error (bad flags, unknown button tokens)
//   - 3: configuration error
//
// Handlers return errors; Execute prints them and maps them to exit codes.
package cli
