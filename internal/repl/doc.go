// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package repl drives the calculator from lines of text.
//
// Each line is a sequence of button presses ("12.5 × 4 =", "5+3=", "AC").
// The session keeps one calculator state across lines and prints the
// visible display after each one. Lines starting with ":" are session
// commands: :clear, :theme, :help and :quit.
//
// On a terminal the prompt supports line editing through liner. Otherwise
// input is read line by line, so the REPL works in pipes:
//
//	echo "5 + 3 =" | pocketcalc repl
package repl
