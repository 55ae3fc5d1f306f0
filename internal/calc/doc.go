// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package calc contains the calculator engine behind every pocketcalc front end.
//
// The engine is a pure state machine. Each button press takes the current
// State and returns the next one; nothing is shared and nothing fails.
// Numeric edge cases such as division by zero show up as the display
// markers "Infinity", "-Infinity" and "NaN" instead of errors.
//
// # Key Types
//
//   - State: display string, pending operand, pending operator, awaiting flag
//   - Op: one of the four arithmetic operators (or OpNone)
//   - Action: a single button press that Dispatch routes to an operation
//
// # Chaining
//
// Operators chain as a running accumulator, not with precedence:
// pressing 2 + 3 × evaluates 2+3 before × is applied. This matches the way
// pocket calculators behave.
//
// # Usage
//
//	s := calc.New()
//	s = s.InputDigit('5').PerformOperation(calc.OpAdd).InputDigit('3').Equals()
//	fmt.Println(s.Display) // 8
//
// Text front ends feed button tokens instead:
//
//	s, err := calc.Run(calc.New(), calc.Tokenize("12.5*3="))
package calc
