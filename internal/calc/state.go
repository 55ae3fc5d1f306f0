// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import (
	"math"
	"strings"
)

// State is the complete calculator state. The zero value is not ready for
// use; start from New.
type State struct {
	// Display is the text on screen. Always a numeric literal or one of the
	// non-finite markers, never empty, at most one ".".
	Display string

	// Previous is the pending left operand, valid only when HasPrevious.
	Previous    float64
	HasPrevious bool

	// Operation is the pending operator, OpNone when absent.
	Operation Op

	// AwaitingOperand is set after an operator or equals press: the next
	// digit starts a fresh number instead of extending Display.
	AwaitingOperand bool
}

// New returns the state a calculator starts in.
func New() State {
	return State{Display: "0"}
}

// Pending reports whether an operation is waiting for its right operand.
func (s State) Pending() bool {
	return s.HasPrevious && s.Operation != OpNone
}

// Value returns the number currently on the display.
func (s State) Value() float64 {
	return Parse(s.Display)
}

// InputDigit presses one of the digit buttons. Bytes outside '0'-'9' are ignored.
func (s State) InputDigit(d byte) State {
	if !isDigit(d) {
		return s
	}
	digit := string(d)

	switch {
	case s.AwaitingOperand, !isFinite(s.Display):
		s.Display = digit
		s.AwaitingOperand = false
	case s.Display == "0":
		s.Display = digit
	default:
		s.Display += digit
	}
	return s
}

// InputDecimal presses the "." button.
func (s State) InputDecimal() State {
	switch {
	case s.AwaitingOperand, !isFinite(s.Display):
		s.Display = "0."
		s.AwaitingOperand = false
	case !strings.Contains(s.Display, "."):
		s.Display += "."
	}
	return s
}

// Clear presses AC.
func (s State) Clear() State {
	return New()
}

// ToggleSign presses ±. A bare zero and NaN have no sign to flip.
func (s State) ToggleSign() State {
	if s.Display == "0" || s.Display == MarkerNaN {
		return s
	}
	if strings.HasPrefix(s.Display, "-") {
		s.Display = s.Display[1:]
	} else {
		s.Display = "-" + s.Display
	}
	return s
}

// Percent presses %, dividing the display by 100.
func (s State) Percent() State {
	s.Display = Format(Parse(s.Display) / 100)
	return s
}

// PerformOperation presses an operator button. With an operation already
// pending, the accumulated result is computed first and shown. A NaN
// accumulator counts as zero when chaining, so the next operation recovers.
func (s State) PerformOperation(next Op) State {
	input := Parse(s.Display)

	if !s.HasPrevious {
		s.Previous = input
		s.HasPrevious = true
	} else if s.Operation != OpNone {
		acc := s.Previous
		if math.IsNaN(acc) {
			acc = 0
		}
		result := Apply(s.Operation, acc, input)
		s.Display = Format(result)
		s.Previous = result
	}

	s.Operation = next
	s.AwaitingOperand = true
	return s
}

// Equals presses =. Without a pending operand and operator it does nothing.
func (s State) Equals() State {
	if !s.Pending() {
		return s
	}

	result := Apply(s.Operation, s.Previous, Parse(s.Display))
	s.Display = Format(result)
	s.Previous = 0
	s.HasPrevious = false
	s.Operation = OpNone
	s.AwaitingOperand = true
	return s
}
