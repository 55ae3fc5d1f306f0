// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import "strings"

// Op is a binary arithmetic operator. The zero value means no operator.
type Op int

const (
	OpNone Op = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// Symbol returns the button label for the operator.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

// String returns the operator name used in logs and config.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "none"
	}
}

// ParseOp accepts the button symbols, their ASCII stand-ins and short names.
func ParseOp(s string) (Op, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "add", "plus":
		return OpAdd, true
	case "-", "−", "sub", "subtract", "minus":
		return OpSubtract, true
	case "*", "×", "x", "mul", "multiply", "times":
		return OpMultiply, true
	case "/", "÷", "div", "divide":
		return OpDivide, true
	default:
		return OpNone, false
	}
}

// Apply evaluates a op b. Division by zero is not trapped: it yields
// ±Inf or NaN, which Format renders as display markers.
func Apply(op Op, a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		return a / b
	default:
		return b
	}
}
