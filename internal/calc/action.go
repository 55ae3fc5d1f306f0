// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnknownToken is returned when text does not name a calculator button.
var ErrUnknownToken = errors.New("unknown token")

// ActionKind identifies which engine operation an Action invokes.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionDigit
	ActionDecimal
	ActionClear
	ActionToggleSign
	ActionPercent
	ActionOperator
	ActionEquals
)

// Action is a single button press with its fixed argument.
type Action struct {
	Kind  ActionKind
	Digit byte // ActionDigit only
	Op    Op   // ActionOperator only
}

var (
	DecimalAction    = Action{Kind: ActionDecimal}
	ClearAction      = Action{Kind: ActionClear}
	ToggleSignAction = Action{Kind: ActionToggleSign}
	PercentAction    = Action{Kind: ActionPercent}
	EqualsAction     = Action{Kind: ActionEquals}
)

// DigitAction returns the press of digit button d.
func DigitAction(d byte) Action {
	return Action{Kind: ActionDigit, Digit: d}
}

// OperatorAction returns the press of an operator button.
func OperatorAction(op Op) Action {
	return Action{Kind: ActionOperator, Op: op}
}

// Label returns the text printed on the button.
func (a Action) Label() string {
	switch a.Kind {
	case ActionDigit:
		return string(a.Digit)
	case ActionDecimal:
		return "."
	case ActionClear:
		return "AC"
	case ActionToggleSign:
		return "±"
	case ActionPercent:
		return "%"
	case ActionOperator:
		return a.Op.Symbol()
	case ActionEquals:
		return "="
	default:
		return ""
	}
}

// String returns a log-friendly name for the action.
func (a Action) String() string {
	switch a.Kind {
	case ActionDigit:
		return "digit:" + string(a.Digit)
	case ActionDecimal:
		return "decimal"
	case ActionClear:
		return "clear"
	case ActionToggleSign:
		return "toggle_sign"
	case ActionPercent:
		return "percent"
	case ActionOperator:
		return "operator:" + a.Op.String()
	case ActionEquals:
		return "equals"
	default:
		return "none"
	}
}

// Dispatch applies one button press.
func (s State) Dispatch(a Action) State {
	switch a.Kind {
	case ActionDigit:
		return s.InputDigit(a.Digit)
	case ActionDecimal:
		return s.InputDecimal()
	case ActionClear:
		return s.Clear()
	case ActionToggleSign:
		return s.ToggleSign()
	case ActionPercent:
		return s.Percent()
	case ActionOperator:
		return s.PerformOperation(a.Op)
	case ActionEquals:
		return s.Equals()
	default:
		return s
	}
}

// ParseAction maps a button label (or a common ASCII spelling of it) to
// its action.
func ParseAction(token string) (Action, error) {
	t := strings.TrimSpace(token)
	if len(t) == 1 && isDigit(t[0]) {
		return DigitAction(t[0]), nil
	}
	if op, ok := ParseOp(t); ok {
		return OperatorAction(op), nil
	}

	switch strings.ToLower(t) {
	case ".", ",":
		return DecimalAction, nil
	case "ac", "c", "clear":
		return ClearAction, nil
	case "±", "+/-", "neg", "negate", "sign":
		return ToggleSignAction, nil
	case "%", "pct", "percent":
		return PercentAction, nil
	case "=", "eq", "equals":
		return EqualsAction, nil
	}
	return Action{}, fmt.Errorf("%w: %q", ErrUnknownToken, token)
}

// Tokenize splits a line of input into button tokens. Whitespace-separated
// words that name a button are kept whole ("AC", "+/-", "neg"); anything
// else is split into single characters, so "12.5*3=" is seven presses.
func Tokenize(line string) []string {
	var tokens []string
	for _, field := range strings.FieldsFunc(line, unicode.IsSpace) {
		if _, err := ParseAction(field); err == nil {
			tokens = append(tokens, field)
			continue
		}
		for _, r := range field {
			tokens = append(tokens, string(r))
		}
	}
	return tokens
}

// Run presses each token in order and stops at the first unknown one,
// returning the state reached so far.
func Run(s State, tokens []string) (State, error) {
	for i, tok := range tokens {
		a, err := ParseAction(tok)
		if err != nil {
			return s, fmt.Errorf("token %d: %w", i+1, err)
		}
		s = s.Dispatch(a)
	}
	return s, nil
}
