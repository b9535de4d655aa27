package calc

import (
	"strings"

	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/model"
	"github.com/jsphweid/tonal/note"
)

// Value is the result of evaluating an operand: a note.Note or an
// interval.Interval.
type Value interface {
	String() string
}

// Kind names the type of v, "note" or "interval".
func Kind(v Value) string {
	switch v.(type) {
	case note.Note:
		return "note"
	case interval.Interval:
		return "interval"
	}
	return "value"
}

// Add implements Note + Interval and Interval + Note.
func Add(a, b Value) (Value, error) {
	switch x := a.(type) {
	case note.Note:
		if i, ok := b.(interval.Interval); ok {
			return x.Transpose(i), nil
		}
	case interval.Interval:
		if n, ok := b.(note.Note); ok {
			return n.Transpose(x), nil
		}
	}
	return nil, &model.TypeMismatchError{Op: "+", Left: Kind(a), Right: Kind(b)}
}

// Sub implements Note - Note, the interval from b up to a.
func Sub(a, b Value) (Value, error) {
	top, ok1 := a.(note.Note)
	base, ok2 := b.(note.Note)
	if !ok1 || !ok2 {
		return nil, &model.TypeMismatchError{Op: "-", Left: Kind(a), Right: Kind(b)}
	}
	i, err := top.IntervalFrom(base)
	if err != nil {
		return nil, err
	}
	return i, nil
}

// parseOperand reads a token as a note or an interval. Tokens such as "A4"
// are valid as both; preferNote decides which reading wins.
func parseOperand(token string, preferNote bool) (Value, error) {
	n, noteErr := note.Parse(token)
	i, intervalErr := interval.Parse(token)
	switch {
	case noteErr == nil && (preferNote || intervalErr != nil):
		return n, nil
	case intervalErr == nil:
		return i, nil
	}
	return nil, &model.ParseError{Kind: "operand", Input: token, Reason: "neither a note nor an interval"}
}

func tokenize(expr string) (operands []string, ops []byte, err error) {
	var curr strings.Builder
	flush := func() error {
		token := strings.TrimSpace(curr.String())
		if token == "" {
			return &model.ParseError{Kind: "expression", Input: expr, Reason: "missing operand"}
		}
		operands = append(operands, token)
		curr.Reset()
		return nil
	}
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		if c == '+' || c == '-' {
			if err := flush(); err != nil {
				return nil, nil, err
			}
			ops = append(ops, c)
			continue
		}
		curr.WriteByte(c)
	}
	if err := flush(); err != nil {
		return nil, nil, err
	}
	return operands, ops, nil
}

// Eval evaluates a left-associative chain such as "Bb4 + M3", "D5 - Bb4" or
// "C4 + M3 + m3".
func Eval(expr string) (Value, error) {
	operands, ops, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	acc, err := parseOperand(operands[0], true)
	if err != nil {
		return nil, err
	}
	for idx, op := range ops {
		_, accIsNote := acc.(note.Note)
		// after a note, "+" expects an interval and "-" a note;
		// after an interval, "+" expects a note
		preferNote := op == '-' || !accIsNote
		rhs, err := parseOperand(operands[idx+1], preferNote)
		if err != nil {
			return nil, err
		}
		if op == '+' {
			acc, err = Add(acc, rhs)
		} else {
			acc, err = Sub(acc, rhs)
		}
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
