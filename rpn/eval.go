// Copyright 2024 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package rpn

import (
	"io"
	"strconv"
	"strings"
)

// Machine evaluates postfix expressions against a single stack.
// The stack persists across Eval calls until the Machine is
// discarded, so values pushed by one line are visible to
// operators on later lines.
type Machine struct {
	stack Stack
	out   io.Writer
	tok   string // token being executed, kept for error context
}

// New returns a Machine with an empty stack writing operator
// output to out.
func New(out io.Writer) *Machine {
	return &Machine{out: out}
}

// Stack returns the current evaluation stack, bottom first.
func (m *Machine) Stack() Stack {
	return m.stack
}

// Eval processes one whitespace-separated expression.  Each
// token parseable as a float is pushed as a Number; anything
// else is dispatched through the operator table.  Tokens run
// strictly left to right and there is no backtracking: whatever
// an operator did to the stack before Eval returns an error
// stays done.
func (m *Machine) Eval(expr string) error {
	for _, tok := range strings.Fields(expr) {
		if n, err := strconv.ParseFloat(tok, 64); err == nil {
			m.stack.push(Number(n))
			continue
		}
		if err := m.exec(tok); err != nil {
			return err
		}
	}
	return nil
}

func (m *Machine) exec(tok string) error {
	op, ok := operators[tok]
	if !ok {
		return &Error{Errno: UndefinedOperator, Tok: tok}
	}
	m.tok = tok
	if err := op(m); err != nil {
		if errno, ok := err.(Errno); ok {
			return &Error{Errno: errno, Tok: tok}
		}
		return err
	}
	return nil
}
