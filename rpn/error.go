// Copyright 2024 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package rpn

import "fmt"

// List of evaluation faults for Errno
const (
	StackUnderflow = Errno(iota)
	UndefinedOperator
	UnsupportedOperation
	TypeError
	DimensionMismatch
)

var strError = []string{
	"stack underflow",
	"undefined operator",
	"unsupported operation",
	"type error",
	"dimension mismatch",
}

// Errno describes the reason for an evaluation fault.
type Errno int

func (e Errno) Error() string {
	return strError[e]
}

// Error describes the cause and the context of an evaluation
// fault.
type Error struct {
	Errno Errno   // nature of the fault
	Tok   string  // token being executed when the fault was raised
	Args  []Value // offending operand(s)
	What  string  // operand role when Errno is TypeError
}

func (e *Error) Error() string {
	var msg = "pc: "
	switch e.Errno {
	case UndefinedOperator:
		return msg + "undefined operator: " + e.Tok
	case UnsupportedOperation:
		msg += "unsupported operation on " + e.Args[0].String()
		for _, v := range e.Args[1:] {
			msg += " and " + v.String()
		}
		return msg
	case TypeError:
		return msg + e.What + " must be numbers"
	case DimensionMismatch:
		lhs, _ := e.Args[0].AsMatrix()
		rhs, _ := e.Args[1].AsMatrix()
		return msg + fmt.Sprintf("dimension mismatch: %dx%d and %dx%d",
			lhs.rows, lhs.cols, rhs.rows, rhs.cols)
	}
	msg += e.Errno.Error()
	if e.Tok != "" {
		msg += " in " + e.Tok
	}
	return msg
}

func (m *Machine) unsupported(args ...Value) error {
	return &Error{Errno: UnsupportedOperation, Tok: m.tok, Args: args}
}

func (m *Machine) typeError(what string, args ...Value) error {
	return &Error{Errno: TypeError, Tok: m.tok, What: what, Args: args}
}
