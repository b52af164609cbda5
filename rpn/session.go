// Copyright 2024 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package rpn

import (
	"fmt"
	"io"
)

// LineSource produces input lines for a session and records
// accepted lines for later recall.
type LineSource interface {
	// ReadLine blocks until a line is available and returns
	// it without its terminator, or io.EOF when the source is
	// exhausted.
	ReadLine() (string, error)
	// Record adds an accepted line to the input history.
	Record(line string)
}

// Session feeds lines from src to one long-lived Machine until
// the source is exhausted.  An evaluation error is reported to
// out and the session continues with the stack as the failing
// operator left it; only end of input or a read error ends the
// session.  Nothing is echoed after a line: inspecting the
// stack takes an explicit p.
func Session(src LineSource, out io.Writer) error {
	m := New(out)
	for {
		line, err := src.ReadLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		src.Record(line)
		if err := m.Eval(line); err != nil {
			fmt.Fprintln(out, err)
		}
	}
}

// EvalExpression evaluates a single expression on a fresh,
// empty stack, which is discarded afterwards.
func EvalExpression(expr string, out io.Writer) error {
	return New(out).Eval(expr)
}
