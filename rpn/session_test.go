// Copyright 2024 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package rpn_test

import (
	"bytes"
	"strings"

	gc "gopkg.in/check.v1"

	"github.com/erenjanje/pc/rpn"
)

type sessionSuite struct{}

var _ = gc.Suite(&sessionSuite{})

func (s *sessionSuite) TestPrintFormat(c *gc.C) {
	var buf bytes.Buffer
	m := rpn.New(&buf)
	c.Assert(m.Eval("1 2 3 p"), gc.IsNil)
	c.Check(buf.String(), gc.Equals, "-1: 3\n-2: 2\n-3: 1\n")
}

func (s *sessionSuite) TestPrintDoesNotMutate(c *gc.C) {
	var buf bytes.Buffer
	m := rpn.New(&buf)
	c.Assert(m.Eval("1 2 3"), gc.IsNil)
	c.Assert(m.Eval("p"), gc.IsNil)
	c.Assert(m.Stack().Depth(), gc.Equals, 3)
	buf.Reset()
	c.Assert(m.Eval("p"), gc.IsNil)
	c.Check(buf.String(), gc.Equals, "-1: 3\n-2: 2\n-3: 1\n")
}

func (s *sessionSuite) TestPrintMatrix(c *gc.C) {
	var buf bytes.Buffer
	m := rpn.New(&buf)
	c.Assert(m.Eval("1 2 3 4 2 2 matrix p"), gc.IsNil)
	c.Check(buf.String(), gc.Equals, "-1: \n    1  2 \n    3  4 \n\n")
}

func (s *sessionSuite) TestSessionContinuity(c *gc.C) {
	var buf bytes.Buffer
	src := rpn.NewReaderSource(strings.NewReader("2 3\n+\np\n"))
	c.Assert(rpn.Session(src, &buf), gc.IsNil)
	c.Check(buf.String(), gc.Equals, "-1: 5\n")
}

func (s *sessionSuite) TestSessionSurvivesErrors(c *gc.C) {
	var buf bytes.Buffer
	src := rpn.NewReaderSource(strings.NewReader("1 2 +\nfoo\n3 +\np\n"))
	c.Assert(rpn.Session(src, &buf), gc.IsNil)
	c.Check(buf.String(), gc.Equals, "pc: undefined operator: foo\n-1: 6\n")
}

func (s *sessionSuite) TestSessionKeepsStackOnError(c *gc.C) {
	// the pushes before the failing token survive into the
	// next line
	var buf bytes.Buffer
	src := rpn.NewReaderSource(strings.NewReader("1 foo\n2 +\np\n"))
	c.Assert(rpn.Session(src, &buf), gc.IsNil)
	c.Check(buf.String(), gc.Equals, "pc: undefined operator: foo\n-1: 3\n")
}

// recordingSource wraps a LineSource and keeps the recorded
// history for inspection.
type recordingSource struct {
	rpn.LineSource
	history []string
}

func (r *recordingSource) Record(line string) {
	r.history = append(r.history, line)
	r.LineSource.Record(line)
}

func (s *sessionSuite) TestSessionRecordsLines(c *gc.C) {
	var buf bytes.Buffer
	src := &recordingSource{
		LineSource: rpn.NewReaderSource(strings.NewReader("1 2\nfoo\n+\n")),
	}
	c.Assert(rpn.Session(src, &buf), gc.IsNil)
	// every accepted line lands in the history, bad ones too
	c.Check(src.history, gc.DeepEquals, []string{"1 2", "foo", "+"})
}

func (s *sessionSuite) TestEvalExpression(c *gc.C) {
	var buf bytes.Buffer
	c.Assert(rpn.EvalExpression("1 2 + p", &buf), gc.IsNil)
	c.Check(buf.String(), gc.Equals, "-1: 3\n")
}

func (s *sessionSuite) TestEvalExpressionReportsError(c *gc.C) {
	var buf bytes.Buffer
	err := rpn.EvalExpression("+", &buf)
	c.Assert(errnoOf(c, err), gc.Equals, rpn.StackUnderflow)
}
