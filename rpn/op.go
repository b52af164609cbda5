// Copyright 2024 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package rpn

import (
	"fmt"
	"math"
)

// operators maps operator and function names to their
// implementations.  Built once, never mutated afterwards.
var operators = map[string]func(*Machine) error{
	"pi":     (*Machine).pi,
	"matrix": (*Machine).matrix,
	"+":      (*Machine).plus,
	"-":      (*Machine).minus,
	"*":      (*Machine).star,
	"/":      (*Machine).slash,
	"^":      (*Machine).caret,
	"sin":    (*Machine).sin,
	"cos":    (*Machine).cos,
	"tan":    (*Machine).tan,
	"cot":    (*Machine).cot,
	"exp":    (*Machine).exp,
	"exp2":   (*Machine).exp2,
	"asin":   (*Machine).asin,
	"acos":   (*Machine).acos,
	"atan":   (*Machine).atan,
	"acot":   (*Machine).acot,
	"atan2":  (*Machine).atan2,
	"p":      (*Machine).print,
}

// unaryOp replaces the number on top of the stack with op(x).
func (m *Machine) unaryOp(op func(x float64) float64) error {
	v, err := m.stack.pop()
	if err != nil {
		return err
	}
	x, ok := v.AsNumber()
	if !ok {
		return m.unsupported(v)
	}
	m.stack.push(Number(op(x)))
	return nil
}

// binaryOp pops two numbers and pushes op(x, y).
func (m *Machine) binaryOp(op func(x, y float64) float64) error {
	x, y, err := m.stack.pop2()
	if err != nil {
		return err
	}
	xn, xok := x.AsNumber()
	yn, yok := y.AsNumber()
	if !xok || !yok {
		return m.unsupported(x, y)
	}
	m.stack.push(Number(op(xn, yn)))
	return nil
}

// addSubOp pops two values and pushes their sum or difference:
// two numbers through nop, two matrices of one shape through
// mop.
func (m *Machine) addSubOp(mop func(a, b *Matrix) (*Matrix, error), nop func(x, y float64) float64) error {
	x, y, err := m.stack.pop2()
	if err != nil {
		return err
	}
	switch {
	case x.IsNumber() && y.IsNumber():
		xn, _ := x.AsNumber()
		yn, _ := y.AsNumber()
		m.stack.push(Number(nop(xn, yn)))
		return nil
	case x.IsMatrix() && y.IsMatrix():
		xm, _ := x.AsMatrix()
		ym, _ := y.AsMatrix()
		r, err := mop(xm, ym)
		if err != nil {
			return err
		}
		m.stack.push(MatrixValue(r))
		return nil
	}
	return m.unsupported(x, y)
}

// pi ( -- pi )
func (m *Machine) pi() error {
	m.stack.push(Number(math.Pi))
	return nil
}

// + ( x y -- x+y )
func (m *Machine) plus() error {
	return m.addSubOp((*Matrix).Add, func(x, y float64) float64 { return x + y })
}

// - ( x y -- x-y )
func (m *Machine) minus() error {
	return m.addSubOp((*Matrix).Sub, func(x, y float64) float64 { return x - y })
}

// * ( x y -- x*y )
func (m *Machine) star() error {
	return m.binaryOp(func(x, y float64) float64 { return x * y })
}

// / ( x y -- x/y )
func (m *Machine) slash() error {
	return m.binaryOp(func(x, y float64) float64 { return x / y })
}

// ^ ( x y -- x**y )
func (m *Machine) caret() error {
	return m.binaryOp(math.Pow)
}

// sin ( x -- sin x )
func (m *Machine) sin() error {
	return m.unaryOp(math.Sin)
}

// cos ( x -- cos x )
func (m *Machine) cos() error {
	return m.unaryOp(math.Cos)
}

// tan ( x -- tan x )
func (m *Machine) tan() error {
	return m.unaryOp(math.Tan)
}

// cot ( x -- 1/tan x )
func (m *Machine) cot() error {
	return m.unaryOp(func(x float64) float64 { return 1 / math.Tan(x) })
}

// exp ( x -- e**x )
func (m *Machine) exp() error {
	return m.unaryOp(math.Exp)
}

// exp2 ( x -- 2**x )
func (m *Machine) exp2() error {
	return m.unaryOp(math.Exp2)
}

// asin ( x -- asin x )
func (m *Machine) asin() error {
	return m.unaryOp(math.Asin)
}

// acos ( x -- acos x )
func (m *Machine) acos() error {
	return m.unaryOp(math.Acos)
}

// atan ( x -- atan x )
func (m *Machine) atan() error {
	return m.unaryOp(math.Atan)
}

// acot ( x -- atan 1/x )
func (m *Machine) acot() error {
	return m.unaryOp(func(x float64) float64 { return math.Atan(1 / x) })
}

// atan2 ( y x -- atan2 y x )
func (m *Machine) atan2() error {
	return m.binaryOp(math.Atan2)
}

// matrix ( x1 ... xn rows cols -- mat ) where n = rows*cols
//
// cols is popped first, then rows, both truncated to
// non-negative integers.  The n elements below come off in
// reverse push order and are laid out row-major.
func (m *Machine) matrix() error {
	if err := m.stack.need(2); err != nil {
		return err
	}
	colv, _ := m.stack.pop()
	rowv, _ := m.stack.pop()
	colf, colok := colv.AsNumber()
	rowf, rowok := rowv.AsNumber()
	if !colok || !rowok {
		return m.typeError("matrix size", rowv, colv)
	}
	rows, cols := truncIndex(rowf), truncIndex(colf)
	n := rows * cols
	if err := m.stack.need(n); err != nil {
		return err
	}
	data := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		v, _ := m.stack.pop()
		x, ok := v.AsNumber()
		if !ok {
			return m.typeError("matrix elements", v)
		}
		data[i] = x
	}
	m.stack.push(MatrixValue(NewMatrix(rows, cols, data)))
	return nil
}

// truncIndex converts a size operand the way a saturating
// float-to-int cast does: NaN and negatives become 0, huge
// values pin at maxIndex so a rows*cols product cannot
// overflow.
func truncIndex(n float64) int {
	switch {
	case math.IsNaN(n) || n < 0:
		return 0
	case n > maxIndex:
		return maxIndex
	}
	return int(n)
}

const maxIndex = math.MaxInt32

// p ( -- ) prints the stack from top to bottom without
// modifying it.  The i-th value from the top carries the index
// ^i, i.e. -1 for the top, -2 below it.
func (m *Machine) print() error {
	for i, d := 0, len(m.stack)-1; d >= 0; i, d = i+1, d-1 {
		if _, err := fmt.Fprintf(m.out, "%d: %s\n", ^i, m.stack[d]); err != nil {
			return err
		}
	}
	return nil
}
