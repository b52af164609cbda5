// Copyright 2024 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package rpn

import "strconv"

type valueKind int

const (
	numberKind valueKind = iota
	matrixKind
)

// Value is a tagged union over the two kinds the calculator
// operates on: scalar numbers and matrices.  The zero Value is
// the number 0.
type Value struct {
	kind valueKind
	num  float64
	mat  *Matrix
}

// Number returns a Value holding the scalar n.
func Number(n float64) Value {
	return Value{kind: numberKind, num: n}
}

// MatrixValue returns a Value holding m.
func MatrixValue(m *Matrix) Value {
	return Value{kind: matrixKind, mat: m}
}

func (v Value) IsNumber() bool { return v.kind == numberKind }
func (v Value) IsMatrix() bool { return v.kind == matrixKind }

// AsNumber narrows v to its scalar, reporting whether v holds one.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == numberKind
}

// AsMatrix narrows v to its matrix, reporting whether v holds one.
func (v Value) AsMatrix() (*Matrix, bool) {
	return v.mat, v.kind == matrixKind
}

func (v Value) String() string {
	if v.kind == matrixKind {
		return v.mat.String()
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}
