// Copyright 2024 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package rpn

import (
	"fmt"
	"strings"
)

// Matrix is a fixed-shape two-dimensional container of float64
// elements stored in row-major order.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix builds a rows by cols matrix over data, which the
// caller must size as rows*cols.  Matrices are immutable once
// built; arithmetic produces new ones.
func NewMatrix(rows, cols int, data []float64) *Matrix {
	if len(data) != rows*cols {
		panic("rpn: matrix data length does not match shape")
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

// Add returns the element-wise sum of m and n.
func (m *Matrix) Add(n *Matrix) (*Matrix, error) {
	return m.zip(n, func(a, b float64) float64 { return a + b })
}

// Sub returns the element-wise difference of m and n.
func (m *Matrix) Sub(n *Matrix) (*Matrix, error) {
	return m.zip(n, func(a, b float64) float64 { return a - b })
}

func (m *Matrix) zip(n *Matrix, op func(a, b float64) float64) (*Matrix, error) {
	if m.rows != n.rows || m.cols != n.cols {
		return nil, &Error{
			Errno: DimensionMismatch,
			Args:  []Value{MatrixValue(m), MatrixValue(n)},
		}
	}
	data := make([]float64, len(m.data))
	for i := range m.data {
		data[i] = op(m.data[i], n.data[i])
	}
	return &Matrix{rows: m.rows, cols: m.cols, data: data}, nil
}

// String renders the matrix as a grid: a leading newline, then
// one line per row, each row indented and its elements wrapped
// in single spaces.
func (m *Matrix) String() string {
	var b strings.Builder
	b.WriteByte('\n')
	for i := 0; i < m.rows; i++ {
		b.WriteString("   ")
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(&b, " %v ", m.At(i, j))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
