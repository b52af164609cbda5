// Copyright 2024 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

// Package rpn implements a postfix (RPN) expression evaluator
// over a stack of values.
//
// A value is either a 64-bit float or a matrix of such floats.
// Input is split on whitespace; every token parseable as a
// float is pushed, every other token is looked up in the
// operator table and applied to the stack.  There is no
// precedence, no variables and no control flow.
//
// The operators, with their stack effects:
//
//	pi      ( -- pi )
//	+       ( x y -- x+y )      numbers, or matrices of one shape
//	-       ( x y -- x-y )      numbers, or matrices of one shape
//	*       ( x y -- x*y )      numbers only
//	/       ( x y -- x/y )      numbers only
//	^       ( x y -- x**y )     numbers only
//	sin     ( x -- sin x )
//	cos     ( x -- cos x )
//	tan     ( x -- tan x )
//	cot     ( x -- 1/tan x )
//	exp     ( x -- e**x )
//	exp2    ( x -- 2**x )
//	asin    ( x -- asin x )
//	acos    ( x -- acos x )
//	atan    ( x -- atan x )
//	acot    ( x -- atan 1/x )
//	atan2   ( y x -- atan2 y x )
//	matrix  ( x1 ... xn rows cols -- mat )  n = rows*cols
//	p       ( -- )              print the stack, top first
//
// Applying an operator to operands of the wrong kind, popping
// an empty stack, adding matrices of different shapes, or
// naming an unknown operator all yield an Error; the evaluator
// never recovers an expression on its own, but a Session
// reports the error and keeps accepting lines against the same
// stack.
package rpn
