// Copyright 2024 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package rpn

// Stack is the evaluation context: an ordered sequence of
// Values growing and shrinking only at its top, which is the
// end of the slice.
type Stack []Value

func (s Stack) Depth() int {
	return len(s)
}

func (s *Stack) need(down int) error {
	if len(*s) < down {
		return StackUnderflow
	}
	return nil
}

func (s *Stack) push(v Value) {
	*s = append(*s, v)
}

func (s *Stack) pop() (Value, error) {
	if err := s.need(1); err != nil {
		return Value{}, err
	}
	var v Value
	*s, v = (*s)[:len(*s)-1], (*s)[len(*s)-1]
	return v, nil
}

// pop2 pops the top two values, returning them in push order.
func (s *Stack) pop2() (Value, Value, error) {
	if err := s.need(2); err != nil {
		return Value{}, Value{}, err
	}
	y, _ := s.pop()
	x, _ := s.pop()
	return x, y, nil
}
