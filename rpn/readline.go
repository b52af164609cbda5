// Copyright 2024 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package rpn

import (
	"bufio"
	"io"

	"github.com/peterh/liner"
)

const prompt = "> "

// TermSource reads lines from the controlling terminal with
// editing and history provided by liner.
type TermSource struct {
	rl *liner.State
}

// NewTermSource puts the terminal in raw mode.  The caller must
// Close the source to restore it.
func NewTermSource() *TermSource {
	rl := liner.NewLiner()
	rl.SetCtrlCAborts(true)
	return &TermSource{rl: rl}
}

func (s *TermSource) ReadLine() (string, error) {
	line, err := s.rl.Prompt(prompt)
	switch err {
	case nil:
		return line, nil
	case liner.ErrPromptAborted:
		return "", io.EOF
	}
	return "", err
}

func (s *TermSource) Record(line string) {
	s.rl.AppendHistory(line)
}

// Close restores the terminal state.
func (s *TermSource) Close() error {
	return s.rl.Close()
}

// ReaderSource reads lines from an arbitrary reader, for piped
// input and file execution.  Recorded lines are discarded since
// there is no one to recall them.
type ReaderSource struct {
	sc *bufio.Scanner
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{sc: bufio.NewScanner(r)}
}

func (s *ReaderSource) ReadLine() (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (s *ReaderSource) Record(string) {}
