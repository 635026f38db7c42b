// Copyright 2026 The symscan Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package token defines the symbol token produced by the scanner and the
// position bookkeeping shared by the scanner and its consumers.
//
package token

import "fmt"

// Pos represents a symbol's position within a File. This is a rune index
// rather than a byte index: every character of the decoded input advances
// it by exactly one, regardless of encoding width.
//
type Pos int

// IsValid returns true if p is a valid position (i.e. p >= 0).
//
func (p Pos) IsValid() bool {
	return p >= 0
}

// Position describes a source position as a file name plus 1-based line and
// column numbers. Column is a rune offset within the line.
//
type Position struct {
	Filename string
	Line     int // 1-based line number
	Column   int // 1-based column number (rune index)
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A Sym is a single symbol occurrence: the identifier text plus its
// half-open rune offset range [Start, End) within the input.
//
type Sym struct {
	Text  string
	Start Pos
	End   Pos
}

// String returns a string representation of the symbol. This should be used
// only for debugging purposes as the output format is not guaranteed to be
// stable.
//
func (s Sym) String() string {
	return fmt.Sprintf("%s [%d,%d)", s.Text, s.Start, s.End)
}
