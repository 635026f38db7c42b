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

package token

import "sync"

// A File represents one decoded input text. It handles rune offset to
// line/column conversion. Line offsets are added by the scanner as it
// consumes newlines, so Position is accurate for any Pos at or before the
// last symbol pulled from the scanner.
//
type File struct {
	name string
	src  []rune

	m     sync.RWMutex
	lines []Pos // 0-based line/Pos information
}

// NewFile returns a new File for the given decoded text. Encoding
// normalization must happen before this point; src is indexed in runes.
//
func NewFile(name, src string) *File {
	return &File{
		name:  name,
		src:   []rune(src),
		lines: []Pos{0}, // line 1 starts at offset 0
	}
}

// Name returns the file name.
//
func (f *File) Name() string {
	return f.name
}

// Runes returns the decoded input text. The returned slice is shared and
// must not be modified.
//
func (f *File) Runes() []rune {
	return f.src
}

// AddLine adds the offset of a new line. pos is the offset of the first
// rune following the newline. Offsets must be added in increasing order;
// out-of-order or duplicate offsets are ignored.
//
func (f *File) AddLine(pos Pos) {
	f.m.Lock()
	if pos > f.lines[len(f.lines)-1] {
		f.lines = append(f.lines, pos)
	}
	f.m.Unlock()
}

// Position returns the 1-based line and column for a given pos.
//
func (f *File) Position(pos Pos) Position {
	f.m.RLock()
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	p := Position{f.name, i, int(pos - f.lines[i-1] + 1)}
	f.m.RUnlock()
	return p
}

// LinePos returns the offset of the given 1-based line, or -1 if the line
// has not been recorded.
//
func (f *File) LinePos(line int) Pos {
	f.m.RLock()
	defer f.m.RUnlock()
	if line < 1 || line > len(f.lines) {
		return -1
	}
	return f.lines[line-1]
}

// Line returns the text of the given 1-based line, without its trailing
// newline. It returns an empty string for unrecorded lines.
//
func (f *File) Line(line int) string {
	s := f.LinePos(line)
	if !s.IsValid() {
		return ""
	}
	e := int(s)
	for e < len(f.src) && f.src[e] != '\n' {
		e++
	}
	return string(f.src[s:e])
}
