package token_test

import (
	"testing"

	"github.com/xsym/symscan/token"
)

func TestPosition(t *testing.T) {
	// two recorded lines over "ab\ncde\nf"
	f := token.NewFile("t", "ab\ncde\nf")
	f.AddLine(3)
	f.AddLine(7)

	cases := []struct {
		pos  token.Pos
		line int
		col  int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline itself belongs to its line
		{3, 2, 1},
		{5, 2, 3},
		{7, 3, 1},
	}
	for _, c := range cases {
		got := f.Position(c.pos)
		if got.Line != c.line || got.Column != c.col {
			t.Errorf("Position(%d) = %d:%d, want %d:%d", c.pos, got.Line, got.Column, c.line, c.col)
		}
		if got.Filename != "t" {
			t.Errorf("Position(%d).Filename = %q", c.pos, got.Filename)
		}
	}
}

func TestPositionString(t *testing.T) {
	p := token.Position{Filename: "a.go", Line: 3, Column: 7}
	if got := p.String(); got != "a.go:3:7" {
		t.Errorf("String() = %q", got)
	}
}

// AddLine must tolerate replays: the scanner can read the same newline
// twice when an identifier match backs up over it.
func TestAddLineReplay(t *testing.T) {
	f := token.NewFile("t", "a\nb\n")
	f.AddLine(2)
	f.AddLine(2)
	f.AddLine(1) // out of order, ignored
	f.AddLine(4)
	if got := f.Position(3); got.Line != 2 || got.Column != 2 {
		t.Errorf("Position(3) = %d:%d, want 2:2", got.Line, got.Column)
	}
	if got := f.LinePos(3); got != 4 {
		t.Errorf("LinePos(3) = %d, want 4", got)
	}
}

func TestLine(t *testing.T) {
	f := token.NewFile("t", "first\nsecond\nlast")
	f.AddLine(6)
	f.AddLine(13)

	for i, want := range []string{"first", "second", "last"} {
		if got := f.Line(i + 1); got != want {
			t.Errorf("Line(%d) = %q, want %q", i+1, got, want)
		}
	}
	if got := f.Line(4); got != "" {
		t.Errorf("Line(4) = %q, want empty", got)
	}
	if got := f.Line(0); got != "" {
		t.Errorf("Line(0) = %q, want empty", got)
	}
}

func TestLinePosInvalid(t *testing.T) {
	f := token.NewFile("t", "x")
	if p := f.LinePos(2); p.IsValid() {
		t.Errorf("LinePos(2) = %d, want invalid", p)
	}
	if p := f.LinePos(0); p.IsValid() {
		t.Errorf("LinePos(0) = %d, want invalid", p)
	}
}

func TestSymString(t *testing.T) {
	s := token.Sym{Text: "foo", Start: 2, End: 5}
	if got := s.String(); got != "foo [2,5)" {
		t.Errorf("String() = %q", got)
	}
}
