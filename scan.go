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

package symscan

import (
	"github.com/xsym/symscan/lang"
	"github.com/xsym/symscan/token"
)

// eof is the return value from next() when the input is exhausted.
//
const eof rune = -1

// queue is a FIFO queue of pending symbols.
//
type queue struct {
	items []token.Sym
	head  int
	tail  int
	count int
}

func (q *queue) push(s token.Sym) {
	if q.head == q.tail && q.count > 0 {
		items := make([]token.Sym, len(q.items)*2)
		copy(items, q.items[q.head:])
		copy(items[len(q.items)-q.head:], q.items[:q.head])
		q.head = 0
		q.tail = len(q.items)
		q.items = items
	}
	q.items[q.tail] = s
	q.tail = (q.tail + 1) % len(q.items)
	q.count++
}

// pop pops the first item from the queue. Callers must check that q.count > 0 beforehand.
//
func (q *queue) pop() token.Sym {
	i := q.head
	q.head = (q.head + 1) % len(q.items)
	q.count--
	return q.items[i]
}

// A StateFn is a state function. Each lexical mode of the scanner is one
// StateFn. A nil return transitions back to the initial (default) mode.
//
type StateFn func(s *Scanner) StateFn

// A Scanner extracts symbols from a single decoded input text. It is bound
// at construction to one File and one language and driven to completion in
// a single forward pass; it must not be reused across inputs.
//
type Scanner struct {
	f     *token.File
	l     *lang.Lang
	src   []rune
	queue           // pending symbols
	n     token.Pos // offset of the next rune to read
	ts    token.Pos // start offset of the symbol being matched
	quote rune      // active string delimiter while in the string mode
	state StateFn
	done  bool

	// trigger lexemes, decoded once
	lineComments [][]rune
	blockOpen    []rune
	blockClose   []rune
}

// New creates a new scanner reading the text held by f, using the keyword
// set and trigger lexemes of l. A new scanner must be created for every
// input to be scanned.
//
func New(f *token.File, l *lang.Lang) *Scanner {
	s := &Scanner{
		f:   f,
		l:   l,
		src: f.Runes(),
		// initial q size must be an exponent of 2
		queue:      queue{items: make([]token.Sym, 2)},
		blockOpen:  []rune(l.BlockOpen),
		blockClose: []rune(l.BlockClose),
	}
	for _, lc := range l.LineComments {
		s.lineComments = append(s.lineComments, []rune(lc))
	}
	return s
}

// File returns the File used as input for the scanner.
//
func (s *Scanner) File() *token.File {
	return s.f
}

// Next returns the next symbol. It drives the mode automaton until a
// symbol is available or the input is exhausted; ok is false once all
// input has been consumed. A scan that ends inside a string or comment
// simply stops: unterminated constructs are not errors.
//
func (s *Scanner) Next() (sym token.Sym, ok bool) {
	for s.count == 0 {
		if s.done {
			return token.Sym{}, false
		}
		if s.state == nil {
			s.state = scanAny(s)
		} else {
			s.state = s.state(s)
		}
	}
	return s.pop(), true
}

// All drains the scanner and returns the remaining symbols in input order.
//
func (s *Scanner) All() []token.Sym {
	var syms []token.Sym
	for sym, ok := s.Next(); ok; sym, ok = s.Next() {
		syms = append(syms, sym)
	}
	return syms
}

// next returns the next rune in the input, or eof. Every rune consumed
// advances the offset by exactly one, in every mode.
//
func (s *Scanner) next() rune {
	if int(s.n) >= len(s.src) {
		return eof
	}
	r := s.src[s.n]
	s.n++
	if r == '\n' {
		s.f.AddLine(s.n)
	}
	return r
}

// backup reverts the last call to next. It must not be called after next
// returned eof.
//
func (s *Scanner) backup() {
	s.n--
}

// accept consumes the remainder of the trigger lexeme lx if the input at
// the current position completes it. r is the rune already consumed by the
// caller and is matched against the first rune of lx.
//
func (s *Scanner) accept(lx []rune, r rune) bool {
	if len(lx) == 0 || lx[0] != r || len(s.src)-int(s.n) < len(lx)-1 {
		return false
	}
	for i, c := range lx[1:] {
		if s.src[int(s.n)+i] != c {
			return false
		}
	}
	s.n += token.Pos(len(lx) - 1)
	return true
}

func isIdentStart(r rune) bool {
	return r == '_' || 'A' <= r && r <= 'Z' || 'a' <= r && r <= 'z'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || '0' <= r && r <= '9'
}

// scanAny is the initial state: the default mode in which symbols are
// matched and emitted. Any rune that triggers no other mode is consumed
// and ignored.
//
func scanAny(s *Scanner) StateFn {
	r := s.next()
	switch {
	case r == eof:
		s.done = true
		return nil
	case isIdentStart(r):
		s.ts = s.n - 1
		return scanIdent
	case s.l.IsQuote(r):
		s.quote = r
		return scanString
	case s.l.CharQuote != 0 && r == s.l.CharQuote:
		return scanChar
	case s.l.RawQuote != 0 && r == s.l.RawQuote:
		return scanRawString
	}
	for _, lc := range s.lineComments {
		if s.accept(lc, r) {
			return scanLineComment
		}
	}
	if s.accept(s.blockOpen, r) {
		return scanBlockComment
	}
	return nil
}

// scanIdent matches the maximal run of identifier runes starting at s.ts,
// then emits it unless it is a reserved word. The keyword set is consulted
// exactly once per matched lexeme.
//
func scanIdent(s *Scanner) StateFn {
	r := s.next()
	for isIdentPart(r) {
		r = s.next()
	}
	if r != eof {
		s.backup()
	} else {
		s.done = true
	}
	w := string(s.src[s.ts:s.n])
	if !s.l.Keywords.Contains(w) {
		s.push(token.Sym{Text: w, Start: s.ts, End: s.n})
	}
	return nil
}

// scanString consumes a string literal. A backslash and the rune following
// it are consumed as an atomic pair before the closing delimiter is tested,
// so an escaped quote never terminates the literal early. Consuming pairs
// left to right also keeps runs of backslashes balanced: in `\\"` the
// quote closes the string, in `\\\"` it does not.
//
func scanString(s *Scanner) StateFn {
	for {
		switch r := s.next(); r {
		case '\\':
			if s.next() == eof {
				s.done = true
				return nil
			}
		case s.quote:
			return nil
		case eof:
			s.done = true
			return nil
		}
	}
}

// scanChar consumes a character literal up to the closing delimiter.
//
func scanChar(s *Scanner) StateFn {
	for {
		switch r := s.next(); r {
		case s.l.CharQuote:
			return nil
		case eof:
			s.done = true
			return nil
		}
	}
}

// scanRawString consumes a raw string literal. No escapes apply.
//
func scanRawString(s *Scanner) StateFn {
	for {
		switch r := s.next(); r {
		case s.l.RawQuote:
			return nil
		case eof:
			s.done = true
			return nil
		}
	}
}

// scanLineComment consumes input up to and including the newline that
// terminates the comment.
//
func scanLineComment(s *Scanner) StateFn {
	for {
		switch r := s.next(); r {
		case '\n':
			return nil
		case eof:
			s.done = true
			return nil
		}
	}
}

// scanBlockComment consumes a block comment. For languages whose block
// comments nest, every opener seen inside the comment must be balanced by
// a closer before the mode ends.
//
func scanBlockComment(s *Scanner) StateFn {
	depth := 1
	for {
		r := s.next()
		switch {
		case r == eof:
			s.done = true
			return nil
		case s.accept(s.blockClose, r):
			depth--
			if depth == 0 {
				return nil
			}
		case s.l.NestComments && s.accept(s.blockOpen, r):
			depth++
		}
	}
}
