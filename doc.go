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

/*
Package symscan extracts symbols from source text: the identifiers that are
not reserved words of the source language, together with their rune offset
ranges. It is the lexical front end of a code-search index and has no
understanding of the language beyond lexical categories; it never parses.

The scanner is a Deterministic Finite State Automaton whose lexical modes
and associated actions are implemented as state functions:

	type StateFn func(*Scanner) StateFn

The implementation is similar to https://golang.org/src/text/template/parse/lex.go.
See also Rob Pike's talk about combining states and actions into state
functions: https://talks.golang.org/2011/lex.slide. The default mode is the
initial state, where identifiers are matched and emitted; string literals,
character literals and both comment styles are each one mode whose only job
is to find its terminating lexeme without emitting anything. A StateFn that
is done returns nil to transition back to the default mode.

Unlike the Go text template package, which uses a channel as a means of
asynchronous token emission, this package uses a FIFO queue. Benchmarks
with an earlier channel-based implementation showed the FIFO to be several
times faster, and the caller can abandon a scan early by simply dropping
the scanner, with nothing to drain or cancel.

Symbols are pulled lazily:

	f := token.NewFile("main.go", src)
	gol, _ := lang.ByName("Go")
	s := symscan.New(f, gol)
	for sym, ok := s.Next(); ok; sym, ok = s.Next() {
		fmt.Println(f.Position(sym.Start), sym.Text)
	}

Malformed input is not an error condition. The scanner indexes arbitrary,
possibly invalid source text on a best-effort basis: an unterminated string
or comment ends the scan silently at end of input, and runes that match no
rule in the default mode are consumed and ignored. Next never fails.

Which lexemes open and close each mode, and which words are reserved, is
per-language data supplied by the lang package at construction time. One
scanner instance is bound to one input and one language; any number of
scanners may run concurrently as long as each owns its input, the language
tables being immutable and safely shared.
*/
package symscan
