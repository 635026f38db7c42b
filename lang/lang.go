// Package lang describes the lexical surface of the supported source
// languages as plain data: the reserved-word set plus the trigger lexemes
// for strings, character literals and comments. Adding a language is a
// data-only change; the scanning engine never branches on language names.
//
package lang

import (
	"path/filepath"
	"strings"
)

// A KeywordSet is an immutable set of reserved words. It is built once per
// language and safe to share across concurrently running scanners.
//
type KeywordSet struct {
	m map[string]struct{}
}

// NewKeywordSet returns a KeywordSet containing the given words.
//
func NewKeywordSet(words ...string) KeywordSet {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return KeywordSet{m}
}

// Contains reports whether w is a reserved word. Matching is exact and
// case-sensitive.
//
func (k KeywordSet) Contains(w string) bool {
	_, ok := k.m[w]
	return ok
}

// Len returns the number of words in the set.
//
func (k KeywordSet) Len() int {
	return len(k.m)
}

// A Lang holds the lexical data for one source language.
//
// Trigger lexemes left at their zero value disable the corresponding
// lexical mode: a language with no BlockOpen has no block comments, one
// with CharQuote == 0 has no character literals, and so on.
//
type Lang struct {
	Name       string
	Extensions []string // file extensions, with leading dot
	Keywords   KeywordSet

	LineComments []string // line comment openers, e.g. "//", "#"
	BlockOpen    string   // block comment opener, e.g. "/*"
	BlockClose   string   // block comment closer, e.g. "*/"
	NestComments bool     // block comments nest (Rust style)

	Quotes    string // string literal delimiters, one rune each
	CharQuote rune   // character literal delimiter, 0 for none
	RawQuote  rune   // raw string delimiter (no escapes), 0 for none
}

// IsQuote reports whether r opens a string literal in l.
//
func (l *Lang) IsQuote(r rune) bool {
	return r != 0 && strings.ContainsRune(l.Quotes, r)
}

// Languages returns all built-in languages, in registration order.
//
func Languages() []*Lang {
	return langs
}

// ByName returns the built-in language with the given name.
//
func ByName(name string) (*Lang, bool) {
	for _, l := range langs {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return nil, false
}

// ByExtension returns the built-in language registered for the extension
// of path.
//
func ByExtension(path string) (*Lang, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, false
	}
	for _, l := range langs {
		for _, e := range l.Extensions {
			if e == ext {
				return l, true
			}
		}
	}
	return nil, false
}
