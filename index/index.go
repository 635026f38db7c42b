// Package index records symbol occurrences keyed by file and offset. It is
// the consumer side of the scanner: files go in, cross-reference queries
// come out.
//
package index

import (
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/xsym/symscan"
	"github.com/xsym/symscan/lang"
	"github.com/xsym/symscan/token"
)

// A Ref is one symbol occurrence within an indexed file.
//
type Ref struct {
	File   string
	Text   string
	Start  token.Pos // rune offset range [Start, End)
	End    token.Pos
	Line   int // 1-based
	Column int // 1-based, rune index within the line
}

// An Index holds symbol occurrences for a set of files. It is safe for
// concurrent use: files may be added from multiple goroutines while others
// query.
//
// Identical file contents are detected by digest and scanned only once;
// the duplicate name is recorded as an alias of the file scanned first.
//
type Index struct {
	mu     sync.RWMutex
	digest map[string]uint64 // file name -> content digest
	canon  map[uint64]string // content digest -> name scanned first
	refs   map[string][]Ref  // symbol text -> occurrences
}

// New returns an empty Index.
//
func New() *Index {
	return &Index{
		digest: make(map[string]uint64),
		canon:  make(map[uint64]string),
		refs:   make(map[string][]Ref),
	}
}

// AddFile scans the decoded text of the named file with the given language
// and records every symbol occurrence. It returns the number of
// occurrences recorded and whether the content was a duplicate of an
// already indexed file (in which case nothing is scanned and the name is
// recorded as an alias).
//
func (ix *Index) AddFile(name, text string, l *lang.Lang) (n int, dup bool) {
	d := xxhash.Sum64String(text)

	ix.mu.Lock()
	if _, ok := ix.canon[d]; ok {
		ix.digest[name] = d
		ix.mu.Unlock()
		return 0, true
	}
	ix.canon[d] = name
	ix.digest[name] = d
	ix.mu.Unlock()

	// scan outside the lock; the file is already claimed by its digest
	f := token.NewFile(name, text)
	s := symscan.New(f, l)
	var refs []Ref
	for sym, ok := s.Next(); ok; sym, ok = s.Next() {
		pos := f.Position(sym.Start)
		refs = append(refs, Ref{
			File:   name,
			Text:   sym.Text,
			Start:  sym.Start,
			End:    sym.End,
			Line:   pos.Line,
			Column: pos.Column,
		})
	}

	ix.mu.Lock()
	for _, r := range refs {
		ix.refs[r.Text] = append(ix.refs[r.Text], r)
	}
	ix.mu.Unlock()
	return len(refs), false
}

// Lookup returns all recorded occurrences of the given symbol.
//
func (ix *Index) Lookup(sym string) []Ref {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return append([]Ref(nil), ix.refs[sym]...)
}

// Symbols returns all indexed symbols, sorted.
//
func (ix *Index) Symbols() []string {
	ix.mu.RLock()
	syms := make([]string, 0, len(ix.refs))
	for s := range ix.refs {
		syms = append(syms, s)
	}
	ix.mu.RUnlock()
	sort.Strings(syms)
	return syms
}

// Files returns the names of all indexed files, aliases included, sorted.
//
func (ix *Index) Files() []string {
	ix.mu.RLock()
	files := make([]string, 0, len(ix.digest))
	for f := range ix.digest {
		files = append(files, f)
	}
	ix.mu.RUnlock()
	sort.Strings(files)
	return files
}

// Alias returns the name of the file whose scan covers the named file.
// For files with unique contents this is the name itself.
//
func (ix *Index) Alias(name string) (string, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	d, ok := ix.digest[name]
	if !ok {
		return "", false
	}
	return ix.canon[d], true
}
