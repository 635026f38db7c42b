// Command symscan lists the symbols found in source files, one occurrence
// per line, or builds a cross-reference listing with -x. The language is
// picked from the file extension unless forced with -l. Malformed source
// is indexed on a best-effort basis and never fails the run; only I/O
// errors do.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/xsym/symscan"
	"github.com/xsym/symscan/index"
	"github.com/xsym/symscan/input"
	"github.com/xsym/symscan/lang"
	"github.com/xsym/symscan/token"
)

var (
	langName = flag.String("l", "", "force source `language` (C, Go, Java, Rust, Python, Shell)")
	xref     = flag.Bool("x", false, "print a cross-reference listing instead of a flat one")
	showSrc  = flag.Bool("src", false, "print the source line under each occurrence")
)

const (
	colSym   = "\x1b[36m"
	colReset = "\x1b[0m"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: symscan [-l language] [-x] [-src] file...\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
	}

	var forced *lang.Lang
	if *langName != "" {
		l, ok := lang.ByName(*langName)
		if !ok {
			fmt.Fprintf(os.Stderr, "symscan: unknown language %q\n", *langName)
			os.Exit(2)
		}
		forced = l
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	rc := 0
	ix := index.New()

	for _, name := range flag.Args() {
		l := forced
		if l == nil {
			var ok bool
			if l, ok = lang.ByExtension(name); !ok {
				fmt.Fprintf(os.Stderr, "symscan: %s: unknown language for extension, skipping (use -l)\n", name)
				continue
			}
		}
		text, err := input.NormalizeFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "symscan: %v\n", err)
			rc = 1
			continue
		}
		if *xref {
			ix.AddFile(name, text, l)
			continue
		}
		listFile(name, text, l, isTTY)
	}

	if *xref {
		printXref(ix)
	}
	os.Exit(rc)
}

func listFile(name, text string, l *lang.Lang, isTTY bool) {
	f := token.NewFile(name, text)
	s := symscan.New(f, l)
	for sym, ok := s.Next(); ok; sym, ok = s.Next() {
		pos := f.Position(sym.Start)
		if isTTY {
			fmt.Printf("%s: %s%s%s\n", pos, colSym, sym.Text, colReset)
		} else {
			fmt.Printf("%s: %s\n", pos, sym.Text)
		}
		if *showSrc {
			fmt.Printf("\t%s\n", clipLine(f.Line(pos.Line), isTTY))
		}
	}
}

func printXref(ix *index.Index) {
	for _, f := range ix.Files() {
		if c, ok := ix.Alias(f); ok && c != f {
			fmt.Printf("%s: identical to %s\n", f, c)
		}
	}
	for _, sym := range ix.Symbols() {
		fmt.Println(sym)
		for _, r := range ix.Lookup(sym) {
			fmt.Printf("\t%s:%d:%d\n", r.File, r.Line, r.Column)
		}
	}
}

// clipLine truncates a source line to the terminal width so that -src
// output never wraps.
func clipLine(s string, isTTY bool) string {
	if !isTTY {
		return s
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 8 {
		return s
	}
	r := []rune(s)
	if len(r) <= w-8 {
		return s
	}
	return string(r[:w-8]) + "..."
}
