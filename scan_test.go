package symscan_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/xsym/symscan"
	"github.com/xsym/symscan/lang"
	"github.com/xsym/symscan/token"
)

// tiny C-like test language; keeping it local makes the expected keyword
// hits obvious
var testLang = &lang.Lang{
	Name:         "test",
	Keywords:     lang.NewKeywordSet("fn", "let", "if"),
	LineComments: []string{"//"},
	BlockOpen:    "/*",
	BlockClose:   "*/",
	Quotes:       `"`,
	CharQuote:    '\'',
}

type res []string

type testData struct {
	name string
	in   string
	res  res
}

func symString(s token.Sym) string {
	return fmt.Sprintf("%d-%d %s", s.Start, s.End, s.Text)
}

func scanAll(l *lang.Lang, in string) []string {
	s := symscan.New(token.NewFile("test", in), l)
	got := []string{}
	for sym, ok := s.Next(); ok; sym, ok = s.Next() {
		got = append(got, symString(sym))
	}
	return got
}

func runTests(t *testing.T, l *lang.Lang, td []testData) {
	t.Helper()
	for _, sample := range td {
		t.Run(sample.name, func(t *testing.T) {
			got := scanAll(l, sample.in)
			if diff := cmp.Diff([]string(sample.res), got); diff != "" {
				t.Errorf("symbols mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIdentifiers(t *testing.T) {
	runTests(t, testLang, []testData{
		{"maximal", "foo123 bar", res{"0-6 foo123", "7-10 bar"}},
		{"at eof", "abc", res{"0-3 abc"}},
		{"underscore", "_x x_ _ x1_2", res{"0-2 _x", "3-5 x_", "6-7 _", "8-12 x1_2"}},
		{"digit prefix", "1abc", res{"1-4 abc"}},
		{"punctuated", "a+b=c", res{"0-1 a", "2-3 b", "4-5 c"}},
		{"empty", "", res{}},
		{"no symbols", "+-*/ 123 \t\n", res{}},
	})
}

func TestKeywords(t *testing.T) {
	runTests(t, testLang, []testData{
		{"suppressed", "fn foo", res{"3-6 foo"}},
		{"case sensitive", "FN Fn fn", res{"0-2 FN", "3-5 Fn"}},
		{"not a prefix", "fnord if ifdef", res{"0-5 fnord", "9-14 ifdef"}},
		{"keyword at eof", "foo fn", res{"0-3 foo"}},
	})
}

func TestStrings(t *testing.T) {
	runTests(t, testLang, []testData{
		{"plain", `a "b c" d`, res{"0-1 a", "8-9 d"}},
		// the escaped quote must not terminate the literal
		{"escaped quote", "before \"a\\\"b\" after", res{"0-6 before", "14-19 after"}},
		{"escaped backslash", `a "b\\" c`, res{"0-1 a", "8-9 c"}},
		// pairs are consumed left to right: \\ then the closing quote
		{"backslash run closes", `a "b\\\\" c`, res{"0-1 a", "10-11 c"}},
		{"backslash run stays", `a "b\\\" c"d`, res{"0-1 a", "11-12 d"}},
		{"unterminated", `a "never closes`, res{"0-1 a"}},
		{"escape at eof", `a "x\`, res{"0-1 a"}},
		{"newline inside", "a \"b\nc\" d", res{"0-1 a", "8-9 d"}},
	})
}

func TestCharLiterals(t *testing.T) {
	runTests(t, testLang, []testData{
		{"plain", "a 'x' b", res{"0-1 a", "6-7 b"}},
		{"multi", "a 'xyz' b", res{"0-1 a", "8-9 b"}},
		{"unterminated", "a 'x", res{"0-1 a"}},
	})
}

func TestComments(t *testing.T) {
	runTests(t, testLang, []testData{
		{"line", "x // y\nz", res{"0-1 x", "7-8 z"}},
		{"line at eof", "x // y z", res{"0-1 x"}},
		{"block", "a /* b c */ d", res{"0-1 a", "12-13 d"}},
		{"block multiline", "a /* b\nc */ d", res{"0-1 a", "12-13 d"}},
		{"unterminated block", "a /* never closes", res{"0-1 a"}},
		{"quote in comment", `a /* "not a string */ b`, res{"0-1 a", "22-23 b"}},
		{"comment open in string", `a "/*" b`, res{"0-1 a", "7-8 b"}},
		{"star not close", "a /* b ** c */ d", res{"0-1 a", "15-16 d"}},
		// non-nesting: the first close lexeme ends the comment
		{"no nesting", "a /* x /* y */ z */ b", res{"0-1 a", "15-16 z", "20-21 b"}},
	})
}

func TestGoRawStrings(t *testing.T) {
	gol, ok := lang.ByName("Go")
	if !ok {
		t.Fatal("Go language table missing")
	}
	runTests(t, gol, []testData{
		{"raw", "x := `a \"b\" c` ; y", res{"0-1 x", "17-18 y"}},
		// a backslash is not an escape inside a raw string
		{"raw backslash", "x := `a\\` + y", res{"0-1 x", "12-13 y"}},
		{"raw unterminated", "x := `never", res{"0-1 x"}},
		{"keywords", "func foo() { return bar }", res{"5-8 foo", "20-23 bar"}},
	})
}

func TestRustNestedComments(t *testing.T) {
	rust, ok := lang.ByName("Rust")
	if !ok {
		t.Fatal("Rust language table missing")
	}
	runTests(t, rust, []testData{
		{"nested", "a /* x /* y */ z */ b", res{"0-1 a", "20-21 b"}},
		{"deep", "a /* /* /* */ */ */ b", res{"0-1 a", "20-21 b"}},
		{"unbalanced", "a /* x /* y */ z", res{"0-1 a"}},
		{"keywords", "fn main() { let x = y; }", res{"3-7 main", "16-17 x", "20-21 y"}},
	})
}

func TestPython(t *testing.T) {
	py, ok := lang.ByName("Python")
	if !ok {
		t.Fatal("Python language table missing")
	}
	runTests(t, py, []testData{
		{"hash comment", "x # y\nz", res{"0-1 x", "6-7 z"}},
		{"single quoted string", "a 'b c' d", res{"0-1 a", "8-9 d"}},
		{"escaped quote", `a 'it\'s' b`, res{"0-1 a", "10-11 b"}},
		{"keywords", "def f(): return None", res{"4-5 f"}},
	})
}

func TestShell(t *testing.T) {
	sh, ok := lang.ByName("Shell")
	if !ok {
		t.Fatal("Shell language table missing")
	}
	runTests(t, sh, []testData{
		// single quotes are raw in shell: the backslash does not escape
		{"raw single quotes", `a 'b\' c'd`, res{"0-1 a", "7-8 c"}},
		{"double quotes escape", `a "b\" c" d`, res{"0-1 a", "10-11 d"}},
		{"keywords", "if true; then x; fi", res{"3-7 true", "14-15 x"}},
	})
}

// Every consumed rune advances the offset by one unit, regardless of byte
// width.
func TestRuneOffsets(t *testing.T) {
	runTests(t, testLang, []testData{
		{"ident after wide runes", "é日 foo", res{"3-6 foo"}},
		{"wide runes in string", `"é日" foo`, res{"5-8 foo"}},
		{"wide runes in comment", "// é日\nfoo", res{"6-9 foo"}},
	})
}

func TestDeterminism(t *testing.T) {
	const in = `a "s\"t" 'c' /* x */ b // y
fn let c`
	first := scanAll(testLang, in)
	second := scanAll(testLang, in)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second scan differs (-first +second):\n%s", diff)
	}
}

// Emitted ranges must be strictly increasing and non-overlapping, and End
// must always exceed Start.
func TestOrdering(t *testing.T) {
	const in = `fn alpha(beta, gamma) { // delta
	let x = "epsilon \" zeta";
	y := 'q'; /* eta
	theta */ iota_2
}`
	s := symscan.New(token.NewFile("order", in), testLang)
	last := token.Pos(-1)
	for sym, ok := s.Next(); ok; sym, ok = s.Next() {
		if sym.End <= sym.Start {
			t.Errorf("empty or inverted range: %v", sym)
		}
		if sym.Start < last {
			t.Errorf("range [%d,%d) overlaps previous end %d", sym.Start, sym.End, last)
		}
		last = sym.End
	}
}

// A scanner is exhausted once Next has reported ok == false; further calls
// keep reporting false.
func TestExhausted(t *testing.T) {
	s := symscan.New(token.NewFile("x", "one"), testLang)
	if _, ok := s.Next(); !ok {
		t.Fatal("expected one symbol")
	}
	for i := 0; i < 3; i++ {
		if sym, ok := s.Next(); ok {
			t.Fatalf("call %d after exhaustion returned %v", i, sym)
		}
	}
}

func TestAll(t *testing.T) {
	s := symscan.New(token.NewFile("x", "a fn b"), testLang)
	syms := s.All()
	got := make([]string, len(syms))
	for i, sym := range syms {
		got[i] = symString(sym)
	}
	if diff := cmp.Diff([]string{"0-1 a", "5-6 b"}, got); diff != "" {
		t.Errorf("All mismatch (-want +got):\n%s", diff)
	}
}

// Line starts are recorded while scanning, so positions of pulled symbols
// convert correctly in every mode, comments and strings included.
func TestPositions(t *testing.T) {
	const in = "alpha // c\n\"s\ns\" beta\n\tgamma"
	want := []string{"p:1:1 alpha", "p:3:4 beta", "p:4:2 gamma"}
	f := token.NewFile("p", in)
	s := symscan.New(f, testLang)
	got := []string{}
	for sym, ok := s.Next(); ok; sym, ok = s.Next() {
		got = append(got, fmt.Sprintf("%s %s", f.Position(sym.Start), sym.Text))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}
