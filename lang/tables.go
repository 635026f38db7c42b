package lang

// Built-in language tables. Reserved-word lists follow the respective
// language references; they are consulted by exact, case-sensitive match,
// so case-insensitive languages would need their lists expanded rather
// than the engine changed.

var langs = []*Lang{langC, langGo, langJava, langRust, langPython, langShell}

var langC = &Lang{
	Name:       "C",
	Extensions: []string{".c", ".h"},
	Keywords: NewKeywordSet(
		"auto", "break", "case", "char", "const", "continue", "default",
		"do", "double", "else", "enum", "extern", "float", "for", "goto",
		"if", "inline", "int", "long", "register", "restrict", "return",
		"short", "signed", "sizeof", "static", "struct", "switch",
		"typedef", "union", "unsigned", "void", "volatile", "while",
	),
	LineComments: []string{"//"},
	BlockOpen:    "/*",
	BlockClose:   "*/",
	Quotes:       `"`,
	CharQuote:    '\'',
}

var langGo = &Lang{
	Name:       "Go",
	Extensions: []string{".go"},
	Keywords: NewKeywordSet(
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if",
		"import", "interface", "map", "package", "range", "return",
		"select", "struct", "switch", "type", "var",
	),
	LineComments: []string{"//"},
	BlockOpen:    "/*",
	BlockClose:   "*/",
	Quotes:       `"`,
	CharQuote:    '\'',
	RawQuote:     '`',
}

var langJava = &Lang{
	Name:       "Java",
	Extensions: []string{".java"},
	Keywords: NewKeywordSet(
		"abstract", "assert", "boolean", "break", "byte", "case", "catch",
		"char", "class", "const", "continue", "default", "do", "double",
		"else", "enum", "extends", "final", "finally", "float", "for",
		"goto", "if", "implements", "import", "instanceof", "int",
		"interface", "long", "native", "new", "package", "private",
		"protected", "public", "return", "short", "static", "strictfp",
		"super", "switch", "synchronized", "this", "throw", "throws",
		"transient", "try", "void", "volatile", "while",
	),
	LineComments: []string{"//"},
	BlockOpen:    "/*",
	BlockClose:   "*/",
	Quotes:       `"`,
	CharQuote:    '\'',
}

// Rust character literals are disabled: a bare ' also introduces a
// lifetime, and a quote-delimited mode would swallow source up to the
// next apostrophe. Missing the rare char literal contents is the lesser
// evil for an indexer.
var langRust = &Lang{
	Name:       "Rust",
	Extensions: []string{".rs"},
	Keywords: NewKeywordSet(
		"as", "async", "await", "break", "const", "continue", "crate",
		"dyn", "else", "enum", "extern", "false", "fn", "for", "if",
		"impl", "in", "let", "loop", "match", "mod", "move", "mut",
		"pub", "ref", "return", "self", "Self", "static", "struct",
		"super", "trait", "true", "type", "unsafe", "use", "where",
		"while",
	),
	LineComments: []string{"//"},
	BlockOpen:    "/*",
	BlockClose:   "*/",
	NestComments: true,
	Quotes:       `"`,
}

var langPython = &Lang{
	Name:       "Python",
	Extensions: []string{".py"},
	Keywords: NewKeywordSet(
		"False", "None", "True", "and", "as", "assert", "async", "await",
		"break", "class", "continue", "def", "del", "elif", "else",
		"except", "finally", "for", "from", "global", "if", "import",
		"in", "is", "lambda", "nonlocal", "not", "or", "pass", "raise",
		"return", "try", "while", "with", "yield",
	),
	LineComments: []string{"#"},
	Quotes:       `"'`,
}

var langShell = &Lang{
	Name:       "Shell",
	Extensions: []string{".sh", ".bash"},
	Keywords: NewKeywordSet(
		"case", "coproc", "do", "done", "elif", "else", "esac", "fi",
		"for", "function", "if", "in", "select", "then", "time", "until",
		"while",
	),
	LineComments: []string{"#"},
	Quotes:       `"`,
	// single quotes in shell are raw: no escapes inside
	RawQuote: '\'',
}
