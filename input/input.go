// Package input normalizes raw file bytes into the decoded text the
// scanner operates on. The scanner itself never sees encodings: it is fed
// valid UTF-8 and indexes it in rune units.
//
package input

import (
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Normalize decodes the bytes read from r into UTF-8 text. A UTF-16 byte
// order mark switches decoding to the indicated endianness, a UTF-8 byte
// order mark is stripped, and ill-formed sequences are replaced with
// U+FFFD rather than reported, so the result is always scannable.
//
func Normalize(r io.Reader) (string, error) {
	t := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(r, t))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// NormalizeFile reads and decodes the named file.
//
func NormalizeFile(name string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Normalize(f)
}
