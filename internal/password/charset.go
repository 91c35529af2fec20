// Package password implements the genpassword synthesis engine: charset
// policy, segment layout, entropy accounting and password assembly.
package password

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Characters that break shells, quoting, URLs or SQL when pasted
	// unescaped. No generated password may ever contain one of these.
	dangerousChars = "#'\"`$\\!&|;<>(){}[]*?% \t\r\n"

	// Characters most terminals and editors treat as word boundaries.
	// A double-click stops at these, so word-safe profiles exclude them.
	wordBoundaryChars = "-.,:;!@#$%^&*() "
)

var ErrUnsafeCharset = errors.New("unsafe charset")

// Charset is an immutable, ordered set of distinct password characters.
// The zero value is empty; build one with NewCharset or Union.
type Charset struct {
	chars string
}

// NewCharset validates and deduplicates chars, preserving first-seen order.
// Characters on the dangerous list, whitespace and anything outside
// printable ASCII are rejected.
func NewCharset(chars string) (Charset, error) {
	var seen [256]bool
	buf := make([]byte, 0, len(chars))
	for i := 0; i < len(chars); i++ {
		b := chars[i]
		if IsDangerous(b) {
			return Charset{}, fmt.Errorf("%w: character %q is on the exclusion list", ErrUnsafeCharset, string(b))
		}
		if b < '!' || b > '~' {
			return Charset{}, fmt.Errorf("%w: non-printable byte 0x%02x", ErrUnsafeCharset, b)
		}
		if seen[b] {
			continue
		}
		seen[b] = true
		buf = append(buf, b)
	}
	return Charset{chars: string(buf)}, nil
}

// Union merges charsets into one, deduplicating while preserving the order
// characters first appear in.
func Union(sets ...Charset) Charset {
	var seen [256]bool
	var buf []byte
	for _, cs := range sets {
		for i := 0; i < len(cs.chars); i++ {
			b := cs.chars[i]
			if seen[b] {
				continue
			}
			seen[b] = true
			buf = append(buf, b)
		}
	}
	return Charset{chars: string(buf)}
}

// Len returns the number of distinct characters in the set.
func (c Charset) Len() int {
	return len(c.chars)
}

// String returns the characters in order.
func (c Charset) String() string {
	return c.chars
}

// Contains reports whether b is a member of the set.
func (c Charset) Contains(b byte) bool {
	return strings.IndexByte(c.chars, b) >= 0
}

// IsDangerous reports whether b is excluded from every generated password.
func IsDangerous(b byte) bool {
	return strings.IndexByte(dangerousChars, b) >= 0
}

// IsWordBoundary reports whether b stops a double-click selection.
func IsWordBoundary(b byte) bool {
	return strings.IndexByte(wordBoundaryChars, b) >= 0
}

func mustCharset(chars string) Charset {
	cs, err := NewCharset(chars)
	if err != nil {
		panic(err)
	}
	return cs
}

// Built-in alphabets. The unambiguous variants drop glyphs that read alike
// in most fonts: 0/O, 1/l/I and lowercase o.
var (
	Upper = mustCharset("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	Lower = mustCharset("abcdefghijklmnopqrstuvwxyz")
	Digit = mustCharset("0123456789")

	UpperUnambiguous = mustCharset("ABCDEFGHJKLMNPQRSTUVWXYZ")
	LowerUnambiguous = mustCharset("abcdefghjkmnpqrstuvwxyz")
	DigitUnambiguous = mustCharset("23456789")

	// SafeSeparators is the vocabulary profile separators may draw from.
	// Every member survives shells, URLs and config files unquoted.
	SafeSeparators = mustCharset("_-.^:,=+")

	// ParanoidSymbols is the rotating separator sequence used by the
	// paranoid profile. All four are word boundaries, so a double-click
	// never selects more than one segment.
	ParanoidSymbols = mustCharset(".-^:")
)
