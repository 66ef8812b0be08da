// Package shyriiwook translates human text to Shyriiwook, the language of the
// Wookiees. Each ASCII letter is replaced by a fixed phoneme sequence; every
// other character is kept verbatim.
package shyriiwook

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// phonemes maps 'a'..'z' (by offset from 'a') to their Shyriiwook sequence.
// Entries are lowercase.
var phonemes = [26]string{
	"ra", // a
	"rh", // b
	"oa", // c
	"wa", // d
	"wo", // e
	"ww", // f
	"rr", // g
	"ac", // h
	"ah", // i
	"sh", // j
	"or", // k
	"an", // l
	"sc", // m
	"wh", // n
	"oo", // o
	"ak", // p
	"rq", // q
	"rc", // r
	"c",  // s
	"ao", // t
	"hu", // u
	"ho", // v
	"oh", // w
	"k",  // x
	"ro", // y
	"uf", // z
}

// Translate returns the Shyriiwook form of s.
//
// Letters keep their case shape: an uppercase letter yields its phoneme with
// the first character uppercased. Bytes that do not form an ASCII letter are
// copied unchanged, invalid UTF-8 included.
func Translate(s string) string {
	var b strings.Builder
	b.Grow(2 * len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		phoneme, ok := findTranslation(r)
		switch {
		case !ok:
			b.WriteString(s[i : i+size])
		case unicode.IsUpper(r):
			b.WriteString(capitalize(phoneme))
		default:
			b.WriteString(phoneme)
		}
		i += size
	}
	return b.String()
}

// Lookup returns the phoneme sequence for r, matched case-insensitively.
func Lookup(r rune) (string, bool) {
	return findTranslation(r)
}

func findTranslation(r rune) (string, bool) {
	if r > unicode.MaxASCII {
		return "", false
	}
	idx := unicode.ToLower(r) - 'a'
	if idx < 0 || int(idx) >= len(phonemes) {
		return "", false
	}
	return phonemes[idx], true
}

// capitalize uppercases the first character of s. The uppercase form may be
// longer than one rune ("ß" becomes "SS").
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	// A cases.Caser must not be shared between goroutines.
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}
