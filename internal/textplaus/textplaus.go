// Package textplaus turns recovered byte sequences into plausible text.
//
// Bytes scraped out of a stego string are not guaranteed to be a payload:
// stray zero-width characters in unrelated text can assemble into byte
// sequences that are syntactically valid but garbage. Decode therefore runs
// an ordered chain of attempts and returns the first plausible result:
//
//  1. UTF-8, accepted only if at most 10% of the decoded runes are control
//     characters (code point < 32) other than newline, carriage return and
//     tab. The density check is a plausibility filter, not a correctness
//     guarantee.
//  2. Latin-1, which maps every byte to a code point and so always succeeds.
//  3. Raw code-point mapping of each byte value, as a last resort.
package textplaus

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const maxControlFraction = 0.1

// Decode converts recovered bytes into text on a best-effort basis. The
// boolean is false only when every tier fails; since the raw tier accepts
// any byte sequence, that does not happen in practice, but callers treat a
// false as "no valid hidden message" anyway.
func Decode(raw []byte) (string, bool) {
	if s, ok := decodeUTF8(raw); ok {
		return s, true
	}
	if s, ok := decodeLatin1(raw); ok {
		return s, true
	}
	return decodeRaw(raw)
}

func decodeUTF8(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	s := string(raw)
	total := 0
	control := 0
	for _, r := range s {
		total++
		if r < 32 && r != '\n' && r != '\r' && r != '\t' {
			control++
		}
	}
	if float64(control) > float64(total)*maxControlFraction {
		return "", false
	}
	return s, true
}

func decodeLatin1(raw []byte) (string, bool) {
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	return string(s), true
}

func decodeRaw(raw []byte) (string, bool) {
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes), true
}
