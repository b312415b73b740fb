package tag

import (
	"unicode/utf8"

	"stegamoji/internal/domain"
)

const (
	// digitBase is the first of the sixteen tag "digit" code points; digit n
	// is digitBase+n for nibble values 0..15.
	digitBase = rune(0xE0000)
	digitEnd  = digitBase + 16

	// terminator marks the end of the hidden digits (U+E007F, CANCEL TAG).
	terminator = rune(0xE007F)
)

// Hide appends payload's UTF-8 bytes to carrier as invisible tag characters,
// high nibble before low nibble, followed by the terminator.
func Hide(carrier, payload string) string {
	raw := []byte(payload)
	out := make([]rune, 0, len(raw)*2+1)
	for _, b := range raw {
		out = append(out, digitBase+rune(b>>4), digitBase+rune(b&0x0F))
	}
	out = append(out, terminator)
	return carrier + string(out)
}

// Reveal recovers the payload hidden in stego by Hide.
//
// The scan collects nibble values for code points inside the digit range,
// stops at the terminator and ignores everything else, so the carrier's
// length and content never need to be known. Nibbles are paired into bytes;
// an odd trailing nibble is dropped. It returns domain.ErrNoHiddenMessage
// when no digits and no terminator are present, or when the collected bytes
// are not well-formed UTF-8 (stray tag characters in unrelated text can form
// digit runs that decode to garbage).
func Reveal(stego string) (string, error) {
	var nibbles []byte
	sawTerminator := false
	for _, r := range stego {
		if r >= digitBase && r < digitEnd {
			nibbles = append(nibbles, byte(r-digitBase))
			continue
		}
		if r == terminator {
			sawTerminator = true
			break
		}
	}
	if len(nibbles) == 0 && !sawTerminator {
		return "", domain.ErrNoHiddenMessage
	}

	raw := make([]byte, 0, len(nibbles)/2)
	for i := 0; i+1 < len(nibbles); i += 2 {
		raw = append(raw, nibbles[i]<<4|nibbles[i+1])
	}
	if !utf8.Valid(raw) {
		return "", domain.ErrNoHiddenMessage
	}
	return string(raw), nil
}

// Census reports how much of the tag alphabet appears anywhere in s: the
// number of digit code points and whether the terminator occurs. Unlike
// Reveal it does not stop at the terminator; it is a diagnostic for the
// whole string.
func Census(s string) (digits int, terminated bool) {
	for _, r := range s {
		switch {
		case r >= digitBase && r < digitEnd:
			digits++
		case r == terminator:
			terminated = true
		}
	}
	return digits, terminated
}

// Codec adapts the package functions to domain.Codec.
type Codec struct{}

func (Codec) Hide(carrier, payload string) string { return Hide(carrier, payload) }
func (Codec) Reveal(stego string) (string, error) { return Reveal(stego) }
func (Codec) Scheme() domain.Scheme               { return domain.SchemeTag }

// Compile-time assertion that Codec implements domain.Codec.
var _ domain.Codec = Codec{}
