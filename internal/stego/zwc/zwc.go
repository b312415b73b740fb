package zwc

import (
	"strings"

	"stegamoji/internal/domain"
	"stegamoji/internal/textplaus"
)

const (
	// bit0 and bit1 carry one payload bit each; separator ends the stream.
	bit0      = '\u200B' // zero width space
	bit1      = '\u200C' // zero width non-joiner
	separator = '\u200D' // zero width joiner
)

// Hide appends payload's UTF-8 bytes to carrier as zero-width characters,
// one per bit, most significant bit first, followed by the separator.
func Hide(carrier, payload string) string {
	raw := []byte(payload)
	var sb strings.Builder
	sb.Grow(len(carrier) + (len(raw)*8+1)*3) // zero-width runes are 3 bytes in UTF-8
	sb.WriteString(carrier)
	for _, b := range raw {
		for shift := 7; shift >= 0; shift-- {
			if b>>shift&1 == 0 {
				sb.WriteRune(bit0)
			} else {
				sb.WriteRune(bit1)
			}
		}
	}
	sb.WriteRune(separator)
	return sb.String()
}

// Reveal recovers the payload hidden in stego by Hide.
//
// The scan collects bits for the two bit characters, stops at the separator
// and ignores everything else. Bits are grouped into bytes left to right; a
// trailing group shorter than eight bits is dropped. The recovered bytes go
// through the textplaus chain, since zero-width noise can assemble into
// bytes that only look like a payload.
//
// It returns domain.ErrNoHiddenMessage when no bits and no separator are
// present, or when truncation leaves no complete byte.
func Reveal(stego string) (string, error) {
	var bits []byte
	sawSeparator := false
	for _, r := range stego {
		switch r {
		case bit0:
			bits = append(bits, 0)
		case bit1:
			bits = append(bits, 1)
		case separator:
			sawSeparator = true
		}
		if sawSeparator {
			break
		}
	}
	if len(bits) == 0 {
		if sawSeparator {
			// Carrier + separator alone is a valid encoding of the empty
			// payload.
			return "", nil
		}
		return "", domain.ErrNoHiddenMessage
	}

	raw := make([]byte, 0, len(bits)/8)
	for i := 0; i+8 <= len(bits); i += 8 {
		var b byte
		for _, bit := range bits[i : i+8] {
			b = b<<1 | bit
		}
		raw = append(raw, b)
	}
	if len(raw) == 0 {
		return "", domain.ErrNoHiddenMessage
	}

	s, ok := textplaus.Decode(raw)
	if !ok {
		return "", domain.ErrNoHiddenMessage
	}
	return s, nil
}

// Census reports how much of the zero-width alphabet appears anywhere in s:
// the number of bit code points and whether the separator occurs. Unlike
// Reveal it does not stop at the separator; it is a diagnostic for the whole
// string.
func Census(s string) (bits int, terminated bool) {
	for _, r := range s {
		switch r {
		case bit0, bit1:
			bits++
		case separator:
			terminated = true
		}
	}
	return bits, terminated
}

// Codec adapts the package functions to domain.Codec.
type Codec struct{}

func (Codec) Hide(carrier, payload string) string { return Hide(carrier, payload) }
func (Codec) Reveal(stego string) (string, error) { return Reveal(stego) }
func (Codec) Scheme() domain.Scheme               { return domain.SchemeBinary }

// Compile-time assertion that Codec implements domain.Codec.
var _ domain.Codec = Codec{}
