package domain

import (
	"errors"
	"fmt"
)

// Scheme identifies a steganographic encoding scheme.
type Scheme string

const (
	// SchemeTag hides payload bytes as Unicode tag characters (U+E0000 block).
	SchemeTag Scheme = "tag"
	// SchemeBinary hides payload bytes as a zero-width bit string.
	SchemeBinary Scheme = "binary"
	// SchemeAuto is a decode-only mode: try tag first, then binary.
	SchemeAuto Scheme = "auto"
)

// String returns the string form of the scheme.
func (s Scheme) String() string { return string(s) }

// ParseScheme validates a user-supplied scheme name. Auto is accepted only
// when decodeMode is true, since there is no such thing as auto encoding.
func ParseScheme(name string, decodeMode bool) (Scheme, error) {
	switch Scheme(name) {
	case SchemeTag:
		return SchemeTag, nil
	case SchemeBinary:
		return SchemeBinary, nil
	case SchemeAuto:
		if decodeMode {
			return SchemeAuto, nil
		}
		return "", fmt.Errorf("scheme %q is only valid for decoding", name)
	default:
		return "", fmt.Errorf("unknown scheme %q (want tag, binary or auto)", name)
	}
}

// Detection is the result of a successful decode: the recovered payload and
// the scheme that produced it.
type Detection struct {
	Payload string
	Scheme  Scheme
}

// ErrNoHiddenMessage indicates that decoding found no recoverable payload
// under the requested scheme(s). It is a normal negative result, not a fault;
// callers branch on it with errors.Is.
var ErrNoHiddenMessage = errors.New("no hidden message detected")
