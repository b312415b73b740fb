package domain

// Codec embeds a payload string in a carrier and recovers it again.
//
// Hide is total: any well-formed payload is encodable, so it returns no
// error. Reveal returns ErrNoHiddenMessage when the input carries no valid
// encoding of this codec's alphabet.
type Codec interface {
	Hide(carrier, payload string) string
	Reveal(stego string) (string, error)
	Scheme() Scheme
}

// Detector decodes a stego string under an explicit scheme or by trying
// schemes in priority order (SchemeAuto).
type Detector interface {
	Reveal(stego string, mode Scheme) (Detection, error)
}

// Clipboard abstracts the system clipboard so commands can be tested without
// touching the real one.
type Clipboard interface {
	Copy(text string) error
	Paste() (string, error)
}
