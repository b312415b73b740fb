package detect

import (
	"errors"
	"fmt"

	"stegamoji/internal/domain"
	"stegamoji/internal/stego/tag"
	"stegamoji/internal/stego/zwc"
)

// Detector decodes stego strings under an explicit scheme or by trying the
// codecs in priority order.
type Detector struct {
	codecs []domain.Codec // priority order for SchemeAuto
}

// New constructs a Detector over the two built-in codecs, tag first.
func New() *Detector {
	return &Detector{codecs: []domain.Codec{tag.Codec{}, zwc.Codec{}}}
}

// Reveal decodes stego under mode.
//
// For SchemeTag and SchemeBinary it delegates to the matching codec. For
// SchemeAuto it tries each codec in priority order and returns the first
// hit. A miss in every codec yields domain.ErrNoHiddenMessage.
func (d *Detector) Reveal(stego string, mode domain.Scheme) (domain.Detection, error) {
	switch mode {
	case domain.SchemeAuto, domain.SchemeTag, domain.SchemeBinary:
	default:
		return domain.Detection{}, fmt.Errorf("unknown decode scheme %q", mode)
	}
	for _, c := range d.codecs {
		if mode != domain.SchemeAuto && mode != c.Scheme() {
			continue
		}
		payload, err := c.Reveal(stego)
		if err == nil {
			return domain.Detection{Payload: payload, Scheme: c.Scheme()}, nil
		}
		if !errors.Is(err, domain.ErrNoHiddenMessage) {
			return domain.Detection{}, err
		}
	}
	return domain.Detection{}, domain.ErrNoHiddenMessage
}

// Compile-time assertion that Detector implements domain.Detector.
var _ domain.Detector = (*Detector)(nil)
