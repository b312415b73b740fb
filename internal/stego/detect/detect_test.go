package detect_test

import (
	"errors"
	"testing"

	"stegamoji/internal/domain"
	"stegamoji/internal/stego/detect"
	"stegamoji/internal/stego/tag"
	"stegamoji/internal/stego/zwc"
)

func TestReveal_AutoFindsBothSchemes(t *testing.T) {
	d := detect.New()
	cases := []struct {
		name   string
		stego  string
		scheme domain.Scheme
	}{
		{"tag", tag.Hide("🔒", "Hi"), domain.SchemeTag},
		{"binary", zwc.Hide("🔒", "Hi"), domain.SchemeBinary},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			det, err := d.Reveal(tc.stego, domain.SchemeAuto)
			if err != nil {
				t.Fatalf("Reveal: %v", err)
			}
			if det.Payload != "Hi" || det.Scheme != tc.scheme {
				t.Fatalf("got (%q, %s), want (%q, %s)", det.Payload, det.Scheme, "Hi", tc.scheme)
			}
		})
	}
}

func TestReveal_ExplicitModeDelegates(t *testing.T) {
	d := detect.New()
	tagStego := tag.Hide("🔒", "secret")

	det, err := d.Reveal(tagStego, domain.SchemeTag)
	if err != nil {
		t.Fatalf("Reveal tag-only: %v", err)
	}
	if det.Payload != "secret" || det.Scheme != domain.SchemeTag {
		t.Fatalf("got (%q, %s)", det.Payload, det.Scheme)
	}

	// Binary-only must not fall back to the tag codec.
	if _, err := d.Reveal(tagStego, domain.SchemeBinary); !errors.Is(err, domain.ErrNoHiddenMessage) {
		t.Fatalf("binary-only on tag stego: got %v, want ErrNoHiddenMessage", err)
	}
}

func TestReveal_NotFound(t *testing.T) {
	d := detect.New()
	for _, in := range []string{"", "🔒", "plain text"} {
		for _, mode := range []domain.Scheme{domain.SchemeAuto, domain.SchemeTag, domain.SchemeBinary} {
			if _, err := d.Reveal(in, mode); !errors.Is(err, domain.ErrNoHiddenMessage) {
				t.Fatalf("Reveal(%q, %s): got %v, want ErrNoHiddenMessage", in, mode, err)
			}
		}
	}
}

func TestReveal_UnknownMode(t *testing.T) {
	d := detect.New()
	if _, err := d.Reveal("anything", domain.Scheme("rot13")); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestReveal_EmptyPayloadIsFoundNotMissing(t *testing.T) {
	d := detect.New()
	det, err := d.Reveal(tag.Hide("🔒", ""), domain.SchemeAuto)
	if err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if det.Payload != "" || det.Scheme != domain.SchemeTag {
		t.Fatalf("got (%q, %s), want empty payload via tag", det.Payload, det.Scheme)
	}
}
