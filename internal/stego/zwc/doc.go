// Package zwc implements the zero-width binary steganography codec.
//
// Payload bytes are rendered as bits, most significant first, with each bit
// mapped to a zero-width character: U+200B (zero width space) for 0 and
// U+200C (zero width non-joiner) for 1, terminated by U+200D (zero width
// joiner). Zero-width characters do occur in ordinary text (emoji ZWJ
// sequences in particular), so decoding applies a plausibility filter to the
// recovered bytes rather than trusting them outright; see package textplaus.
package zwc
