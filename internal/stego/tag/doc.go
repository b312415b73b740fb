// Package tag implements the tag-character steganography codec.
//
// Payload bytes are split into 4-bit nibbles and mapped onto the sixteen
// invisible Unicode tag characters U+E0000..U+E000F, appended after the
// carrier and terminated by U+E007F (CANCEL TAG). The tag block is reserved
// and never occurs in ordinary text or emoji, so decoding can scan the whole
// stego string and ignore everything outside the alphabet.
package tag
