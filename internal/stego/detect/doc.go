// Package detect dispatches decoding across the steganography codecs.
//
// When the scheme is unknown it tries the tag codec first: the tag block is
// reserved, so a tag hit is almost never a coincidence. The zero-width codec
// comes second precisely because its alphabet can occur in ordinary text and
// its decode applies a softer plausibility heuristic.
package detect
