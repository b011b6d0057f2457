// Package lznint implements the LC-LZ2-style block codec used by a family
// of 16-bit console games to compress ROM data.
//
// The wire format is a stream of variable-length blocks: literal copies,
// byte/word/incrementing fills, and back-references (absolute or relative,
// optionally inverted), terminated by a single Stop byte (0xFF). Decoding
// is a straightforward interpreter; encoding is a greedy optimiser that
// picks, at every source position, whichever block type yields the best
// length-over-cost ratio.
//
// # Decompress
//
//	out, err := lznint.Decompress(compressed)
//
// # Compress
//
// Compress never fails; any byte sequence, including the empty slice,
// produces a valid Stop-terminated stream:
//
//	out := lznint.Compress(data)
package lznint
