package lznint

import "fmt"

// Decompress decodes a block stream produced by Compress (or any
// wire-compatible encoder) back into the original bytes.
//
// It returns ErrUnexpectedEOF if src is truncated mid-header or
// mid-payload, and ErrWindowOutOfRange if a back-reference names a
// position that is not strictly before the bytes already produced.
func Decompress(src []byte) ([]byte, error) {
	out := []byte{}
	pos := 0

	for {
		cmd, next, err := readCommand(src, pos)
		if err != nil {
			return nil, err
		}
		pos = next

		if cmd.Kind == KindStop {
			return out, nil
		}

		out, err = apply(out, cmd)
		if err != nil {
			return nil, err
		}
	}
}

func apply(out []byte, c Command) ([]byte, error) {
	switch c.Kind {
	case KindCopy:
		return append(out, c.Literal...), nil

	case KindByteFill:
		for i := 0; i < c.Len; i++ {
			out = append(out, c.Data)
		}
		return out, nil

	case KindWordFill:
		lo, hi := byte(c.Word), byte(c.Word>>8)
		for i := 0; i < c.Len; i++ {
			if i%2 == 0 {
				out = append(out, lo)
			} else {
				out = append(out, hi)
			}
		}
		return out, nil

	case KindIncrementing:
		b := c.Data
		for i := 0; i < c.Len; i++ {
			out = append(out, b)
			b++
		}
		return out, nil

	default: // KindBackreference
		return applyBackreference(out, c)
	}
}

// applyBackreference resolves c's source position and copies c.Len bytes
// from it one at a time. The read-then-append happens per byte, so a
// backreference may legally overlap its own forthcoming output: once the
// first few bytes of a short pattern are written, later reads within the
// same block see them and the pattern repeats cyclically.
func applyBackreference(out []byte, c Command) ([]byte, error) {
	var start int
	if c.Ref == RefAbsolute {
		start = int(c.Absolute)
	} else {
		off := int(c.Relative)
		if off > len(out) {
			return nil, fmt.Errorf("%w: relative offset %d exceeds output length %d", ErrWindowOutOfRange, off, len(out))
		}
		start = len(out) - off
	}
	if start >= len(out) {
		return nil, fmt.Errorf("%w: start %d not before output length %d", ErrWindowOutOfRange, start, len(out))
	}

	for k := 0; k < c.Len; k++ {
		b := out[start+k]
		if c.Invert {
			b ^= 0xFF
		}
		out = append(out, b)
	}
	return out, nil
}
