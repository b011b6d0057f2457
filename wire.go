package lznint

import (
	"encoding/binary"
	"fmt"
)

// appendCommand serializes c onto dst using the header format shared by
// the encoder and the decoder (see readCommand) and returns the extended
// slice.
func appendCommand(dst []byte, c Command) []byte {
	if c.Kind == KindStop {
		return append(dst, 0xFF)
	}

	dst = writeHeader(dst, c.cmdID(), c.Length())

	switch c.Kind {
	case KindCopy:
		dst = append(dst, c.Literal...)
	case KindByteFill, KindIncrementing:
		dst = append(dst, c.Data)
	case KindWordFill:
		dst = append(dst, byte(c.Word), byte(c.Word>>8))
	case KindBackreference:
		if c.Ref == RefAbsolute {
			dst = append(dst, byte(c.Absolute), byte(c.Absolute>>8))
		} else {
			dst = append(dst, c.Relative)
		}
	}
	return dst
}

// writeHeader appends the one- or two-byte header for a block with command
// id cmd and decompressed length n (1 <= n <= MaxLen).
func writeHeader(dst []byte, cmd byte, n int) []byte {
	l := n - 1
	if l < 32 && cmd != 7 {
		return append(dst, (cmd<<5)|byte(l))
	}
	// Long form: top three bits 111 mark it, the next three carry the full
	// command id (0-7), the bottom two extend the length by 8 bits.
	return append(dst, 0xE0|(cmd<<2)|byte(l>>8), byte(l))
}

// readCommand parses one block starting at src[pos]. It returns the block,
// the position of the next header byte, and an error if src is truncated
// mid-header or mid-payload.
func readCommand(src []byte, pos int) (Command, int, error) {
	hdr, pos, err := readByte(src, pos)
	if err != nil {
		return Command{}, pos, err
	}
	if hdr == 0xFF {
		return Command{Kind: KindStop}, pos, nil
	}

	l := int(hdr & 0x1F)
	cmd := hdr >> 5

	if cmd == 7 {
		var next byte
		next, pos, err = readByte(src, pos)
		if err != nil {
			return Command{}, pos, err
		}
		cmd = byte(l >> 2)
		l = (l&0x3)<<8 | int(next)
	}
	n := l + 1

	switch cmd {
	case 0: // Copy
		if pos+n > len(src) {
			return Command{}, pos, fmt.Errorf("%w: copy block needs %d bytes", ErrUnexpectedEOF, n)
		}
		return Command{Kind: KindCopy, Literal: src[pos : pos+n], Len: n}, pos + n, nil

	case 1: // ByteFill
		data, pos, err := readByte(src, pos)
		if err != nil {
			return Command{}, pos, err
		}
		return Command{Kind: KindByteFill, Data: data, Len: n}, pos, nil

	case 2: // WordFill
		word, pos, err := readWord(src, pos)
		if err != nil {
			return Command{}, pos, err
		}
		return Command{Kind: KindWordFill, Word: word, Len: n}, pos, nil

	case 3: // Incrementing
		start, pos, err := readByte(src, pos)
		if err != nil {
			return Command{}, pos, err
		}
		return Command{Kind: KindIncrementing, Data: start, Len: n}, pos, nil

	default: // 4..7: Backreference
		invert := cmd&1 != 0
		if cmd < 6 {
			addr, pos, err := readWord(src, pos)
			if err != nil {
				return Command{}, pos, err
			}
			return Command{Kind: KindBackreference, Ref: RefAbsolute, Absolute: addr, Invert: invert, Len: n}, pos, nil
		}
		off, pos, err := readByte(src, pos)
		if err != nil {
			return Command{}, pos, err
		}
		return Command{Kind: KindBackreference, Ref: RefRelative, Relative: off, Invert: invert, Len: n}, pos, nil
	}
}

func readByte(src []byte, pos int) (byte, int, error) {
	if pos >= len(src) {
		return 0, pos, fmt.Errorf("%w: at offset %d", ErrUnexpectedEOF, pos)
	}
	return src[pos], pos + 1, nil
}

func readWord(src []byte, pos int) (uint16, int, error) {
	if pos+2 > len(src) {
		return 0, pos, fmt.Errorf("%w: at offset %d", ErrUnexpectedEOF, pos)
	}
	return binary.LittleEndian.Uint16(src[pos:]), pos + 2, nil
}
