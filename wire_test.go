package lznint

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriteHeaderShortForm(t *testing.T) {
	// Short form applies whenever L-1 < 32 and cmd != 7.
	got := writeHeader(nil, 3, 4)
	want := []byte{0x63}
	if !bytes.Equal(got, want) {
		t.Errorf("writeHeader(cmd=3, n=4) = %#v, want %#v", got, want)
	}
}

func TestWriteHeaderLongForm(t *testing.T) {
	got := writeHeader(nil, 2, 40)
	want := []byte{0xE8, 0x27}
	if !bytes.Equal(got, want) {
		t.Errorf("writeHeader(cmd=2, n=40) = %#v, want %#v", got, want)
	}
}

func TestWriteHeaderLongFormForbiddenShortCmd(t *testing.T) {
	// cmd == 7 must always use long form, even for a small length, since
	// short-form cmd=7 is reserved for Stop.
	got := writeHeader(nil, 7, 4)
	if len(got) != 2 {
		t.Fatalf("writeHeader(cmd=7, n=4) = %#v, want 2 bytes", got)
	}
	if got[0]&0xE0 != 0xE0 {
		t.Errorf("writeHeader(cmd=7, n=4)[0] = %#x, want top 3 bits set", got[0])
	}
}

func TestAppendCommandRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
	}{
		{"copy", Command{Kind: KindCopy, Literal: []byte{1, 2, 3, 4}, Len: 4}},
		{"byte fill", Command{Kind: KindByteFill, Data: 0xAA, Len: 5}},
		{"word fill", Command{Kind: KindWordFill, Word: 0x1234, Len: 6}},
		{"incrementing", Command{Kind: KindIncrementing, Data: 7, Len: 9}},
		{"absolute", Command{Kind: KindBackreference, Ref: RefAbsolute, Absolute: 0x0203, Len: 4}},
		{"absolute inverted", Command{Kind: KindBackreference, Ref: RefAbsolute, Absolute: 1, Invert: true, Len: 4}},
		{"relative", Command{Kind: KindBackreference, Ref: RefRelative, Relative: 4, Len: 8}},
		{"relative inverted", Command{Kind: KindBackreference, Ref: RefRelative, Relative: 7, Invert: true, Len: 4}},
		{"long copy", Command{Kind: KindCopy, Literal: bytes.Repeat([]byte{'x'}, 40), Len: 40}},
		{"stop", Command{Kind: KindStop}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dst := appendCommand(nil, tc.cmd)
			got, pos, err := readCommand(dst, 0)
			if err != nil {
				t.Fatalf("readCommand: %v", err)
			}
			if pos != len(dst) {
				t.Errorf("consumed %d bytes, want %d", pos, len(dst))
			}
			if got.Kind != tc.cmd.Kind {
				t.Fatalf("Kind = %v, want %v", got.Kind, tc.cmd.Kind)
			}
			if got.Kind == KindCopy {
				if !bytes.Equal(got.Literal, tc.cmd.Literal) {
					t.Errorf("Literal = %v, want %v", got.Literal, tc.cmd.Literal)
				}
				return
			}
			if got.Length() != tc.cmd.Length() {
				t.Errorf("Length() = %d, want %d", got.Length(), tc.cmd.Length())
			}
			if got.Invert != tc.cmd.Invert {
				t.Errorf("Invert = %v, want %v", got.Invert, tc.cmd.Invert)
			}
		})
	}
}

func TestReadCommandUnexpectedEOF(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
	}{
		{"empty", nil},
		{"truncated long header", []byte{0xE0}},
		{"truncated copy payload", []byte{0x03, 1, 2}},
		{"truncated byte fill payload", []byte{0x23}},
		{"truncated word fill payload", []byte{0x43, 1}},
		{"truncated absolute payload", []byte{0x83, 1}},
		{"truncated relative payload", []byte{0xC3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := readCommand(tc.src, 0)
			if !errors.Is(err, ErrUnexpectedEOF) {
				t.Errorf("readCommand(%v) error = %v, want ErrUnexpectedEOF", tc.src, err)
			}
		})
	}
}

func TestReadCommandStopSentinel(t *testing.T) {
	cmd, pos, err := readCommand([]byte{0xFF}, 0)
	if err != nil {
		t.Fatalf("readCommand: %v", err)
	}
	if cmd.Kind != KindStop {
		t.Errorf("Kind = %v, want KindStop", cmd.Kind)
	}
	if pos != 1 {
		t.Errorf("pos = %d, want 1", pos)
	}
}
