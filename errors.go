package lznint

import "errors"

// Sentinel errors returned by Decompress.
var (
	// ErrUnexpectedEOF is returned when src ends mid-header or mid-payload.
	ErrUnexpectedEOF = errors.New("lznint: unexpected end of input")
	// ErrWindowOutOfRange is returned when a back-reference names a position
	// that is not strictly before the output produced so far.
	ErrWindowOutOfRange = errors.New("lznint: window out of range")
)
