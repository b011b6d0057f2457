package lznint

// MaxLen is the maximum decompressed length of any single non-Copy,
// non-Stop block.
const MaxLen = 0x400

// Kind identifies which of the six block variants a Command holds.
type Kind int

const (
	KindCopy Kind = iota
	KindByteFill
	KindWordFill
	KindIncrementing
	KindBackreference
	KindStop
)

// RefMode distinguishes the two back-reference addressing modes.
type RefMode int

const (
	RefAbsolute RefMode = iota
	RefRelative
)

// Command is a tagged union over the six block variants the wire format
// supports; only the fields relevant to Kind are meaningful. Blocks are
// transient: the encoder builds one, serializes it, and discards it, and
// the decoder parses one, applies it to the output buffer, and discards it.
type Command struct {
	Kind Kind

	// Literal holds the payload for KindCopy.
	Literal []byte

	// Data holds the fill byte for KindByteFill or the start byte for
	// KindIncrementing.
	Data byte

	// Word holds the little-endian fill word for KindWordFill.
	Word uint16

	// Ref, Absolute, Relative, and Invert describe a KindBackreference.
	Ref      RefMode
	Absolute uint16
	Relative uint8
	Invert   bool

	// Len is the number of bytes the block expands to. Meaningless for
	// KindStop; for KindCopy it always equals len(Literal).
	Len int
}

// Length returns the number of decompressed bytes c expands to.
func (c Command) Length() int {
	switch c.Kind {
	case KindCopy:
		return len(c.Literal)
	case KindStop:
		return 0
	default:
		return c.Len
	}
}

// Cost returns the number of bytes c occupies once serialized: a one- or
// two-byte header plus its payload.
func (c Command) Cost() int {
	if c.Kind == KindStop {
		return 0
	}

	args := c.argBytes()

	// A relative-inverted backreference always needs the long-form header,
	// because command id 7 is reserved for Stop in short form (§4.1).
	if c.Kind == KindBackreference && c.Ref == RefRelative && c.Invert {
		return args + 2
	}
	if c.Length() <= 32 {
		return args + 1
	}
	return args + 2
}

func (c Command) argBytes() int {
	switch c.Kind {
	case KindCopy:
		return len(c.Literal)
	case KindByteFill, KindIncrementing:
		return 1
	case KindWordFill:
		return 2
	case KindBackreference:
		if c.Ref == RefRelative {
			return 1
		}
		return 2
	default:
		return 0
	}
}

// cmdID returns the 3-bit wire command id for c. Stop has no command id;
// it is signalled by the standalone 0xFF byte instead.
func (c Command) cmdID() byte {
	switch c.Kind {
	case KindCopy:
		return 0
	case KindByteFill:
		return 1
	case KindWordFill:
		return 2
	case KindIncrementing:
		return 3
	case KindBackreference:
		id := byte(4)
		if c.Ref == RefRelative {
			id = 6
		}
		if c.Invert {
			id++
		}
		return id
	default:
		panic("lznint: cmdID called on a Stop command")
	}
}
