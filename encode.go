package lznint

// delta is the profitability threshold: a candidate block must expand to
// at least this many more bytes than it costs to encode before it's worth
// emitting over accumulating literals into a Copy block.
const delta = 2

// Compress encodes src into the block-stream wire format documented by the
// package. It never fails: any byte sequence, including the empty slice,
// produces a valid Stop-terminated stream.
func Compress(src []byte) []byte {
	var dst []byte
	var pending []byte

	flush := func() {
		if len(pending) == 0 {
			return
		}
		dst = appendCommand(dst, Command{Kind: KindCopy, Literal: pending, Len: len(pending)})
		pending = nil
	}

	i := 0
	for i < len(src) {
		best := bestCandidate(src, i)

		if best.Length() >= best.Cost()+delta {
			flush()
			dst = appendCommand(dst, best)
			i += best.Length()
			continue
		}

		pending = append(pending, src[i])
		i++
		// A Copy block's length is bound by the same MaxLen as every other
		// block (§3); flush before the pending run could ever exceed it.
		if len(pending) == MaxLen {
			flush()
		}
	}

	flush()
	return appendCommand(dst, Command{Kind: KindStop})
}
