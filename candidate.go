package lznint

import "encoding/binary"

// bestCandidate builds the candidate set at position i and picks the one
// with the highest length/cost ratio. Ties favour the earlier candidate in
// the order below, biasing toward cheaper, simpler block types.
func bestCandidate(src []byte, i int) Command {
	candidates := make([]Command, 0, 4)

	if wf, ok := wordFillCandidate(src, i); ok {
		if wf.Len == MaxLen {
			// A maximal word fill means a very long run; it is taken
			// without evaluating the other candidates, because the
			// back-reference scan below would otherwise re-walk the whole
			// run at quadratic cost. A byte fill or relative back-reference
			// of the same length would cost one byte less.
			return wf
		}
		candidates = append(candidates, wf)
	}
	candidates = append(candidates, byteFillCandidate(src, i))
	candidates = append(candidates, incrementingCandidate(src, i))
	if ref := bestBackreference(src, i); ref != nil {
		candidates = append(candidates, *ref)
	}

	best := candidates[0]
	bestRatio := ratio(best)
	for _, c := range candidates[1:] {
		if r := ratio(c); r > bestRatio {
			best, bestRatio = c, r
		}
	}
	return best
}

func ratio(c Command) float64 {
	return float64(c.Length()) / float64(c.Cost())
}

// wordFillCandidate reports the longest run of the 2-byte pattern starting
// at src[i], including a trailing partial word if present. ok is false
// when fewer than 2 bytes remain.
func wordFillCandidate(src []byte, i int) (c Command, ok bool) {
	if len(src)-i < 2 {
		return Command{}, false
	}
	word := binary.LittleEndian.Uint16(src[i:])

	length := 0
	for i+length+2 <= len(src) && binary.LittleEndian.Uint16(src[i+length:]) == word {
		length += 2
	}
	if i+length < len(src) && src[i+length] == byte(word) {
		length++
	}
	return Command{Kind: KindWordFill, Word: word, Len: min(length, MaxLen)}, true
}

// byteFillCandidate reports the run of src[i] repeated, starting at i.
func byteFillCandidate(src []byte, i int) Command {
	b := src[i]
	length := 0
	for i+length < len(src) && src[i+length] == b {
		length++
	}
	return Command{Kind: KindByteFill, Data: b, Len: min(length, MaxLen)}
}

// incrementingCandidate reports the longest prefix starting at i where each
// byte is one more than the last, wrapping mod 256.
func incrementingCandidate(src []byte, i int) Command {
	start := src[i]
	want := start
	length := 0
	for i+length < len(src) && src[i+length] == want {
		length++
		want++
	}
	return Command{Kind: KindIncrementing, Data: start, Len: min(length, MaxLen)}
}
