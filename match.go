package lznint

// bestBackreference finds the best back-reference candidate for position i
// of src by scanning the relative window (the last 255 bytes) and the
// absolute window (anywhere in the first 65536 bytes of output), and
// returns nil if neither region has any match at all.
func bestBackreference(src []byte, i int) *Command {
	relJ, relInvert, relLen := searchRelative(src, i)
	absJ, absInvert, absLen := searchAbsolute(src, i)

	if relLen == 0 && absLen == 0 {
		return nil
	}

	// On equal length prefer Relative: its payload is one byte vs two.
	if relLen >= absLen {
		return &Command{
			Kind:     KindBackreference,
			Ref:      RefRelative,
			Relative: uint8(i - relJ),
			Invert:   relInvert,
			Len:      relLen,
		}
	}
	return &Command{
		Kind:     KindBackreference,
		Ref:      RefAbsolute,
		Absolute: uint16(absJ),
		Invert:   absInvert,
		Len:      absLen,
	}
}

// searchRelative scans j in [i-255, i) and returns the longest match found.
// Ties are broken toward a non-inverted match, since an inverted relative
// backreference always costs an extra header byte.
func searchRelative(src []byte, i int) (j int, invert bool, length int) {
	farthest := i - min(i, 255)
	for k := farthest; k < i; k++ {
		inv, l := matchAt(src, i, k)
		if l > length || (l == length && !inv && invert) {
			j, invert, length = k, inv, l
		}
	}
	return j, invert, length
}

// searchAbsolute scans j in [0, i-255) clipped to the 16-bit addressable
// window and returns the longest match found.
func searchAbsolute(src []byte, i int) (j int, invert bool, length int) {
	farthest := i - min(i, 255)
	limit := min(farthest, 1<<16)
	for k := 0; k < limit; k++ {
		inv, l := matchAt(src, i, k)
		if l > length {
			j, invert, length = k, inv, l
		}
	}
	return j, invert, length
}

// matchAt tries a non-inverted match between src[i:] and src[j:] first; if
// that is empty, it falls back to an inverted match (src[i+k] == src[j+k]
// ^ 0xFF). It never prefers a longer inverted match over a nonzero
// non-inverted one at the same j.
func matchAt(src []byte, i, j int) (invert bool, length int) {
	if l := prefixLen(src, i, j, false, MaxLen); l > 0 {
		return false, l
	}
	return true, prefixLen(src, i, j, true, min(MaxLen, 0x300))
}

// prefixLen returns the longest k <= cap such that src[i+k] equals src[j+k]
// (or its bitwise complement, if invert), without running past the end of
// src.
func prefixLen(src []byte, i, j int, invert bool, cap int) int {
	n := len(src)
	length := 0
	for length < cap && i+length < n && j+length < n {
		a := src[i+length]
		b := src[j+length]
		if invert {
			b = ^b
		}
		if a != b {
			break
		}
		length++
	}
	return length
}
