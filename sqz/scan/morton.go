package scan

// The Morton order follows the Z-curve: the low bits of the linear index are
// de-interleaved into (x, y) and the remaining high bits extend the longer
// axis. Indices that land outside the rectangle are skipped, which makes the
// order total over any w x h.

type mortonIter struct {
	w, h  int
	r     uint // bits per axis of the interleaved square
	longX bool // high bits extend x rather than y
	idx   uint64
	left  int // positions still to produce after the current one
	x, y  int
}

func newMorton(w, h int) *mortonIter {
	minDim := w
	if h < minDim {
		minDim = h
	}
	r := uint(0)
	for 1<<r < minDim {
		r++
	}
	return &mortonIter{
		w: w, h: h,
		r:     r,
		longX: w >= h,
		left:  w*h - 1,
	}
}

// compactBits gathers every second bit of v, starting at bit 0.
func compactBits(v uint64) int {
	out, shift := 0, 0
	for v != 0 {
		out |= int(v&1) << shift
		v >>= 2
		shift++
	}
	return out
}

func (it *mortonIter) decode(i uint64) (x, y int) {
	low := i & (1<<(2*it.r) - 1)
	x = compactBits(low)
	y = compactBits(low >> 1)
	high := int(i >> (2 * it.r))
	if it.longX {
		x += high << it.r
	} else {
		y += high << it.r
	}
	return
}

func (it *mortonIter) X() int { return it.x }
func (it *mortonIter) Y() int { return it.y }

func (it *mortonIter) Step() bool {
	if it.left == 0 {
		return false
	}
	for {
		it.idx++
		x, y := it.decode(it.idx)
		if x < it.w && y < it.h {
			it.x, it.y = x, y
			it.left--
			return true
		}
	}
}
