package wdr

import (
	"math/bits"

	"github.com/cocosip/go-sqz-codec/sqz/bitio"
)

// WriteRun emits a positive run length r in the WDR form: floor(log2(r))
// zero bits, a terminating one bit, then the low floor(log2(r)) bits of r
// MSB-first. Reports false when the buffer runs out.
func WriteRun(bb *bitio.Buffer, r uint32) bool {
	k := bits.Len32(r) - 1
	for j := 0; j < k; j++ {
		if !bb.WriteBit(0) {
			return false
		}
	}
	if !bb.WriteBit(1) {
		return false
	}
	if k == 0 {
		return true
	}
	return bb.WriteBits(r&(1<<uint(k)-1), uint(k))
}

// ReadRun decodes a run length: the accumulated value is a leading 1
// followed by the bits after the terminator. Returns -1 on buffer
// exhaustion (or a zero prefix too long to be a real run).
func ReadRun(bb *bitio.Buffer) int {
	k := 0
	for {
		bit := bb.ReadBit()
		if bit < 0 {
			return -1
		}
		if bit == 1 {
			break
		}
		k++
		if k > 31 {
			return -1
		}
	}
	if k == 0 {
		return 1
	}
	low := bb.ReadBits(uint(k))
	if low < 0 {
		return -1
	}
	return 1<<uint(k) | low
}

// EncodeBitplane codes one bitplane of the band: the sorting pass over LIP,
// the refinement pass over LSP, then the NSP merge and cursor decrement.
// Reports false as soon as any bit fails to fit; the stream produced so far
// is a legal truncation.
func (b *Band) EncodeBitplane(bb *bitio.Buffer) bool {
	bp := uint(b.Bitplane)
	bit := int16(1) << bp

	// Sorting pass: report the distance from the previous newly significant
	// position, then the sign, for every LIP entry whose bit is set.
	i, last := int64(0), int64(0)
	prev := int32(-1)
	for cur := b.lip.Head; cur >= 0; {
		i++
		n := b.arena.At(cur)
		next := n.Next
		v := b.Coeffs[b.coefIndex(int(n.X), int(n.Y))]
		if v&bit != 0 {
			if !WriteRun(bb, uint32(i-last)) {
				return false
			}
			if !bb.WriteBit(int(v & 1)) {
				return false
			}
			Exchange(b.arena, &b.lip, &b.nsp, cur, prev)
			last = i
		} else {
			prev = cur
		}
		cur = next
	}
	// Terminating run: one past the list tail, so the decoder stops at the
	// right place even when the stream is cut.
	if !WriteRun(bb, uint32(i-last+1)) {
		return false
	}

	// Refinement pass over the coefficients significant before this plane.
	for cur := b.lsp.Head; cur >= 0; {
		n := b.arena.At(cur)
		v := b.Coeffs[b.coefIndex(int(n.X), int(n.Y))]
		if !bb.WriteBit(int(v>>bp) & 1) {
			return false
		}
		cur = n.Next
	}

	Merge(b.arena, &b.nsp, &b.lsp)
	b.Bitplane--
	return true
}

// DecodeBitplane mirrors EncodeBitplane. On buffer exhaustion it reports
// false leaving the band state consistent up to the last fully received
// symbol; the caller proceeds to rounding and the inverse transforms.
func (b *Band) DecodeBitplane(bb *bitio.Buffer) bool {
	bp := uint(b.Bitplane)
	bit := int16(1) << bp

	// Sorting pass: walk LIP in the encoder's order, promoting the entry at
	// each decoded distance. A run overshooting the tail is the terminator.
	total := int64(b.lip.Len)
	r := ReadRun(bb)
	if r < 0 {
		return false
	}
	i, last := int64(0), int64(0)
	target := int64(r)
	prev := int32(-1)
	for cur := b.lip.Head; cur >= 0 && target <= total; {
		i++
		n := b.arena.At(cur)
		next := n.Next
		if i == target {
			sign := bb.ReadBit()
			if sign < 0 {
				return false
			}
			b.Coeffs[b.coefIndex(int(n.X), int(n.Y))] = bit | int16(sign)
			Exchange(b.arena, &b.lip, &b.nsp, cur, prev)
			last = i
			r = ReadRun(bb)
			if r < 0 {
				return false
			}
			target = last + int64(r)
		} else {
			prev = cur
		}
		cur = next
	}

	// Refinement pass.
	for cur := b.lsp.Head; cur >= 0; {
		n := b.arena.At(cur)
		rb := bb.ReadBit()
		if rb < 0 {
			return false
		}
		if rb != 0 {
			b.Coeffs[b.coefIndex(int(n.X), int(n.Y))] |= bit
		}
		cur = n.Next
	}

	Merge(b.arena, &b.nsp, &b.lsp)
	b.Bitplane--
	return true
}
