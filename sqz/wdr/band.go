package wdr

import (
	"math/bits"

	"github.com/cocosip/go-sqz-codec/sqz/scan"
)

// Band holds the coding state of one subband: a view into a sign-magnitude
// coefficient plane plus the LIP/LSP/NSP lists over a private arena.
//
// In sign-magnitude form bit 0 of a coefficient is the sign and the
// magnitude occupies the higher bits, so "leading bit" means the same thing
// for positive and negative values. MaxBitplane is the bit index of the
// leading magnitude bit of the largest coefficient (0 when the subband is
// all zero); Bitplane counts down from it and the subband is inert at 0.
type Band struct {
	X0, Y0 int
	W, H   int
	Stride int
	Coeffs []int16  // whole plane, sign-magnitude during coding

	MaxBitplane int
	Bitplane    int
	Round       int // schedule round of first eligibility

	arena *Arena
	lip   List
	lsp   List
	nsp   List

	initialized bool
}

// Initialized reports whether the lazy list setup has run.
func (b *Band) Initialized() bool {
	return b.initialized
}

// Inert reports whether the band has nothing left to code.
func (b *Band) Inert() bool {
	return b.initialized && b.Bitplane == 0
}

// coefIndex maps band-local coordinates to the plane buffer.
func (b *Band) coefIndex(x, y int) int {
	return (b.Y0+y)*b.Stride + (b.X0 + x)
}

// ComputeMaxBitplane scans the band and records the leading bit index of its
// largest sign-magnitude coefficient. The encoder calls this; the decoder
// takes the value from the stream instead.
func (b *Band) ComputeMaxBitplane() {
	max := int16(0)
	for y := 0; y < b.H; y++ {
		row := b.Coeffs[b.coefIndex(0, y) : b.coefIndex(0, y)+b.W]
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	b.MaxBitplane = 0
	if max > 0 {
		b.MaxBitplane = bits.Len16(uint16(max)) - 1
	}
}

// Init lazily builds the LIP by walking the configured scan order over every
// position of the band. LSP and NSP start empty. A band whose MaxBitplane is
// zero allocates nothing; it is inert from the start.
func (b *Band) Init(order scan.Order) {
	b.initialized = true
	b.Bitplane = b.MaxBitplane
	if b.MaxBitplane == 0 {
		return
	}

	b.arena = NewArena(b.W * b.H)
	b.lip = NewList()
	b.lsp = NewList()
	b.nsp = NewList()

	it := scan.New(order, b.W, b.H)
	for ok := true; ok; ok = it.Step() {
		b.lip.Append(b.arena, b.arena.Alloc(uint16(it.X()), uint16(it.Y())))
	}
}

// Release drops the arena and lists.
func (b *Band) Release() {
	b.arena = nil
	b.lip = NewList()
	b.lsp = NewList()
	b.nsp = NewList()
	b.initialized = false
}

// ListLengths returns |LIP|, |LSP|, |NSP|.
func (b *Band) ListLengths() (int, int, int) {
	return int(b.lip.Len), int(b.lsp.Len), int(b.nsp.Len)
}

// Finalize merges any pending NSP entries into LSP and rounds every
// significant coefficient toward the midpoint of its uncertainty interval:
// with the cursor at bp, magnitude bits 1..bp-1 are unresolved, and OR-ing
// ((1<<bp)-1)^1 fills them while preserving the sign bit. Coefficients still
// in LIP stay zero. The decoder calls this after the budget runs out.
func (b *Band) Finalize() {
	if !b.initialized || b.MaxBitplane == 0 {
		return
	}
	Merge(b.arena, &b.nsp, &b.lsp)
	if b.Bitplane < 2 {
		return
	}
	mask := int16((1<<uint(b.Bitplane))-1) ^ 1
	for cur := b.lsp.Head; cur >= 0; {
		n := b.arena.At(cur)
		b.Coeffs[b.coefIndex(int(n.X), int(n.Y))] |= mask
		cur = n.Next
	}
}
