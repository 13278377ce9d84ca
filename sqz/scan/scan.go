// Package scan enumerates the coefficient positions of a rectangular subband
// in one of four space-filling orders. All orders are deterministic functions
// of the rectangle dimensions only; the decoder rebuilds the exact sequence
// the encoder used, so the order is part of the bitstream contract.
package scan

// Order selects a scan order. The values match the 2-bit header field.
type Order uint8

const (
	// Raster is row-major, left-to-right, top-to-bottom.
	Raster Order = 0

	// Snake is a tiled boustrophedon walk; successive positions always
	// differ by Manhattan distance exactly 1.
	Snake Order = 1

	// Morton is Z-order via bit de-interleaving.
	Morton Order = 2

	// Hilbert is a generalized Hilbert curve over arbitrary rectangles.
	Hilbert Order = 3
)

// String returns the order name.
func (o Order) String() string {
	switch o {
	case Raster:
		return "raster"
	case Snake:
		return "snake"
	case Morton:
		return "morton"
	case Hilbert:
		return "hilbert"
	}
	return "unknown"
}

// Valid reports whether o is one of the four defined orders.
func (o Order) Valid() bool {
	return o <= Hilbert
}

// Iterator steps through every position of a width x height rectangle
// exactly once. A fresh iterator is already positioned on the first
// coefficient; Step advances it and reports whether a position remains.
//
//	it := scan.New(order, w, h)
//	for ok := true; ok; ok = it.Step() {
//		visit(it.X(), it.Y())
//	}
type Iterator interface {
	X() int
	Y() int
	Step() bool
}

// New creates an iterator over a w x h rectangle. Both dimensions must be at
// least 1. Unknown orders fall back to raster.
func New(o Order, w, h int) Iterator {
	switch o {
	case Snake:
		return newSnake(w, h)
	case Morton:
		return newMorton(w, h)
	case Hilbert:
		return newHilbert(w, h)
	}
	return &rasterIter{w: w, h: h}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sgn(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
