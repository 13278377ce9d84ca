package scan

// The snake order tiles the rectangle into cells of nominally 4x15
// (width x height) and walks tiles and cells in nested boustrophedon order.
//
// Two parity conditions keep successive positions at Manhattan distance 1:
// every band of tiles must have odd height, so a tile entered on one row
// direction exits on the side facing the next tile; and the tile grid must
// have an odd column count, so every band exits on its bottom edge, directly
// above the entry row of the next band.

const (
	snakeTileWidth  = 4
	snakeTileHeight = 15
)

type snakeIter struct {
	w, h int
	tw   int // adjusted tile width
	th   int // adjusted tile height, always odd
	cols int // tile grid column count, always odd

	bandY0 int // first row of the current band
	bandH  int // band height, always odd

	tileCol int // current tile column
	tileDir int // +1/-1 tile chaining direction within the band
	tileX0  int
	tileX1  int

	x, y int
	xDir int // within-row direction
	yDir int // row advance direction within the current tile
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// snakeCols picks the tile width: start at the default and nudge by
// +1, -1, +2, -2, ... until the grid column count comes out odd.
func snakeCols(w int) (tw, cols int) {
	tw = snakeTileWidth
	if c := ceilDiv(w, tw); c%2 == 1 {
		return tw, c
	}
	for k := 1; ; k++ {
		m := (k + 1) / 2
		cand := snakeTileWidth - m
		if k%2 == 1 {
			cand = snakeTileWidth + m
		}
		if cand < 1 {
			continue
		}
		if c := ceilDiv(w, cand); c%2 == 1 {
			return cand, c
		}
	}
}

// snakeRows picks the tile height: start at the default and nudge by
// +2, -2, +4, -4, ... (keeping it odd) until the remainder band is odd or
// absent. Height 1 always satisfies the condition, so the search terminates.
func snakeRows(h int) int {
	ok := func(th int) bool {
		r := h % th
		return r == 0 || r%2 == 1
	}
	if ok(snakeTileHeight) {
		return snakeTileHeight
	}
	for k := 1; ; k++ {
		m := (k + 1) / 2
		cand := snakeTileHeight - 2*m
		if k%2 == 1 {
			cand = snakeTileHeight + 2*m
		}
		if cand < 1 {
			continue
		}
		if ok(cand) {
			return cand
		}
	}
}

func newSnake(w, h int) *snakeIter {
	tw, cols := snakeCols(w)
	it := &snakeIter{
		w: w, h: h,
		tw: tw, th: snakeRows(h),
		cols:    cols,
		tileDir: 1,
		xDir:    1,
		yDir:    1,
	}
	it.bandH = it.th
	if it.bandH > h {
		it.bandH = h
	}
	it.setTile(0)
	return it
}

func (it *snakeIter) setTile(c int) {
	it.tileCol = c
	it.tileX0 = c * it.tw
	it.tileX1 = it.tileX0 + it.tw - 1
	if it.tileX1 >= it.w {
		it.tileX1 = it.w - 1
	}
}

func (it *snakeIter) X() int { return it.x }
func (it *snakeIter) Y() int { return it.y }

func (it *snakeIter) Step() bool {
	// Along the current row.
	if nx := it.x + it.xDir; nx >= it.tileX0 && nx <= it.tileX1 {
		it.x = nx
		return true
	}
	// Next row of the current tile.
	if ny := it.y + it.yDir; ny >= it.bandY0 && ny < it.bandY0+it.bandH {
		it.y = ny
		it.xDir = -it.xDir
		return true
	}
	// Next tile of the current band. Enter on the adjacent column at the
	// current row; the vertical orientation flips tile to tile.
	if nc := it.tileCol + it.tileDir; nc >= 0 && nc < it.cols {
		it.setTile(nc)
		if it.tileDir > 0 {
			it.x = it.tileX0
			it.xDir = 1
		} else {
			it.x = it.tileX1
			it.xDir = -1
		}
		it.yDir = -it.yDir
		return true
	}
	// Next band, entered directly below the current position.
	nb := it.bandY0 + it.bandH
	if nb >= it.h {
		return false
	}
	it.bandY0 = nb
	it.bandH = it.th
	if it.bandY0+it.bandH > it.h {
		it.bandH = it.h - it.bandY0
	}
	it.y = it.bandY0
	it.yDir = 1
	it.xDir = -it.xDir
	it.tileDir = -it.tileDir
	return true
}
