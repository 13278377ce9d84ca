package scan

type rasterIter struct {
	w, h int
	x, y int
}

func (it *rasterIter) X() int { return it.x }
func (it *rasterIter) Y() int { return it.y }

func (it *rasterIter) Step() bool {
	it.x++
	if it.x == it.w {
		it.x = 0
		it.y++
	}
	return it.y < it.h
}
