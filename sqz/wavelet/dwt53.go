// Package wavelet implements the reversible lifted 5/3 wavelet transform on
// 16-bit coefficient planes, plus the subband layout of the multilevel
// decomposition.
//
// The lifting steps match the reversible 5/3 filter of ISO/IEC 15444-1
// Annex F: integer arithmetic only, so forward followed by inverse
// reproduces the input bit-exactly.
package wavelet

// MinDimension is the smallest extent that is still split by the transform.
// A dimension shorter than this at some level passes through untouched, so
// no subband ever gets thinner than MinDimension/2 in a split dimension.
const MinDimension = 8

// Mirror reflects i symmetrically into [0, max].
func Mirror(i, max int) int {
	if max == 0 {
		return 0
	}
	for i < 0 || i > max {
		if i < 0 {
			i = -i
		}
		if i > max {
			i = 2*max - i
		}
	}
	return i
}

// forward1D lifts one row or column of length n held in scratch. On entry
// scratch holds the samples in natural order; on return the low-pass band
// occupies scratch[:ceil(n/2)] and the high-pass band the remainder.
// work must have capacity n.
func forward1D(scratch, work []int32) {
	n := len(scratch)
	sn := (n + 1) / 2
	e := work[:sn]
	o := work[sn:n]

	for i := 0; i < sn; i++ {
		e[i] = scratch[2*i]
	}
	for i := 0; i < n-sn; i++ {
		o[i] = scratch[2*i+1]
	}

	// High-pass: o[i] -= (e[i] + e[i+1]) >> 1, symmetric extension.
	for i := range o {
		right := Mirror(2*i+2, n-1) / 2
		o[i] -= (e[i] + e[right]) >> 1
	}
	// Low-pass: e[i] += (o[i-1] + o[i] + 2) >> 2, symmetric extension.
	for i := range e {
		left := (Mirror(2*i-1, n-1) - 1) / 2
		right := (Mirror(2*i+1, n-1) - 1) / 2
		e[i] += (o[left] + o[right] + 2) >> 2
	}

	copy(scratch[:sn], e)
	copy(scratch[sn:], o)
}

// inverse1D undoes forward1D: scratch holds low|high on entry and the
// reconstructed samples in natural order on return.
func inverse1D(scratch, work []int32) {
	n := len(scratch)
	sn := (n + 1) / 2
	e := work[:sn]
	o := work[sn:n]

	copy(e, scratch[:sn])
	copy(o, scratch[sn:])

	for i := range e {
		left := (Mirror(2*i-1, n-1) - 1) / 2
		right := (Mirror(2*i+1, n-1) - 1) / 2
		e[i] -= (o[left] + o[right] + 2) >> 2
	}
	for i := range o {
		right := Mirror(2*i+2, n-1) / 2
		o[i] += (e[i] + e[right]) >> 1
	}

	for i := 0; i < sn; i++ {
		scratch[2*i] = e[i]
	}
	for i := 0; i < n-sn; i++ {
		scratch[2*i+1] = o[i]
	}
}

// scratch buffers for one 2-D pass, sized to max(width, height).
type pass struct {
	line []int32
	work []int32
}

func newPass(width, height int) *pass {
	n := width
	if height > n {
		n = height
	}
	return &pass{line: make([]int32, n), work: make([]int32, n)}
}

// Forward2D transforms one level of a width x height region stored at the
// given stride. Columns first, then rows, as in the reference decomposition.
// A dimension below MinDimension is left untouched.
func Forward2D(data []int16, width, height, stride int) {
	p := newPass(width, height)

	if height >= MinDimension {
		col := p.line[:height]
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				col[y] = int32(data[y*stride+x])
			}
			forward1D(col, p.work)
			for y := 0; y < height; y++ {
				data[y*stride+x] = int16(col[y])
			}
		}
	}

	if width >= MinDimension {
		row := p.line[:width]
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				row[x] = int32(data[y*stride+x])
			}
			forward1D(row, p.work)
			for x := 0; x < width; x++ {
				data[y*stride+x] = int16(row[x])
			}
		}
	}
}

// Inverse2D undoes Forward2D: rows first, then columns.
func Inverse2D(data []int16, width, height, stride int) {
	p := newPass(width, height)

	if width >= MinDimension {
		row := p.line[:width]
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				row[x] = int32(data[y*stride+x])
			}
			inverse1D(row, p.work)
			for x := 0; x < width; x++ {
				data[y*stride+x] = int16(row[x])
			}
		}
	}

	if height >= MinDimension {
		col := p.line[:height]
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				col[y] = int32(data[y*stride+x])
			}
			inverse1D(col, p.work)
			for y := 0; y < height; y++ {
				data[y*stride+x] = int16(col[y])
			}
		}
	}
}

// ForwardMultilevel decomposes a plane over the given number of levels.
// Each level transforms the top-left low-pass region of the previous one;
// the stride stays the full plane width throughout.
func ForwardMultilevel(data []int16, width, height, levels int) {
	cw, ch := width, height
	for level := 0; level < levels; level++ {
		Forward2D(data, cw, ch, width)
		cw, ch = nextLowpass(cw, ch)
	}
}

// InverseMultilevel reconstructs from the coarsest level back to the finest.
func InverseMultilevel(data []int16, width, height, levels int) {
	dims := make([][2]int, levels)
	cw, ch := width, height
	for level := 0; level < levels; level++ {
		dims[level] = [2]int{cw, ch}
		cw, ch = nextLowpass(cw, ch)
	}
	for level := levels - 1; level >= 0; level-- {
		Inverse2D(data, dims[level][0], dims[level][1], width)
	}
}

// nextLowpass returns the dimensions of the low-pass region after one split.
func nextLowpass(w, h int) (int, int) {
	if w >= MinDimension {
		w = (w + 1) / 2
	}
	if h >= MinDimension {
		h = (h + 1) / 2
	}
	return w, h
}
