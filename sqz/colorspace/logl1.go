package colorspace

// The logl1 transform codes log-domain luma and two log-ratio chroma
// channels. Channels are first mapped through logLuma (a base-2 log scaled
// so white lands on logLumaOffset), then through a Q16 opponent matrix:
//
//	Y  = (wr*tr + wg*tg + wb*tb) >> 16 - logLumaOffset
//	c0 = tr - tg
//	c1 = tb - tg
//
// The inverse applies the exact Q16 inverse matrix and searches the log
// table back to bytes. Lossy by design; clipping bounds the damage on
// truncated streams.

// ForwardLogl1 converts interleaved RGB bytes to logl1 planes.
func ForwardLogl1(pix []byte, y, c0, c1 []int16) {
	for i := range y {
		tr := logLuma[pix[3*i]]
		tg := logLuma[pix[3*i+1]]
		tb := logLuma[pix[3*i+2]]

		y[i] = int16((logWR*tr+logWG*tg+logWB*tb+32768)>>16 - logLumaOffset)
		c0[i] = int16(tr - tg)
		c1[i] = int16(tb - tg)
	}
}

// delogByte inverts logLuma by binary search, choosing the nearest byte.
func delogByte(t int32) byte {
	if t <= 0 {
		return 0
	}
	if t >= logLuma[255] {
		return 255
	}
	lo, hi := 0, 255
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if logLuma[mid] <= t {
			lo = mid
		} else {
			hi = mid
		}
	}
	if t-logLuma[lo] <= logLuma[hi]-t {
		return byte(lo)
	}
	return byte(hi)
}

// InverseLogl1 converts logl1 planes back to interleaved RGB bytes.
func InverseLogl1(y, c0, c1 []int16, pix []byte) {
	for i := range y {
		yv := int32(y[i]) + logLumaOffset
		r0 := int32(c0[i])
		b1 := int32(c1[i])

		// Solving the forward matrix: tg carries the luma with the chroma
		// contributions removed, tr and tb ride on it.
		tg := yv - int32((int64(logWR)*int64(r0)+int64(logWB)*int64(b1)+32768)>>16)
		tr := r0 + tg
		tb := b1 + tg

		pix[3*i] = delogByte(tr)
		pix[3*i+1] = delogByte(tg)
		pix[3*i+2] = delogByte(tb)
	}
}
