package colorspace

import "math/bits"

// The Oklab transform runs entirely in fixed point: sRGB bytes are mapped to
// 12-bit linear light by table, to LMS with a Q16 matrix, through an integer
// cube root, and to Lab with a second Q16 matrix. L is level-shifted by 2^11
// so all three planes are roughly centered. The transform is lossy; the
// integer cube root below is part of the bitstream contract.

// icbrt returns floor(cbrt(n)) for n >= 0. The seed comes from a cubic
// polynomial over the normalized mantissa m in [1,8), refined by two Halley
// iterations and a final exactness correction.
func icbrt(n int64) int64 {
	if n <= 0 {
		return 0
	}
	k := (bits.Len64(uint64(n)) - 1) / 3
	m := n >> (3 * uint(k))

	y := (cbrtSeedC0 + cbrtSeedC1*m + cbrtSeedC2*m*m + cbrtSeedC3*m*m*m) << uint(k) >> 16
	if y < 1 {
		y = 1
	}
	for i := 0; i < 2; i++ {
		y3 := y * y * y
		y = y * (y3 + 2*n) / (2*y3 + n)
	}
	for y*y*y > n {
		y--
	}
	for (y+1)*(y+1)*(y+1) <= n {
		y++
	}
	return y
}

func mul3(m *[3][3]int64, a, b, c int64) (int64, int64, int64) {
	x := (m[0][0]*a + m[0][1]*b + m[0][2]*c) >> 16
	y := (m[1][0]*a + m[1][1]*b + m[1][2]*c) >> 16
	z := (m[2][0]*a + m[2][1]*b + m[2][2]*c) >> 16
	return x, y, z
}

// ForwardOklab converts interleaved RGB bytes to 12-bit Oklab planes.
func ForwardOklab(pix []byte, lp, ap, bp []int16) {
	for i := range lp {
		r := int64(srgbToLinear12[pix[3*i]])
		g := int64(srgbToLinear12[pix[3*i+1]])
		b := int64(srgbToLinear12[pix[3*i+2]])

		l, m, s := mul3(&oklabM1, r, g, b)

		// Cube roots in Q12: cbrt(v/4096)*4096 == cbrt(v<<24).
		lc := icbrt(l << 24)
		mc := icbrt(m << 24)
		sc := icbrt(s << 24)

		lv, av, bv := mul3(&oklabM2, lc, mc, sc)

		lp[i] = int16(lv - 2048)
		ap[i] = int16(av)
		bp[i] = int16(bv)
	}
}

// linearToSrgb inverts srgbToLinear12 by binary search, choosing the byte
// whose linear value is nearest.
func linearToSrgb(lin int64) byte {
	if lin <= 0 {
		return 0
	}
	if lin >= int64(srgbToLinear12[255]) {
		return 255
	}
	lo, hi := 0, 255
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if int64(srgbToLinear12[mid]) <= lin {
			lo = mid
		} else {
			hi = mid
		}
	}
	if lin-int64(srgbToLinear12[lo]) <= int64(srgbToLinear12[hi])-lin {
		return byte(lo)
	}
	return byte(hi)
}

// InverseOklab converts Oklab planes back to interleaved RGB bytes.
func InverseOklab(lp, ap, bp []int16, pix []byte) {
	for i := range lp {
		lv := int64(lp[i]) + 2048
		av := int64(ap[i])
		bv := int64(bp[i])

		lc, mc, sc := mul3(&oklabM2Inv, lv, av, bv)
		if lc < 0 {
			lc = 0
		}
		if mc < 0 {
			mc = 0
		}
		if sc < 0 {
			sc = 0
		}

		l := (lc * lc * lc) >> 24
		m := (mc * mc * mc) >> 24
		s := (sc * sc * sc) >> 24

		r, g, b := mul3(&oklabM1Inv, l, m, s)

		pix[3*i] = linearToSrgb(r)
		pix[3*i+1] = linearToSrgb(g)
		pix[3*i+2] = linearToSrgb(b)
	}
}
