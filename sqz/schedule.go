package sqz

import "github.com/cocosip/go-sqz-codec/sqz/wavelet"

// The static schedule table orders subbands by subjective importance. Both
// sides derive the same round for every (color mode, plane, level,
// orientation) tuple, which is how the decoder knows which bits belong to
// which subband without any delimiters. Changing these assignments changes
// the bitstream.

// chromaLag delays the chroma planes of each color mode by whole rounds.
// The perceptual modes can afford a larger lag than reversible YCoCg-R.
var chromaLag = [4]int{
	int(Grayscale): 0,
	int(YCoCgR):    1,
	int(Oklab):     2,
	int(Logl1):     2,
}

// scheduleRound assigns the first eligible round for one subband. With k the
// depth counted from the coarsest level, the deepest LL opens at round 0,
// detail bands follow at 1+2k (HL/LH) and 2+2k (HH), and chroma planes lag
// luma by the mode's constant plus one more when subsampling is requested.
func scheduleRound(d *Descriptor, plane int, band *wavelet.Subband) int {
	k := d.Levels - 1 - band.Level

	var round int
	switch band.Orientation {
	case wavelet.LL:
		round = 0
	case wavelet.HL, wavelet.LH:
		round = 1 + 2*k
	default:
		round = 2 + 2*k
	}

	if plane > 0 {
		round += chromaLag[d.ColorMode]
		if d.Subsampling {
			round++
		}
	}
	return round
}
