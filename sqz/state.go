package sqz

import (
	"github.com/cocosip/go-sqz-codec/sqz/bitio"
	"github.com/cocosip/go-sqz-codec/sqz/colorspace"
	"github.com/cocosip/go-sqz-codec/sqz/wavelet"
	"github.com/cocosip/go-sqz-codec/sqz/wdr"
)

// codecState owns everything one encode or decode call touches: the shared
// coefficient allocation, the per-plane views into it, every subband's
// coding state, and the bit buffer. Nothing escapes the call, so concurrent
// calls with separate inputs are safe.
type codecState struct {
	desc   *Descriptor
	bb     bitio.Buffer
	coeffs []int16
	planes [][]int16
	bands  [][]*wdr.Band // per plane, in scheduler traversal order
}

func newCodecState(d *Descriptor) *codecState {
	numPlanes := d.ColorMode.Planes()
	n := d.Width * d.Height

	s := &codecState{
		desc:   d,
		coeffs: make([]int16, n*numPlanes),
		planes: make([][]int16, numPlanes),
		bands:  make([][]*wdr.Band, numPlanes),
	}

	layout := wavelet.Bands(d.Width, d.Height, d.Levels)
	for p := 0; p < numPlanes; p++ {
		s.planes[p] = s.coeffs[p*n : (p+1)*n]
		s.bands[p] = make([]*wdr.Band, 0, len(layout))
		for i := range layout {
			sb := &layout[i]
			s.bands[p] = append(s.bands[p], &wdr.Band{
				X0: sb.X0, Y0: sb.Y0,
				W: sb.W, H: sb.H,
				Stride: d.Width,
				Coeffs: s.planes[p],
				Round:  scheduleRound(d, p, sb),
			})
		}
	}
	return s
}

// release drops every subband arena. Called on all exit paths.
func (s *codecState) release() {
	for _, planeBands := range s.bands {
		for _, b := range planeBands {
			b.Release()
		}
	}
}

// run drives the round-robin scheduler, identical for encode and decode.
// Each round visits every existing subband once, in the fixed traversal:
// plane 0 first, levels deepest to shallowest, orientations in band order.
// A subband whose round has arrived is lazily initialized (emitting or
// reading its 4-bit maximum bitplane) and then codes exactly one bitplane
// per round. The first failed bit-buffer operation ends the call; on encode
// the partial stream is a legal truncation, on decode the state is left
// consistent for reconstruction.
func (s *codecState) run(encode bool) {
	for round := 0; ; round++ {
		active := false
		for _, planeBands := range s.bands {
			for _, b := range planeBands {
				if b.W == 0 || b.H == 0 {
					continue
				}
				if round < b.Round {
					active = true
					continue
				}
				if !b.Initialized() {
					if encode {
						b.ComputeMaxBitplane()
						if !s.bb.WriteBits(uint32(b.MaxBitplane), 4) {
							return
						}
					} else {
						v := s.bb.ReadBits(4)
						if v < 0 {
							return
						}
						b.MaxBitplane = v
					}
					b.Init(s.desc.ScanOrder)
				}
				if b.Bitplane > 0 {
					var ok bool
					if encode {
						ok = b.EncodeBitplane(&s.bb)
					} else {
						ok = b.DecodeBitplane(&s.bb)
					}
					if !ok {
						return
					}
					if b.Bitplane > 0 {
						active = true
					}
				}
			}
		}
		if !active {
			return
		}
	}
}

// remapForward rewrites a plane to sign-magnitude form: bit 0 is the sign,
// the magnitude sits above it.
func remapForward(plane []int16) {
	for i, v := range plane {
		if v >= 0 {
			plane[i] = v << 1
		} else {
			plane[i] = -v<<1 | 1
		}
	}
}

// remapInverse undoes remapForward.
func remapInverse(plane []int16) {
	for i, v := range plane {
		if v&1 != 0 {
			plane[i] = -(v >> 1)
		} else {
			plane[i] = v >> 1
		}
	}
}

// forwardColor fills the coefficient planes from packed pixel bytes.
func (s *codecState) forwardColor(pixels []byte) {
	switch s.desc.ColorMode {
	case Grayscale:
		colorspace.ForwardGray(pixels, s.planes[0])
	case YCoCgR:
		colorspace.ForwardYCoCgR(pixels, s.planes[0], s.planes[1], s.planes[2])
	case Oklab:
		colorspace.ForwardOklab(pixels, s.planes[0], s.planes[1], s.planes[2])
	case Logl1:
		colorspace.ForwardLogl1(pixels, s.planes[0], s.planes[1], s.planes[2])
	}
}

// inverseColor writes packed pixel bytes from the coefficient planes.
func (s *codecState) inverseColor(pixels []byte) {
	switch s.desc.ColorMode {
	case Grayscale:
		colorspace.InverseGray(s.planes[0], pixels)
	case YCoCgR:
		colorspace.InverseYCoCgR(s.planes[0], s.planes[1], s.planes[2], pixels)
	case Oklab:
		colorspace.InverseOklab(s.planes[0], s.planes[1], s.planes[2], pixels)
	case Logl1:
		colorspace.InverseLogl1(s.planes[0], s.planes[1], s.planes[2], pixels)
	}
}
