package sqz

import (
	"github.com/cocosip/go-sqz-codec/sqz/wavelet"
)

// Encoder encodes raw pixel buffers into SQZ streams. One Encoder may be
// reused across images; each Encode call owns its own working state.
type Encoder struct {
	desc Descriptor
}

// NewEncoder creates an encoder for images described by desc.
func NewEncoder(desc *Descriptor) *Encoder {
	return &Encoder{desc: *desc}
}

// Encode compresses pixels and returns the stream, at most the descriptor's
// budget long (or a lossless-sufficient default when the budget is zero).
// Levels is clamped to fit the image geometry before it is written to the
// stream header; the descriptor given to NewEncoder is not modified.
func (e *Encoder) Encode(pixels []byte) ([]byte, error) {
	d := e.desc
	if err := d.validate(); err != nil {
		return nil, err
	}
	budget := d.Budget
	if budget <= 0 {
		budget = d.losslessBudget()
	}

	dst := make([]byte, budget)
	n, err := encodeInto(dst, pixels, &d)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// EncodeInto writes into a caller-supplied buffer instead of allocating the
// output: it writes at most len(dst) bytes and returns how many were used.
// Working state (planes, arenas) is still allocated per call. The codec ORs bits into place, so
// dst must be zeroed by the caller.
func (e *Encoder) EncodeInto(dst []byte, pixels []byte) (int, error) {
	d := e.desc
	if err := d.validate(); err != nil {
		return 0, err
	}
	return encodeInto(dst, pixels, &d)
}

func encodeInto(dst []byte, pixels []byte, d *Descriptor) (int, error) {
	if len(pixels) != d.PixelBytes() {
		return 0, ErrInvalidParameter
	}
	if len(dst) < 6 {
		return 0, ErrBufferTooSmall
	}

	s := newCodecState(d)
	defer s.release()

	s.forwardColor(pixels)
	for _, plane := range s.planes {
		wavelet.ForwardMultilevel(plane, d.Width, d.Height, d.Levels)
		remapForward(plane)
	}

	s.bb.Init(dst)
	if !d.header().Write(&s.bb) {
		return s.bb.BytesUsed(), nil
	}
	// Budget exhaustion inside the scheduler is the normal terminal
	// condition of progressive coding, not an error.
	s.run(true)
	return s.bb.BytesUsed(), nil
}
