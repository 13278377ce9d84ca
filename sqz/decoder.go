package sqz

import (
	"errors"
	"fmt"

	"github.com/cocosip/go-sqz-codec/sqz/bitio"
	"github.com/cocosip/go-sqz-codec/sqz/codestream"
	"github.com/cocosip/go-sqz-codec/sqz/wavelet"
)

// Decoder decodes SQZ streams, tolerating truncation at any point past the
// header: whatever bits arrived determine the reconstruction quality.
type Decoder struct {
	desc   *Descriptor
	pixels []byte
}

// NewDecoder creates an empty decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// parseHeader maps codestream errors onto the codec's error taxonomy.
func parseHeader(src []byte) (*codestream.Header, *Descriptor, error) {
	var bb bitio.Buffer
	bb.Init(src)
	h, err := codestream.Read(&bb)
	if err != nil {
		if errors.Is(err, codestream.ErrCorruptHeader) {
			return nil, nil, fmt.Errorf("%w: %v", ErrDataCorrupted, err)
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	return h, descriptorFromHeader(h), nil
}

// DecodeInfo parses just the header and returns the stream's descriptor and
// the pixel buffer size a full decode produces. This is the size-query face
// of the decode contract.
func DecodeInfo(src []byte) (*Descriptor, int, error) {
	_, desc, err := parseHeader(src)
	if err != nil {
		return nil, 0, err
	}
	return desc, desc.PixelBytes(), nil
}

// Decode decodes src into an internally allocated pixel buffer, available
// through GetPixelData. Truncated streams are decoded best-effort.
func (dec *Decoder) Decode(src []byte) error {
	_, desc, err := parseHeader(src)
	if err != nil {
		return err
	}

	pixels := make([]byte, desc.PixelBytes())
	if err := decodeInto(pixels, src, desc); err != nil {
		return err
	}
	dec.desc = desc
	dec.pixels = pixels
	return nil
}

// GetPixelData returns the pixel buffer of the last successful Decode:
// W*H bytes for grayscale, interleaved W*H*3 for the color modes.
func (dec *Decoder) GetPixelData() []byte {
	return dec.pixels
}

// Descriptor returns the stream parameters of the last successful Decode.
func (dec *Decoder) Descriptor() *Descriptor {
	return dec.desc
}

// DecodeInto decodes src into a caller-supplied pixel buffer. An empty dst
// reports the required size via ErrBufferTooSmall, mirroring the size-query
// protocol; so does an undersized one.
func DecodeInto(dst []byte, src []byte) (*Descriptor, error) {
	_, desc, err := parseHeader(src)
	if err != nil {
		return nil, err
	}
	if len(dst) < desc.PixelBytes() {
		return desc, ErrBufferTooSmall
	}
	if err := decodeInto(dst[:desc.PixelBytes()], src, desc); err != nil {
		return desc, err
	}
	return desc, nil
}

func decodeInto(pixels []byte, src []byte, d *Descriptor) error {
	s := newCodecState(d)
	defer s.release()

	s.bb.Init(src)
	if _, err := codestream.Read(&s.bb); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	s.run(false)

	// Round every significant coefficient toward the midpoint of its
	// remaining uncertainty, undo the sign-magnitude remap, and invert the
	// transforms. All of this is valid however early the stream stopped.
	for _, planeBands := range s.bands {
		for _, b := range planeBands {
			b.Finalize()
		}
	}
	for _, plane := range s.planes {
		remapInverse(plane)
		wavelet.InverseMultilevel(plane, d.Width, d.Height, d.Levels)
	}
	s.inverseColor(pixels)
	return nil
}
