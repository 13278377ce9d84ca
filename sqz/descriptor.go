package sqz

import (
	"math"

	"github.com/cocosip/go-sqz-codec/sqz/codestream"
	"github.com/cocosip/go-sqz-codec/sqz/scan"
)

// ColorMode selects the color transform. The values match the 2-bit header
// field.
type ColorMode uint8

const (
	// Grayscale codes a single level-shifted luma plane. Reversible.
	Grayscale ColorMode = 0

	// YCoCgR codes three planes through the reversible YCoCg-R lifting
	// transform. Reversible.
	YCoCgR ColorMode = 1

	// Oklab codes three planes in 12-bit fixed-point Oklab. Lossy.
	Oklab ColorMode = 2

	// Logl1 codes log-domain luma plus two log-ratio chroma planes. Lossy.
	Logl1 ColorMode = 3
)

// Planes returns the number of coefficient planes for the mode.
func (m ColorMode) Planes() int {
	if m == Grayscale {
		return 1
	}
	return 3
}

// Lossless reports whether the mode round-trips sRGB bytes exactly at a
// sufficient budget.
func (m ColorMode) Lossless() bool {
	return m == Grayscale || m == YCoCgR
}

// String returns the mode name.
func (m ColorMode) String() string {
	switch m {
	case Grayscale:
		return "grayscale"
	case YCoCgR:
		return "ycocg-r"
	case Oklab:
		return "oklab"
	case Logl1:
		return "logl1"
	}
	return "unknown"
}

// Descriptor describes one image for the codec. It is the caller-facing
// configuration on encode and is filled from the header on decode.
type Descriptor struct {
	Width  int
	Height int

	ColorMode   ColorMode
	Levels      int // DWT decomposition levels, clamped to the image
	ScanOrder   scan.Order
	Subsampling bool // delay chroma by one schedule round

	// Budget is the maximum encoded size in bytes. Zero selects a budget
	// large enough for a lossless stream. Ignored on decode.
	Budget int
}

// PixelBytes returns the size of the raw pixel buffer: one byte per sample,
// samples interleaved for the three-plane modes.
func (d *Descriptor) PixelBytes() int {
	return d.Width * d.Height * d.ColorMode.Planes()
}

// validate checks the caller-supplied fields and clamps Levels into the
// range the image geometry supports.
func (d *Descriptor) validate() error {
	if d.Width < codestream.MinDimension || d.Width > codestream.MaxDimension ||
		d.Height < codestream.MinDimension || d.Height > codestream.MaxDimension {
		return ErrInvalidParameter
	}
	if d.ColorMode > Logl1 || !d.ScanOrder.Valid() {
		return ErrInvalidParameter
	}
	if d.Width > math.MaxInt/d.Height/d.ColorMode.Planes() {
		return ErrOutOfMemory
	}

	max := codestream.MaxLevelsFor(d.Width, d.Height)
	if d.Levels < codestream.MinLevels {
		d.Levels = codestream.MinLevels
	}
	if d.Levels > max {
		d.Levels = max
	}
	return nil
}

// header converts the descriptor to its wire form.
func (d *Descriptor) header() *codestream.Header {
	return &codestream.Header{
		Width:       d.Width,
		Height:      d.Height,
		ColorMode:   uint8(d.ColorMode),
		Levels:      d.Levels,
		ScanOrder:   uint8(d.ScanOrder),
		Subsampling: d.Subsampling,
	}
}

func descriptorFromHeader(h *codestream.Header) *Descriptor {
	return &Descriptor{
		Width:       h.Width,
		Height:      h.Height,
		ColorMode:   ColorMode(h.ColorMode),
		Levels:      h.Levels,
		ScanOrder:   scan.Order(h.ScanOrder),
		Subsampling: h.Subsampling,
	}
}

// losslessBudget is a safe upper bound on the stream size for any image with
// this geometry: header, per-band bitplane fields, and worst-case sorting,
// sign and refinement bits per coefficient.
func (d *Descriptor) losslessBudget() int {
	return codestream.HeaderSize + d.PixelBytes()*8 + 1024
}
