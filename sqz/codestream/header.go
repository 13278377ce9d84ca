// Package codestream packs and parses the fixed 6-byte SQZ stream header.
//
// Layout, bit-packed MSB-first:
//
//	Magic          8 bits  0xA5
//	Width - 1     16 bits
//	Height - 1    16 bits
//	Color mode     2 bits  0=Gray 1=YCoCg-R 2=Oklab 3=logl1
//	DWT levels - 1 3 bits
//	Scan order     2 bits  0=Raster 1=Snake 2=Morton 3=Hilbert
//	Subsampling    1 bit
//
// The payload follows with no framing and no checksum; any prefix of it is a
// legal truncation.
package codestream

import (
	"errors"
	"math/bits"

	"github.com/cocosip/go-sqz-codec/sqz/bitio"
)

// Magic is the first byte of every SQZ stream.
const Magic = 0xA5

// HeaderSize is the fixed header length in bytes.
const HeaderSize = 6

// Dimension bounds for either axis.
const (
	MinDimension = 8
	MaxDimension = 65535
)

// DWT level bounds before the per-image clamp.
const (
	MinLevels = 1
	MaxLevels = 8
)

var (
	// ErrBadMagic is returned when the stream does not start with Magic or
	// is too short to contain a header.
	ErrBadMagic = errors.New("codestream: bad magic byte")

	// ErrCorruptHeader is returned when the header parses but its fields
	// violate the codec constraints.
	ErrCorruptHeader = errors.New("codestream: corrupt header field")
)

// Header carries the decoded header fields.
type Header struct {
	Width       int
	Height      int
	ColorMode   uint8
	Levels      int
	ScanOrder   uint8
	Subsampling bool
}

// MaxLevelsFor returns the deepest usable decomposition for a w x h image:
// floor(log2(min(w,h))) - 3, but never below one level and never above the
// 3-bit header range.
func MaxLevelsFor(w, h int) int {
	min := w
	if h < min {
		min = h
	}
	levels := bits.Len(uint(min)) - 1 - 3
	if levels < MinLevels {
		return MinLevels
	}
	if levels > MaxLevels {
		return MaxLevels
	}
	return levels
}

// Validate checks every field against the codec constraints.
func (h *Header) Validate() error {
	if h.Width < MinDimension || h.Width > MaxDimension ||
		h.Height < MinDimension || h.Height > MaxDimension {
		return ErrCorruptHeader
	}
	if h.ColorMode > 3 || h.ScanOrder > 3 {
		return ErrCorruptHeader
	}
	if h.Levels < MinLevels || h.Levels > MaxLevelsFor(h.Width, h.Height) {
		return ErrCorruptHeader
	}
	return nil
}

// Write packs the header into the bit buffer. Reports false when the buffer
// cannot hold all six bytes.
func (h *Header) Write(bb *bitio.Buffer) bool {
	sub := uint32(0)
	if h.Subsampling {
		sub = 1
	}
	return bb.WriteBits(Magic, 8) &&
		bb.WriteBits(uint32(h.Width-1), 16) &&
		bb.WriteBits(uint32(h.Height-1), 16) &&
		bb.WriteBits(uint32(h.ColorMode), 2) &&
		bb.WriteBits(uint32(h.Levels-1), 3) &&
		bb.WriteBits(uint32(h.ScanOrder), 2) &&
		bb.WriteBits(sub, 1)
}

// Read parses and validates a header from the bit buffer, leaving the cursor
// on the first payload bit.
func Read(bb *bitio.Buffer) (*Header, error) {
	magic := bb.ReadBits(8)
	if magic < 0 || magic != Magic {
		return nil, ErrBadMagic
	}

	w := bb.ReadBits(16)
	ht := bb.ReadBits(16)
	mode := bb.ReadBits(2)
	levels := bb.ReadBits(3)
	order := bb.ReadBits(2)
	sub := bb.ReadBits(1)
	if sub < 0 {
		return nil, ErrBadMagic
	}

	h := &Header{
		Width:       w + 1,
		Height:      ht + 1,
		ColorMode:   uint8(mode),
		Levels:      levels + 1,
		ScanOrder:   uint8(order),
		Subsampling: sub == 1,
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}
