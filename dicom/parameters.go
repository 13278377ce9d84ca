// Package dicom adapts the SQZ progressive codec to the go-dicom imaging
// codec registry, so DICOM applications can carry SQZ streams under a
// private transfer syntax.
package dicom

import (
	"github.com/cocosip/go-dicom/pkg/imaging/codec"

	"github.com/cocosip/go-sqz-codec/sqz"
	"github.com/cocosip/go-sqz-codec/sqz/scan"
)

// Ensure SQZParameters implements codec.Parameters
var _ codec.Parameters = (*SQZParameters)(nil)

// SQZParameters contains parameters for SQZ encoding
type SQZParameters struct {
	// Budget is the byte budget of the encoded stream. 0 selects a budget
	// large enough for the lossless color modes to round-trip exactly.
	Budget int

	// ColorMode selects the color transform for 3-component images
	// (1=YCoCg-R reversible, 2=Oklab, 3=logl1). Single-component images
	// always use grayscale.
	ColorMode sqz.ColorMode

	// ScanOrder selects the subband scan order
	// (0=raster, 1=snake, 2=morton, 3=hilbert).
	ScanOrder scan.Order

	// Levels controls the number of wavelet decomposition levels (1-8).
	// Clamped to what the image geometry supports.
	Levels int

	// Subsampling delays chroma by one schedule round, spending early bytes
	// on luma.
	Subsampling bool

	// internal storage for compatibility with generic parameter interface
	params map[string]interface{}
}

// NewParameters creates SQZParameters with default values
func NewParameters() *SQZParameters {
	return &SQZParameters{
		Budget:    0,
		ColorMode: sqz.YCoCgR,
		ScanOrder: scan.Snake,
		Levels:    5,
		params:    make(map[string]interface{}),
	}
}

// GetParameter retrieves a parameter by name (implements codec.Parameters)
func (p *SQZParameters) GetParameter(name string) interface{} {
	switch name {
	case "budget":
		return p.Budget
	case "colorMode":
		return int(p.ColorMode)
	case "scanOrder":
		return int(p.ScanOrder)
	case "levels":
		return p.Levels
	case "subsampling":
		return p.Subsampling
	default:
		return p.params[name]
	}
}

// SetParameter sets a parameter value (implements codec.Parameters)
func (p *SQZParameters) SetParameter(name string, value interface{}) {
	switch name {
	case "budget":
		if v, ok := value.(int); ok {
			p.Budget = v
		}
	case "colorMode":
		if v, ok := value.(int); ok && v >= 0 && v <= 3 {
			p.ColorMode = sqz.ColorMode(v)
		}
	case "scanOrder":
		if v, ok := value.(int); ok && v >= 0 && v <= 3 {
			p.ScanOrder = scan.Order(v)
		}
	case "levels":
		if v, ok := value.(int); ok {
			p.Levels = v
		}
	case "subsampling":
		if v, ok := value.(bool); ok {
			p.Subsampling = v
		}
	default:
		if p.params == nil {
			p.params = make(map[string]interface{})
		}
		p.params[name] = value
	}
}

// Validate checks the parameter combination
func (p *SQZParameters) Validate() error {
	if p.Budget < 0 {
		return sqz.ErrInvalidParameter
	}
	if p.ColorMode > sqz.Logl1 || !p.ScanOrder.Valid() {
		return sqz.ErrInvalidParameter
	}
	return nil
}
