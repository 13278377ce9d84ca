package codec

import (
	"fmt"

	"github.com/cocosip/go-sqz-codec/sqz"
	"github.com/cocosip/go-sqz-codec/sqz/scan"
)

var _ Codec = (*SQZCodec)(nil)

const (
	sqzName = "sqz"

	// Private transfer syntax UID for SQZ progressive streams.
	sqzUID = "1.2.826.0.1.3680043.10.1451.1"
)

// SQZOptions configures an SQZ encode through the registry interface.
type SQZOptions struct {
	BaseOptions

	ColorMode   sqz.ColorMode
	ScanOrder   scan.Order
	Levels      int
	Subsampling bool
}

// Validate checks the options.
func (o *SQZOptions) Validate() error {
	if err := o.BaseOptions.Validate(); err != nil {
		return err
	}
	if o.ColorMode > sqz.Logl1 || !o.ScanOrder.Valid() {
		return ErrInvalidParameter
	}
	return nil
}

// SQZCodec adapts the sqz package to the registry interface.
type SQZCodec struct{}

// NewSQZCodec creates the codec.
func NewSQZCodec() *SQZCodec {
	return &SQZCodec{}
}

// Name returns the codec name.
func (c *SQZCodec) Name() string { return sqzName }

// UID returns the private transfer syntax UID.
func (c *SQZCodec) UID() string { return sqzUID }

// Encode encodes pixel data as one SQZ stream.
func (c *SQZCodec) Encode(params EncodeParams) ([]byte, error) {
	desc := sqz.Descriptor{
		Width:  params.Width,
		Height: params.Height,
		Levels: 5,
	}
	switch params.Components {
	case 1:
		desc.ColorMode = sqz.Grayscale
	case 3:
		desc.ColorMode = sqz.YCoCgR
	default:
		return nil, fmt.Errorf("%w: %d components", ErrUnsupportedFormat, params.Components)
	}

	if opts, ok := params.Options.(*SQZOptions); ok && opts != nil {
		if err := opts.Validate(); err != nil {
			return nil, err
		}
		if params.Components == 3 && opts.ColorMode != sqz.Grayscale {
			desc.ColorMode = opts.ColorMode
		}
		desc.ScanOrder = opts.ScanOrder
		desc.Subsampling = opts.Subsampling
		desc.Budget = opts.Budget
		if opts.Levels > 0 {
			desc.Levels = opts.Levels
		}
	}

	return sqz.NewEncoder(&desc).Encode(params.PixelData)
}

// Decode decodes an SQZ stream, tolerating truncation.
func (c *SQZCodec) Decode(data []byte) (*DecodeResult, error) {
	dec := sqz.NewDecoder()
	if err := dec.Decode(data); err != nil {
		return nil, err
	}
	desc := dec.Descriptor()
	return &DecodeResult{
		PixelData:  dec.GetPixelData(),
		Width:      desc.Width,
		Height:     desc.Height,
		Components: desc.ColorMode.Planes(),
	}, nil
}

func init() {
	Register(NewSQZCodec())
}
