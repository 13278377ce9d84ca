package dicom

import (
	"fmt"

	"github.com/cocosip/go-dicom/pkg/dicom/transfer"
	"github.com/cocosip/go-dicom/pkg/imaging/codec"
	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"

	"github.com/cocosip/go-sqz-codec/sqz"
)

var _ codec.Codec = (*Codec)(nil)

const sqzCodecName = "SQZ Progressive"

// Codec implements the go-dicom codec interface for SQZ streams. SQZ has no
// standardized DICOM UID, so the transfer syntax is supplied by the
// application that owns the private UID.
type Codec struct {
	transferSyntax *transfer.Syntax
}

// NewCodecWithTransferSyntax constructs the codec for the given private
// transfer syntax.
func NewCodecWithTransferSyntax(ts *transfer.Syntax) *Codec {
	return &Codec{
		transferSyntax: ts,
	}
}

// Name returns the codec name
func (c *Codec) Name() string {
	return sqzCodecName
}

// TransferSyntax returns the transfer syntax this codec handles
func (c *Codec) TransferSyntax() *transfer.Syntax {
	return c.transferSyntax
}

// GetDefaultParameters returns the default codec parameters
func (c *Codec) GetDefaultParameters() codec.Parameters {
	return NewParameters()
}

// Encode encodes pixel data to SQZ streams, one per frame
func (c *Codec) Encode(oldPixelData imagetypes.PixelData, newPixelData imagetypes.PixelData, parameters codec.Parameters) error {
	frameInfo, err := validateEncodeInputs(oldPixelData, newPixelData)
	if err != nil {
		return err
	}
	sqzParams := extractParameters(parameters)
	if err := sqzParams.Validate(); err != nil {
		return fmt.Errorf("invalid SQZ parameters: %w", err)
	}

	desc, err := descriptorFromFrameInfo(frameInfo, sqzParams)
	if err != nil {
		return err
	}
	encoder := sqz.NewEncoder(desc)

	frameCount := oldPixelData.FrameCount()
	if frameCount == 0 {
		return fmt.Errorf("source pixel data is empty (no frames)")
	}
	for frameIndex := 0; frameIndex < frameCount; frameIndex++ {
		frameData, err := oldPixelData.GetFrame(frameIndex)
		if err != nil {
			return fmt.Errorf("failed to get frame %d: %w", frameIndex, err)
		}
		if len(frameData) == 0 {
			return fmt.Errorf("frame %d pixel data is empty", frameIndex)
		}
		encoded, err := encoder.Encode(frameData)
		if err != nil {
			return fmt.Errorf("SQZ encode failed for frame %d: %w", frameIndex, err)
		}
		if err := newPixelData.AddFrame(encoded); err != nil {
			return fmt.Errorf("failed to add encoded frame %d: %w", frameIndex, err)
		}
	}
	return nil
}

// Decode decodes SQZ data to uncompressed pixel data. Truncated frames are
// decoded best-effort, which is the SQZ contract.
func (c *Codec) Decode(oldPixelData imagetypes.PixelData, newPixelData imagetypes.PixelData, _ codec.Parameters) error {
	if oldPixelData == nil || newPixelData == nil {
		return fmt.Errorf("source and destination PixelData cannot be nil")
	}

	frameCount := oldPixelData.FrameCount()
	if frameCount == 0 {
		return fmt.Errorf("source pixel data is empty (no frames)")
	}

	for frameIndex := 0; frameIndex < frameCount; frameIndex++ {
		frameData, err := oldPixelData.GetFrame(frameIndex)
		if err != nil {
			return fmt.Errorf("failed to get frame %d: %w", frameIndex, err)
		}
		if len(frameData) == 0 {
			return fmt.Errorf("frame %d pixel data is empty", frameIndex)
		}

		decoder := sqz.NewDecoder()
		if err := decoder.Decode(frameData); err != nil {
			return fmt.Errorf("SQZ decode failed for frame %d: %w", frameIndex, err)
		}
		if err := newPixelData.AddFrame(decoder.GetPixelData()); err != nil {
			return fmt.Errorf("failed to add decoded frame %d: %w", frameIndex, err)
		}
	}
	return nil
}

func validateEncodeInputs(oldPixelData, newPixelData imagetypes.PixelData) (*imagetypes.FrameInfo, error) {
	if oldPixelData == nil || newPixelData == nil {
		return nil, fmt.Errorf("source and destination PixelData cannot be nil")
	}
	frameInfo := oldPixelData.GetFrameInfo()
	if frameInfo == nil {
		return nil, fmt.Errorf("failed to get frame info from source pixel data")
	}
	if frameInfo.BitsStored != 8 || frameInfo.BitsAllocated != 8 {
		return nil, fmt.Errorf("SQZ codes 8-bit samples, got %d/%d bits stored/allocated",
			frameInfo.BitsStored, frameInfo.BitsAllocated)
	}
	if frameInfo.SamplesPerPixel != 1 && frameInfo.SamplesPerPixel != 3 {
		return nil, fmt.Errorf("SQZ codes 1 or 3 samples per pixel, got %d", frameInfo.SamplesPerPixel)
	}
	return frameInfo, nil
}

func extractParameters(parameters codec.Parameters) *SQZParameters {
	if parameters == nil {
		return NewParameters()
	}
	if sp, ok := parameters.(*SQZParameters); ok {
		return sp
	}
	sp := NewParameters()
	for _, name := range []string{"budget", "colorMode", "scanOrder", "levels", "subsampling"} {
		if v := parameters.GetParameter(name); v != nil {
			sp.SetParameter(name, v)
		}
	}
	return sp
}

func descriptorFromFrameInfo(frameInfo *imagetypes.FrameInfo, params *SQZParameters) (*sqz.Descriptor, error) {
	desc := &sqz.Descriptor{
		Width:       int(frameInfo.Width),
		Height:      int(frameInfo.Height),
		Levels:      params.Levels,
		ScanOrder:   params.ScanOrder,
		Subsampling: params.Subsampling,
		Budget:      params.Budget,
	}
	if frameInfo.SamplesPerPixel == 1 {
		desc.ColorMode = sqz.Grayscale
	} else {
		desc.ColorMode = params.ColorMode
		if desc.ColorMode == sqz.Grayscale {
			desc.ColorMode = sqz.YCoCgR
		}
	}
	return desc, nil
}

// Register registers the SQZ codec with the global go-dicom registry under
// the application's private transfer syntax.
func Register(ts *transfer.Syntax) {
	registry := codec.GetGlobalRegistry()
	registry.RegisterCodec(ts, NewCodecWithTransferSyntax(ts))
}
