package dicom

import (
	"bytes"
	"testing"

	"github.com/cocosip/go-dicom/pkg/dicom/transfer"
	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"
)

func grayFrameInfo(w, h int) *imagetypes.FrameInfo {
	return &imagetypes.FrameInfo{
		Width:           uint16(w),
		Height:          uint16(h),
		BitsAllocated:   8,
		BitsStored:      8,
		HighBit:         7,
		SamplesPerPixel: 1,
	}
}

func rgbFrameInfo(w, h int) *imagetypes.FrameInfo {
	fi := grayFrameInfo(w, h)
	fi.SamplesPerPixel = 3
	return fi
}

func TestCodecInterfaceCompliance(t *testing.T) {
	c := NewCodecWithTransferSyntax(transfer.ExplicitVRLittleEndian)

	if c.Name() == "" {
		t.Error("Name() returned empty string")
	}
	if c.TransferSyntax() == nil {
		t.Error("TransferSyntax() returned nil")
	}
	if c.GetDefaultParameters() == nil {
		t.Error("GetDefaultParameters() returned nil")
	}
}

func TestEncodeDecodeGrayFrames(t *testing.T) {
	const w, h = 16, 16
	c := NewCodecWithTransferSyntax(transfer.ExplicitVRLittleEndian)

	src := NewTestPixelData(grayFrameInfo(w, h))
	frame0 := make([]byte, w*h)
	frame1 := make([]byte, w*h)
	for i := range frame0 {
		frame0[i] = byte(i)
		frame1[i] = byte(255 - i%256)
	}
	src.AddFrame(frame0)
	src.AddFrame(frame1)

	encoded := NewTestPixelData(grayFrameInfo(w, h))
	if err := c.Encode(src, encoded, nil); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if encoded.FrameCount() != 2 {
		t.Fatalf("encoded %d frames, want 2", encoded.FrameCount())
	}

	decoded := NewTestPixelData(grayFrameInfo(w, h))
	if err := c.Decode(encoded, decoded, nil); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	got0, _ := decoded.GetFrame(0)
	got1, _ := decoded.GetFrame(1)
	if !bytes.Equal(got0, frame0) || !bytes.Equal(got1, frame1) {
		t.Error("gray frames did not round-trip exactly")
	}
}

func TestEncodeWithParameters(t *testing.T) {
	const w, h = 24, 16
	c := NewCodecWithTransferSyntax(transfer.ExplicitVRLittleEndian)

	src := NewTestPixelData(rgbFrameInfo(w, h))
	frame := make([]byte, w*h*3)
	for i := range frame {
		frame[i] = byte(i * 3)
	}
	src.AddFrame(frame)

	params := NewParameters()
	params.SetParameter("budget", 256)
	params.SetParameter("scanOrder", 3)
	params.SetParameter("levels", 1)

	encoded := NewTestPixelData(rgbFrameInfo(w, h))
	if err := c.Encode(src, encoded, params); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	data, _ := encoded.GetFrame(0)
	if len(data) > 256 {
		t.Errorf("budget ignored: frame is %d bytes", len(data))
	}

	// The budgeted stream still decodes.
	decoded := NewTestPixelData(rgbFrameInfo(w, h))
	if err := c.Decode(encoded, decoded, nil); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	out, _ := decoded.GetFrame(0)
	if len(out) != w*h*3 {
		t.Errorf("decoded frame is %d bytes, want %d", len(out), w*h*3)
	}
}

func TestEncodeRejectsUnsupportedDepth(t *testing.T) {
	c := NewCodecWithTransferSyntax(transfer.ExplicitVRLittleEndian)

	fi := grayFrameInfo(16, 16)
	fi.BitsStored = 12
	fi.BitsAllocated = 16
	src := NewTestPixelData(fi)
	src.AddFrame(make([]byte, 16*16*2))

	if err := c.Encode(src, NewTestPixelData(fi), nil); err == nil {
		t.Error("12-bit encode must fail")
	}
}

func TestDecodeEmptySource(t *testing.T) {
	c := NewCodecWithTransferSyntax(transfer.ExplicitVRLittleEndian)
	fi := grayFrameInfo(16, 16)
	if err := c.Decode(NewTestPixelData(fi), NewTestPixelData(fi), nil); err == nil {
		t.Error("decode of empty source must fail")
	}
}

func TestParameterRoundTrip(t *testing.T) {
	p := NewParameters()
	p.SetParameter("budget", 1234)
	p.SetParameter("colorMode", 2)
	p.SetParameter("subsampling", true)
	p.SetParameter("custom", "value")

	if got := p.GetParameter("budget"); got != 1234 {
		t.Errorf("budget = %v", got)
	}
	if got := p.GetParameter("colorMode"); got != 2 {
		t.Errorf("colorMode = %v", got)
	}
	if got := p.GetParameter("subsampling"); got != true {
		t.Errorf("subsampling = %v", got)
	}
	if got := p.GetParameter("custom"); got != "value" {
		t.Errorf("custom = %v", got)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
