package codec_test

import (
	"bytes"
	"testing"

	"github.com/cocosip/go-sqz-codec/codec"
	"github.com/cocosip/go-sqz-codec/sqz"
	"github.com/cocosip/go-sqz-codec/sqz/scan"
)

func TestCodecRegistry(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantFound bool
		wantUID   string
		wantName  string
	}{
		{
			name:      "Get SQZ by name",
			key:       "sqz",
			wantFound: true,
			wantUID:   "1.2.826.0.1.3680043.10.1451.1",
			wantName:  "sqz",
		},
		{
			name:      "Get SQZ by UID",
			key:       "1.2.826.0.1.3680043.10.1451.1",
			wantFound: true,
			wantUID:   "1.2.826.0.1.3680043.10.1451.1",
			wantName:  "sqz",
		},
		{
			name:      "Get non-existent codec",
			key:       "non-existent",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := codec.Get(tt.key)

			if !tt.wantFound {
				if err == nil {
					t.Errorf("Get(%q) expected error, got codec %v", tt.key, c)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get(%q) unexpected error: %v", tt.key, err)
			}
			if c.UID() != tt.wantUID {
				t.Errorf("UID = %q, want %q", c.UID(), tt.wantUID)
			}
			if c.Name() != tt.wantName {
				t.Errorf("Name = %q, want %q", c.Name(), tt.wantName)
			}
		})
	}
}

func TestRegistryList(t *testing.T) {
	codecs := codec.List()
	found := false
	for _, c := range codecs {
		if c.Name() == "sqz" {
			found = true
		}
	}
	if !found {
		t.Error("SQZ codec missing from List()")
	}
}

func TestCodecRoundTrip(t *testing.T) {
	c, err := codec.Get("sqz")
	if err != nil {
		t.Fatal(err)
	}

	const w, h = 16, 16
	pixels := make([]byte, w*h)
	for i := range pixels {
		pixels[i] = byte(i * 7)
	}

	encoded, err := c.Encode(codec.EncodeParams{
		PixelData:  pixels,
		Width:      w,
		Height:     h,
		Components: 1,
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	result, err := c.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Width != w || result.Height != h || result.Components != 1 {
		t.Fatalf("geometry mismatch: %+v", result)
	}
	if !bytes.Equal(result.PixelData, pixels) {
		t.Error("grayscale round trip through registry failed")
	}
}

func TestCodecOptions(t *testing.T) {
	c, err := codec.Get("sqz")
	if err != nil {
		t.Fatal(err)
	}

	const w, h = 16, 16
	pixels := make([]byte, w*h*3)
	for i := range pixels {
		pixels[i] = byte(i)
	}

	encoded, err := c.Encode(codec.EncodeParams{
		PixelData:  pixels,
		Width:      w,
		Height:     h,
		Components: 3,
		Options: &codec.SQZOptions{
			BaseOptions: codec.BaseOptions{Budget: 128},
			ColorMode:   sqz.Oklab,
			ScanOrder:   scan.Hilbert,
			Levels:      1,
		},
	})
	if err != nil {
		t.Fatalf("Encode with options: %v", err)
	}
	if len(encoded) > 128 {
		t.Errorf("budget ignored: %d bytes", len(encoded))
	}

	if _, err := c.Decode(encoded); err != nil {
		t.Fatalf("Decode truncated-by-budget stream: %v", err)
	}
}

func TestCodecRejectsComponents(t *testing.T) {
	c, err := codec.Get("sqz")
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.Encode(codec.EncodeParams{
		PixelData:  make([]byte, 8*8*2),
		Width:      8,
		Height:     8,
		Components: 2,
	})
	if err == nil {
		t.Error("two-component encode must fail")
	}
}
