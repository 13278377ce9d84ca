// Command sqz encodes raster images into progressive SQZ streams and decodes
// them (or any prefix of them) back to PNG. It is a thin wrapper: all codec
// behavior lives in the sqz package.
//
//	sqz -i photo.png -o photo.sqz -budget 4096 -mode ycocg -scan snake
//	sqz -d -i photo.sqz -o photo.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/cocosip/go-sqz-codec/sqz"
	"github.com/cocosip/go-sqz-codec/sqz/scan"
)

var colorModes = map[string]sqz.ColorMode{
	"gray":  sqz.Grayscale,
	"ycocg": sqz.YCoCgR,
	"oklab": sqz.Oklab,
	"logl1": sqz.Logl1,
}

var scanOrders = map[string]scan.Order{
	"raster":  scan.Raster,
	"snake":   scan.Snake,
	"morton":  scan.Morton,
	"hilbert": scan.Hilbert,
}

func main() {
	var in, out, mode, order string
	var budget, levels, limit int
	var decode, subsample bool
	flag.StringVar(&in, "i", "", "Input file path")
	flag.StringVar(&out, "o", "", "Output file path")
	flag.BoolVar(&decode, "d", false, "Decode an .sqz stream instead of encoding")
	flag.IntVar(&budget, "budget", 0, "Byte budget for the encoded stream (0 = lossless)")
	flag.IntVar(&limit, "limit", 0, "Decode only the first N bytes of the stream (0 = all)")
	flag.StringVar(&mode, "mode", "ycocg", "Color mode: gray, ycocg, oklab, logl1")
	flag.StringVar(&order, "scan", "snake", "Scan order: raster, snake, morton, hilbert")
	flag.IntVar(&levels, "levels", 5, "DWT decomposition levels (clamped to the image)")
	flag.BoolVar(&subsample, "subsample", false, "Delay chroma by one schedule round")
	flag.Parse()

	if in == "" || out == "" {
		fmt.Fprintln(os.Stderr, "Input and output file paths must be specified")
		os.Exit(1)
	}

	if decode {
		runDecode(in, out, limit)
		return
	}
	runEncode(in, out, mode, order, budget, levels, subsample)
}

func runEncode(in, out, mode, order string, budget, levels int, subsample bool) {
	colorMode, ok := colorModes[mode]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown color mode %q\n", mode)
		os.Exit(1)
	}
	scanOrder, ok := scanOrders[order]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown scan order %q\n", order)
		os.Exit(1)
	}

	file, err := os.Open(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cant open input %s: %s\n", in, err)
		os.Exit(1)
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cant decode input %s: %s\n", in, err)
		os.Exit(1)
	}

	desc := &sqz.Descriptor{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ColorMode:   colorMode,
		Levels:      levels,
		ScanOrder:   scanOrder,
		Subsampling: subsample,
		Budget:      budget,
	}
	stream, err := sqz.NewEncoder(desc).Encode(flatten(img, colorMode))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cant encode %s: %s\n", in, err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, stream, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "cant write output %s: %s\n", out, err)
		os.Exit(1)
	}
	fmt.Printf("%s: %dx%d -> %d bytes (%s, %s)\n",
		out, desc.Width, desc.Height, len(stream), colorMode, scanOrder)
}

func runDecode(in, out string, limit int) {
	stream, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cant read input %s: %s\n", in, err)
		os.Exit(1)
	}
	if limit > 0 && limit < len(stream) {
		stream = stream[:limit]
	}

	dec := sqz.NewDecoder()
	if err := dec.Decode(stream); err != nil {
		fmt.Fprintf(os.Stderr, "cant decode %s: %s\n", in, err)
		os.Exit(1)
	}
	desc := dec.Descriptor()

	img := unflatten(dec.GetPixelData(), desc)
	output, err := os.Create(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cant open output %s: %s\n", out, err)
		os.Exit(1)
	}
	defer output.Close()
	if err := png.Encode(output, img); err != nil {
		fmt.Fprintf(os.Stderr, "cant encode output %s: %s\n", out, err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d bytes -> %dx%d (%s)\n",
		out, len(stream), desc.Width, desc.Height, desc.ColorMode)
}

// flatten extracts the raw sample buffer the codec consumes.
func flatten(img image.Image, mode sqz.ColorMode) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if mode == sqz.Grayscale {
		pixels := make([]byte, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
				// Rec.601 luma on 16-bit samples.
				pixels[y*w+x] = byte((19595*r + 38470*g + 7471*bl) >> 24)
			}
		}
		return pixels
	}

	pixels := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := (y*w + x) * 3
			pixels[i] = byte(r >> 8)
			pixels[i+1] = byte(g >> 8)
			pixels[i+2] = byte(bl >> 8)
		}
	}
	return pixels
}

// unflatten rebuilds an image from the codec's pixel buffer.
func unflatten(pixels []byte, desc *sqz.Descriptor) image.Image {
	w, h := desc.Width, desc.Height

	if desc.ColorMode == sqz.Grayscale {
		img := image.NewGray(image.Rect(0, 0, w, h))
		copy(img.Pix, pixels)
		return img
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		img.Pix[i*4] = pixels[i*3]
		img.Pix[i*4+1] = pixels[i*3+1]
		img.Pix[i*4+2] = pixels[i*3+2]
		img.Pix[i*4+3] = 0xFF
	}
	return img
}
