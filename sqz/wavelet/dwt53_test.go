package wavelet

import (
	"math/rand"
	"testing"
)

func TestMirror(t *testing.T) {
	// Exhaustive over small ranges: reflection must stay in [0, max] and be
	// symmetric about both boundaries.
	for max := 1; max <= 5; max++ {
		for i := -3 * max; i <= 3*max; i++ {
			got := Mirror(i, max)
			if got < 0 || got > max {
				t.Fatalf("Mirror(%d, %d) = %d out of range", i, max, got)
			}
		}
		if Mirror(-1, max) != 1 {
			t.Errorf("Mirror(-1, %d) = %d, want 1", max, Mirror(-1, max))
		}
		if Mirror(max+1, max) != max-1 {
			t.Errorf("Mirror(max+1, %d) = %d, want %d", max, Mirror(max+1, max), max-1)
		}
	}
	if Mirror(7, 0) != 0 {
		t.Error("Mirror with max 0 must return 0")
	}
}

func TestForwardInverse1D(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Size 8", 8},
		{"Size 9", 9},
		{"Size 16", 16},
		{"Size 31", 31},
		{"Size 64", 64},
		{"Size 100", 100},
		{"Size 127", 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := make([]int32, tt.size)
			for i := range original {
				original[i] = int32(i*3 - 50)
			}

			data := make([]int32, tt.size)
			work := make([]int32, tt.size)
			copy(data, original)

			forward1D(data, work)
			inverse1D(data, work)

			for i := range data {
				if data[i] != original[i] {
					t.Errorf("reconstruction failed at index %d: got %d, want %d", i, data[i], original[i])
				}
			}
		})
	}
}

func TestForwardInverse2D(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"8x8", 8, 8},
		{"16x16", 16, 16},
		{"17x9", 17, 9},
		{"9x17", 9, 17},
		{"64x64", 64, 64},
		{"100x50", 100, 50},
		{"8x3", 8, 3},   // height not split
		{"3x8", 3, 8},   // width not split
		{"5x5", 5, 5},   // neither split: identity
	}

	rng := rand.New(rand.NewSource(42))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.width * tt.height
			original := make([]int16, n)
			for i := range original {
				original[i] = int16(rng.Intn(511) - 255)
			}

			data := make([]int16, n)
			copy(data, original)

			Forward2D(data, tt.width, tt.height, tt.width)
			Inverse2D(data, tt.width, tt.height, tt.width)

			for i := range data {
				if data[i] != original[i] {
					t.Fatalf("reconstruction failed at %d: got %d, want %d", i, data[i], original[i])
				}
			}
		})
	}
}

func TestIdentityBelowMinDimension(t *testing.T) {
	data := []int16{5, -3, 7, 1, 0, -9, 2, 4, 8, -1, 3, 6}
	original := make([]int16, len(data))
	copy(original, data)

	// 4x3: both dimensions below MinDimension, the pass must not touch it.
	Forward2D(data, 4, 3, 4)
	for i := range data {
		if data[i] != original[i] {
			t.Fatalf("sub-minimum region was transformed at %d", i)
		}
	}
}

func TestMultilevelRoundTrip(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		levels        int
	}{
		{"8x8 L1", 8, 8, 1},
		{"16x16 L2", 16, 16, 2},
		{"64x64 L4", 64, 64, 4},
		{"100x60 L3", 100, 60, 3},
		{"33x65 L2", 33, 65, 2},
	}

	rng := rand.New(rand.NewSource(7))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.width * tt.height
			original := make([]int16, n)
			for i := range original {
				original[i] = int16(rng.Intn(256) - 128)
			}

			data := make([]int16, n)
			copy(data, original)

			ForwardMultilevel(data, tt.width, tt.height, tt.levels)
			InverseMultilevel(data, tt.width, tt.height, tt.levels)

			for i := range data {
				if data[i] != original[i] {
					t.Fatalf("reconstruction failed at %d: got %d, want %d", i, data[i], original[i])
				}
			}
		})
	}
}

func TestSolidLevelShiftedPlane(t *testing.T) {
	// A constant plane concentrates all energy in the deepest LL band: every
	// detail coefficient must be exactly zero for the 5/3 filter.
	const w, h = 16, 16
	data := make([]int16, w*h)
	for i := range data {
		data[i] = 72
	}
	ForwardMultilevel(data, w, h, 2)

	llW, llH := LevelDims(w, h, 2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			inLL := x < llW && y < llH
			v := data[y*w+x]
			if inLL && v == 0 {
				t.Fatalf("LL coefficient at (%d,%d) unexpectedly zero", x, y)
			}
			if !inLL && v != 0 {
				t.Fatalf("detail coefficient at (%d,%d) = %d, want 0", x, y, v)
			}
		}
	}
}

func TestBandsLayout(t *testing.T) {
	bands := Bands(16, 16, 2)
	if len(bands) != 7 {
		t.Fatalf("got %d bands, want 7", len(bands))
	}

	ll := bands[0]
	if ll.Orientation != LL || ll.Level != 1 || ll.W != 4 || ll.H != 4 {
		t.Errorf("deepest LL = %+v", ll)
	}

	// All bands together must tile the plane exactly once.
	seen := make([][]bool, 16)
	for i := range seen {
		seen[i] = make([]bool, 16)
	}
	for _, b := range bands {
		for y := b.Y0; y < b.Y0+b.H; y++ {
			for x := b.X0; x < b.X0+b.W; x++ {
				if seen[y][x] {
					t.Fatalf("overlap at (%d,%d) in %+v", x, y, b)
				}
				seen[y][x] = true
			}
		}
	}
	for y := range seen {
		for x := range seen[y] {
			if !seen[y][x] {
				t.Fatalf("position (%d,%d) not covered by any band", x, y)
			}
		}
	}
}

func TestBandsUnsplitDimension(t *testing.T) {
	// Width 8, height 65: at deeper levels the width stops splitting at 4..7
	// while the height keeps going, so some bands have zero extent.
	bands := Bands(8, 65, 3)
	area := 0
	for _, b := range bands {
		if b.W < 0 || b.H < 0 {
			t.Fatalf("negative extent: %+v", b)
		}
		area += b.W * b.H
	}
	if area != 8*65 {
		t.Errorf("band areas sum to %d, want %d", area, 8*65)
	}
}
