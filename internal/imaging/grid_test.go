package imaging

import (
	"image/color"
	"testing"
)

func TestGrid(t *testing.T) {
	img := createInMemoryImage(100, 60, color.White)

	grid := Grid(img, 25, false, "#FF0000")

	red := color.NRGBA{255, 0, 0, 255}
	white := color.NRGBA{255, 255, 255, 255}

	// Vertical lines at x=25, 50, 75; horizontal at y=25, 50.
	if got := grid.NRGBAAt(25, 10); got != red {
		t.Errorf("Pixel on vertical grid line: got %v, want %v", got, red)
	}
	if got := grid.NRGBAAt(50, 40); got != red {
		t.Errorf("Pixel on vertical grid line: got %v, want %v", got, red)
	}
	if got := grid.NRGBAAt(10, 25); got != red {
		t.Errorf("Pixel on horizontal grid line: got %v, want %v", got, red)
	}

	// Edges and cells stay untouched; the grid starts one spacing in.
	if got := grid.NRGBAAt(0, 10); got != white {
		t.Errorf("Pixel on left edge: got %v, want %v", got, white)
	}
	if got := grid.NRGBAAt(10, 10); got != white {
		t.Errorf("Pixel inside cell: got %v, want %v", got, white)
	}

	// The source image is untouched.
	if img.RGBAAt(25, 10) != (color.RGBA{255, 255, 255, 255}) {
		t.Error("Source image was modified")
	}
}

func TestGrid_Labels(t *testing.T) {
	img := createInMemoryImage(200, 120, color.RGBA{20, 20, 20, 255})

	grid := Grid(img, 50, true, "#00FF00")

	// The "50,50" label sits just inside the intersection: white glyphs on a
	// darkened backing box.
	foundText := false
	for y := 50; y < 70 && !foundText; y++ {
		for x := 50; x < 110; x++ {
			if grid.NRGBAAt(x, y) == (color.NRGBA{255, 255, 255, 255}) {
				foundText = true
				break
			}
		}
	}
	if !foundText {
		t.Error("No label text found near the (50,50) intersection")
	}

	// Without showCoordinates the same area holds no white pixels.
	plain := Grid(img, 50, false, "#00FF00")
	for y := 50; y < 70; y++ {
		for x := 50; x < 110; x++ {
			if plain.NRGBAAt(x, y) == (color.NRGBA{255, 255, 255, 255}) {
				t.Fatalf("Unexpected label pixel at (%d,%d) with labels disabled", x, y)
			}
		}
	}
}

func TestGrid_InvalidColorFallsBack(t *testing.T) {
	img := createInMemoryImage(60, 60, color.White)

	grid := Grid(img, 20, false, "notacolor")

	// Fallback is semi-transparent red, written directly into the pixel.
	want := color.NRGBA{R: 255, A: 128}
	if got := grid.NRGBAAt(20, 5); got != want {
		t.Errorf("Fallback grid color: got %v, want %v", got, want)
	}
}

func TestGrid_SpacingBelowOne(t *testing.T) {
	img := createInMemoryImage(40, 40, color.White)

	grid := Grid(img, 0, true, "#FF0000")

	if got := grid.NRGBAAt(20, 20); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("Zero spacing should return a plain copy, got %v", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    color.NRGBA
		wantErr bool
	}{
		{"green with hash", "#00FF00", color.NRGBA{0, 255, 0, 255}, false},
		{"green without hash", "00FF00", color.NRGBA{0, 255, 0, 255}, false},
		{"with alpha", "#11223344", color.NRGBA{0x11, 0x22, 0x33, 0x44}, false},
		{"empty", "", color.NRGBA{}, true},
		{"too short", "#12", color.NRGBA{}, true},
		{"not hex", "#GGHHII", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHexColor(tt.hex)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseHexColor(%q) should fail", tt.hex)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseHexColor(%q) failed: %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("parseHexColor(%q): got %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}
