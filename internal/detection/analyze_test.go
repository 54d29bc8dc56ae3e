package detection

import (
	"image/color"
	"math"
	"testing"
)

func TestAnalyzeShapes_ListsAcceptedAndRejected(t *testing.T) {
	img := createTableImage(300, 300)
	drawRotatedBar(img, 90, 90, 150, 6, 30)   // passes every filter
	drawRotatedBar(img, 220, 220, 60, 60, 30) // blocky, fails aspect and thickness

	result := AnalyzeShapes(img, Config{})

	if result.Regions != 2 {
		t.Fatalf("Expected 2 regions, got %d", result.Regions)
	}
	if result.Count != 2 || len(result.Shapes) != 2 {
		t.Fatalf("Expected 2 measured shapes, got count=%d len=%d", result.Count, len(result.Shapes))
	}

	// Largest area first.
	if result.Shapes[0].Area < result.Shapes[1].Area {
		t.Errorf("Shapes out of order: %.0f before %.0f", result.Shapes[0].Area, result.Shapes[1].Area)
	}

	square := result.Shapes[0]
	bar := result.Shapes[1]

	if square.Accepted {
		t.Errorf("Blocky shape accepted: aspect=%.2f thickness=%.1f", square.Aspect, square.Thickness)
	}
	if square.Aspect >= 3 {
		t.Errorf("Blocky shape aspect %.2f, expected below 3", square.Aspect)
	}
	// Rejected by the filters, but on a dark table it still terminates: the
	// report distinguishes "wrong shape" from "no dark ends".
	if !square.Terminated {
		t.Error("Blocky shape on a dark table should still report termination")
	}

	if !bar.Accepted {
		t.Errorf("Bar rejected: length=%.1f thickness=%.1f aspect=%.2f", bar.Length, bar.Thickness, bar.Aspect)
	}
	span := math.Hypot(float64(bar.End.X-bar.Start.X), float64(bar.End.Y-bar.Start.Y))
	if span < 140 {
		t.Errorf("Bar endpoint span %.1f, expected near its length", span)
	}
}

func TestAnalyzeShapes_FourCornerBoundarySkipped(t *testing.T) {
	img := createTableImage(100, 100)
	drawBar(img, 50, 50, 20, 4)

	result := AnalyzeShapes(img, Config{})

	// Large enough by area, but an axis-aligned rectangle reduces to four
	// corner points and cannot be measured.
	if result.Regions != 1 {
		t.Errorf("Expected 1 region, got %d", result.Regions)
	}
	if result.Count != 0 {
		t.Errorf("Expected no measured shapes, got %d", result.Count)
	}
}

func TestAnalyzeShapes_SmallRegionOnlyCounted(t *testing.T) {
	img := createTableImage(100, 100)
	drawBar(img, 10, 10, 4, 4)

	result := AnalyzeShapes(img, Config{})

	if result.Regions != 1 {
		t.Errorf("Expected 1 region, got %d", result.Regions)
	}
	if result.Count != 0 {
		t.Errorf("Expected no measured shapes, got %d", result.Count)
	}
}

func TestAnalyzeShapes_TerminationGatesAccepted(t *testing.T) {
	gray := color.RGBA{128, 128, 128, 255}

	img := createTestImage(300, 150, gray)
	drawRotatedBar(img, 150, 75, 150, 6, 10)

	result := AnalyzeShapes(img, Config{})
	if result.Count != 1 {
		t.Fatalf("Expected 1 measured shape, got %d", result.Count)
	}
	if result.Shapes[0].Terminated {
		t.Error("Shape with no bounding dark should not report termination")
	}
	if result.Shapes[0].Accepted {
		t.Error("Shape with no bounding dark should not be accepted")
	}

	// Same scene with dark material past the lower-right end.
	img = createTestImage(300, 150, gray)
	drawRotatedBar(img, 150, 75, 150, 6, 10)
	for y := 78; y <= 100; y++ {
		for x := 227; x <= 250; x++ {
			img.Set(x, y, color.RGBA{10, 10, 10, 255})
		}
	}

	result = AnalyzeShapes(img, Config{})
	if result.Count != 1 {
		t.Fatalf("Expected 1 measured shape, got %d", result.Count)
	}
	if !result.Shapes[0].Terminated {
		t.Error("Shape ending on dark material should report termination")
	}
	if !result.Shapes[0].Accepted {
		t.Error("Shape ending on dark material should be accepted")
	}
}

func TestAnalyzeShapes_BrightPixels(t *testing.T) {
	img := createTableImage(100, 100)
	drawBar(img, 30, 30, 20, 4)

	result := AnalyzeShapes(img, Config{})

	if result.BrightPixels != 80 {
		t.Errorf("Expected 80 bright pixels, got %d", result.BrightPixels)
	}
}

func TestAnalyzeShapes_NilImage(t *testing.T) {
	result := AnalyzeShapes(nil, Config{})

	if result == nil {
		t.Fatal("Expected non-nil result for nil image")
	}
	if result.Count != 0 || result.Regions != 0 || result.BrightPixels != 0 {
		t.Errorf("Expected empty result, got %+v", result)
	}
	if result.Shapes == nil {
		t.Error("Shapes should be an empty slice, not nil")
	}
}
