package overlay

import (
	"image"
	"image/color"
	"testing"

	"github.com/JoshuaGerke/Pool-Line-Detector/internal/detection"
)

func TestExtend_Horizontal(t *testing.T) {
	line := &detection.DetectedLine{
		Start: detection.Point{X: 10, Y: 50},
		End:   detection.Point{X: 20, Y: 50},
	}

	p1, p2 := Extend(line, 5)

	if p1 != (detection.Point{X: 5, Y: 50}) {
		t.Errorf("p1: got %+v, want (5,50)", p1)
	}
	if p2 != (detection.Point{X: 25, Y: 50}) {
		t.Errorf("p2: got %+v, want (25,50)", p2)
	}
}

func TestExtend_Diagonal(t *testing.T) {
	// A 3-4-5 triangle: unit direction (0.6, 0.8).
	line := &detection.DetectedLine{
		Start: detection.Point{X: 0, Y: 0},
		End:   detection.Point{X: 3, Y: 4},
	}

	p1, p2 := Extend(line, 10)

	if p1 != (detection.Point{X: -6, Y: -8}) {
		t.Errorf("p1: got %+v, want (-6,-8)", p1)
	}
	if p2 != (detection.Point{X: 9, Y: 12}) {
		t.Errorf("p2: got %+v, want (9,12)", p2)
	}
}

func TestExtend_TruncatesTowardZero(t *testing.T) {
	// Unit direction (0.8, 0.6); an extension of 2 moves endpoints by
	// (1.6, 1.2), which truncates rather than rounds.
	line := &detection.DetectedLine{
		Start: detection.Point{X: 0, Y: 0},
		End:   detection.Point{X: 4, Y: 3},
	}

	p1, p2 := Extend(line, 2)

	if p1 != (detection.Point{X: -1, Y: -1}) {
		t.Errorf("p1: got %+v, want (-1,-1)", p1)
	}
	if p2 != (detection.Point{X: 5, Y: 4}) {
		t.Errorf("p2: got %+v, want (5,4)", p2)
	}
}

func TestExtend_ZeroLength(t *testing.T) {
	line := &detection.DetectedLine{
		Start: detection.Point{X: 5, Y: 5},
		End:   detection.Point{X: 5, Y: 5},
	}

	p1, p2 := Extend(line, 100)

	if p1 != line.Start || p2 != line.End {
		t.Errorf("Zero-length line moved: p1=%+v p2=%+v", p1, p2)
	}
}

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer("#00FF00", 3, 2000)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	if r.Color != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("Color: got %v, want green", r.Color)
	}
	if r.Width != 3 || r.Extent != 2000 {
		t.Errorf("Width/Extent: got %d/%.0f, want 3/2000", r.Width, r.Extent)
	}
}

func TestNewRenderer_HashOptional(t *testing.T) {
	r, err := NewRenderer("FF0000", 1, 100)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	if r.Color != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("Color: got %v, want red", r.Color)
	}
}

func TestNewRenderer_InvalidColor(t *testing.T) {
	if _, err := NewRenderer("not a color", 3, 2000); err == nil {
		t.Error("Expected error for an unparseable color")
	}
}

func TestRender_TrajectorySpansFrame(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			frame.Set(x, y, color.RGBA{20, 20, 20, 255})
		}
	}

	line := &detection.DetectedLine{
		Start: detection.Point{X: 40, Y: 50},
		End:   detection.Point{X: 60, Y: 50},
	}

	r, err := NewRenderer("#00FF00", 3, 1000)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	out := r.Render(frame, line)

	green := color.NRGBA{G: 255, A: 255}
	// The detected segment covers x 40-60; the trajectory reaches both
	// frame edges.
	if out.NRGBAAt(0, 50) != green {
		t.Error("Trajectory missing at the left frame edge")
	}
	if out.NRGBAAt(99, 50) != green {
		t.Error("Trajectory missing at the right frame edge")
	}
	if out.NRGBAAt(50, 50) != green {
		t.Error("Trajectory missing on the detected segment")
	}

	// Off-trajectory pixels and the source frame stay untouched.
	if out.NRGBAAt(50, 10) == green {
		t.Error("Trajectory leaked off its row")
	}
	if frame.RGBAAt(50, 50) != (color.RGBA{20, 20, 20, 255}) {
		t.Error("Source frame was modified")
	}
}

func TestRender_NilLine(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 40, 40))

	r, err := NewRenderer("#00FF00", 3, 2000)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	out := r.Render(frame, nil)
	if out == nil || out.Bounds() != frame.Bounds() {
		t.Error("Nil line should produce a plain copy of the frame")
	}
}
