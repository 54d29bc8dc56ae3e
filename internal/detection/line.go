package detection

import (
	"image"
	"math"
	"sort"
)

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// DetectedLine is a white line segment that passed every pipeline stage.
//
// Length and Thickness come from the candidate's minimum-area rectangle, not
// from the endpoint distance: a slightly ragged line keeps the measured
// extent of its pixel region.
type DetectedLine struct {
	// Start and End are the two most distant boundary points of the line's
	// pixel region. Which one is "start" follows boundary iteration order
	// and carries no geometric meaning.
	Start Point `json:"start"`
	End   Point `json:"end"`

	// Length is the longer side of the minimum-area rectangle in pixels.
	Length float64 `json:"length"`

	// Thickness is the shorter side of the minimum-area rectangle in pixels.
	Thickness float64 `json:"thickness"`

	// AngleDegrees is the orientation of the Start→End axis, rounded to one
	// decimal. 0 points right, positive angles turn downward.
	AngleDegrees float64 `json:"angle_degrees"`
}

// LinesResult contains every line that survived filtering and termination
// checks.
type LinesResult struct {
	// Lines is sorted by length, longest first. Equal lengths keep the
	// order the candidates were enumerated in.
	Lines []DetectedLine `json:"lines"`

	// Count is the number of detected lines.
	Count int `json:"count"`
}

// DetectLine finds the single most prominent white, black-bounded line in
// the image and returns it, or nil when no candidate survives.
//
// This is the detector's main entry point. It is a pure function: no I/O,
// no retained state, and identical output for identical input. A nil or
// zero-size image is not an error, it is simply an image with no line in it.
//
// Parameters:
//   - img: Source image. Only the R, G and B channels are read.
//   - cfg: Pipeline thresholds. Non-positive fields fall back to
//     DefaultConfig values, so a zero Config selects the calibrated
//     defaults.
//
// # Algorithm
//
//  1. Threshold the image into a bright mask (all channels at or above
//     Config.BrightThreshold).
//  2. Extract the outer boundary of every connected bright region.
//  3. Filter by polygon area, minimum-area rectangle thickness and length,
//     and length/thickness aspect ratio.
//  4. For each surviving candidate, find the two most distant boundary
//     points via the convex hull and validate that the line terminates
//     against dark pixels (all channels at or below Config.DarkThreshold)
//     within Config.TerminationRadius of at least one endpoint.
//  5. Return the longest validated candidate; ties keep the first one
//     encountered.
//
// # Limitations
//
//   - Lines crossing other bright shapes merge into one region and distort
//     its measurements.
//   - A line whose both ends fade into mid-tone material (neither bright nor
//     dark) is rejected by the termination check.
func DetectLine(img image.Image, cfg Config) *DetectedLine {
	result := DetectLines(img, cfg)
	if result.Count == 0 {
		return nil
	}
	best := result.Lines[0]
	return &best
}

// DetectLines runs the same pipeline as DetectLine but returns every
// validated candidate, longest first. The result is never nil; an empty
// image yields an empty list.
func DetectLines(img image.Image, cfg Config) *LinesResult {
	cfg = cfg.withDefaults()

	lines := make([]DetectedLine, 0)
	if img == nil {
		return &LinesResult{Lines: lines, Count: 0}
	}
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return &LinesResult{Lines: lines, Count: 0}
	}

	bright := brightMask(img, width, height, cfg.BrightThreshold)

	// Built on first use: most frames have no candidate that gets as far as
	// termination validation.
	var dark [][]bool

	for _, boundary := range findBoundaries(bright, width, height) {
		if polygonArea(boundary) < cfg.MinArea {
			continue
		}

		var length, thickness float64
		if len(boundary) >= 5 {
			length, thickness = minAreaRect(boundary)
		} else {
			length, thickness = boundingDims(boundary)
		}

		if thickness < cfg.MinThickness || thickness > cfg.MaxThickness {
			continue
		}
		if length < cfg.MinLength {
			continue
		}
		if length/math.Max(thickness, 1) < cfg.MinAspectRatio {
			continue
		}

		p1, p2 := farthestPair(boundary)

		if dark == nil {
			dark = darkMask(img, width, height, cfg.DarkThreshold)
		}
		if !terminatesOnDark(dark, width, height, p1, p2, cfg.TerminationRadius) {
			continue
		}

		lines = append(lines, newDetectedLine(p1, p2, length, thickness, bounds.Min))
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Length > lines[j].Length
	})

	return &LinesResult{Lines: lines, Count: len(lines)}
}

// newDetectedLine builds the result value, shifting mask coordinates back
// into the image's own coordinate space.
func newDetectedLine(p1, p2 Point, length, thickness float64, offset image.Point) DetectedLine {
	angle := math.Atan2(float64(p2.Y-p1.Y), float64(p2.X-p1.X)) * 180 / math.Pi
	return DetectedLine{
		Start:        Point{X: p1.X + offset.X, Y: p1.Y + offset.Y},
		End:          Point{X: p2.X + offset.X, Y: p2.Y + offset.Y},
		Length:       length,
		Thickness:    thickness,
		AngleDegrees: math.Round(angle*10) / 10,
	}
}
