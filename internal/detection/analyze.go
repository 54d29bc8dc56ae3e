package detection

import (
	"image"
	"math"
	"sort"
)

// ShapeInfo holds the measurements of one bright region, whether it passed
// the pipeline or not. Used to answer "why was no line found" without
// re-deriving the numbers by hand.
type ShapeInfo struct {
	Area      float64 `json:"area"`
	Length    float64 `json:"length"`
	Thickness float64 `json:"thickness"`
	Aspect    float64 `json:"aspect"`
	Points    int     `json:"points"` // boundary point count
	Start     Point   `json:"start"`
	End       Point   `json:"end"`

	// Terminated is true when the walk beyond either endpoint found dark
	// material within the termination radius.
	Terminated bool `json:"terminated"`

	// Accepted is true when the shape passed the full pipeline: the size
	// and aspect filters plus termination validation.
	Accepted bool `json:"accepted"`

	// Boundary holds the traced outline in image coordinates, for rendering
	// diagnostics. Omitted from JSON output to keep results compact.
	Boundary []Point `json:"-"`
}

// AnalysisResult is the diagnostic view of one detection pass.
type AnalysisResult struct {
	// Shapes lists every outer bright region with at least the minimum area
	// and a measurable boundary, largest area first.
	Shapes []ShapeInfo `json:"shapes"`

	// Count is the number of shapes listed.
	Count int `json:"count"`

	// Regions is the total number of outer bright regions before any
	// filtering.
	Regions int `json:"regions"`

	// BrightPixels is the number of set pixels in the bright mask.
	BrightPixels int `json:"bright_pixels"`
}

// AnalyzeShapes measures every outer bright region the extractor can see.
//
// Unlike DetectLines it keeps shapes that fail the filter, so a debugging
// caller can print the measurements next to the thresholds that rejected
// them, and it measures termination for every listed shape rather than only
// for filter survivors. Shapes below the minimum area or with fewer than
// five boundary points carry too little signal to measure and are only
// counted in Regions.
func AnalyzeShapes(img image.Image, cfg Config) *AnalysisResult {
	cfg = cfg.withDefaults()

	result := &AnalysisResult{Shapes: make([]ShapeInfo, 0)}
	if img == nil {
		return result
	}
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return result
	}

	bright := brightMask(img, width, height, cfg.BrightThreshold)
	result.BrightPixels = countSet(bright)

	var dark [][]bool

	boundaries := findBoundaries(bright, width, height)
	result.Regions = len(boundaries)

	for _, boundary := range boundaries {
		area := polygonArea(boundary)
		if area < cfg.MinArea || len(boundary) < 5 {
			continue
		}

		length, thickness := minAreaRect(boundary)
		aspect := length / math.Max(thickness, 1)
		p1, p2 := farthestPair(boundary)

		if dark == nil {
			dark = darkMask(img, width, height, cfg.DarkThreshold)
		}
		terminated := terminatesOnDark(dark, width, height, p1, p2, cfg.TerminationRadius)

		passed := thickness >= cfg.MinThickness && thickness <= cfg.MaxThickness &&
			length >= cfg.MinLength && aspect >= cfg.MinAspectRatio

		outline := make([]Point, len(boundary))
		for i, p := range boundary {
			outline[i] = Point{X: p.X + bounds.Min.X, Y: p.Y + bounds.Min.Y}
		}

		result.Shapes = append(result.Shapes, ShapeInfo{
			Area:       area,
			Length:     length,
			Thickness:  thickness,
			Aspect:     aspect,
			Points:     len(boundary),
			Start:      Point{X: p1.X + bounds.Min.X, Y: p1.Y + bounds.Min.Y},
			End:        Point{X: p2.X + bounds.Min.X, Y: p2.Y + bounds.Min.Y},
			Terminated: terminated,
			Accepted:   passed && terminated,
			Boundary:   outline,
		})
	}

	sort.SliceStable(result.Shapes, func(i, j int) bool {
		return result.Shapes[i].Area > result.Shapes[j].Area
	})
	result.Count = len(result.Shapes)

	return result
}
