package imaging

import (
	"fmt"
	"image"
	"math"
)

// DistanceResult contains the measurement between two pixel coordinates.
type DistanceResult struct {
	// DistancePixels is the Euclidean distance, rounded to two decimals.
	DistancePixels float64 `json:"distance_pixels"`

	// DeltaX and DeltaY are the signed coordinate differences.
	DeltaX int `json:"delta_x"`
	DeltaY int `json:"delta_y"`

	// AngleDegrees is the orientation of the segment (0 = right, positive
	// turns downward), rounded to one decimal.
	AngleDegrees float64 `json:"angle_degrees"`

	// DistancePercentWidth and DistancePercentHeight express the distance
	// relative to the image extent, in percent.
	DistancePercentWidth  float64 `json:"distance_percent_width"`
	DistancePercentHeight float64 `json:"distance_percent_height"`
}

// MeasureDistance calculates the distance between two points of the image.
//
// Intended for sanity-checking detector output: read two coordinates off a
// grid preview, measure, and compare against the reported line length and
// angle.
func MeasureDistance(img image.Image, x1, y1, x2, y2 int) (*DistanceResult, error) {
	bounds := img.Bounds()
	width := float64(bounds.Dx())
	height := float64(bounds.Dy())
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("image has no extent")
	}

	deltaX := x2 - x1
	deltaY := y2 - y1

	distance := math.Sqrt(float64(deltaX*deltaX + deltaY*deltaY))
	angle := math.Atan2(float64(deltaY), float64(deltaX)) * 180 / math.Pi

	return &DistanceResult{
		DistancePixels:        math.Round(distance*100) / 100,
		DeltaX:                deltaX,
		DeltaY:                deltaY,
		AngleDegrees:          math.Round(angle*10) / 10,
		DistancePercentWidth:  math.Round(distance/width*1000) / 10,
		DistancePercentHeight: math.Round(distance/height*1000) / 10,
	}, nil
}
