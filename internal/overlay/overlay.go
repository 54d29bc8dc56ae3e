// Package overlay turns a detected line into the full aiming trajectory:
// the segment extended far past both endpoints and drawn over the frame.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/JoshuaGerke/Pool-Line-Detector/internal/detection"
	"github.com/JoshuaGerke/Pool-Line-Detector/internal/imaging"
)

// Extend pushes both endpoints of the line outward by the given number of
// pixels along its direction. The detected segment covers only the bright
// stripe on the table; the trajectory the player wants runs across the whole
// frame, so callers extend generously and let drawing clip.
//
// Coordinates truncate toward zero and may leave the frame. A zero-length
// line has no direction and comes back unchanged.
func Extend(line *detection.DetectedLine, by float64) (detection.Point, detection.Point) {
	dx := float64(line.End.X - line.Start.X)
	dy := float64(line.End.Y - line.Start.Y)

	length := math.Hypot(dx, dy)
	if length == 0 {
		return line.Start, line.End
	}

	ux := dx / length
	uy := dy / length

	p1 := detection.Point{
		X: int(float64(line.Start.X) - ux*by),
		Y: int(float64(line.Start.Y) - uy*by),
	}
	p2 := detection.Point{
		X: int(float64(line.End.X) + ux*by),
		Y: int(float64(line.End.Y) + uy*by),
	}
	return p1, p2
}

// Renderer draws extended trajectories onto frame copies.
type Renderer struct {
	// Color is the trajectory stroke color.
	Color color.NRGBA

	// Width is the stroke width in pixels.
	Width int

	// Extent is how far past each endpoint the trajectory reaches.
	Extent float64
}

// NewRenderer builds a renderer from a "#RRGGBB" hex color (the leading
// hash is optional), stroke width, and extension length.
func NewRenderer(hex string, width int, extent float64) (*Renderer, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("failed to parse trajectory color: %w", err)
	}

	r, g, b := c.RGB255()
	return &Renderer{
		Color:  color.NRGBA{R: r, G: g, B: b, A: 255},
		Width:  width,
		Extent: extent,
	}, nil
}

// Render draws the extended trajectory of line onto a copy of the frame.
// A nil line returns a plain copy, so callers can hand every frame of a
// watch loop through the same path.
func (r *Renderer) Render(frame image.Image, line *detection.DetectedLine) *image.NRGBA {
	out := imaging.Clone(frame)
	if line == nil {
		return out
	}

	p1, p2 := Extend(line, r.Extent)
	imaging.DrawLine(out, p1.X, p1.Y, p2.X, p2.Y, r.Color, r.Width)
	return out
}
