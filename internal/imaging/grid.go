package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Grid draws a coordinate grid over a copy of the image so positions can be
// read straight off a preview dump. Lines are drawn every spacing pixels;
// when showCoordinates is set, each intersection carries an "x,y" label.
//
// The grid color is parsed from hex ("#RRGGBB" or "#RRGGBBAA"); an
// unparseable color falls back to semi-transparent red. A spacing below one
// pixel returns a plain copy.
func Grid(img image.Image, spacing int, showCoordinates bool, colorHex string) *image.NRGBA {
	result := imaging.Clone(img)
	if spacing < 1 {
		return result
	}

	gridColor, err := parseHexColor(colorHex)
	if err != nil {
		gridColor = color.NRGBA{R: 255, A: 128}
	}

	width := result.Bounds().Dx()
	height := result.Bounds().Dy()

	for x := spacing; x < width; x += spacing {
		for y := 0; y < height; y++ {
			result.SetNRGBA(x, y, gridColor)
		}
	}
	for y := spacing; y < height; y += spacing {
		for x := 0; x < width; x++ {
			result.SetNRGBA(x, y, gridColor)
		}
	}

	if showCoordinates {
		for y := spacing; y < height; y += spacing {
			for x := spacing; x < width; x += spacing {
				label := strconv.Itoa(x) + "," + strconv.Itoa(y)
				drawBoxedLabel(result, x+2, y+2, label)
			}
		}
	}

	return result
}

// drawBoxedLabel draws white text on a dark backing box with its top-left
// corner at (x, y).
func drawBoxedLabel(dst *image.NRGBA, x, y int, text string) {
	face := basicfont.Face7x13

	textWidth := font.MeasureString(face, text).Ceil()
	box := image.Rect(x, y, x+textWidth+4, y+face.Height+2)
	draw.Draw(dst, box.Intersect(dst.Bounds()),
		image.NewUniform(color.NRGBA{A: 180}), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(x+2, y+1+face.Ascent),
	}
	d.DrawString(text)
}

// parseHexColor parses "#RRGGBB" or "#RRGGBBAA", with or without the leading
// hash.
func parseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint8
	var a uint8 = 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length %d", len(hex))
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
