package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawLine draws a straight segment from (x1,y1) to (x2,y2) with the given
// stroke width. Pixels falling outside the image are clipped. A width of one
// or less draws a single-pixel trace.
func DrawLine(img draw.Image, x1, y1, x2, y2 int, c color.Color, width int) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	e := dx + dy
	x, y := x1, y1
	for {
		if width <= 1 {
			setClipped(img, x, y, c)
		} else {
			FillCircle(img, x, y, width/2, c)
		}
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// FillCircle draws a filled circle centered at (cx,cy). Pixels falling
// outside the image are clipped.
func FillCircle(img draw.Image, cx, cy, radius int, c color.Color) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				setClipped(img, cx+dx, cy+dy, c)
			}
		}
	}
}

// DrawPolyline draws the closed outline through the given points.
func DrawPolyline(img draw.Image, points []image.Point, c color.Color, width int) {
	if len(points) == 0 {
		return
	}
	if len(points) == 1 {
		FillCircle(img, points[0].X, points[0].Y, width/2, c)
		return
	}
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		DrawLine(img, a.X, a.Y, b.X, b.Y, c, width)
	}
}

// drawTag draws a short text marker with its baseline starting at (x, y).
// Glyphs falling outside the image are clipped.
func drawTag(dst draw.Image, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func setClipped(img draw.Image, x, y int, c color.Color) {
	if (image.Point{X: x, Y: y}).In(img.Bounds()) {
		img.Set(x, y, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
