package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/JoshuaGerke/Pool-Line-Detector/internal/detection"
)

// maxPreviewShapes bounds how many candidate outlines a shape preview draws;
// beyond that the image becomes unreadable anyway.
const maxPreviewShapes = 10

var (
	lineAllColor   = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	lineBestColor  = color.NRGBA{G: 255, A: 255}
	markStartColor = color.NRGBA{R: 255, A: 255}
	markEndColor   = color.NRGBA{B: 255, A: 255}
)

// RenderDetection draws a detection result over a copy of the frame: every
// valid line in gray, the winning line in green on top, with the winner's
// endpoints marked (start red, end blue). An empty result returns a plain
// copy of the frame, which makes "nothing found" dumps self-explanatory.
func RenderDetection(img image.Image, result *detection.LinesResult) *image.NRGBA {
	preview := imaging.Clone(img)
	if result == nil || len(result.Lines) == 0 {
		return preview
	}

	for _, l := range result.Lines {
		DrawLine(preview, l.Start.X, l.Start.Y, l.End.X, l.End.Y, lineAllColor, 2)
	}

	best := result.Lines[0]
	DrawLine(preview, best.Start.X, best.Start.Y, best.End.X, best.End.Y, lineBestColor, 3)
	FillCircle(preview, best.Start.X, best.Start.Y, 8, markStartColor)
	FillCircle(preview, best.End.X, best.End.Y, 8, markEndColor)

	return preview
}

// RenderShapes draws the measured bright regions of an analysis over a copy
// of the frame, each outline in its own palette color with a matching index
// label and endpoint markers. The index matches the shape's position in the
// analysis listing, so the numbers line up with a printed report.
func RenderShapes(img image.Image, result *detection.AnalysisResult) *image.NRGBA {
	preview := imaging.Clone(img)
	if result == nil || len(result.Shapes) == 0 {
		return preview
	}

	shapes := result.Shapes
	if len(shapes) > maxPreviewShapes {
		shapes = shapes[:maxPreviewShapes]
	}
	palette := colorful.FastHappyPalette(len(shapes))

	for i, s := range shapes {
		r, g, b := palette[i].RGB255()
		outline := color.NRGBA{R: r, G: g, B: b, A: 255}

		points := make([]image.Point, len(s.Boundary))
		for j, p := range s.Boundary {
			points[j] = image.Point{X: p.X, Y: p.Y}
		}
		DrawPolyline(preview, points, outline, 2)

		FillCircle(preview, s.Start.X, s.Start.Y, 5, markStartColor)
		FillCircle(preview, s.End.X, s.End.Y, 5, markEndColor)
		drawTag(preview, s.Start.X+8, s.Start.Y-8, strconv.Itoa(i+1), outline)
	}

	return preview
}

// EncodedImage carries a rendered image as base64 PNG, sized for transport
// inside a JSON response.
type EncodedImage struct {
	// Width and Height are the encoded dimensions after any resampling.
	Width  int `json:"width"`
	Height int `json:"height"`

	// ImageBase64 is the PNG data, base64 encoded.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// EncodePNG encodes the image as a base64 PNG, optionally resampling by the
// given scale factor first; full-screen captures are usually too large to
// ship over the wire unscaled. A scale of 0 or 1 keeps the original size.
func EncodePNG(img image.Image, scale float64) (*EncodedImage, error) {
	out := img
	if scale > 0 && scale != 1.0 {
		w := int(float64(img.Bounds().Dx()) * scale)
		h := int(float64(img.Bounds().Dy()) * scale)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		out = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
