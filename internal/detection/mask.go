package detection

import (
	"image"

	"github.com/anthonynsimon/bild/parallel"
)

// brightMask marks every pixel whose R, G and B channels all reach the
// threshold. The mask is indexed [y][x] relative to the image's top-left
// corner regardless of its bounds offset.
//
// Rows are partitioned across goroutines; RGBA and NRGBA images are read
// straight from their pixel buffers, everything else goes through the
// generic color interface.
func brightMask(img image.Image, width, height, threshold int) [][]bool {
	return thresholdMask(img, width, height, func(r, g, b int) bool {
		return r >= threshold && g >= threshold && b >= threshold
	})
}

// darkMask marks every pixel whose R, G and B channels all stay at or below
// the threshold.
func darkMask(img image.Image, width, height, threshold int) [][]bool {
	return thresholdMask(img, width, height, func(r, g, b int) bool {
		return r <= threshold && g <= threshold && b <= threshold
	})
}

func thresholdMask(img image.Image, width, height int, match func(r, g, b int) bool) [][]bool {
	mask := make([][]bool, height)
	for y := range mask {
		mask[y] = make([]bool, width)
	}
	bounds := img.Bounds()

	switch src := img.(type) {
	case *image.RGBA:
		parallel.Line(height, func(start, end int) {
			for y := start; y < end; y++ {
				i := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
				row := mask[y]
				for x := 0; x < width; x++ {
					if match(int(src.Pix[i]), int(src.Pix[i+1]), int(src.Pix[i+2])) {
						row[x] = true
					}
					i += 4
				}
			}
		})
	case *image.NRGBA:
		parallel.Line(height, func(start, end int) {
			for y := start; y < end; y++ {
				i := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
				row := mask[y]
				for x := 0; x < width; x++ {
					if match(int(src.Pix[i]), int(src.Pix[i+1]), int(src.Pix[i+2])) {
						row[x] = true
					}
					i += 4
				}
			}
		})
	default:
		parallel.Line(height, func(start, end int) {
			for y := start; y < end; y++ {
				row := mask[y]
				for x := 0; x < width; x++ {
					r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
					if match(int(r>>8), int(g>>8), int(b>>8)) {
						row[x] = true
					}
				}
			}
		})
	}

	return mask
}

// Masks returns the bright and dark threshold masks as grayscale images with
// set pixels at 255. Intended for debug dumps; the detection entry points
// rebuild their masks internally and never expose them.
func Masks(img image.Image, cfg Config) (bright, dark *image.Gray) {
	cfg = cfg.withDefaults()
	if img == nil {
		empty := image.Rect(0, 0, 0, 0)
		return image.NewGray(empty), image.NewGray(empty)
	}
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	bright = maskToGray(brightMask(img, width, height, cfg.BrightThreshold), width, height)
	dark = maskToGray(darkMask(img, width, height, cfg.DarkThreshold), width, height)
	return bright, dark
}

func maskToGray(mask [][]bool, width, height int) *image.Gray {
	gray := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mask[y][x] {
				gray.Pix[y*gray.Stride+x] = 255
			}
		}
	}
	return gray
}

// countSet returns the number of set pixels in the mask.
func countSet(mask [][]bool) int {
	count := 0
	for _, row := range mask {
		for _, set := range row {
			if set {
				count++
			}
		}
	}
	return count
}
