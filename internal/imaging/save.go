package imaging

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// Open decodes the image at path without going through a cache. It returns
// the decoded image and the format name reported by the decoder. One-shot
// tools that read a single frame and exit have no use for caching; servers
// should prefer ImageCache.
func Open(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// Save writes the image to path with the format chosen by the file extension
// (.png for mask dumps and previews, .jpg and .gif also supported).
func Save(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// Clone returns the frame as a mutable NRGBA copy, the canvas every
// annotation in this package draws on.
func Clone(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}
