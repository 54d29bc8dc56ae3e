// Package capture grabs display frames for the detector. It is a thin
// collaborator around the platform screenshot API: no detection logic, no
// retries, just bounds lookup and a frame grab.
package capture

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// Displays returns the number of active displays.
func Displays() int {
	return screenshot.NumActiveDisplays()
}

// Display captures the full frame of display n.
//
// Display indices run from 0 to Displays()-1; 0 is the primary display.
// Capturing fails when no display is active (typically a headless session)
// or when the index is out of range.
func Display(n int) (*image.RGBA, error) {
	count := screenshot.NumActiveDisplays()
	if count == 0 {
		return nil, fmt.Errorf("no active displays found")
	}
	if n < 0 || n >= count {
		return nil, fmt.Errorf("display %d out of range (0-%d)", n, count-1)
	}

	bounds := screenshot.GetDisplayBounds(n)
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("failed to capture display %d: %w", n, err)
	}
	return img, nil
}

// PrimaryDisplay captures the full frame of display 0.
func PrimaryDisplay() (*image.RGBA, error) {
	return Display(0)
}
