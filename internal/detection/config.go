package detection

// Config holds the tunable parameters of the detection pipeline.
//
// The zero value is usable: every entry point replaces non-positive fields
// with the matching DefaultConfig value, so callers can override a subset of
// fields and leave the rest at zero.
type Config struct {
	// BrightThreshold is the minimum channel intensity for a pixel to count
	// as part of the line. A pixel is bright only when R, G and B all reach
	// this value.
	BrightThreshold int `json:"bright_threshold"`

	// DarkThreshold is the maximum channel intensity for a pixel to count as
	// bounding dark material. A pixel is dark only when R, G and B all stay
	// at or below this value.
	DarkThreshold int `json:"dark_threshold"`

	// MinLength is the minimum long side of a candidate's minimum-area
	// rectangle, in pixels.
	MinLength float64 `json:"min_length"`

	// MinThickness and MaxThickness bound the short side of the rectangle.
	MinThickness float64 `json:"min_thickness"`
	MaxThickness float64 `json:"max_thickness"`

	// MinAspectRatio is the minimum length/thickness ratio. Ratios are
	// computed against a thickness floor of 1 to avoid division blowups.
	MinAspectRatio float64 `json:"min_aspect_ratio"`

	// TerminationRadius is the exclusive upper bound, in pixels, of the
	// outward walk that looks for dark material past each endpoint.
	TerminationRadius int `json:"termination_check_radius"`

	// MinArea is the minimum polygon area of a candidate's boundary.
	MinArea float64 `json:"min_area"`
}

// DefaultConfig returns the parameters the detector was calibrated with.
func DefaultConfig() Config {
	return Config{
		BrightThreshold:   240,
		DarkThreshold:     40,
		MinLength:         30,
		MinThickness:      2,
		MaxThickness:      15,
		MinAspectRatio:    3,
		TerminationRadius: 20,
		MinArea:           50,
	}
}

// withDefaults fills non-positive fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.BrightThreshold <= 0 {
		c.BrightThreshold = def.BrightThreshold
	}
	if c.DarkThreshold <= 0 {
		c.DarkThreshold = def.DarkThreshold
	}
	if c.MinLength <= 0 {
		c.MinLength = def.MinLength
	}
	if c.MinThickness <= 0 {
		c.MinThickness = def.MinThickness
	}
	if c.MaxThickness <= 0 {
		c.MaxThickness = def.MaxThickness
	}
	if c.MinAspectRatio <= 0 {
		c.MinAspectRatio = def.MinAspectRatio
	}
	if c.TerminationRadius <= 0 {
		c.TerminationRadius = def.TerminationRadius
	}
	if c.MinArea <= 0 {
		c.MinArea = def.MinArea
	}
	return c
}
