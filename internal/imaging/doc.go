// Package imaging provides the image I/O and rendering support around the
// line detector: loading and caching frames, saving debug dumps, drawing
// annotated previews, and sampling colors for threshold calibration.
//
// The detection pipeline itself lives in the detection package and never
// touches a file or draws a pixel; everything here serves the callers that
// feed it frames and present its results.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based with the origin at the
// top-left corner: X increases rightward, Y increases downward.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The remaining operations
// are stateless and can be called concurrently on different images.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as coordinates outside
// image bounds, file I/O failures during loading or saving, and encoding
// failures during preview output. Rendering functions clip out-of-bounds
// pixels instead of failing; a detected line extended past the frame edge is
// routine, not an error.
package imaging
