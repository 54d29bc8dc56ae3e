// Package detection locates a single white, black-bounded line segment in a
// raster image and reports its endpoints, length, and thickness.
//
// The detector was built for the aiming line in 8-ball pool scenes: a thin
// bright stripe laid over dark table cloth. It knows nothing about pool
// beyond that; any image with a white line of bounded thickness terminating
// against dark material can be analyzed.
//
// # Pipeline
//
// Every entry point runs the same stage sequence:
//
//  1. Mask construction: two binary masks, one for pixels whose R, G and B
//     channels all reach the bright threshold, one for pixels where all three
//     stay at or below the dark threshold.
//  2. Shape extraction: outer boundaries of connected bright regions, with
//     the polygon area and the minimum-area rotated rectangle of each.
//  3. Shape filtering: area, thickness, length, and aspect-ratio limits
//     reduce the regions to line-like candidates.
//  4. Endpoint extraction: the two most distant boundary points, searched
//     over the convex hull, become the candidate's endpoints.
//  5. Termination validation: a short walk outward from each endpoint must
//     find dark pixels at one end at least.
//  6. Selection: the longest surviving candidate wins.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// Results are reported in the source image's own coordinate space, so
// sub-images keep their offsets.
//
// # Purity
//
// The pipeline is a pure function of (image, Config): no I/O, no retained
// state, no errors. Malformed input such as a nil or zero-size image folds
// into the "no line found" outcome instead of failing. Calling any entry
// point twice with identical input yields identical output.
//
// # Performance Considerations
//
// Mask construction is the only stage that touches every pixel; its rows are
// processed in parallel. The dark mask is built lazily, only when the first
// candidate reaches termination validation. The farthest-pair search is
// quadratic over hull points, which the convex-hull reduction keeps small.
//
// # Limitations
//
// Thresholds are global per channel; lines rendered with heavy anti-aliasing
// or over bright backgrounds may fall below the bright threshold. Overlapping
// lines merge into one connected region and are reported as a single
// candidate.
package detection
