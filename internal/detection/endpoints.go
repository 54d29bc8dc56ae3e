package detection

import "math"

// farthestPair returns the two boundary points with maximum Euclidean
// separation, the candidate's long axis. Boundaries with more than four
// points are reduced to their convex hull first; the extremal pair of any
// point set lies on its hull, so the exhaustive pairwise search stays cheap.
//
// Ties keep the first pair found in iteration order. Fewer than two points
// yield the degenerate pair ((0,0), (0,0)); such boundaries are normally
// filtered out well before this stage, but the function must not fail on
// them.
func farthestPair(boundary []Point) (Point, Point) {
	if len(boundary) < 2 {
		return Point{}, Point{}
	}

	p1, p2 := boundary[0], boundary[len(boundary)-1]

	points := boundary
	if len(boundary) > 4 {
		points = convexHull(boundary)
	}

	maxDist := 0.0
	for i, a := range points {
		for _, b := range points[i+1:] {
			if d := distance(a, b); d > maxDist {
				maxDist = d
				p1, p2 = a, b
			}
		}
	}

	return p1, p2
}

// distance returns the Euclidean distance between two points.
func distance(p1, p2 Point) float64 {
	dx := float64(p1.X - p2.X)
	dy := float64(p1.Y - p2.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
