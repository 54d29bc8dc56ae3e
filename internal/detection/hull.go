package detection

import "sort"

// convexHull computes the convex hull of the points with a Graham scan,
// returned in counter-clockwise order starting from the lowest point.
// Collinear points along hull edges are dropped. Sets of three or fewer
// points are returned as-is.
func convexHull(points []Point) []Point {
	n := len(points)
	if n <= 3 {
		return points
	}

	pts := make([]Point, n)
	copy(pts, points)

	// Pivot: lowest Y, then lowest X.
	lowest := 0
	for i := 1; i < n; i++ {
		if pts[i].Y < pts[lowest].Y ||
			(pts[i].Y == pts[lowest].Y && pts[i].X < pts[lowest].X) {
			lowest = i
		}
	}
	pts[0], pts[lowest] = pts[lowest], pts[0]
	p0 := pts[0]

	// Sort the rest by polar angle around the pivot; collinear points by
	// distance so the scan meets them near-to-far.
	sort.Slice(pts[1:], func(i, j int) bool {
		a, b := pts[i+1], pts[j+1]
		orientation := cross(p0, a, b)
		if orientation == 0 {
			return squaredDistance(p0, a) < squaredDistance(p0, b)
		}
		return orientation > 0
	})

	hull := make([]Point, 0, n)
	hull = append(hull, pts[0], pts[1])
	for i := 2; i < n; i++ {
		for len(hull) > 1 && cross(hull[len(hull)-2], hull[len(hull)-1], pts[i]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pts[i])
	}

	return hull
}

// cross returns the cross product of (p1-p0) and (p2-p0): positive for a
// counter-clockwise turn, negative for clockwise, zero when collinear.
func cross(p0, p1, p2 Point) int {
	return (p1.X-p0.X)*(p2.Y-p0.Y) - (p2.X-p0.X)*(p1.Y-p0.Y)
}

func squaredDistance(p1, p2 Point) int {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return dx*dx + dy*dy
}
