package detection

import "math"

// terminatesOnDark reports whether the line through p1 and p2 abuts dark
// material at one end at least. Endpoint 1 is probed against the line's
// direction, endpoint 2 along it, so both walks point outward, away from the
// line body. One dark end is enough: the other end may be occluded or run
// off-screen.
//
// A zero direction vector leaves no outward direction to probe and counts as
// terminated.
func terminatesOnDark(dark [][]bool, width, height int, p1, p2 Point, radius int) bool {
	dx := float64(p2.X - p1.X)
	dy := float64(p2.Y - p1.Y)
	norm := math.Sqrt(dx*dx + dy*dy)
	if norm == 0 {
		return true
	}
	dx /= norm
	dy /= norm

	return darkAhead(dark, width, height, p1, -dx, -dy, radius) ||
		darkAhead(dark, width, height, p2, dx, dy, radius)
}

// darkAhead walks outward from the endpoint at integer distances 3 up to but
// excluding radius and reports whether any sample inside the image lands on
// a dark pixel. The walk starts at 3 to step over pixels adjacent to the
// line, which may still be bright from anti-aliasing. Samples outside the
// image are skipped, not failed.
func darkAhead(dark [][]bool, width, height int, p Point, dirX, dirY float64, radius int) bool {
	for dist := 3; dist < radius; dist++ {
		x := int(float64(p.X) + dirX*float64(dist))
		y := int(float64(p.Y) + dirY*float64(dist))
		if x >= 0 && x < width && y >= 0 && y < height && dark[y][x] {
			return true
		}
	}
	return false
}
