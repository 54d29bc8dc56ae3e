package detection

import "math"

// minAreaRect returns the side lengths of the smallest-area rotated
// rectangle enclosing the points, as (longer side, shorter side). The
// optimal rectangle always has one side collinear with a convex hull edge,
// so only hull edge orientations are tried.
//
// Degenerate inputs degrade instead of failing: collinear points yield a
// zero short side, fewer than two distinct points yield (0, 0).
func minAreaRect(points []Point) (length, thickness float64) {
	hull := convexHull(points)
	if len(hull) < 2 {
		return 0, 0
	}
	if len(hull) == 2 {
		return distance(hull[0], hull[1]), 0
	}

	bestArea := math.MaxFloat64
	for i := range hull {
		j := (i + 1) % len(hull)
		ex := float64(hull[j].X - hull[i].X)
		ey := float64(hull[j].Y - hull[i].Y)
		norm := math.Sqrt(ex*ex + ey*ey)
		if norm == 0 {
			continue
		}
		ex /= norm
		ey /= norm

		// Extent of the hull along the edge direction and its normal.
		minU, maxU := math.MaxFloat64, -math.MaxFloat64
		minV, maxV := math.MaxFloat64, -math.MaxFloat64
		for _, p := range hull {
			u := ex*float64(p.X) + ey*float64(p.Y)
			v := ex*float64(p.Y) - ey*float64(p.X)
			if u < minU {
				minU = u
			}
			if u > maxU {
				maxU = u
			}
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}

		w := maxU - minU
		h := maxV - minV
		if w*h < bestArea {
			bestArea = w * h
			length, thickness = w, h
		}
	}

	if thickness > length {
		length, thickness = thickness, length
	}
	return length, thickness
}

// boundingDims returns the axis-aligned bounding box extents of the points
// as (longer side, shorter side), counting pixels inclusively. Used instead
// of minAreaRect when a boundary has too few points for a reliable rotated
// fit.
func boundingDims(points []Point) (length, thickness float64) {
	if len(points) == 0 {
		return 0, 0
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	w := float64(maxX - minX + 1)
	h := float64(maxY - minY + 1)
	if h > w {
		return h, w
	}
	return w, h
}
