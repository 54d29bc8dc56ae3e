package detection

import "math"

// findBoundaries returns the outer boundary of every connected bright region,
// ordered by each region's first pixel in scan order (top to bottom, left to
// right). Regions whose boundary lies entirely inside another region's outer
// boundary are dropped, so only outermost regions are reported. That order is
// what makes every downstream tie-break deterministic.
func findBoundaries(mask [][]bool, width, height int) [][]Point {
	visited := make([][]bool, height)
	for y := 0; y < height; y++ {
		visited[y] = make([]bool, width)
	}

	boundaries := make([][]Point, 0)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask[y][x] || visited[y][x] {
				continue
			}
			floodFill(mask, visited, x, y, width, height)
			boundaries = append(boundaries, traceBoundary(mask, width, height, Point{X: x, Y: y}))
		}
	}

	return dropNested(boundaries)
}

// floodFill marks every pixel of the 8-connected region containing the start
// pixel as visited.
//
// Uses a stack-based approach (not recursive) to avoid stack overflow on
// large regions.
func floodFill(mask, visited [][]bool, startX, startY, width, height int) {
	stack := []Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y][p.X] || !mask[p.Y][p.X] {
			continue
		}

		visited[p.Y][p.X] = true

		// 8-connected neighbors
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
}

// traceBoundary follows the outer edge of the region containing start, which
// must be the region's first pixel in scan order, using Moore neighbor
// tracing. Collinear runs are reduced to their endpoints, so an axis-aligned
// rectangle comes back as its four corners. A one-pixel region yields a
// single-point boundary.
func traceBoundary(mask [][]bool, width, height int, start Point) []Point {
	// Clockwise 8-neighborhood, east first.
	dirX := [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	dirY := [8]int{0, 1, 1, 1, 0, -1, -1, -1}

	set := func(x, y int) bool {
		return x >= 0 && x < width && y >= 0 && y < height && mask[y][x]
	}
	dirIndex := func(from, to Point) int {
		for i := 0; i < 8; i++ {
			if from.X+dirX[i] == to.X && from.Y+dirY[i] == to.Y {
				return i
			}
		}
		return 0
	}

	boundary := []Point{start}
	appendReduced := func(p Point) {
		// Drop the middle point of a straight continuing run. Direction
		// reversals stay so that retraced spurs keep their far endpoint.
		if n := len(boundary); n >= 2 {
			a, b := boundary[n-2], boundary[n-1]
			v1x, v1y := b.X-a.X, b.Y-a.Y
			v2x, v2y := p.X-b.X, p.Y-b.Y
			if v1x*v2y-v1y*v2x == 0 && v1x*v2x+v1y*v2y > 0 {
				boundary = boundary[:n-1]
			}
		}
		boundary = append(boundary, p)
	}

	cur := start
	// The scan that discovered start came from the west.
	back := Point{X: start.X - 1, Y: start.Y}
	var first Point

	maxSteps := 4 * (width*height + 1)
	for step := 0; step < maxSteps; step++ {
		scan := dirIndex(cur, back)
		next := Point{}
		prev := back
		found := false
		for k := 1; k <= 8; k++ {
			i := (scan + k) % 8
			t := Point{X: cur.X + dirX[i], Y: cur.Y + dirY[i]}
			if set(t.X, t.Y) {
				next = t
				found = true
				break
			}
			prev = t
		}
		if !found {
			return boundary // isolated pixel
		}

		if step == 0 {
			first = next
		} else if cur == start && next == first {
			// Back at the start about to repeat the first move: the
			// boundary is closed.
			break
		}

		appendReduced(next)
		back = prev
		cur = next
	}

	if len(boundary) > 1 && boundary[len(boundary)-1] == start {
		boundary = boundary[:len(boundary)-1]
	}
	return boundary
}

// dropNested removes boundaries whose starting pixel lies inside another
// boundary. A bright region can only sit inside another bright region across
// a gap of unset pixels, which is exactly the nesting the extractor must not
// report.
func dropNested(boundaries [][]Point) [][]Point {
	if len(boundaries) < 2 {
		return boundaries
	}

	outer := make([][]Point, 0, len(boundaries))
	for i, b := range boundaries {
		nested := false
		for j, other := range boundaries {
			if i == j {
				continue
			}
			if insideBoundary(b[0], other) {
				nested = true
				break
			}
		}
		if !nested {
			outer = append(outer, b)
		}
	}
	return outer
}

// insideBoundary reports whether p lies strictly inside the closed polygon
// formed by the boundary, by even-odd ray casting.
func insideBoundary(p Point, boundary []Point) bool {
	if len(boundary) < 3 {
		return false
	}
	inside := false
	n := len(boundary)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := boundary[i], boundary[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := float64(a.X) + float64(p.Y-a.Y)/float64(b.Y-a.Y)*float64(b.X-a.X)
			if float64(p.X) < x {
				inside = !inside
			}
		}
	}
	return inside
}

// polygonArea computes the enclosed area of the boundary polygon with the
// shoelace formula. Boundaries of fewer than three points enclose nothing.
func polygonArea(boundary []Point) float64 {
	n := len(boundary)
	if n < 3 {
		return 0
	}
	sum := 0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += boundary[i].X*boundary[j].Y - boundary[j].X*boundary[i].Y
	}
	return math.Abs(float64(sum)) / 2
}
