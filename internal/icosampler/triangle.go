package icosampler

import (
	"math"

	"github.com/golang/geo/r3"
)

// Pix is an integer pixel coordinate inside a triangle mask.
type Pix struct {
	X, Y int
}

// triHeight returns the canvas height for a face of the given base
// resolution (equilateral triangle height, truncated to the pixel
// grid).
func triHeight(resolution int) int {
	return int(math.Sqrt(3) / 2 * Real(resolution))
}

// triangleMask returns the pixels covered by an equilateral triangle
// drawn on a triHeight(resolution)×resolution canvas, boundary
// included, in row-major scan order. Up triangles have the base on the
// bottom canvas edge and the apex on the top, down triangles the
// opposite.
func triangleMask(resolution int, up bool) []Pix {
	h := triHeight(resolution)
	w := resolution
	var a, b, c Pix
	if up {
		a, b, c = Pix{0, h - 1}, Pix{w - 1, h - 1}, Pix{w / 2, 0}
	} else {
		a, b, c = Pix{w - 1, 0}, Pix{0, 0}, Pix{w / 2, h - 1}
	}

	mask := make([]Pix, 0, w*h/2+w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if inTriangle(x, y, a, b, c) {
				mask = append(mask, Pix{x, y})
			}
		}
	}
	return mask
}

// edge is the integer cross product of (q-p) with (x,y)-p; its sign
// tells which side of the directed edge p→q the pixel lies on.
func edge(x, y int, p, q Pix) int {
	return (q.X-p.X)*(y-p.Y) - (q.Y-p.Y)*(x-p.X)
}

// inTriangle accepts pixels on the inner side of, or exactly on, all
// three edges, regardless of the winding of a, b, c.
func inTriangle(x, y int, a, b, c Pix) bool {
	e0 := edge(x, y, a, b)
	e1 := edge(x, y, b, c)
	e2 := edge(x, y, c, a)
	if e0 >= 0 && e1 >= 0 && e2 >= 0 {
		return true
	}
	return e0 <= 0 && e1 <= 0 && e2 <= 0
}

// triangleGrid is triangleMask recentered on the triangle centroid,
// normalized by the base resolution and lifted to homogeneous
// coordinates (z=1): the canonical flat face used for projection onto
// the sphere. Order matches triangleMask pixel for pixel.
func triangleGrid(resolution int, up bool) []r3.Vector {
	h := triHeight(resolution)
	shiftX := resolution / 2
	shiftY := h / 3
	if up {
		shiftY = 2 * h / 3
	}

	mask := triangleMask(resolution, up)
	grid := make([]r3.Vector, len(mask))
	inv := 1.0 / Real(resolution)
	for i, p := range mask {
		grid[i] = r3.Vector{
			X: Real(p.X-shiftX) * inv,
			Y: Real(p.Y-shiftY) * inv,
			Z: 1,
		}
	}
	return grid
}
