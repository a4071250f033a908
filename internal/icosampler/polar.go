package icosampler

import (
	"math"

	"github.com/golang/geo/r3"
)

// XYZToPolar converts a direction on the unit sphere to polar angles:
// phi = atan2(x, z) (longitude), theta = asin(y) (latitude).
// No length check is performed; callers must pass unit vectors or the
// result is garbage.
func XYZToPolar(v r3.Vector) (phi, theta Real) {
	phi = math.Atan2(v.X, v.Z)
	theta = math.Asin(v.Y)
	return
}

// PolarToEqui converts polar angles (radians) to pixel coordinates on
// an equirectangular image of the given height and width. Fails with a
// ShapeError unless w == 2h.
func PolarToEqui(phi, theta Real, h, w int) (x, y Real, err error) {
	if err = CheckShape(h, w); err != nil {
		return
	}
	x, y = polarToEqui(phi, theta, h, w)
	return
}

func polarToEqui(phi, theta Real, h, w int) (x, y Real) {
	x = (phi/(2*math.Pi)+0.5)*Real(w) - 0.5
	y = (theta/math.Pi+0.5)*Real(h) - 0.5
	return
}

// EquiToPolar is the exact inverse of PolarToEqui. The sampling
// pipeline never calls it; it exists for symmetry and for external
// callers.
func EquiToPolar(x, y Real, h, w int) (phi, theta Real) {
	phi = ((x+0.5)/Real(w) - 0.5) * 2 * math.Pi
	theta = ((y+0.5)/Real(h) - 0.5) * math.Pi
	return
}

// CheckShape fails with a ShapeError unless the h×w shape is a 2:1
// equirectangular panorama.
func CheckShape(h, w int) error {
	if 2*h != w {
		return ShapeError{H: h, W: w}
	}
	return nil
}
