package icosampler

import (
	"math"

	"github.com/golang/geo/r3"
)

// faces is the fixed level-0 topology: 4 bands of 5 faces. Band one
// touches the north pole, band four the south pole, bands two and
// three form the equatorial zigzag. The vertex order inside each
// triple is load-bearing: FaceXYZ reads the up/down orientation from
// the first two entries.
var faces = [NumFaces][3]int{
	{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 5, 1}, // top    /\
	{6, 1, 2}, {7, 2, 3}, {8, 3, 4}, {9, 4, 5}, {10, 5, 1}, // second \/
	{1, 10, 6}, {2, 6, 7}, {3, 7, 8}, {4, 8, 9}, {5, 9, 10}, // third  /\
	{11, 10, 6}, {11, 6, 7}, {11, 7, 8}, {11, 8, 9}, {11, 9, 10}, // forth  \/
}

// Vertices returns the 12 vertices of a pole-aligned regular
// icosahedron inscribed in a sphere of the given radius. Vertex 0 is
// the pole at (0,-r,0), vertex 11 the pole at (0,r,0); vertices 1..10
// form two rings at latitude ±arctan(1/2), offset 36° in longitude
// from each other.
func Vertices(radius Real) [numVertices]r3.Vector {
	height := math.Atan(1.0 / 2.0) // 26.565°
	widthOffset := 36 * math.Pi / 180
	unit := r3.Vector{Z: 1}

	var vertices [numVertices]r3.Vector
	vertices[0] = r3.Vector{Y: -1}
	for i := 0; i < 10; i++ {
		band := i / 5 // 0 = ring next to vertex 0, 1 = ring next to vertex 11
		offset := Real(2*(i%5) + band)
		sign := Real(1 - 2*band)
		M := rotY(offset * widthOffset).Mul(rotX(sign * height))
		vertices[i+1] = M.MulVec(unit)
	}
	vertices[11] = r3.Vector{Y: 1}

	for i := range vertices {
		vertices[i] = vertices[i].Normalize().Mul(radius)
	}
	return vertices
}
