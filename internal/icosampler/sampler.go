package icosampler

import (
	"fmt"
	"sync"

	"github.com/golang/geo/r3"
)

// Sampler projects equirectangular panoramas onto the faces of a
// regular icosahedron inscribed in the unit sphere and unwraps them
// into a flat atlas. The geometry and the two canonical triangle masks
// are built once at construction and shared by every call; faces have
// very little distortion compared to a cubemap.
type Sampler struct {
	Resolution int

	vertices   [numVertices]r3.Vector
	edgeLength Real

	maskUp, maskDown []Pix
	gridUp, gridDown []r3.Vector
}

// NewSampler builds a sampler whose faces have the given base-edge
// length in pixels.
func NewSampler(resolution int) (*Sampler, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("resolution must be > 0, got %d", resolution)
	}
	s := &Sampler{Resolution: resolution}
	s.vertices = Vertices(1)
	s.edgeLength = s.vertices[0].Sub(s.vertices[1]).Norm()
	s.maskUp = triangleMask(resolution, true)
	s.maskDown = triangleMask(resolution, false)
	s.gridUp = triangleGrid(resolution, true)
	s.gridDown = triangleGrid(resolution, false)
	return s, nil
}

// Vertex returns icosahedron vertex i (0-11).
func (s *Sampler) Vertex(i int) r3.Vector { return s.vertices[i] }

// EdgeLength returns the shared edge length of the unit icosahedron.
// All edges of a regular icosahedron are equal, so one pair suffices.
func (s *Sampler) EdgeLength() Real { return s.edgeLength }

// faceUp reports whether the face apex points towards the (0,-1,0)
// pole. Read off the pole-axis coordinate of the first two face
// vertices; this matches the band parity only because of the fixed
// vertex order in the face table.
func (s *Sampler) faceUp(face int) bool {
	f := faces[face]
	return s.vertices[f[0]].Y < s.vertices[f[1]].Y
}

// FaceXYZ returns the world-space position of every sample pixel of a
// face, in the mask's row-major order. The canonical flat triangle is
// scaled to the icosahedron edge length, pushed out along its normal
// to the face centroid's distance from the origin, then rotated to the
// face's true position on the sphere.
func (s *Sampler) FaceXYZ(face int) []r3.Vector {
	f := faces[face]
	mean := s.vertices[f[0]].Add(s.vertices[f[1]]).Add(s.vertices[f[2]]).Mul(1.0 / 3.0)
	norm := mean.Norm()
	center := mean.Mul(1 / norm)

	grid := s.gridDown
	if s.faceUp(face) {
		grid = s.gridUp
	}

	phi, theta := XYZToPolar(center)
	M := rotY(phi).Mul(rotX(-theta))

	out := make([]r3.Vector, len(grid))
	for i, p := range grid {
		p = r3.Vector{X: p.X * s.edgeLength, Y: p.Y * s.edgeLength, Z: p.Z * norm}
		out[i] = M.MulVec(p)
	}
	return out
}

// FaceRGB samples one color per sample pixel of a face from the
// panorama, nearest neighbor. Treating each face point as a ray from
// the sphere center gives the gnomonic projection. Sample coordinates
// that fall outside the panorama wrap in x (longitude) and clamp in y
// (latitude).
func (s *Sampler) FaceRGB(face int, eq *Image) ([]RGB, error) {
	if err := eq.CheckShape(); err != nil {
		return nil, err
	}
	xyz := s.FaceXYZ(face)
	colors := make([]RGB, len(xyz))
	for i, p := range xyz {
		phi, theta := XYZToPolar(p.Normalize())
		x, y := polarToEqui(phi, theta, eq.H, eq.W)
		colors[i] = eq.At(wrapIndex(int(x), eq.W), clampIndex(int(y), eq.H))
	}
	return colors, nil
}

// FaceImage reconstructs a single face as a standalone image by
// scattering the sampled colors through the raw triangle mask. Pixels
// outside the triangle stay black.
func (s *Sampler) FaceImage(face int, eq *Image) (*Image, error) {
	colors, err := s.FaceRGB(face, eq)
	if err != nil {
		return nil, err
	}
	mask := s.maskDown
	if s.faceUp(face) {
		mask = s.maskUp
	}
	out := NewImage(triHeight(s.Resolution), s.Resolution)
	for i, p := range mask {
		out.Set(p.X, p.Y, colors[i])
	}
	return out, nil
}

// Unwrap projects the panorama onto all 20 faces and lays them out as
// the standard icosahedral net: three rows of triangles where the
// middle ten faces interleave into one zigzag strip. faceOffset, in
// [-2, 2], rotates which of the five longitudinal columns each band
// member lands in, i.e. which meridian ends up at the atlas's left
// edge.
func (s *Sampler) Unwrap(eq *Image, faceOffset int) (*Image, error) {
	if err := eq.CheckShape(); err != nil {
		return nil, err
	}
	if faceOffset < MinFaceOffset || faceOffset > MaxFaceOffset {
		return nil, RangeError{Offset: faceOffset}
	}

	colors, err := s.sampleFaces(eq)
	if err != nil {
		return nil, err
	}

	res := s.Resolution
	hres := triHeight(res)
	atlas := NewImage(3*hres, int(5.5*Real(res)))
	atlas.Fill(White)

	for num := 0; num < bandSize; num++ {
		loc := (faceOffset + 2 + num) % bandSize
		xCentered := int((Real(loc) + 0.5) * Real(res))
		xAligned := loc * res
		placeFace(atlas, colors[num], s.maskUp, xCentered, 0)
		placeFace(atlas, colors[bandSize+num], s.maskDown, xCentered, hres)
		placeFace(atlas, colors[2*bandSize+num], s.maskUp, xAligned, hres)
		placeFace(atlas, colors[3*bandSize+num], s.maskDown, xAligned, 2*hres)
	}
	return atlas, nil
}

// placeFace scatters one face's colors into the atlas at the given
// origin. Every face writes a disjoint region, so parallel callers
// would not need locks either.
func placeFace(atlas *Image, colors []RGB, mask []Pix, x0, y0 int) {
	for i, p := range mask {
		atlas.Set(x0+p.X, y0+p.Y, colors[i])
	}
}

// sampleFaces gathers the colors of all 20 faces, one goroutine per
// face. Each goroutine writes only its own slot.
func (s *Sampler) sampleFaces(eq *Image) ([NumFaces][]RGB, error) {
	var colors [NumFaces][]RGB
	if Serial {
		for i := 0; i < NumFaces; i++ {
			c, err := s.FaceRGB(i, eq)
			if err != nil {
				return colors, err
			}
			colors[i] = c
		}
		return colors, nil
	}

	var wg sync.WaitGroup
	var errs [NumFaces]error
	for i := 0; i < NumFaces; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			colors[i], errs[i] = s.FaceRGB(i, eq)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return colors, err
		}
	}
	return colors, nil
}
