package icosampler

type Real = float64

// Channel indices for readability.
const (
	ChR = 0
	ChG = 1
	ChB = 2

	// NumFaces is the face count of the level-0 icosahedron.
	NumFaces    = 20
	numVertices = 12
	bandSize    = 5 // faces per horizontal band of the net

	// DefaultResolution is the face base-edge length in pixels used by the CLI.
	DefaultResolution = 600

	// Unwrap accepts face offsets in [MinFaceOffset, MaxFaceOffset].
	MinFaceOffset = -2
	MaxFaceOffset = 2
)
