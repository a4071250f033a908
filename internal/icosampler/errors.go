package icosampler

import "fmt"

// ShapeError reports an equirectangular image or target shape whose
// width is not exactly twice its height.
type ShapeError struct {
	H, W int
}

func (e ShapeError) Error() string {
	return fmt.Sprintf("shape [%d %d] doesn't have the 2:1 aspect ratio (h:w)", e.H, e.W)
}

// RangeError reports an Unwrap face offset outside [-2, 2].
type RangeError struct {
	Offset int
}

func (e RangeError) Error() string {
	return fmt.Sprintf("face offset should be in the interval [%d, %d], got %d", MinFaceOffset, MaxFaceOffset, e.Offset)
}
