package icosampler

import "time"

// Options mirrors the CLI surface.
type Options struct {
	Input      string
	Output     string
	Resolution int
	FaceOffset int
}

// Run loads the panorama, unwraps it and writes the atlas as PNG.
func Run(opts Options) error {
	eq, err := ReadImage(opts.Input)
	if err != nil {
		return err
	}
	DebugLog("input: %s (%dx%d)", opts.Input, eq.W, eq.H)

	s, err := NewSampler(opts.Resolution)
	if err != nil {
		return err
	}

	start := time.Now()
	atlas, err := s.Unwrap(eq, opts.FaceOffset)
	if err != nil {
		return err
	}
	DebugLog("unwrapped %d faces at resolution %d in %s", NumFaces, opts.Resolution, time.Since(start))

	if err := WritePNG(opts.Output, atlas); err != nil {
		return err
	}
	DebugLog("saved atlas: %s (%dx%d)", opts.Output, atlas.W, atlas.H)
	return nil
}
