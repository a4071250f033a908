package icosampler

import "image"

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// White is the atlas background color.
var White = RGB{255, 255, 255}

// Image is a dense H×W×3 byte buffer, row-major, tightly packed.
type Image struct {
	H, W int
	Pix  []uint8 // flat: (y*W + x)*3 + c
}

// NewImage allocates a zeroed (black) image.
func NewImage(h, w int) *Image {
	return &Image{H: h, W: w, Pix: make([]uint8, h*w*3)}
}

func (im *Image) idx(x, y int) int { return (y*im.W + x) * 3 }

// At returns the color at pixel (x, y). No bounds check, like the rest
// of the hot path.
func (im *Image) At(x, y int) RGB {
	i := im.idx(x, y)
	return RGB{im.Pix[i+ChR], im.Pix[i+ChG], im.Pix[i+ChB]}
}

func (im *Image) Set(x, y int, c RGB) {
	i := im.idx(x, y)
	im.Pix[i+ChR], im.Pix[i+ChG], im.Pix[i+ChB] = c.R, c.G, c.B
}

// Fill paints every pixel with c.
func (im *Image) Fill(c RGB) {
	for i := 0; i < len(im.Pix); i += 3 {
		im.Pix[i+ChR], im.Pix[i+ChG], im.Pix[i+ChB] = c.R, c.G, c.B
	}
}

// CheckShape fails with a ShapeError unless the image is a 2:1
// equirectangular panorama.
func (im *Image) CheckShape() error { return CheckShape(im.H, im.W) }

// ToNRGBA copies the buffer into a stdlib image for encoding.
func (im *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, im.W, im.H))
	for y := 0; y < im.H; y++ {
		src := y * im.W * 3
		dst := y * out.Stride
		for x := 0; x < im.W; x++ {
			out.Pix[dst+0] = im.Pix[src+ChR]
			out.Pix[dst+1] = im.Pix[src+ChG]
			out.Pix[dst+2] = im.Pix[src+ChB]
			out.Pix[dst+3] = 0xFF
			src += 3
			dst += 4
		}
	}
	return out
}

// FromNRGBA copies a stdlib image into the flat RGB layout, dropping
// alpha.
func FromNRGBA(src *image.NRGBA) *Image {
	b := src.Bounds()
	im := NewImage(b.Dy(), b.Dx())
	for y := 0; y < im.H; y++ {
		s := y * src.Stride
		d := y * im.W * 3
		for x := 0; x < im.W; x++ {
			im.Pix[d+ChR] = src.Pix[s+0]
			im.Pix[d+ChG] = src.Pix[s+1]
			im.Pix[d+ChB] = src.Pix[s+2]
			s += 4
			d += 3
		}
	}
	return im
}
