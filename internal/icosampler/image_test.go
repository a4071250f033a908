package icosampler

import (
	"bytes"
	"testing"
)

func TestImageSetAt(t *testing.T) {
	im := NewImage(4, 8)
	c := RGB{1, 2, 3}
	im.Set(7, 3, c)
	if got := im.At(7, 3); got != c {
		t.Fatalf("got %+v", got)
	}
	if got := im.At(0, 0); got != (RGB{}) {
		t.Fatalf("untouched pixel is %+v", got)
	}
}

func TestImageFill(t *testing.T) {
	im := NewImage(3, 6)
	im.Fill(White)
	for i, b := range im.Pix {
		if b != 255 {
			t.Fatalf("byte %d is %d after Fill(White)", i, b)
		}
	}
}

func TestImageCheckShape(t *testing.T) {
	if err := NewImage(10, 20).CheckShape(); err != nil {
		t.Fatalf("2:1 image rejected: %v", err)
	}
	if err := NewImage(10, 21).CheckShape(); err == nil {
		t.Fatal("non-2:1 image accepted")
	}
}

func TestImageNRGBARoundTrip(t *testing.T) {
	im := NewImage(5, 10)
	for i := range im.Pix {
		im.Pix[i] = uint8(i * 7)
	}
	back := FromNRGBA(im.ToNRGBA())
	if back.H != im.H || back.W != im.W {
		t.Fatalf("shape changed: %dx%d", back.H, back.W)
	}
	if !bytes.Equal(back.Pix, im.Pix) {
		t.Fatal("pixels changed through NRGBA round trip")
	}
}
