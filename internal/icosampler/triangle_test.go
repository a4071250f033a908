package icosampler

import (
	"math"
	"testing"
)

func TestMaskArea(t *testing.T) {
	for _, res := range []int{10, 50, 101} {
		for _, up := range []bool{true, false} {
			mask := triangleMask(res, up)
			if len(mask) == 0 {
				t.Fatalf("res %d up=%v: empty mask", res, up)
			}
			area := math.Sqrt(3) / 4 * Real(res) * Real(res)
			if diff := math.Abs(Real(len(mask)) - area); diff > 3*Real(res)+6 {
				t.Fatalf("res %d up=%v: %d pixels vs area %.1f", res, up, len(mask), area)
			}
		}
	}
}

func TestMaskRowMajorWithinCanvas(t *testing.T) {
	res := 24
	h := triHeight(res)
	for _, up := range []bool{true, false} {
		mask := triangleMask(res, up)
		prev := Pix{-1, 0}
		for _, p := range mask {
			if p.X < 0 || p.X >= res || p.Y < 0 || p.Y >= h {
				t.Fatalf("up=%v: pixel %+v outside %dx%d canvas", up, p, res, h)
			}
			if p.Y < prev.Y || (p.Y == prev.Y && p.X <= prev.X) {
				t.Fatalf("up=%v: scan order broken at %+v after %+v", up, p, prev)
			}
			prev = p
		}
	}
}

func TestMasksAreVerticalMirrors(t *testing.T) {
	res := 30
	h := triHeight(res)
	up := triangleMask(res, true)
	down := triangleMask(res, false)
	if len(up) != len(down) {
		t.Fatalf("mask sizes differ: %d vs %d", len(up), len(down))
	}
	set := make(map[Pix]bool, len(down))
	for _, p := range down {
		set[p] = true
	}
	for _, p := range up {
		if !set[Pix{p.X, h - 1 - p.Y}] {
			t.Fatalf("up pixel %+v has no mirrored down pixel", p)
		}
	}
}

func TestGridCenteredNormalizedHomogeneous(t *testing.T) {
	res := 16
	for _, up := range []bool{true, false} {
		mask := triangleMask(res, up)
		grid := triangleGrid(res, up)
		if len(grid) != len(mask) {
			t.Fatalf("up=%v: grid/mask size mismatch %d vs %d", up, len(grid), len(mask))
		}
		for i, p := range grid {
			if p.Z != 1 {
				t.Fatalf("up=%v: grid[%d].Z = %g", up, i, p.Z)
			}
			if math.Abs(p.X) > 0.51 || math.Abs(p.Y) > 0.67 {
				t.Fatalf("up=%v: grid[%d] out of local frame: %+v", up, i, p)
			}
		}
	}
}

func TestTriHeight(t *testing.T) {
	if h := triHeight(10); h != 8 {
		t.Fatalf("triHeight(10) = %d", h)
	}
	if h := triHeight(600); h != 519 {
		t.Fatalf("triHeight(600) = %d", h)
	}
}
