package icosampler

import "testing"

func TestWrapIndex(t *testing.T) {
	cases := [][3]int{
		{0, 10, 0}, {9, 10, 9}, {10, 10, 0}, {11, 10, 1},
		{-1, 10, 9}, {-10, 10, 0}, {-11, 10, 9},
	}
	for _, c := range cases {
		if got := wrapIndex(c[0], c[1]); got != c[2] {
			t.Fatalf("wrapIndex(%d, %d) = %d, want %d", c[0], c[1], got, c[2])
		}
	}
}

func TestClampIndex(t *testing.T) {
	cases := [][3]int{
		{0, 10, 0}, {9, 10, 9}, {10, 10, 9}, {42, 10, 9}, {-1, 10, 0},
	}
	for _, c := range cases {
		if got := clampIndex(c[0], c[1]); got != c[2] {
			t.Fatalf("clampIndex(%d, %d) = %d, want %d", c[0], c[1], got, c[2])
		}
	}
}
