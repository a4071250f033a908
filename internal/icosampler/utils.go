package icosampler

// wrapIndex wraps i into [0, n). Used for the longitude axis, which is
// periodic.
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// clampIndex clamps i into [0, n). Used for the latitude axis, which
// is not.
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
