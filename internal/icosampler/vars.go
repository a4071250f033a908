package icosampler

var (
	Debug  = false // set to true for verbose debug output
	Serial = false // set to true to sample the 20 faces sequentially
)
