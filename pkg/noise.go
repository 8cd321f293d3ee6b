package pulsesim

import "math/rand"

// Noise returns length independent draws uniform over [-amplitude, amplitude).
// A zero amplitude yields an all-zero sequence, the degenerate range is not
// an error. The caller owns the random source; workers running in parallel
// must each bring their own.
func Noise(rng *rand.Rand, length int, amplitude int) []int32 {
	noise := make([]int32, length)
	if amplitude == 0 {
		return noise
	}
	span := int64(2 * amplitude)
	for i := range noise {
		noise[i] = int32(rng.Int63n(span) - int64(amplitude))
	}
	return noise
}
