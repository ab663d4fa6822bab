// Package fallback provides the degraded-mode score estimator used when structured
// extraction of a resume is unavailable.
package fallback

import (
	"strconv"
	"unicode/utf16"
)

const (
	// MinEstimate and MaxEstimate bound every estimate
	MinEstimate = 40
	MaxEstimate = 100

	hashMultiplier = 31
)

// Estimate returns a stable pseudo-score in [40, 100] derived from the file name and size.
// It is not a fitness judgment: callers must label results as estimated.
//
// The hash is a wrapping 32-bit signed rolling hash (h = 31*h + unit) over the UTF-16
// code units of filename followed by the decimal size. The same inputs always give the
// same result across runs and platforms.
func Estimate(filename string, sizeBytes int64) int {
	h := Hash(filename + strconv.FormatInt(sizeBytes, 10))

	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return int(abs%int64(MaxEstimate-MinEstimate+1)) + MinEstimate
}

// Hash is the 32-bit signed rolling hash used by Estimate
func Hash(s string) int32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = hashMultiplier*h + int32(unit)
	}
	return h
}
