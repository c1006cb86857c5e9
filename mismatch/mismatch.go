// Package mismatch decides whether two equal-length sequences differ at no more than one position.
package mismatch

import (
	"bytes"
	"log"
)

// AtMostOne returns true if a and b differ in at most one position. The sequences are repeatedly
// bisected and only the half that is not identical is searched further, so a pair with two or more
// mismatches is rejected as soon as both halves of a split differ.
// a and b must be the same length and non-empty.
func AtMostOne(a, b []byte) bool {
	if len(a) != len(b) || len(a) == 0 {
		log.Panicf("ERROR: mismatch test requires equal length, non-empty sequences. Got lengths %d and %d", len(a), len(b))
	}
	return bisect(a, b)
}

func bisect(a, b []byte) bool {
	if len(a) == 1 {
		// every other position already matched
		return true
	}
	half := len(a) / 2
	switch {
	case bytes.Equal(a[:half], b[:half]):
		return bisect(a[half:], b[half:])
	case bytes.Equal(a[half:], b[half:]):
		return bisect(a[:half], b[:half])
	default:
		return false
	}
}
