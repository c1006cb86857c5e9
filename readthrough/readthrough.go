// Package readthrough locates the reverse-complemented barcode of read 1 inside read 2 and
// reports where read 2 should be cut to remove it.
//
// The barcode reverse complement is searched as two halves, bait1 and bait2. An occurrence is
// anchored on an exact copy of one half and the other half may carry a single mismatch.
// Occurrences anchored on bait1 are searched first (Pass A); an exact full-length occurrence found
// there is final. Occurrences anchored on bait2 (Pass B) are only searched to the left of the
// one-mismatch candidate from Pass A, and the leftmost candidate of the two passes is reported.
package readthrough

import (
	"bytes"
	"log"

	"github.com/dasnellings/bcTrim/mismatch"
)

// Kind classifies the occurrence that determined a cut.
type Kind byte

const (
	NoMatch Kind = iota
	ExactMatch
	OneMismatchMatch
)

func (k Kind) String() string {
	switch k {
	case NoMatch:
		return "NoMatch"
	case ExactMatch:
		return "ExactMatch"
	case OneMismatchMatch:
		return "OneMismatchMatch"
	default:
		return "Unknown"
	}
}

// Match is the result of a search. Cut is the 0-based offset in read 2 where the barcode
// occurrence begins, i.e. the number of bases to keep. Cut is meaningless for NoMatch.
type Match struct {
	Kind Kind
	Cut  int
}

// Found returns true if the match calls for a cut.
func (m Match) Found() bool {
	return m.Kind != NoMatch
}

// FindCut searches read2 for bait1 followed by bait2 with at most one mismatch and returns
// the leftmost occurrence. bait1 and bait2 must be the same, non-zero length.
func FindCut(bait1, bait2, read2 []byte) Match {
	if len(bait1) != len(bait2) || len(bait1) == 0 {
		log.Panicf("ERROR: baits must be equal length and non-empty. Got lengths %d and %d", len(bait1), len(bait2))
	}
	first := anchorFirst(bait1, bait2, read2)
	if first.Kind == ExactMatch {
		return first
	}

	bound := len(read2)
	if first.Found() {
		bound = first.Cut
	}
	second := anchorSecond(bait1, bait2, read2[:bound])
	return leftmost(first, second)
}

// anchorFirst scans exact occurrences of bait1 from the 5' end and tests the bases that follow
// each one against bait2. It stops at the first exact or one-mismatch occurrence.
func anchorFirst(bait1, bait2, read2 []byte) Match {
	k := len(bait1)
	var tail []byte
	for p := indexFrom(read2, bait1, 0); p != -1; p = indexFrom(read2, bait1, p+1) {
		if p+2*k > len(read2) {
			// no room for bait2, and every later occurrence has less
			break
		}
		tail = read2[p+k : p+2*k]
		if bytes.Equal(tail, bait2) {
			return Match{Kind: ExactMatch, Cut: p}
		}
		if mismatch.AtMostOne(bait2, tail) {
			return Match{Kind: OneMismatchMatch, Cut: p}
		}
	}
	return Match{}
}

// anchorSecond scans exact occurrences of bait2 that lie entirely within window and tests the
// bases preceding each one against bait1.
func anchorSecond(bait1, bait2, window []byte) Match {
	k := len(bait1)
	for q := indexFrom(window, bait2, 0); q != -1; q = indexFrom(window, bait2, q+1) {
		if q < k {
			continue
		}
		if mismatch.AtMostOne(bait1, window[q-k:q]) {
			return Match{Kind: OneMismatchMatch, Cut: q - k}
		}
	}
	return Match{}
}

// leftmost combines the results of the two passes. An exact match is final, otherwise the
// candidate closest to the 5' end wins.
func leftmost(a, b Match) Match {
	switch {
	case a.Kind == ExactMatch:
		return a
	case !a.Found():
		return b
	case !b.Found():
		return a
	case b.Cut < a.Cut:
		return b
	default:
		return a
	}
}

// indexFrom returns the offset of the first occurrence of sep in s starting at or after from,
// or -1.
func indexFrom(s, sep []byte, from int) int {
	if from > len(s) {
		return -1
	}
	i := bytes.Index(s[from:], sep)
	if i == -1 {
		return -1
	}
	return from + i
}
