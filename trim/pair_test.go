package trim

import (
	"strings"
	"testing"

	"github.com/dasnellings/bcTrim/barcode"
	"github.com/stretchr/testify/assert"
)

const (
	testBarcode    = "AACCGGTTACGTTGCA"
	testRevComp    = "TGCAACGTAACCGGTT"
	testPalindrome = "ACGTACGTACGTACGT"
)

var testWhitelist = barcode.Whitelist{testBarcode: true, testPalindrome: true}

func qual(n int) string {
	return strings.Repeat("F", n)
}

func TestTrimmerPair(t *testing.T) {
	tests := []struct {
		name    string
		fwd     string
		rev     string
		seq     string
		outcome Outcome
	}{
		{
			name:    "ExactAtFive",
			fwd:     testBarcode + "GATTACA",
			rev:     "GGGGG" + testRevComp + "CCCCCCCCCC",
			seq:     "GGGGG",
			outcome: Outcome{Class: ZeroMismatchTrim, Before: 31, After: 5},
		},
		{
			name:    "PalindromeAtFive",
			fwd:     testPalindrome + "GATTACA",
			rev:     "TTTTT" + testPalindrome + "TTTT",
			seq:     "TTTTT",
			outcome: Outcome{Class: ZeroMismatchTrim, Before: 25, After: 5},
		},
		{
			name:    "OneMismatch",
			fwd:     testBarcode,
			rev:     "GGG" + "TGCAACGT" + "AACCGGTA" + "CCCC",
			seq:     "GGG",
			outcome: Outcome{Class: OneMismatchTrim, Before: 23, After: 3},
		},
		{
			name:    "WholeReadIsBarcode",
			fwd:     testBarcode + "GATTACA",
			rev:     testRevComp + "CCCC",
			seq:     SentinelBase,
			outcome: Outcome{Class: ZeroMismatchTrim, Before: 20, After: 0, Sentinel: true},
		},
		{
			name:    "NotInWhitelist",
			fwd:     "AACCGGTTACGTTGCT" + "GATTACA",
			rev:     "GGGGG" + testRevComp + "CCCCCCCCCC",
			seq:     "GGGGG" + testRevComp + "CCCCCCCCCC",
			outcome: Outcome{Class: NoTrim, Before: 31, After: 31},
		},
		{
			name:    "ShortRead1",
			fwd:     testBarcode[:15],
			rev:     "GGGGG" + testRevComp + "CCCCCCCCCC",
			seq:     "GGGGG" + testRevComp + "CCCCCCCCCC",
			outcome: Outcome{Class: NoTrim, Before: 31, After: 31},
		},
		{
			name:    "ShortRead2",
			fwd:     testBarcode,
			rev:     testRevComp[:15],
			seq:     testRevComp[:15],
			outcome: Outcome{Class: NoTrim, Before: 15, After: 15},
		},
		{
			name:    "NoReadThrough",
			fwd:     testBarcode,
			rev:     "GATTACAGATTACAGATTACA",
			seq:     "GATTACAGATTACAGATTACA",
			outcome: Outcome{Class: NoTrim, Before: 21, After: 21},
		},
	}

	trimmer := Trimmer{Whitelist: testWhitelist}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rev := Record{Header: "@read", Seq: tc.rev, Plus: "+", Qual: qual(len(tc.rev))}
			outcome := trimmer.Pair(tc.fwd, &rev)
			assert.Equal(t, tc.outcome, outcome)
			assert.Equal(t, tc.seq, rev.Seq)
			if outcome.Sentinel {
				assert.Equal(t, SentinelQual, rev.Qual)
			} else {
				assert.Equal(t, len(rev.Seq), len(rev.Qual))
			}
			assert.Equal(t, "@read", rev.Header)
			assert.Equal(t, "+", rev.Plus)
		})
	}
}

func TestTrimmerPairIdempotent(t *testing.T) {
	trimmer := Trimmer{Whitelist: testWhitelist}
	rev := Record{Header: "@read", Seq: "GATTACAGATTACA" + testRevComp + "CCCC", Plus: "+", Qual: qual(34)}
	first := trimmer.Pair(testBarcode, &rev)
	assert.Equal(t, ZeroMismatchTrim, first.Class)
	second := trimmer.Pair(testBarcode, &rev)
	assert.Equal(t, NoTrim, second.Class)
	assert.Equal(t, "GATTACAGATTACA", rev.Seq)
}

func TestTrimmerPairLongQuality(t *testing.T) {
	trimmer := Trimmer{Whitelist: testWhitelist}
	rev := Record{Header: "@read", Seq: "GATTACA", Plus: "+", Qual: qual(10)}
	trimmer.Pair(testBarcode, &rev)
	assert.Equal(t, qual(7), rev.Qual)
}

func TestTrimmerPairEmptyRead(t *testing.T) {
	trimmer := Trimmer{Whitelist: testWhitelist}
	rev := Record{Header: "@read", Seq: "", Plus: "+", Qual: ""}
	outcome := trimmer.Pair(testBarcode, &rev)
	assert.True(t, outcome.Sentinel)
	assert.Equal(t, NoTrim, outcome.Class)
	assert.Equal(t, SentinelBase, rev.Seq)
	assert.Equal(t, SentinelQual, rev.Qual)
}

func TestStats(t *testing.T) {
	var s Stats
	s.Add(Outcome{Class: ZeroMismatchTrim, Before: 31, After: 5})
	s.Add(Outcome{Class: OneMismatchTrim, Before: 20, After: 0, Sentinel: true})
	s.Add(Outcome{Class: NoTrim, Before: 31, After: 31})

	other := NewStats()
	other.Add(Outcome{Class: ZeroMismatchTrim, Before: 30, After: 5})
	s.Merge(other)

	assert.Equal(t, 4, s.Reads)
	assert.Equal(t, 2, s.ZeroMismatch)
	assert.Equal(t, 1, s.OneMismatch)
	assert.Equal(t, 3, s.Trimmed())
	assert.Equal(t, 1, s.Sentinels)
	assert.Equal(t, 112, s.Bases)
	assert.Equal(t, 71, s.TrimmedBases)
	assert.Equal(t, map[int]int{5: 2, 0: 1}, s.Cuts)
	assert.Equal(t, map[int]int{26: 1, 20: 1, 25: 1}, s.Removed)
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "NoTrim", NoTrim.String())
	assert.Equal(t, "ZeroMismatchTrim", ZeroMismatchTrim.String())
	assert.Equal(t, "OneMismatchTrim", OneMismatchTrim.String())
}
