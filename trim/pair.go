package trim

import (
	"github.com/dasnellings/bcTrim/barcode"
	"github.com/dasnellings/bcTrim/readthrough"
)

// Placeholders written in place of a read 2 that was trimmed to nothing,
// since fastq records may not have empty sequence or quality lines.
const (
	SentinelBase string = "N"
	SentinelQual string = "!"
)

// Class records which kind of barcode occurrence, if any, caused a trim.
type Class byte

const (
	NoTrim Class = iota
	ZeroMismatchTrim
	OneMismatchTrim
)

func (c Class) String() string {
	switch c {
	case NoTrim:
		return "NoTrim"
	case ZeroMismatchTrim:
		return "ZeroMismatchTrim"
	case OneMismatchTrim:
		return "OneMismatchTrim"
	default:
		return "Unknown"
	}
}

// Outcome describes what happened to a single read 2.
type Outcome struct {
	Class    Class
	Before   int  // read 2 length before trimming
	After    int  // read 2 length after trimming, not counting a sentinel base
	Sentinel bool // read 2 was replaced with SentinelBase and SentinelQual
}

// Removed returns the number of bases trimmed from read 2.
func (o Outcome) Removed() int {
	return o.Before - o.After
}

// Trimmer removes read-through barcodes from read 2. It is safe for concurrent use.
type Trimmer struct {
	Whitelist barcode.Whitelist
}

// Pair trims rev in place using the barcode at the start of the read 1 sequence fwdSeq.
// Trimming is only attempted when both reads are at least barcode.Length bases and the
// barcode is present in the whitelist. The quality line is cut to the sequence length.
func (t Trimmer) Pair(fwdSeq string, rev *Record) Outcome {
	ans := Outcome{Before: len(rev.Seq)}

	bc := barcode.Extract(fwdSeq)
	if bc != "*" && len(rev.Seq) >= barcode.Length && t.Whitelist.Contains(bc) {
		bait1, bait2 := barcode.Baits(bc)
		m := readthrough.FindCut(bait1, bait2, []byte(rev.Seq))
		switch m.Kind {
		case readthrough.ExactMatch:
			ans.Class = ZeroMismatchTrim
		case readthrough.OneMismatchMatch:
			ans.Class = OneMismatchTrim
		}
		if m.Found() {
			rev.Seq = rev.Seq[:m.Cut]
		}
	}

	if len(rev.Qual) > len(rev.Seq) {
		rev.Qual = rev.Qual[:len(rev.Seq)]
	}
	ans.After = len(rev.Seq)

	if len(rev.Seq) == 0 {
		rev.Seq = SentinelBase
		rev.Qual = SentinelQual
		ans.Sentinel = true
	}
	return ans
}
