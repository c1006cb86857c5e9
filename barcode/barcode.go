package barcode

import (
	"fmt"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"strings"
)

// Length is the number of bases at the start of read 1 that make up the barcode.
const Length int = 16

// HalfLength is the length of each bait searched for in read 2.
const HalfLength int = Length / 2

// Whitelist is the set of valid barcodes. It is read only once loaded.
type Whitelist map[string]bool

// Contains returns true if bc is an exact member of the whitelist.
func (w Whitelist) Contains(bc string) bool {
	return w[bc]
}

// ReadWhitelist reads a file with one barcode per line. Blank lines are ignored
// and surrounding whitespace is removed. May be gzipped.
func ReadWhitelist(filename string) Whitelist {
	file := fileio.EasyOpen(filename)
	w := make(Whitelist)
	var line string
	var done bool
	for line, done = fileio.EasyNextLine(file); !done; line, done = fileio.EasyNextLine(file) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		w[line] = true
	}
	err := file.Close()
	exception.PanicOnErr(err)
	return w
}

// Summary describes the contents of a whitelist file.
type Summary struct {
	Lines      int
	Unique     int
	Duplicates int
	Malformed  int // entries that are not Length bases of A, C, G, or T
}

func (s Summary) String() string {
	return fmt.Sprintf("Lines: %d\nUnique: %d\nDuplicates: %d\nMalformed: %d", s.Lines, s.Unique, s.Duplicates, s.Malformed)
}

// Inspect reads a whitelist file and reports how many of its entries are usable.
func Inspect(filename string) Summary {
	file := fileio.EasyOpen(filename)
	var ans Summary
	seen := make(map[string]bool)
	var line string
	var done bool
	for line, done = fileio.EasyNextLine(file); !done; line, done = fileio.EasyNextLine(file) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ans.Lines++
		if seen[line] {
			ans.Duplicates++
			continue
		}
		seen[line] = true
		if !valid(line) {
			ans.Malformed++
		}
	}
	ans.Unique = len(seen)
	err := file.Close()
	exception.PanicOnErr(err)
	return ans
}

// Extract returns the barcode at the start of a read 1 sequence.
// If the read is shorter than Length, Extract returns "*".
func Extract(seq string) string {
	if len(seq) < Length {
		return "*"
	}
	return seq[:Length]
}

// Baits returns the reverse complement of bc split into its 5' and 3' halves.
// These are the sequences searched for in read 2.
func Baits(bc string) (bait1, bait2 []byte) {
	bases := dna.StringToBases(bc)
	dna.ReverseComplement(bases)
	rc := []byte(dna.BasesToString(bases))
	half := len(rc) / 2
	return rc[:half], rc[half:]
}

func valid(bc string) bool {
	if len(bc) != Length {
		return false
	}
	for i := range bc {
		switch bc[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}
