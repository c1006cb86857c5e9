package trim

// Stats accumulates per-pair outcomes over a run.
type Stats struct {
	Reads        int
	ZeroMismatch int
	OneMismatch  int
	Sentinels    int
	Bases        int // read 2 bases before trimming
	TrimmedBases int

	// Cuts maps the cut position to the number of reads cut there.
	Cuts map[int]int
	// Removed maps the number of bases removed from a trimmed read to the number of such reads.
	Removed map[int]int
}

// NewStats returns an empty Stats ready for use.
func NewStats() Stats {
	return Stats{Cuts: make(map[int]int), Removed: make(map[int]int)}
}

// Add records the outcome of one read pair.
func (s *Stats) Add(o Outcome) {
	s.Reads++
	s.Bases += o.Before
	s.TrimmedBases += o.Removed()
	if o.Sentinel {
		s.Sentinels++
	}
	switch o.Class {
	case ZeroMismatchTrim:
		s.ZeroMismatch++
	case OneMismatchTrim:
		s.OneMismatch++
	default:
		return
	}
	if s.Cuts == nil {
		s.Cuts = make(map[int]int)
		s.Removed = make(map[int]int)
	}
	s.Cuts[o.After]++
	s.Removed[o.Removed()]++
}

// Merge adds the counts in other to s.
func (s *Stats) Merge(other Stats) {
	s.Reads += other.Reads
	s.ZeroMismatch += other.ZeroMismatch
	s.OneMismatch += other.OneMismatch
	s.Sentinels += other.Sentinels
	s.Bases += other.Bases
	s.TrimmedBases += other.TrimmedBases
	if s.Cuts == nil {
		s.Cuts = make(map[int]int)
	}
	if s.Removed == nil {
		s.Removed = make(map[int]int)
	}
	for k, v := range other.Cuts {
		s.Cuts[k] += v
	}
	for k, v := range other.Removed {
		s.Removed[k] += v
	}
}

// Trimmed returns the number of reads trimmed with zero or one mismatch.
func (s Stats) Trimmed() int {
	return s.ZeroMismatch + s.OneMismatch
}
