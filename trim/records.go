package trim

import (
	"errors"
	"fmt"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
	"strings"
)

var (
	// ErrUnpaired is returned when R1 and R2 do not hold the same number of records.
	ErrUnpaired = errors.New("read 1 and read 2 files have different numbers of records")

	// ErrTruncated is returned when a file ends part way through a record.
	ErrTruncated = errors.New("fastq file ends part way through a record")

	// ErrMalformed is returned when a record's header or separator line is not valid fastq.
	ErrMalformed = errors.New("malformed fastq record")
)

// Record holds the four lines of a fastq record without line terminators.
// Lines are kept as read so that the header and separator are written back unchanged.
type Record struct {
	Header string
	Seq    string
	Plus   string
	Qual   string
}

// PairReader reads records from a pair of fastq files in lockstep.
type PairReader struct {
	fwd, rev   *fileio.EasyReader
	fwdName    string
	revName    string
	numRecords int
}

// NewPairReader opens the read 1 and read 2 files. Files ending in .gz are decompressed.
func NewPairReader(r1, r2 string) *PairReader {
	return &PairReader{
		fwd:     fileio.EasyOpen(r1),
		rev:     fileio.EasyOpen(r2),
		fwdName: r1,
		revName: r2,
	}
}

// Next returns the next pair of records. At the end of both files Next returns io.EOF.
func (p *PairReader) Next() (fwd, rev Record, err error) {
	var fwdDone, revDone bool
	fwd, fwdDone, err = readRecord(p.fwd, p.fwdName, p.numRecords)
	if err != nil {
		return
	}
	rev, revDone, err = readRecord(p.rev, p.revName, p.numRecords)
	if err != nil {
		return
	}

	switch {
	case fwdDone && revDone:
		err = io.EOF
	case fwdDone:
		err = fmt.Errorf("%w: %s ended after %d records", ErrUnpaired, p.fwdName, p.numRecords)
	case revDone:
		err = fmt.Errorf("%w: %s ended after %d records", ErrUnpaired, p.revName, p.numRecords)
	default:
		p.numRecords++
	}
	return
}

// Records returns the number of pairs read so far.
func (p *PairReader) Records() int {
	return p.numRecords
}

// Close closes both input files.
func (p *PairReader) Close() error {
	errFwd := p.fwd.Close()
	errRev := p.rev.Close()
	if errFwd != nil {
		return errFwd
	}
	return errRev
}

// readRecord reads the next four lines of file. done is true if the file was
// already exhausted before the first line.
func readRecord(file *fileio.EasyReader, name string, recordIdx int) (rec Record, done bool, err error) {
	var lines [4]string
	for i := range lines {
		lines[i], done = fileio.EasyNextLine(file)
		if done && i == 0 {
			return
		}
		if done {
			return rec, false, fmt.Errorf("%w: %s record %d has %d of 4 lines", ErrTruncated, name, recordIdx+1, i)
		}
	}

	if !strings.HasPrefix(lines[0], "@") {
		return rec, false, fmt.Errorf("%w: %s record %d header does not begin with '@': %s", ErrMalformed, name, recordIdx+1, lines[0])
	}
	if !strings.HasPrefix(lines[2], "+") {
		return rec, false, fmt.Errorf("%w: %s record %d separator does not begin with '+': %s", ErrMalformed, name, recordIdx+1, lines[2])
	}

	rec = Record{Header: lines[0], Seq: lines[1], Plus: lines[2], Qual: lines[3]}
	return
}

// WriteTo writes the record as four newline terminated lines.
func (r Record) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.Header+"\n"+r.Seq+"\n"+r.Plus+"\n"+r.Qual+"\n")
	return int64(n), err
}
