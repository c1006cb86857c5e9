// Package trim drives barcode read-through trimming over a pair of fastq files and
// writes the trimmed read 2 records in input order.
package trim

import (
	"bufio"
	"bytes"
	"fmt"
	"github.com/dasnellings/bcTrim/barcode"
	"github.com/dustin/go-humanize"
	"github.com/klauspost/pgzip"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Settings configures a trimming run.
type Settings struct {
	R1        string // read 1 fastq, may be gzipped
	R2        string // read 2 fastq, may be gzipped
	Whitelist string // one barcode per line
	Output    string // trimmed read 2 fastq. gzipped if the name ends in .gz
	Threads   int
	BatchSize int
	Verbose   int
}

// DefaultBatchSize is the number of read pairs handed to a worker at a time.
const DefaultBatchSize int = 10000

type batch struct {
	idx int
	fwd []string // read 1 sequences
	rev []Record
}

type result struct {
	idx   int
	data  []byte
	stats Stats
}

// Run trims the read 2 file described by s and returns statistics for the run.
// An error is returned if an input file cannot be opened or the inputs are not
// a valid pair of fastq files. Output written before a malformed record was
// found is not removed.
func Run(s Settings) (Stats, error) {
	for _, f := range []string{s.R1, s.R2, s.Whitelist} {
		if err := readable(f); err != nil {
			return Stats{}, err
		}
	}
	if err := writable(s.Output); err != nil {
		return Stats{}, err
	}
	if s.Threads < 1 {
		s.Threads = 1
	}
	if s.BatchSize < 1 {
		s.BatchSize = DefaultBatchSize
	}

	whitelist := barcode.ReadWhitelist(s.Whitelist)
	if s.Verbose > 0 {
		log.Printf("read %s barcodes from %s", humanize.Comma(int64(len(whitelist))), s.Whitelist)
	}

	out, closeOut, err := createOutput(s.Output, s.Threads)
	if err != nil {
		return Stats{}, err
	}

	reader := NewPairReader(s.R1, s.R2)
	stats, err := process(reader, Trimmer{Whitelist: whitelist}, out, s)

	closeErr := reader.Close()
	if err == nil {
		err = closeErr
	}
	closeErr = closeOut()
	if err == nil {
		err = closeErr
	}
	return stats, err
}

// process runs the read, trim and write stages. Batches are trimmed concurrently and
// results are buffered until they can be written in input order.
func process(reader *PairReader, t Trimmer, out io.Writer, s Settings) (Stats, error) {
	batches := make(chan batch, s.Threads)
	results := make(chan result, s.Threads)

	var readErr error
	go func() {
		readErr = readBatches(reader, batches, s.BatchSize)
		close(batches)
	}()

	wg := new(sync.WaitGroup)
	for i := 0; i < s.Threads; i++ {
		wg.Add(1)
		go trimBatches(t, batches, results, wg)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	stats := NewStats()
	pending := make(map[int]result)
	var next int
	var writeErr error
	for r := range results {
		pending[r.idx] = r
		for {
			curr, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if writeErr == nil {
				_, writeErr = out.Write(curr.data)
			}
			stats.Merge(curr.stats)
			if s.Verbose > 0 {
				log.Printf("processed %s read pairs", humanize.Comma(int64(stats.Reads)))
			}
		}
	}

	// results is closed only after the reader goroutine has closed batches
	if readErr != nil {
		return stats, readErr
	}
	return stats, writeErr
}

func readBatches(reader *PairReader, batches chan<- batch, size int) error {
	var fwd, rev Record
	var err error
	curr := batch{fwd: make([]string, 0, size), rev: make([]Record, 0, size)}
	for {
		fwd, rev, err = reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		curr.fwd = append(curr.fwd, fwd.Seq)
		curr.rev = append(curr.rev, rev)
		if len(curr.rev) == size {
			batches <- curr
			curr = batch{idx: curr.idx + 1, fwd: make([]string, 0, size), rev: make([]Record, 0, size)}
		}
	}
	if len(curr.rev) > 0 {
		batches <- curr
	}
	return nil
}

func trimBatches(t Trimmer, batches <-chan batch, results chan<- result, wg *sync.WaitGroup) {
	defer wg.Done()
	var buf bytes.Buffer
	for b := range batches {
		stats := NewStats()
		buf.Reset()
		for i := range b.rev {
			stats.Add(t.Pair(b.fwd[i], &b.rev[i]))
			b.rev[i].WriteTo(&buf)
		}
		results <- result{idx: b.idx, data: append([]byte(nil), buf.Bytes()...), stats: stats}
	}
}

// createOutput opens the output file. Names ending in .gz are compressed with a parallel
// gzip writer, anything else (including "stdout") is handled by fileio.
func createOutput(filename string, threads int) (io.Writer, func() error, error) {
	if !strings.HasSuffix(filename, ".gz") {
		file := fileio.EasyCreate(filename)
		return file, file.Close, nil
	}

	file, err := os.Create(filename)
	if err != nil {
		return nil, nil, err
	}
	gz := pgzip.NewWriter(file)
	if err = gz.SetConcurrency(1<<20, 2*threads); err != nil {
		return nil, nil, err
	}
	bw := bufio.NewWriter(gz)
	closer := func() error {
		if err := bw.Flush(); err != nil {
			return err
		}
		if err := gz.Close(); err != nil {
			return err
		}
		return file.Close()
	}
	return bw, closer, nil
}

func readable(filename string) error {
	if filename == "stdin" {
		return nil
	}
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("can't open file: %w", err)
	}
	return file.Close()
}

// writable creates filename so that an unusable output path is reported as an error
// before fileio is asked to open it.
func writable(filename string) error {
	if filename == "stdout" {
		return nil
	}
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("can't create output file: %w", err)
	}
	return file.Close()
}
