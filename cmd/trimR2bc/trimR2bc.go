package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/bcTrim/report"
	"github.com/dasnellings/bcTrim/trim"
	"log"
	"os"
)

func usage() {
	fmt.Print(
		"trimR2bc - Trim linked-read barcodes that read through into R2 when the insert is shorter than the read.\n" +
			"The first 16 bases of R1 are checked against the whitelist and, if present, their reverse complement\n" +
			"is removed from R2 allowing one mismatch. Statistics are printed to stdout.\n\n" +
			"Usage:\n" +
			"  trimR2bc [options] <R1fastqfile> <R2fastqfile> <whitelist> <R2outfile> >> bctrim_stats.txt\n\n" +
			"Options:\n\n")
	flag.PrintDefaults()
}

func main() {
	threads := flag.Int("threads", 1, "Number of worker threads.")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 4 {
		flag.Usage()
		os.Exit(1)
	}

	s := trim.Settings{
		R1:        flag.Arg(0),
		R2:        flag.Arg(1),
		Whitelist: flag.Arg(2),
		Output:    flag.Arg(3),
		Threads:   *threads,
	}
	info := report.Info{R1: s.R1, R2: s.R2, Whitelist: s.Whitelist, Output: s.Output}

	report.Header(os.Stdout, info)
	stats, err := trim.Run(s)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}
	report.Summary(os.Stdout, info, stats)
}
