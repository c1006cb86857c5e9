package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/bcTrim/report"
	"github.com/dasnellings/bcTrim/trim"
	"github.com/vertgenlab/gonomics/exception"
	"io"
	"log"
	"os"
)

func trimUsage(trimFlags *flag.FlagSet) {
	fmt.Print(
		"trim - remove the reverse complement of the R1 barcode from R2 when the insert is shorter than the read\n\n" +
			"Usage:\n" +
			"  bctrim trim [options] r1.fq.gz r2.fq.gz whitelist.txt r2.trimmed.fq > stats.txt\n\n" +
			"Options:\n")
	trimFlags.PrintDefaults()
}

func runTrim(args []string) {
	var err error
	trimFlags := flag.NewFlagSet("trim", flag.ExitOnError)

	threads := trimFlags.Int("threads", 1, "Number of worker threads used for trimming and output compression.")
	batchSize := trimFlags.Int("batch", trim.DefaultBatchSize, "Number of read pairs processed by a worker at a time.")
	graph := trimFlags.Bool("graph", false, "Print a terminal graph of trimmed reads by cut position.")
	plotFile := trimFlags.String("plot", "", "Save a bar chart of trimmed reads by cut position. Format is set by the extension (.png, .pdf, .svg).")
	verbose := trimFlags.Int("verbose", 0, "Set to 1 to log progress to stderr.")

	trimFlags.Usage = func() { trimUsage(trimFlags) }
	err = trimFlags.Parse(args)
	exception.PanicOnErr(err)

	if trimFlags.NArg() != 4 {
		trimFlags.Usage()
		errExit("\nERROR: must input r1, r2, whitelist, and output files")
	}

	s := trim.Settings{
		R1:        trimFlags.Arg(0),
		R2:        trimFlags.Arg(1),
		Whitelist: trimFlags.Arg(2),
		Output:    trimFlags.Arg(3),
		Threads:   *threads,
		BatchSize: *batchSize,
		Verbose:   *verbose,
	}
	info := report.Info{R1: s.R1, R2: s.R2, Whitelist: s.Whitelist, Output: s.Output}

	// keep stdout free for reads if they are written there
	var summaryOut io.Writer = os.Stdout
	if s.Output == "stdout" {
		summaryOut = os.Stderr
	}

	report.Header(summaryOut, info)
	stats, err := trim.Run(s)
	if err != nil {
		log.Fatalf("ERROR: %s", err)
	}
	report.Summary(summaryOut, info, stats)

	if *graph {
		report.Graph(summaryOut, stats)
	}
	if *plotFile != "" {
		err = report.Plot(*plotFile, stats)
		exception.PanicOnErr(err)
	}
}
