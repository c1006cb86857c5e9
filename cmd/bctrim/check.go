package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/bcTrim/barcode"
	"github.com/dasnellings/bcTrim/readthrough"
	"github.com/vertgenlab/gonomics/exception"
	"strings"
)

func checkUsage(checkFlags *flag.FlagSet) {
	fmt.Print(
		"check - report where an R2 sequence would be cut for a given barcode. The whitelist is not consulted.\n\n" +
			"Usage:\n" +
			"  bctrim check BARCODE R2SEQUENCE\n\n" +
			"Options:\n")
	checkFlags.PrintDefaults()
}

func runCheck(args []string) {
	var err error
	checkFlags := flag.NewFlagSet("check", flag.ExitOnError)
	checkFlags.Usage = func() { checkUsage(checkFlags) }
	err = checkFlags.Parse(args)
	exception.PanicOnErr(err)

	if checkFlags.NArg() != 2 {
		checkFlags.Usage()
		errExit("\nERROR: must input a barcode and an R2 sequence")
	}

	bc := strings.ToUpper(checkFlags.Arg(0))
	read2 := strings.ToUpper(checkFlags.Arg(1))
	if len(bc) != barcode.Length {
		errExit(fmt.Sprintf("ERROR: barcode must be %d bases, found %d", barcode.Length, len(bc)))
	}
	fmt.Print(check(bc, read2))
}

func check(bc, read2 string) string {
	bait1, bait2 := barcode.Baits(bc)
	m := readthrough.FindCut(bait1, bait2, []byte(read2))
	s := new(strings.Builder)
	fmt.Fprintf(s, "Baits:\t%s\t%s\n", bait1, bait2)
	fmt.Fprintf(s, "Match:\t%s\n", m.Kind)
	if !m.Found() {
		fmt.Fprintf(s, "Trimmed:\t%s\n", read2)
		return s.String()
	}
	fmt.Fprintf(s, "Cut:\t%d\n", m.Cut)
	fmt.Fprintf(s, "Trimmed:\t%s\n", read2[:m.Cut])
	return s.String()
}
