package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/bcTrim/barcode"
	"github.com/vertgenlab/gonomics/exception"
)

func whitelistUsage(whitelistFlags *flag.FlagSet) {
	fmt.Print(
		"whitelist - count usable, duplicate, and malformed entries in a barcode whitelist\n\n" +
			"Usage:\n" +
			"  bctrim whitelist whitelist.txt\n\n" +
			"Options:\n")
	whitelistFlags.PrintDefaults()
}

func runWhitelist(args []string) {
	var err error
	whitelistFlags := flag.NewFlagSet("whitelist", flag.ExitOnError)
	whitelistFlags.Usage = func() { whitelistUsage(whitelistFlags) }
	err = whitelistFlags.Parse(args)
	exception.PanicOnErr(err)

	if whitelistFlags.NArg() != 1 {
		whitelistFlags.Usage()
		errExit("\nERROR: must input a whitelist file")
	}

	fmt.Println(barcode.Inspect(whitelistFlags.Arg(0)))
}
