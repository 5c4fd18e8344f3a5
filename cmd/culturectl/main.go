package main

import (
	"flag"
	"fmt"
	"os"
)

const productName = "culturecipher"
const cliBanner = productName + " CLI (culturectl)"

func init() {
	defaultUsage := flag.Usage
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintln(out, cliBanner)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Commands:")
		fmt.Fprintln(out, "  encode    encode text into a culture document")
		fmt.Fprintln(out, "  decode    recover text from a culture document")
		fmt.Fprintln(out, "  inspect   show the timestamp and block count of a document")
		fmt.Fprintln(out, "  demo      encode the sample text and verify the round-trip")
		fmt.Fprintln(out, "  catalog   print or validate a catalog")
		fmt.Fprintln(out, "  config    print the resolved configuration")
		fmt.Fprintln(out, "  version   print the version")
		fmt.Fprintln(out)
		if defaultUsage != nil {
			defaultUsage()
		}
	}
}

func main() {
	flag.Parse()
	if maybePrintVersion() {
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	os.Exit(run(args))
}

func run(args []string) int {
	switch args[0] {
	case "encode":
		return runEncode(args[1:])
	case "decode":
		return runDecode(args[1:])
	case "inspect":
		return runInspect(args[1:])
	case "demo":
		return runDemo(args[1:])
	case "catalog":
		return runCatalog(args[1:])
	case "config":
		return runConfig(args[1:])
	case "version":
		return runVersion(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand: %s\n", args[0])
		return 2
	}
}
