package main

import (
	"flag"
	"fmt"
)

var showVersion = flag.Bool("version", false, "Print culturectl version and exit")

// maybePrintVersion handles the global --version flag and reports whether the
// caller should exit without running a subcommand.
func maybePrintVersion() bool {
	if !*showVersion {
		return false
	}
	fmt.Println(resolvedVersion())
	return true
}
