package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
)

// version is stamped by release builds:
//
//	go build -ldflags "-X main.version=v1.2.3" ./cmd/culturectl
var version = "dev"

// resolvedVersion falls back to the module version recorded by `go install`
// when no version was stamped.
func resolvedVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

func runVersion(args []string) int {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "version takes no arguments")
		return 2
	}
	fmt.Printf("%s %s\n", cliBanner, resolvedVersion())
	return 0
}
