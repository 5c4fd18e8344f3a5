package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/RowanDark/culturecipher/internal/cipher"
)

func runInspect(args []string) int {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	text := fs.String("text", "", "document to inspect")
	in := fs.String("in", "", "read the document from a file (- for stdin)")
	catalogPath := fs.String("catalog", "", "YAML catalog the document was encoded with")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", fs.Arg(0))
		return 2
	}
	if !checkInput(*text, *in) {
		return 2
	}

	s, codec, err := openCodec(*catalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	defer s.Close()

	raw, err := readInput(*text, *in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	doc, err := codec.Inspect(strings.TrimSpace(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect failed: %v\n", err)
		return 1
	}
	printInspection(os.Stdout, doc)
	return 0
}

func printInspection(out io.Writer, doc cipher.Document) {
	if ms, err := strconv.ParseInt(doc.Timestamp, 10, 64); err == nil {
		fmt.Fprintf(out, "timestamp: %s (%s)\n", doc.Timestamp, time.UnixMilli(ms).UTC().Format(time.RFC3339Nano))
	} else {
		fmt.Fprintf(out, "timestamp: %s\n", doc.Timestamp)
	}
	fmt.Fprintf(out, "blocks: %d\n", len(doc.Blocks))
}
