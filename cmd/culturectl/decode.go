package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

func runDecode(args []string) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	token := fs.String("token", "", "decoding token (defaults to the configured token)")
	text := fs.String("text", "", "document to decode")
	in := fs.String("in", "", "read the document from a file (- for stdin)")
	out := fs.String("out", "", "write the decoded text to a file instead of stdout")
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

	key := s.token(*token)
	if key == "" {
		fmt.Fprintln(os.Stderr, "--token is required when no token is configured")
		return 2
	}

	doc, err := readInput(*text, *in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	plain, err := codec.Decode(strings.TrimSpace(doc), key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	if err := writeOutput(*out, plain); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}
