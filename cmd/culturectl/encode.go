package main

import (
	"flag"
	"fmt"
	"os"
)

func runEncode(args []string) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	token := fs.String("token", "", "encoding token (defaults to the configured token)")
	text := fs.String("text", "", "text to encode")
	in := fs.String("in", "", "read the text from a file (- for stdin)")
	out := fs.String("out", "", "write the document to a file instead of stdout")
	catalogPath := fs.String("catalog", "", "YAML catalog file")
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

	input, err := readInput(*text, *in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	doc, err := codec.Encode(input, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode failed: %v\n", err)
		return 1
	}
	if err := writeOutput(*out, doc); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}
