package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RowanDark/culturecipher/internal/catalog"
	"github.com/RowanDark/culturecipher/internal/cipher"
)

func runCatalog(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "catalog subcommand required")
		return 2
	}

	switch args[0] {
	case "print":
		return runCatalogPrint(args[1:])
	case "validate":
		return runCatalogValidate(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown catalog subcommand: %s\n", args[0])
		return 2
	}
}

func parseCatalogFlags(name string, args []string) (string, bool) {
	fs := flag.NewFlagSet("catalog "+name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("catalog", "", "YAML catalog file (defaults to the configured or built-in catalog)")
	if err := fs.Parse(args); err != nil {
		return "", false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", fs.Arg(0))
		return "", false
	}
	return *path, true
}

func openCatalog(flagValue string) (*session, *catalog.Catalog, error) {
	s, err := newSession()
	if err != nil {
		return nil, nil, err
	}
	cat, err := s.loadCatalog(flagValue)
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	return s, cat, nil
}

func runCatalogPrint(args []string) int {
	path, ok := parseCatalogFlags("print", args)
	if !ok {
		return 2
	}
	s, cat, err := openCatalog(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	defer s.Close()

	if err := printCatalog(os.Stdout, cat); err != nil {
		fmt.Fprintf(os.Stderr, "print catalog: %v\n", err)
		return 1
	}
	return 0
}

func printCatalog(out io.Writer, cat *catalog.Catalog) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cat); err != nil {
		return err
	}
	return enc.Close()
}

func runCatalogValidate(args []string) int {
	path, ok := parseCatalogFlags("validate", args)
	if !ok {
		return 2
	}
	s, cat, err := openCatalog(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	defer s.Close()

	if err := validateCatalog(os.Stdout, cat); err != nil {
		fmt.Fprintf(os.Stderr, "catalog %s is invalid: %v\n", cat.Name(), err)
		return 1
	}
	return 0
}

// validateCatalog also builds a codec so the alphabets are checked the same
// way encoding checks them.
func validateCatalog(out io.Writer, cat *catalog.Catalog) error {
	if err := cat.Validate(); err != nil {
		return err
	}
	if _, err := cipher.New(cipher.WithCatalog(cat)); err != nil {
		return err
	}
	fmt.Fprintf(out, "catalog %s: ok (%d digit tokens, %d payload tokens, %d templates)\n",
		cat.Name(), len(cat.DigitAlphabet()), len(cat.PayloadAlphabet()), len(cat.Templates()))
	return nil
}
