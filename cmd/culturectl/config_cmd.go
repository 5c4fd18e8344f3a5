package main

import (
	"fmt"
	"io"
	"os"

	"github.com/RowanDark/culturecipher/internal/config"
	"github.com/RowanDark/culturecipher/internal/redact"
)

func runConfig(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "config subcommand required")
		return 2
	}

	switch args[0] {
	case "print":
		return runConfigPrint()
	default:
		fmt.Fprintf(os.Stderr, "unknown config subcommand: %s\n", args[0])
		return 2
	}
}

func runConfigPrint() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}

	printResolvedConfig(os.Stdout, cfg)
	return 0
}

func printResolvedConfig(out io.Writer, cfg config.Config) {
	fmt.Fprintf(out, "token: %s\n", redact.Secrets(cfg.Token, cfg.Token))
	fmt.Fprintf(out, "catalog_path: %s\n", cfg.CatalogPath)
	fmt.Fprintf(out, "audit_log: %s\n", cfg.AuditLog)
	fmt.Fprintf(out, "audit_stdout: %t\n", cfg.AuditStdout)
}
