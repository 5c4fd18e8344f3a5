package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RowanDark/culturecipher/internal/catalog"
	"github.com/RowanDark/culturecipher/internal/cipher"
	"github.com/RowanDark/culturecipher/internal/config"
	"github.com/RowanDark/culturecipher/internal/logging"
)

const auditComponent = "culturectl"

// session holds the configuration and audit sink shared by the subcommands.
type session struct {
	cfg   config.Config
	audit *logging.AuditLogger
}

func newSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	audit, err := newAuditLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	s := &session{cfg: cfg, audit: audit}
	s.emit(logging.EventConfigLoad, nil, map[string]any{
		"catalog_path": cfg.CatalogPath,
		"token_set":    cfg.Token != "",
	})
	return s, nil
}

// newAuditLogger returns nil when neither audit_log nor audit_stdout is set.
func newAuditLogger(cfg config.Config) (*logging.AuditLogger, error) {
	if cfg.AuditLog == "" && !cfg.AuditStdout {
		return nil, nil
	}
	var opts []logging.Option
	if cfg.AuditLog != "" {
		opts = append(opts, logging.WithFile(cfg.AuditLog))
	}
	if !cfg.AuditStdout {
		opts = append(opts, logging.WithoutStdout())
	}
	return logging.NewAuditLogger(auditComponent, opts...)
}

func (s *session) Close() {
	if s == nil || s.audit == nil {
		return
	}
	if err := s.audit.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close audit log: %v\n", err)
	}
}

func (s *session) emit(event logging.EventType, err error, meta map[string]any) {
	if s.audit == nil {
		return
	}
	ev := logging.AuditEvent{
		EventType: event,
		Outcome:   logging.OutcomeSuccess,
		Metadata:  meta,
		Secrets:   []string{s.cfg.Token},
	}
	if err != nil {
		ev.Outcome = logging.OutcomeFailure
		ev.Reason = err.Error()
	}
	if emitErr := s.audit.Emit(ev); emitErr != nil {
		fmt.Fprintf(os.Stderr, "audit log error: %v\n", emitErr)
	}
}

// token prefers the flag value and falls back to the configured token.
func (s *session) token(flagValue string) string {
	if token := strings.TrimSpace(flagValue); token != "" {
		return token
	}
	return s.cfg.Token
}

// loadCatalog resolves --catalog, then catalog_path, then the built-in catalog.
func (s *session) loadCatalog(flagValue string) (*catalog.Catalog, error) {
	path := strings.TrimSpace(flagValue)
	if path == "" {
		path = s.cfg.CatalogPath
	}
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(path)
	meta := map[string]any{"path": path}
	if cat != nil {
		meta["catalog"] = cat.Name()
	}
	s.emit(logging.EventCatalogLoad, err, meta)
	return cat, err
}

func (s *session) codec(cat *catalog.Catalog) (*cipher.Codec, error) {
	opts := []cipher.Option{cipher.WithCatalog(cat)}
	if s.audit != nil {
		opts = append(opts, cipher.WithAuditLogger(s.audit.WithComponent(auditComponent+".codec")))
	}
	return cipher.New(opts...)
}

// openCodec is the common setup for the codec-backed subcommands.
func openCodec(catalogFlag string) (*session, *cipher.Codec, error) {
	s, err := newSession()
	if err != nil {
		return nil, nil, err
	}
	cat, err := s.loadCatalog(catalogFlag)
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	codec, err := s.codec(cat)
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	return s, codec, nil
}

// checkInput reports a usage problem unless exactly one input source is set.
func checkInput(text, in string) bool {
	if (text == "") == (in == "") {
		fmt.Fprintln(os.Stderr, "exactly one of --text or --in is required")
		return false
	}
	return true
}

// readInput returns text, or the contents of in ("-" reads stdin).
func readInput(text, in string) (string, error) {
	switch in {
	case "":
		return text, nil
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(in)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
}

// writeOutput writes content to out verbatim, or to stdout with a trailing
// newline when out is empty or "-".
func writeOutput(out, content string) error {
	if out == "" || out == "-" {
		_, err := fmt.Fprintln(os.Stdout, content)
		return err
	}
	if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
