package cipher

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/RowanDark/culturecipher/internal/catalog"
	"github.com/RowanDark/culturecipher/internal/flavor"
	"github.com/RowanDark/culturecipher/internal/logging"
	"github.com/RowanDark/culturecipher/internal/mapping"
	"github.com/RowanDark/culturecipher/internal/positional"
)

const (
	// MaxTextLength is the largest accepted input, in UTF-16 code units. A
	// character outside the Basic Multilingual Plane counts twice.
	MaxTextLength = 5000
	// BlockSize is the number of Base64 characters carried per block.
	BlockSize = 256
)

// Codec encodes text into culture documents and back. A Codec only holds
// immutable configuration and is safe for concurrent use.
type Codec struct {
	catalog    *catalog.Catalog
	positional *positional.Codec
	flavor     *flavor.Generator
	now        func() time.Time
	audit      *logging.AuditLogger
	auditErr   func(error)
}

// Option configures a Codec.
type Option func(*Codec) error

// WithCatalog selects the phrase catalog. Documents only decode with the
// catalog they were encoded with.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *Codec) error {
		if cat == nil {
			return errors.New("catalog cannot be nil")
		}
		c.catalog = cat
		return nil
	}
}

// WithClock replaces the wall clock used for the document timestamp.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) error {
		if now == nil {
			return errors.New("clock cannot be nil")
		}
		c.now = now
		return nil
	}
}

// WithAuditLogger records one audit event per Encode and Decode call.
func WithAuditLogger(logger *logging.AuditLogger) Option {
	return func(c *Codec) error {
		c.audit = logger
		return nil
	}
}

// WithAuditErrorHandler receives audit write failures. By default they are
// reported on stderr; Encode and Decode never fail because of them.
func WithAuditErrorHandler(fn func(error)) Option {
	return func(c *Codec) error {
		if fn == nil {
			return errors.New("audit error handler cannot be nil")
		}
		c.auditErr = fn
		return nil
	}
}

func reportAuditError(err error) {
	fmt.Fprintf(os.Stderr, "audit log error: %v\n", err)
}

// New builds a Codec. Without options it uses the built-in catalog and the
// wall clock, and does not audit.
func New(opts ...Option) (*Codec, error) {
	c := &Codec{
		catalog:  catalog.Default(),
		now:      time.Now,
		auditErr: reportAuditError,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	digits, err := positional.NewAlphabet(c.catalog.DigitAlphabet())
	if err != nil {
		return nil, fmt.Errorf("digit alphabet: %w", err)
	}
	payload, err := positional.NewAlphabet(c.catalog.PayloadAlphabet())
	if err != nil {
		return nil, fmt.Errorf("payload alphabet: %w", err)
	}
	c.positional, err = positional.NewCodec(digits, payload)
	if err != nil {
		return nil, err
	}
	if top := mapping.MaxSymbol(); c.positional.MaxRune() < top {
		return nil, fmt.Errorf("payload radix %d cannot represent symbol %U", c.positional.Radix(), top)
	}
	c.flavor = flavor.New(c.catalog)
	return c, nil
}

// Catalog returns the catalog the codec encodes with.
func (c *Codec) Catalog() *catalog.Catalog {
	return c.catalog
}

// withClock returns a copy of c that reads time from now.
func (c *Codec) withClock(now func() time.Time) *Codec {
	clone := *c
	clone.now = now
	return &clone
}

// Encode turns text into a decorative document keyed by token.
func (c *Codec) Encode(text, token string) (string, error) {
	doc, blocks, err := c.encode(text, token)
	c.record(logging.EventEncode, token, err, map[string]any{
		"blocks":         blocks,
		"text_chars":     utf8.RuneCountInString(text),
		"document_chars": utf8.RuneCountInString(doc),
	})
	return doc, err
}

func (c *Codec) encode(text, token string) (string, int, error) {
	if text == "" || token == "" {
		return "", 0, fmt.Errorf("%w: text and token must not be empty", ErrValidation)
	}
	if !utf8.ValidString(text) {
		return "", 0, fmt.Errorf("%w: text is not valid UTF-8", ErrValidation)
	}
	if n := utf16Len(text); n > MaxTextLength {
		return "", 0, fmt.Errorf("%w: text is %d UTF-16 units long, limit is %d", ErrValidation, n, MaxTextLength)
	}

	timestamp := strconv.FormatInt(c.now().UnixMilli(), 10)
	framed := base64.StdEncoding.EncodeToString([]byte(text))
	table := mapping.Build(token)

	var w documentWriter
	w.timestamp(c.flavor.Sentence(timestamp, token), c.positional.EncodeDigits(timestamp))

	blocks := splitBlocks(framed, BlockSize)
	for i, block := range blocks {
		substituted := substitute(block, table)
		sentence := c.flavor.Sentence(substituted+strconv.Itoa(i), token)
		w.block(sentence, c.positional.EncodeRunes(substituted))
	}
	return w.String(), len(blocks), nil
}

// Decode recovers the text that Encode turned into document under token.
func (c *Codec) Decode(document, token string) (string, error) {
	text, blocks, err := c.decode(document, token)
	if err != nil {
		err = fmt.Errorf("decode failed: %w", err)
	}
	c.record(logging.EventDecode, token, err, map[string]any{
		"blocks":         blocks,
		"text_chars":     utf8.RuneCountInString(text),
		"document_chars": utf8.RuneCountInString(document),
	})
	return text, err
}

func (c *Codec) decode(document, token string) (string, int, error) {
	if document == "" || token == "" {
		return "", 0, fmt.Errorf("%w: document and token must not be empty", ErrValidation)
	}

	doc, err := c.Inspect(document)
	if err != nil {
		return "", 0, err
	}

	rev := mapping.BuildReverse(token)
	var framed strings.Builder
	for _, payload := range doc.Blocks {
		framed.WriteString(unsubstitute(c.positional.DecodeRunes(payload), rev))
	}

	raw, err := base64.StdEncoding.DecodeString(framed.String())
	if err != nil {
		return "", len(doc.Blocks), fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if !utf8.Valid(raw) {
		return "", len(doc.Blocks), fmt.Errorf("%w: payload is not valid UTF-8", ErrDecode)
	}
	return string(raw), len(doc.Blocks), nil
}

// Inspect locates the sections of document and decodes its timestamp. It
// needs no token.
func (c *Codec) Inspect(document string) (Document, error) {
	timestamp, blocks, err := locate(document)
	if err != nil {
		return Document{}, err
	}
	return Document{
		Timestamp: c.positional.DecodeDigits(timestamp),
		Blocks:    blocks,
	}, nil
}

func (c *Codec) record(event logging.EventType, token string, err error, meta map[string]any) {
	if c.audit == nil {
		return
	}
	meta["catalog"] = c.catalog.Name()
	ev := logging.AuditEvent{
		EventType: event,
		Outcome:   logging.OutcomeSuccess,
		Metadata:  meta,
		Secrets:   []string{token},
	}
	if err != nil {
		ev.Outcome = logging.OutcomeFailure
		ev.Reason = err.Error()
	}
	if err := c.audit.Emit(ev); err != nil {
		c.auditErr(err)
	}
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// splitBlocks cuts s into consecutive pieces of at most size bytes. s is
// Base64, so byte and character boundaries coincide.
func splitBlocks(s string, size int) []string {
	blocks := make([]string, 0, (len(s)+size-1)/size)
	for len(s) > size {
		blocks = append(blocks, s[:size])
		s = s[size:]
	}
	if s != "" {
		blocks = append(blocks, s)
	}
	return blocks
}

func substitute(block string, table *mapping.Table) string {
	var sb strings.Builder
	for _, r := range block {
		sb.WriteRune(table.Symbol(byte(r % mapping.Size)))
	}
	return sb.String()
}

// unsubstitute maps symbols back to bytes. Symbols outside the table pass
// through unchanged and surface later as a Base64 error.
func unsubstitute(s string, rev *mapping.Reverse) string {
	var sb strings.Builder
	for _, r := range s {
		if b, ok := rev.Byte(r); ok {
			sb.WriteByte(b)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

var defaultCodec = sync.OnceValue(func() *Codec {
	c, err := New()
	if err != nil {
		panic("cipher: default codec: " + err.Error())
	}
	return c
})

// Encode encodes text with the built-in catalog and the wall clock.
func Encode(text, token string) (string, error) {
	return defaultCodec().Encode(text, token)
}

// Decode decodes a document produced with the built-in catalog.
func Decode(document, token string) (string, error) {
	return defaultCodec().Decode(document, token)
}
