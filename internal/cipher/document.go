package cipher

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Document delimiters. The positional separators 、 and ， complete the set of
// reserved glyphs; see catalog.ReservedGlyphs.
const (
	TimestampOpen  = "〖"
	TimestampClose = "〗"
	BlockOpen      = "【"
	BlockClose     = "】"
)

var (
	timestampPattern = regexp.MustCompile(TimestampOpen + `([^` + TimestampClose + `]+)` + TimestampClose)
	blockPattern     = regexp.MustCompile(BlockOpen + `([^` + BlockClose + `]+)` + BlockClose)
)

// Document is the located structure of an encoded document.
type Document struct {
	// Timestamp holds the decimal digits recovered from the header. Unknown
	// tokens are dropped, so it may be shorter than what was encoded.
	Timestamp string
	// Blocks are the positional payloads in order of appearance, still
	// encoded.
	Blocks []string
}

// documentWriter assembles sentence/section pairs.
type documentWriter struct {
	sb strings.Builder
}

func (w *documentWriter) timestamp(sentence, encoded string) {
	w.section(sentence, TimestampOpen, encoded, TimestampClose)
}

func (w *documentWriter) block(sentence, encoded string) {
	w.section(sentence, BlockOpen, encoded, BlockClose)
}

func (w *documentWriter) section(sentence, opening, body, closing string) {
	w.sb.WriteString(sentence)
	w.sb.WriteString(opening)
	w.sb.WriteString(body)
	w.sb.WriteString(closing)
}

func (w *documentWriter) String() string {
	return w.sb.String()
}

// locate finds the first timestamp section and every block section after it.
// Decorative sentences are skipped without inspection.
func locate(document string) (timestamp string, blocks []string, err error) {
	document = norm.NFC.String(document)

	loc := timestampPattern.FindStringSubmatchIndex(document)
	if loc == nil {
		return "", nil, fmt.Errorf("%w: timestamp section not found", ErrFormat)
	}
	timestamp = document[loc[2]:loc[3]]

	for _, m := range blockPattern.FindAllStringSubmatch(document[loc[1]:], -1) {
		blocks = append(blocks, m[1])
	}
	if len(blocks) == 0 {
		return "", nil, fmt.Errorf("%w: no encoded blocks found", ErrFormat)
	}
	return timestamp, blocks, nil
}
