// Package positional renders numbers as fixed-radix digit sequences whose
// digits are words drawn from an ordered token alphabet.
package positional

import (
	"errors"
	"fmt"
	"strings"
)

// Separators between digits of one value and between values.
const (
	MinorSeparator = "、"
	MajorSeparator = "，"
)

// decimalDigits is the radix of the digit-string encoding.
const decimalDigits = 10

// Alphabet is an ordered token list with a reverse index.
type Alphabet struct {
	tokens []string
	index  map[string]int
}

// NewAlphabet indexes tokens. Order is preserved exactly.
func NewAlphabet(tokens []string) (*Alphabet, error) {
	if len(tokens) == 0 {
		return nil, errors.New("alphabet is empty")
	}
	a := &Alphabet{
		tokens: make([]string, len(tokens)),
		index:  make(map[string]int, len(tokens)),
	}
	for i, tok := range tokens {
		if tok == "" {
			return nil, fmt.Errorf("token %d is empty", i)
		}
		if strings.Contains(tok, MinorSeparator) || strings.Contains(tok, MajorSeparator) {
			return nil, fmt.Errorf("token %d (%q) contains a separator", i, tok)
		}
		if prev, dup := a.index[tok]; dup {
			return nil, fmt.Errorf("token %d (%q) duplicates token %d", i, tok, prev)
		}
		a.tokens[i] = tok
		a.index[tok] = i
	}
	return a, nil
}

// Len is the radix of the alphabet.
func (a *Alphabet) Len() int { return len(a.tokens) }

// Token returns the token for digit d.
func (a *Alphabet) Token(d int) string { return a.tokens[d] }

// Index returns the digit for tok.
func (a *Alphabet) Index(tok string) (int, bool) {
	i, ok := a.index[tok]
	return i, ok
}

// Codec encodes decimal strings with a digit alphabet and rune strings with a
// payload alphabet.
type Codec struct {
	digits  *Alphabet
	payload *Alphabet
	radix   int
}

// NewCodec pairs a digit alphabet (at least ten tokens) with a payload
// alphabet (at least two tokens).
func NewCodec(digits, payload *Alphabet) (*Codec, error) {
	if digits == nil || digits.Len() < decimalDigits {
		return nil, fmt.Errorf("digit alphabet needs at least %d tokens", decimalDigits)
	}
	if payload == nil || payload.Len() < 2 {
		return nil, errors.New("payload alphabet needs at least 2 tokens")
	}
	return &Codec{digits: digits, payload: payload, radix: payload.Len()}, nil
}

// Radix reports the payload radix.
func (c *Codec) Radix() int { return c.radix }

// MaxRune reports the largest code point a four-digit group can carry.
func (c *Codec) MaxRune() rune {
	r2 := c.radix * c.radix
	return rune(r2*r2 - 1)
}

// EncodeDigits maps every decimal digit of s to the digit-alphabet token at
// that index. Non-digit characters are skipped.
func (c *Codec) EncodeDigits(s string) string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		parts = append(parts, c.digits.Token(int(r-'0')))
	}
	return strings.Join(parts, MinorSeparator)
}

// DecodeDigits reverses EncodeDigits. Unknown tokens and tokens whose index
// is not a decimal digit are dropped without error.
func (c *Codec) DecodeDigits(encoded string) string {
	var sb strings.Builder
	for _, tok := range strings.Split(encoded, MinorSeparator) {
		i, ok := c.digits.Index(tok)
		if !ok || i >= decimalDigits {
			continue
		}
		sb.WriteByte(byte('0' + i))
	}
	return sb.String()
}

// EncodeRunes writes each rune of s as three radix digits, or four when the
// code point does not fit in three. Runes above MaxRune are skipped.
func (c *Codec) EncodeRunes(s string) string {
	r2 := c.radix * c.radix
	limit := c.MaxRune()
	groups := make([]string, 0, len(s))
	for _, ch := range s {
		if ch > limit {
			continue
		}
		code := int(ch)
		d1 := code / r2
		d2 := (code % r2) / c.radix
		d3 := code % c.radix

		var digits []int
		if d1 >= c.radix {
			digits = []int{d1 / c.radix, d1 % c.radix, d2, d3}
		} else {
			digits = []int{d1, d2, d3}
		}

		toks := make([]string, len(digits))
		for i, d := range digits {
			toks[i] = c.payload.Token(d)
		}
		groups = append(groups, strings.Join(toks, MinorSeparator))
	}
	return strings.Join(groups, MajorSeparator)
}

// DecodeRunes reverses EncodeRunes. A group containing an unknown token, or
// with a digit count other than three or four, is dropped without error.
func (c *Codec) DecodeRunes(encoded string) string {
	if encoded == "" {
		return ""
	}
	var sb strings.Builder
	for _, group := range strings.Split(encoded, MajorSeparator) {
		toks := strings.Split(group, MinorSeparator)
		if len(toks) != 3 && len(toks) != 4 {
			continue
		}
		code, ok := 0, true
		for _, tok := range toks {
			d, found := c.payload.Index(tok)
			if !found {
				ok = false
				break
			}
			code = code*c.radix + d
		}
		if !ok {
			continue
		}
		sb.WriteRune(rune(code))
	}
	return sb.String()
}
