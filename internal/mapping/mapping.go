// Package mapping builds the token-keyed substitution table between byte
// values and display symbols.
package mapping

import (
	"github.com/RowanDark/culturecipher/internal/seeded"
)

// Size is the number of byte values covered by a table.
const Size = 256

const (
	ideographFirst = 0x4e00
	ideographLast  = 0x9fa5
	ideographStep  = 50
	asciiFirst     = 33
	asciiLast      = 126
)

// MasterAlphabet returns the ordered symbol set a table is drawn from: every
// 50th CJK unified ideograph followed by printable ASCII. The order is part of
// the document format; changing it invalidates previously encoded documents.
func MasterAlphabet() []rune {
	out := make([]rune, 0, (ideographLast-ideographFirst)/ideographStep+1+asciiLast-asciiFirst+1)
	for r := rune(ideographFirst); r <= ideographLast; r += ideographStep {
		out = append(out, r)
	}
	for r := rune(asciiFirst); r <= asciiLast; r++ {
		out = append(out, r)
	}
	return out
}

// MaxSymbol returns the largest code point in the master alphabet. Any codec
// that writes table symbols must be able to represent it.
func MaxSymbol() rune {
	last := rune(ideographFirst + (ideographLast-ideographFirst)/ideographStep*ideographStep)
	if last < asciiLast {
		return asciiLast
	}
	return last
}

// Table maps byte values to symbols. It is immutable once built.
type Table struct {
	symbols [Size]rune
}

// Build shuffles the master alphabet with a generator seeded by token and
// assigns the first 256 shuffled symbols to byte values 0..255.
func Build(token string) *Table {
	shuffled := seeded.Shuffle(seeded.New(token), MasterAlphabet())
	t := &Table{}
	for i := range t.symbols {
		t.symbols[i] = shuffled[i%len(shuffled)]
	}
	return t
}

// Symbol returns the symbol assigned to b.
func (t *Table) Symbol(b byte) rune {
	return t.symbols[b]
}

// Reverse inverts the table.
func (t *Table) Reverse() *Reverse {
	rev := &Reverse{bytes: make(map[rune]byte, Size)}
	for i, r := range t.symbols {
		rev.bytes[r] = byte(i)
	}
	return rev
}

// Reverse maps symbols back to byte values.
type Reverse struct {
	bytes map[rune]byte
}

// BuildReverse is shorthand for Build(token).Reverse().
func BuildReverse(token string) *Reverse {
	return Build(token).Reverse()
}

// Byte returns the byte value for r, or false when r is not a table symbol.
func (r *Reverse) Byte(sym rune) (byte, bool) {
	b, ok := r.bytes[sym]
	return b, ok
}

// Len reports the number of distinct symbols in the reverse table.
func (r *Reverse) Len() int {
	return len(r.bytes)
}
