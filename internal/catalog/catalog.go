// Package catalog holds the decorative phrase fragments used both for flavor
// sentences and as the token alphabet of the positional encoding.
//
// A Catalog is immutable once constructed. Accessors return copies so callers
// can never reorder an alphabet out from under an encoder.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// ReservedGlyphs lists the document delimiters and separators. No catalog
// fragment may contain any of them.
const ReservedGlyphs = "〖〗【】、，"

// bracketGlyphs may not appear in templates either; separators may.
const bracketGlyphs = "〖〗【】"

// DigitCount is the number of digit-alphabet entries used for decimal digits.
const DigitCount = 10

// MinPayloadTokens is the smallest payload radix whose four-digit groups reach
// every substitution symbol (15^4 > U+9FA4 >= 14^4).
const MinPayloadTokens = 15

// Placeholders recognised in templates.
const (
	PlaceholderBuilding  = "{building}"
	PlaceholderVerb      = "{verb}"
	PlaceholderAdjective = "{adjective}"
	PlaceholderHistory   = "{history}"
	PlaceholderMotto     = "{motto}"
	PlaceholderActivity  = "{activity}"
	PlaceholderNature    = "{nature}"
)

// Catalog is an ordered, validated set of fragment lists.
type Catalog struct {
	name       string
	buildings  []string
	history    []string
	motto      []string
	activities []string
	nature     []string
	verbs      []string
	adjectives []string
	templates  []string
}

// Spec is the serialisable form of a catalog.
type Spec struct {
	Name       string   `yaml:"name"`
	Buildings  []string `yaml:"buildings"`
	History    []string `yaml:"history"`
	Motto      []string `yaml:"motto"`
	Activities []string `yaml:"activities"`
	Nature     []string `yaml:"nature"`
	Verbs      []string `yaml:"verbs"`
	Adjectives []string `yaml:"adjectives"`
	Templates  []string `yaml:"templates"`
}

// New validates spec and returns the corresponding catalog.
func New(spec Spec) (*Catalog, error) {
	c := &Catalog{
		name:       strings.TrimSpace(spec.Name),
		buildings:  clone(spec.Buildings),
		history:    clone(spec.History),
		motto:      clone(spec.Motto),
		activities: clone(spec.Activities),
		nature:     clone(spec.Nature),
		verbs:      clone(spec.Verbs),
		adjectives: clone(spec.Adjectives),
		templates:  clone(spec.Templates),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(spec)
}

// Load reads and parses the YAML catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Validate checks the structural requirements of the positional encoding.
func (c *Catalog) Validate() error {
	lists := []struct {
		name  string
		items []string
	}{
		{"buildings", c.buildings},
		{"history", c.history},
		{"motto", c.motto},
		{"activities", c.activities},
		{"nature", c.nature},
		{"verbs", c.verbs},
		{"adjectives", c.adjectives},
	}

	var errs []error
	seen := make(map[string]string)
	for _, list := range lists {
		if len(list.items) == 0 {
			errs = append(errs, fmt.Errorf("%s: list is empty", list.name))
			continue
		}
		for i, item := range list.items {
			switch {
			case strings.TrimSpace(item) == "":
				errs = append(errs, fmt.Errorf("%s[%d]: fragment is empty", list.name, i))
				continue
			case strings.ContainsAny(item, ReservedGlyphs):
				errs = append(errs, fmt.Errorf("%s[%d]: %q contains a reserved glyph", list.name, i, item))
			case !norm.NFC.IsNormalString(item):
				errs = append(errs, fmt.Errorf("%s[%d]: %q is not NFC normalised", list.name, i, item))
			}
			if prev, dup := seen[item]; dup {
				errs = append(errs, fmt.Errorf("%s[%d]: %q duplicates an entry in %s", list.name, i, item, prev))
				continue
			}
			seen[item] = list.name
		}
	}

	if n := len(c.buildings) + len(c.history) + len(c.motto) + len(c.activities) + len(c.nature); n < DigitCount {
		errs = append(errs, fmt.Errorf("digit alphabet needs at least %d entries, have %d", DigitCount, n))
	}
	if n := len(c.PayloadAlphabet()); n < MinPayloadTokens {
		errs = append(errs, fmt.Errorf("payload alphabet needs at least %d entries, have %d", MinPayloadTokens, n))
	}

	if len(c.templates) == 0 {
		errs = append(errs, errors.New("templates: list is empty"))
	}
	for i, tmpl := range c.templates {
		if strings.TrimSpace(tmpl) == "" {
			errs = append(errs, fmt.Errorf("templates[%d]: template is empty", i))
			continue
		}
		if strings.ContainsAny(tmpl, bracketGlyphs) {
			errs = append(errs, fmt.Errorf("templates[%d]: contains a document bracket", i))
		}
	}

	return errors.Join(errs...)
}

// Name identifies the catalog, e.g. "haimen".
func (c *Catalog) Name() string { return c.name }

func (c *Catalog) Buildings() []string { return clone(c.buildings) }
func (c *Catalog) History() []string { return clone(c.history) }
func (c *Catalog) Motto() []string { return clone(c.motto) }
func (c *Catalog) Activities() []string { return clone(c.activities) }
func (c *Catalog) Nature() []string { return clone(c.nature) }
func (c *Catalog) Verbs() []string { return clone(c.verbs) }
func (c *Catalog) Adjectives() []string { return clone(c.adjectives) }
func (c *Catalog) Templates() []string { return clone(c.templates) }

// DigitAlphabet is buildings, history, motto, activities and nature in that
// order. Only the first DigitCount entries carry meaning.
func (c *Catalog) DigitAlphabet() []string {
	return concat(c.buildings, c.history, c.motto, c.activities, c.nature)
}

// PayloadAlphabet is the digit alphabet followed by verbs and adjectives. Its
// length is the radix of the payload encoding.
func (c *Catalog) PayloadAlphabet() []string {
	return concat(c.buildings, c.history, c.motto, c.activities, c.nature, c.verbs, c.adjectives)
}

// Spec returns the serialisable form of c.
func (c *Catalog) Spec() Spec {
	return Spec{
		Name:       c.name,
		Buildings:  c.Buildings(),
		History:    c.History(),
		Motto:      c.Motto(),
		Activities: c.Activities(),
		Nature:     c.Nature(),
		Verbs:      c.Verbs(),
		Adjectives: c.Adjectives(),
		Templates:  c.Templates(),
	}
}

// MarshalYAML lets a catalog be written back out in the format Parse reads.
func (c *Catalog) MarshalYAML() (any, error) {
	return c.Spec(), nil
}

func clone(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func concat(lists ...[]string) []string {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]string, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
