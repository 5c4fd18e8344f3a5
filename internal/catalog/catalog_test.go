package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/RowanDark/culturecipher/internal/mapping"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Name() != DefaultName {
		t.Fatalf("expected name %q, got %q", DefaultName, c.Name())
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}

	digits := c.DigitAlphabet()
	if len(digits) != 44 {
		t.Fatalf("expected 44 digit tokens, got %d", len(digits))
	}
	buildings := c.Buildings()
	for i := 0; i < DigitCount; i++ {
		if digits[i] != buildings[i] {
			t.Fatalf("digit %d: expected %q, got %q", i, buildings[i], digits[i])
		}
	}

	payload := c.PayloadAlphabet()
	if len(payload) != 63 {
		t.Fatalf("expected radix 63, got %d", len(payload))
	}
	if payload[len(payload)-1] != "底蕴深厚的" {
		t.Fatalf("unexpected last payload token %q", payload[len(payload)-1])
	}
	if len(c.Templates()) != 5 {
		t.Fatalf("expected 5 templates, got %d", len(c.Templates()))
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Fatalf("expected Default to return the same catalog")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()
	alphabet := c.PayloadAlphabet()
	alphabet[0] = "mutated"
	buildings := c.Buildings()
	buildings[1] = "mutated"

	if c.PayloadAlphabet()[0] == "mutated" || c.Buildings()[1] == "mutated" {
		t.Fatalf("catalog was mutated through an accessor")
	}
}

func TestReservedGlyphsAbsent(t *testing.T) {
	for _, token := range Default().PayloadAlphabet() {
		if strings.ContainsAny(token, ReservedGlyphs) {
			t.Fatalf("token %q contains a reserved glyph", token)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Spec)
		want   string
	}{
		{
			name:   "reserved glyph",
			mutate: func(s *Spec) { s.Verbs[0] = "走、过" },
			want:   "reserved glyph",
		},
		{
			name:   "duplicate token",
			mutate: func(s *Spec) { s.Adjectives[0] = s.Buildings[0] },
			want:   "duplicates",
		},
		{
			name:   "empty list",
			mutate: func(s *Spec) { s.Nature = nil },
			want:   "nature: list is empty",
		},
		{
			name:   "empty fragment",
			mutate: func(s *Spec) { s.Motto[2] = "  " },
			want:   "fragment is empty",
		},
		{
			name:   "not normalised",
			mutate: func(s *Spec) { s.History[0] = "cafe\u0301" },
			want:   "NFC",
		},
		{
			name:   "bracket in template",
			mutate: func(s *Spec) { s.Templates[0] = "【{building}】" },
			want:   "document bracket",
		},
		{
			name:   "no templates",
			mutate: func(s *Spec) { s.Templates = nil },
			want:   "templates: list is empty",
		},
		{
			name: "too few digits",
			mutate: func(s *Spec) {
				s.Buildings = []string{"甲"}
				s.History = []string{"乙"}
				s.Motto = []string{"丙"}
				s.Activities = []string{"丁"}
				s.Nature = []string{"戊"}
			},
			want: "digit alphabet",
		},
		{
			name: "payload radix too small",
			mutate: func(s *Spec) {
				s.Buildings = []string{"甲", "乙", "丙", "丁", "戊", "己"}
				s.History = []string{"庚"}
				s.Motto = []string{"辛"}
				s.Activities = []string{"壬"}
				s.Nature = []string{"癸"}
				s.Verbs = []string{"走过"}
				s.Adjectives = []string{"安静的"}
			},
			want: "payload alphabet needs at least 15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := HaimenSpec()
			tt.mutate(&spec)
			_, err := New(spec)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	spec := HaimenSpec()
	c, err := New(spec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	spec.Buildings[0] = "changed"
	if c.Buildings()[0] == "changed" {
		t.Fatalf("catalog shares backing array with its spec")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(Default())
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Default().PayloadAlphabet()
	got := parsed.PayloadAlphabet()
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")
	doc := `name: tiny
buildings: [甲楼, 乙楼, 丙楼, 丁楼, 戊楼, 己楼, 庚楼, 辛楼, 壬楼, 癸楼]
history: [建校]
motto: [求是]
activities: [运动会]
nature: [银杏]
verbs: [走过]
adjectives: [安静的]
templates:
  - "{verb}{adjective}{building}。"
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Name() != "tiny" {
		t.Fatalf("expected name tiny, got %q", c.Name())
	}
	if got := len(c.PayloadAlphabet()); got != 16 {
		t.Fatalf("expected 16 payload tokens, got %d", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatalf("expected error for missing catalog")
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("buildings: [unterminated")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestMinPayloadTokensCoversMapping(t *testing.T) {
	top := int(mapping.MaxSymbol())
	pow4 := func(n int) int { return n * n * n * n }
	if pow4(MinPayloadTokens) <= top {
		t.Fatalf("radix %d cannot reach %U", MinPayloadTokens, top)
	}
	if pow4(MinPayloadTokens-1) > top {
		t.Fatalf("radix %d would already reach %U", MinPayloadTokens-1, top)
	}
}
