package env

import (
	"fmt"
	"testing"
)

func TestLookupPrefersCurrentName(t *testing.T) {
	t.Setenv("CULTURECIPHER_TOKEN", "current")
	t.Setenv("HAIMEN_TOKEN", "legacy")

	got, ok := Lookup("CULTURECIPHER_TOKEN", "HAIMEN_TOKEN")
	if !ok || got != "current" {
		t.Fatalf("expected current value, got %q (ok=%t)", got, ok)
	}
}

func TestLookupFallsBackToLegacyAndWarnsOnce(t *testing.T) {
	ResetWarningsForTesting()
	var warnings []string
	restore := SetWarnLoggerForTesting(func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	})
	defer restore()

	t.Setenv("HAIMEN_CATALOG", "/tmp/catalog.yml")

	for i := 0; i < 3; i++ {
		got, ok := Lookup("CULTURECIPHER_CATALOG", "HAIMEN_CATALOG")
		if !ok || got != "/tmp/catalog.yml" {
			t.Fatalf("expected legacy value, got %q (ok=%t)", got, ok)
		}
	}
	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d: %v", len(warnings), warnings)
	}
	if want := "HAIMEN_CATALOG is deprecated; use CULTURECIPHER_CATALOG"; warnings[0] != want {
		t.Fatalf("unexpected warning %q", warnings[0])
	}
}

func TestLookupMissing(t *testing.T) {
	if _, ok := Lookup("CULTURECIPHER_TEST_UNSET_KEY", "HAIMEN_TEST_UNSET_KEY"); ok {
		t.Fatalf("expected lookup to fail")
	}
}
