// Package redact masks secrets before they reach audit logs.
package redact

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	neverPersistKey = "never_persist"
	redactedSecret  = "[REDACTED_SECRET]"
)

var (
	kvSecretRe  = regexp.MustCompile(`(?i)((?:token|secret|key|password)\s*[:=]\s*)(['\"]?)([^\s'\"]{3,})(['\"]?)`)
	longTokenRe = regexp.MustCompile(`\b[A-Za-z0-9+/]{32,}={0,2}`)
)

// String masks key=value secrets and long opaque strings such as Base64 runs.
func String(in string) string {
	if strings.TrimSpace(in) == "" {
		return in
	}
	masked := kvSecretRe.ReplaceAllString(in, `$1$2`+redactedSecret+`$4`)
	return longTokenRe.ReplaceAllString(masked, redactedSecret)
}

// Secrets masks every literal occurrence of the given secrets before applying
// String. Longer secrets are replaced first so overlapping values mask fully.
func Secrets(in string, secrets ...string) string {
	if len(secrets) > 0 {
		ordered := make([]string, 0, len(secrets))
		for _, s := range secrets {
			if s != "" {
				ordered = append(ordered, s)
			}
		}
		sort.Slice(ordered, func(i, j int) bool { return len(ordered[i]) > len(ordered[j]) })
		for _, s := range ordered {
			in = strings.ReplaceAll(in, s, redactedSecret)
		}
	}
	return String(in)
}

// Value redacts strings found in value, descending into slices and maps.
func Value(value any, secrets ...string) any {
	switch v := value.(type) {
	case string:
		return Secrets(v, secrets...)
	case fmt.Stringer:
		return Secrets(v.String(), secrets...)
	case []string:
		out := make([]string, len(v))
		for i, s := range v {
			out[i] = Secrets(s, secrets...)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = Value(elem, secrets...)
		}
		return out
	case map[string]any:
		return Map(v, secrets...)
	default:
		return value
	}
}

// Map redacts every value of in. Keys listed under "never_persist" are
// replaced outright and the never_persist entry itself is dropped.
func Map(in map[string]any, secrets ...string) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	var mask []string
	for k, v := range in {
		if strings.EqualFold(k, neverPersistKey) {
			mask = append(mask, neverPersistKeys(v)...)
			continue
		}
		out[k] = Value(v, secrets...)
	}
	for _, key := range mask {
		for k := range out {
			if strings.EqualFold(k, key) {
				out[k] = redactedSecret
			}
		}
	}
	return out
}

func neverPersistKeys(value any) []string {
	var raw []string
	switch v := value.(type) {
	case string:
		raw = strings.Split(v, ",")
	case []string:
		raw = v
	case []any:
		for _, elem := range v {
			raw = append(raw, fmt.Sprint(elem))
		}
	}
	out := make([]string, 0, len(raw))
	for _, k := range raw {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
