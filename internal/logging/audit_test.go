package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestAuditLoggerEmit(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := NewAuditLogger("test", WithoutStdout(), WithWriter(buf))
	if err != nil {
		t.Fatalf("NewAuditLogger: %v", err)
	}

	event := AuditEvent{EventType: EventEncode, Outcome: OutcomeSuccess}
	if err := logger.Emit(event); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	var decoded AuditEvent
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}

	if decoded.Component != "test" {
		t.Fatalf("expected component 'test', got %q", decoded.Component)
	}
	if decoded.EventType != EventEncode {
		t.Fatalf("expected event type %q, got %q", EventEncode, decoded.EventType)
	}
	if decoded.Outcome != OutcomeSuccess {
		t.Fatalf("expected outcome %q, got %q", OutcomeSuccess, decoded.Outcome)
	}
	if decoded.Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be set")
	}
	if _, err := ulid.ParseStrict(decoded.EventID); err != nil {
		t.Fatalf("expected a ULID event id, got %q: %v", decoded.EventID, err)
	}
}

func TestAuditLoggerEventIDUsesTimestamp(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := MustNewAuditLogger("test", WithoutStdout(), WithWriter(buf))

	ts := time.Date(2024, 9, 1, 8, 30, 0, 0, time.UTC)
	if err := logger.Emit(AuditEvent{EventType: EventDecode, Timestamp: ts}); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	var decoded AuditEvent
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	id, err := ulid.ParseStrict(decoded.EventID)
	if err != nil {
		t.Fatalf("ParseStrict: %v", err)
	}
	if got := ulid.Time(id.Time()); !got.Equal(ts) {
		t.Fatalf("expected ULID time %s, got %s", ts, got)
	}
}

func TestAuditLoggerRedactsSecrets(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := MustNewAuditLogger("cipher", WithoutStdout(), WithWriter(buf))

	err := logger.Emit(AuditEvent{
		EventType: EventDecode,
		Outcome:   OutcomeFailure,
		Reason:    "decode with key 海门2024 failed",
		Metadata:  map[string]any{"note": "token 海门2024 rejected", "blocks": 2},
		Secrets:   []string{"海门2024"},
	})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "海门2024") {
		t.Fatalf("secret leaked into audit log: %s", out)
	}
	if strings.Contains(out, "Secrets") || strings.Contains(out, "secrets") {
		t.Fatalf("secrets field must not be serialised: %s", out)
	}
	if !strings.Contains(out, `"blocks":2`) {
		t.Fatalf("expected metadata to be preserved: %s", out)
	}
}

func TestAuditLoggerWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	logger, err := NewAuditLogger("cipher", WithoutStdout(), WithFile(path))
	if err != nil {
		t.Fatalf("NewAuditLogger: %v", err)
	}
	child := logger.WithComponent("cli")
	if err := child.Emit(AuditEvent{EventType: EventCatalogLoad}); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := child.Close(); err != nil {
		t.Fatalf("child Close: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read audit file: %v", err)
	}
	var decoded AuditEvent
	if err := json.Unmarshal(bytes.TrimSpace(data), &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if decoded.Component != "cli" {
		t.Fatalf("expected component 'cli', got %q", decoded.Component)
	}
}

func TestNewAuditLoggerRequiresWriter(t *testing.T) {
	if _, err := NewAuditLogger("test", WithoutStdout()); err == nil {
		t.Fatalf("expected error when no writers are configured")
	}
	if _, err := NewAuditLogger("test", WithWriter(nil)); err == nil {
		t.Fatalf("expected error for nil writer")
	}
	if _, err := NewAuditLogger("test", WithFile("  ")); err == nil {
		t.Fatalf("expected error for empty file path")
	}
}

func TestNilLoggerEmit(t *testing.T) {
	var logger *AuditLogger
	if err := logger.Emit(AuditEvent{}); err == nil {
		t.Fatalf("expected error from nil logger")
	}
}
