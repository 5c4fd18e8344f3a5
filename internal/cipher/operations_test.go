package cipher

import (
	"context"
	"errors"
	"testing"
)

func TestBase64Operations(t *testing.T) {
	ctx := context.Background()
	encode, _ := GetOperation("base64_encode")
	decode, _ := GetOperation("base64_decode")

	encoded, err := encode.Execute(ctx, []byte("Hello, World!"), nil)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if string(encoded) != "SGVsbG8sIFdvcmxkIQ==" {
		t.Fatalf("unexpected encoding %q", encoded)
	}

	decoded, err := decode.Execute(ctx, append(encoded, '\n'), nil)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if string(decoded) != "Hello, World!" {
		t.Fatalf("unexpected decoding %q", decoded)
	}

	if _, err := decode.Execute(ctx, []byte("not base64!"), nil); err == nil {
		t.Fatal("expected error for invalid base64")
	}
}

func TestCultureOperationsRoundTrip(t *testing.T) {
	ctx := context.Background()
	encode, _ := GetOperation("culture_encode")
	decode, _ := GetOperation("culture_decode")
	params := map[string]interface{}{ParamToken: "key", ParamTimestampMS: int64(1700000000123)}

	doc, err := encode.Execute(ctx, []byte("海门中学"), params)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	text, err := decode.Execute(ctx, doc, params)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if string(text) != "海门中学" {
		t.Fatalf("expected round-trip, got %q", text)
	}
}

func TestCultureEncodeTimestampParam(t *testing.T) {
	ctx := context.Background()
	encode, _ := GetOperation("culture_encode")
	codec := newTestCodec(t)

	for _, raw := range []interface{}{1700000000123, int64(1700000000123), float64(1700000000123), " 1700000000123 "} {
		doc, err := encode.Execute(ctx, []byte("pinned"), map[string]interface{}{
			ParamToken:       "key",
			ParamTimestampMS: raw,
		})
		if err != nil {
			t.Fatalf("encode with %T failed: %v", raw, err)
		}
		parsed, err := codec.Inspect(string(doc))
		if err != nil {
			t.Fatalf("Inspect: %v", err)
		}
		if parsed.Timestamp != "1700000000123" {
			t.Fatalf("timestamp %T: expected pinned value, got %q", raw, parsed.Timestamp)
		}
	}
}

func TestCultureOperationParamErrors(t *testing.T) {
	ctx := context.Background()
	encode, _ := GetOperation("culture_encode")
	decode, _ := GetOperation("culture_decode")

	tests := []struct {
		name   string
		op     Operation
		params map[string]interface{}
	}{
		{"encode missing token", encode, nil},
		{"encode non-string token", encode, map[string]interface{}{ParamToken: 42}},
		{"encode bad timestamp", encode, map[string]interface{}{ParamToken: "k", ParamTimestampMS: "soon"}},
		{"encode timestamp type", encode, map[string]interface{}{ParamToken: "k", ParamTimestampMS: true}},
		{"decode missing token", decode, map[string]interface{}{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.op.Execute(ctx, []byte("input"), tt.params)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestNewCultureOperationsBindCodec(t *testing.T) {
	codec := newTestCodec(t)
	encode, decode := NewCultureOperations(codec)
	if encode.Codec != codec || decode.Codec != codec {
		t.Fatal("expected operations to use the supplied codec")
	}
	if rev, ok := encode.Reverse(); !ok || rev.Name() != "culture_decode" {
		t.Fatalf("expected culture_decode as reverse, got %v", rev)
	}

	ctx := context.Background()
	params := map[string]interface{}{ParamToken: "bound"}
	doc, err := encode.Execute(ctx, []byte("bound codec"), params)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	parsed, _ := codec.Inspect(string(doc))
	if parsed.Timestamp != "1700000000123" {
		t.Fatalf("expected the codec clock to be used, got %q", parsed.Timestamp)
	}
	text, err := decode.Execute(ctx, doc, params)
	if err != nil || string(text) != "bound codec" {
		t.Fatalf("decode failed: %q, %v", text, err)
	}
}
