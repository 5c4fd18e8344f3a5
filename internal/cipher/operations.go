package cipher

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parameter names understood by the culture operations.
const (
	ParamToken       = "token"
	ParamTimestampMS = "timestamp_ms"
)

// Base64EncodeOp encodes data as standard Base64
type Base64EncodeOp struct {
	BaseOperation
}

func (op *Base64EncodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	return []byte(base64.StdEncoding.EncodeToString(input)), nil
}

// Base64DecodeOp decodes standard Base64 data
type Base64DecodeOp struct {
	BaseOperation
}

func (op *Base64DecodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(input)))
	if err != nil {
		return nil, fmt.Errorf("base64 decode failed: %w", err)
	}
	return decoded, nil
}

// CultureEncodeOp turns text into a culture document. Params: token
// (required), timestamp_ms (optional; pins the header timestamp).
type CultureEncodeOp struct {
	BaseOperation
	Codec *Codec
}

func (op *CultureEncodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	token, err := tokenParam(params)
	if err != nil {
		return nil, err
	}

	codec := codecOrDefault(op.Codec)
	if raw, ok := params[ParamTimestampMS]; ok {
		ms, err := int64Param(ParamTimestampMS, raw)
		if err != nil {
			return nil, err
		}
		codec = codec.withClock(func() time.Time { return time.UnixMilli(ms) })
	}

	doc, err := codec.Encode(string(input), token)
	if err != nil {
		return nil, err
	}
	return []byte(doc), nil
}

func codecOrDefault(c *Codec) *Codec {
	if c != nil {
		return c
	}
	return defaultCodec()
}

// CultureDecodeOp turns a culture document back into text. Params: token.
type CultureDecodeOp struct {
	BaseOperation
	Codec *Codec
}

func (op *CultureDecodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	token, err := tokenParam(params)
	if err != nil {
		return nil, err
	}
	text, err := codecOrDefault(op.Codec).Decode(strings.TrimSpace(string(input)), token)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

func tokenParam(params map[string]interface{}) (string, error) {
	raw, ok := params[ParamToken]
	if !ok {
		return "", fmt.Errorf("%w: %s parameter is required", ErrValidation, ParamToken)
	}
	token, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s parameter must be a string, got %T", ErrValidation, ParamToken, raw)
	}
	return token, nil
}

// int64Param accepts the shapes a timestamp arrives in from Go callers and
// from JSON-decoded recipes.
func int64Param(name string, raw interface{}) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s parameter: %v", ErrValidation, name, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s parameter has unsupported type %T", ErrValidation, name, raw)
	}
}

// NewCultureOperations returns an encode/decode pair bound to codec, each
// the reverse of the other.
func NewCultureOperations(codec *Codec) (*CultureEncodeOp, *CultureDecodeOp) {
	encode := &CultureEncodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "culture_encode",
			TypeValue:        OperationTypeEncode,
			DescriptionValue: "Encode text as a culture document keyed by a token",
		},
		Codec: codec,
	}
	decode := &CultureDecodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "culture_decode",
			TypeValue:        OperationTypeDecode,
			DescriptionValue: "Decode a culture document back into text",
		},
		Codec: codec,
	}
	encode.ReverseOp = decode
	decode.ReverseOp = encode
	return encode, decode
}

// init registers the built-in operations
func init() {
	base64Encode := &Base64EncodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "base64_encode",
			TypeValue:        OperationTypeEncode,
			DescriptionValue: "Encode data as standard Base64",
		},
	}
	base64Decode := &Base64DecodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "base64_decode",
			TypeValue:        OperationTypeDecode,
			DescriptionValue: "Decode standard Base64 data",
		},
	}
	base64Encode.ReverseOp = base64Decode
	base64Decode.ReverseOp = base64Encode

	// nil codec: resolved lazily to the default codec on first use.
	cultureEncode, cultureDecode := NewCultureOperations(nil)

	RegisterOperation(base64Encode)
	RegisterOperation(base64Decode)
	RegisterOperation(cultureEncode)
	RegisterOperation(cultureDecode)
}
