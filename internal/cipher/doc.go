// Package cipher turns text into culture documents and back.
//
// # Overview
//
// A culture document reads as a run of decorative sentences about a school
// with bracketed code sections mixed in:
//
//	<sentence>〖<timestamp digits>〗<sentence>【<block>】<sentence>【<block>】...
//
// Encoding is keyed by a token. The text is converted to UTF-8, then Base64,
// then cut into blocks of 256 characters. Each block goes through a
// substitution table derived from the token, and every substituted rune is
// written as a group of catalog words in a positional number system.
//
// # Quick Start
//
//	doc, err := cipher.Encode("Hello, 世界", "my-token")
//	if err != nil {
//	    return err
//	}
//
//	text, err := cipher.Decode(doc, "my-token")
//
// Decoding with the wrong token does not report an error. It returns
// unrelated text, or fails with ErrDecode when the recovered bytes are not
// valid Base64 or UTF-8.
//
// # Codecs
//
// The package-level Encode and Decode use the built-in catalog and the wall
// clock. Build a Codec for anything else:
//
//	codec, err := cipher.New(
//	    cipher.WithCatalog(cat),
//	    cipher.WithClock(func() time.Time { return fixed }),
//	    cipher.WithAuditLogger(audit),
//	)
//
// A Codec is immutable after New and safe for concurrent use. Documents can
// only be decoded with the same catalog they were encoded with.
//
// # Errors
//
// Failures wrap one of three sentinels, so callers branch with errors.Is:
//
//   - ErrValidation: empty or oversized text, invalid UTF-8, empty token
//   - ErrFormat: no timestamp section, or no block sections
//   - ErrDecode: the recovered payload is not Base64 or not UTF-8
//
// # Operations and Pipelines
//
// The codec is also registered as the culture_encode and culture_decode
// operations, next to base64_encode and base64_decode. Operations chain into
// pipelines, and reversible pipelines can be inverted:
//
//	pipeline := &cipher.Pipeline{
//	    Operations: []cipher.OperationConfig{
//	        {Name: "base64_encode"},
//	        {Name: "culture_encode", Parameters: map[string]interface{}{"token": "k"}},
//	    },
//	    Reversible: true,
//	}
//
//	doc, _ := pipeline.Execute(ctx, payload)
//	back, _ := pipeline.Reverse()
//	original, _ := back.Execute(ctx, doc)
//
// Parameters carry over when a pipeline is reversed, so the decode step sees
// the same token. culture_encode also accepts timestamp_ms to pin the header.
package cipher
