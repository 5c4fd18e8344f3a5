package cipher

import "errors"

// Error classes returned by Encode and Decode. Match them with errors.Is; the
// returned errors wrap one of these with detail.
var (
	// ErrValidation reports caller-correctable input: empty text or token,
	// oversized text, text that is not valid UTF-8.
	ErrValidation = errors.New("invalid input")

	// ErrFormat reports a document whose bracketed sections cannot be found.
	ErrFormat = errors.New("malformed document")

	// ErrDecode reports a parseable document whose payload does not rebuild
	// into valid Base64 and UTF-8, typically because the token is wrong.
	ErrDecode = errors.New("corrupt payload")
)
