package xmlcodec

import "errors"

// Codec errors. Decode failures wrap one of these sentinels with
// context about the offending element; use errors.Is to classify.
var (
	// ErrMissingVariantTag indicates a union element contained no child
	// with a registered variant name.
	ErrMissingVariantTag = errors.New("no recognized variant element")

	// ErrUnexpectedShape indicates a leaf element was neither bare text
	// nor a single text-content child.
	ErrUnexpectedShape = errors.New("unexpected element shape")

	// ErrInvalidNumber indicates leaf text failed floating-point parsing.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrMalformedDocument indicates the XML tokenizer rejected the
	// document (unclosed tags, bad syntax, missing root).
	ErrMalformedDocument = errors.New("malformed document")
)
