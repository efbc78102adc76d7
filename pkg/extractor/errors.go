// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extractor

import "errors"

// Error classes. Every error the runtime returns wraps one of these.
var (
	// ErrIO reports that the input or output channel could not be fully read or written.
	ErrIO = errors.New("extractor io error")

	// ErrParse reports that a document is not well-formed JSON: the input
	// did not parse, or an accumulated value cannot be encoded.
	ErrParse = errors.New("extractor parse error")
)
