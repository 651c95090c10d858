package pipeline

import "errors"

// Sentinel errors for markdown conversion.
var (
	// ErrSyntax indicates malformed inline markup or a missing title heading.
	ErrSyntax = errors.New("markdown syntax error")

	// ErrType indicates a span carries a kind outside the recognized set.
	ErrType = errors.New("invalid span type")

	// ErrNoTitle indicates the document has no level-1 heading.
	ErrNoTitle = errors.New("no h1 heading found")
)
