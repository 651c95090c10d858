package md2site

import (
	"errors"

	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Conversion errors. All failures wrap one of these and are testable with errors.Is.
var (
	// ErrSyntax reports malformed markdown: an unbalanced inline delimiter,
	// or a document without a level-one heading when a title is required.
	ErrSyntax = pipeline.ErrSyntax

	// ErrType reports an unknown span or block kind.
	ErrType = pipeline.ErrType

	// ErrValue reports a node that cannot be rendered, such as a heading
	// marker with no text or an empty document.
	ErrValue = htmlnode.ErrValue

	// ErrNoTitle is wrapped together with ErrSyntax by ExtractTitle.
	ErrNoTitle = pipeline.ErrNoTitle
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown    = errors.New("markdown content cannot be empty")
	ErrInvalidTemplate  = errors.New("template has no content placeholder")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrPostProcess      = errors.New("post-processing failed")
)
