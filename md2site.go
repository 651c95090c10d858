package md2site

import (
	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Node tree types produced by ConvertDocument.
type (
	Node   = htmlnode.Node
	Leaf   = htmlnode.Leaf
	Parent = htmlnode.Parent
	Attr   = htmlnode.Attr
	Props  = htmlnode.Props
)

// Template placeholders replaced by RenderPage.
const (
	TitlePlaceholder   = pipeline.TitlePlaceholder
	ContentPlaceholder = pipeline.ContentPlaceholder
)

// ConvertDocument converts markdown into a div holding one subtree per block.
// The first block that fails aborts the conversion.
func ConvertDocument(markdown string) (*Parent, error) {
	return pipeline.ConvertDocument(markdown)
}

// Serialize renders a node tree as HTML.
func Serialize(node Node) (string, error) {
	return htmlnode.Serialize(node)
}

// ExtractTitle returns the inner HTML of the first <h1> element.
// Returns an error wrapping ErrSyntax and ErrNoTitle when there is none.
func ExtractTitle(html string) (string, error) {
	return pipeline.ExtractTitle(html)
}

// RenderPage substitutes title and content into template.
// Only the first occurrence of each placeholder is replaced; nothing is escaped.
func RenderPage(template, title, content string) string {
	return pipeline.FillTemplate(template, title, content)
}

// MarkdownToHTML converts and serializes markdown in one step.
func MarkdownToHTML(markdown string) (string, error) {
	root, err := ConvertDocument(markdown)
	if err != nil {
		return "", err
	}
	return Serialize(root)
}
