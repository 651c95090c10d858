package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

// documentTag wraps every block of a converted document.
const documentTag = "div"

var titlePattern = regexp.MustCompile(`<h1>(.+?)</h1>`)

// ConvertDocument converts markdown into a single div subtree.
// The first failing block aborts the whole document.
func ConvertDocument(markdown string) (*htmlnode.Parent, error) {
	blocks := SplitBlocks(Preprocess(markdown))

	children := make([]htmlnode.Node, 0, len(blocks))
	for _, block := range blocks {
		node, err := RenderBlock(block)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}

	return htmlnode.NewParent(documentTag, children, nil), nil
}

// ExtractTitle returns the inner text of the first h1 in serialized HTML.
// Lines are scanned in order; returns ErrSyntax wrapping ErrNoTitle when absent.
func ExtractTitle(html string) (string, error) {
	for _, line := range strings.Split(html, "\n") {
		if m := titlePattern.FindStringSubmatch(line); m != nil {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("%w: %w", ErrSyntax, ErrNoTitle)
}
