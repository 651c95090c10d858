package pipeline

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

// Marker widths stripped from list and quote lines.
const (
	quoteMarkerWidth     = 2 // "> "
	unorderedMarkerWidth = 2 // "* " or "- "
	orderedMarkerWidth   = 3 // "1. "
)

// RenderBlock converts one block into its HTML subtree.
func RenderBlock(block string) (htmlnode.Node, error) {
	switch t := Classify(block); t {
	case BlockParagraph:
		return renderParagraph(block)
	case BlockHeading:
		return renderHeading(block)
	case BlockCode:
		return renderCode(block)
	case BlockQuote:
		return renderQuote(block)
	case BlockUnorderedList:
		return renderList(block, "ul", unorderedMarkerWidth)
	case BlockOrderedList:
		return renderList(block, "ol", orderedMarkerWidth)
	default:
		return nil, fmt.Errorf("%w: unhandled block type %s", ErrType, t)
	}
}

func renderParagraph(block string) (htmlnode.Node, error) {
	return inlineLeaf("p", block)
}

// renderHeading counts leading "#" as the level; the level is not capped.
func renderHeading(block string) (htmlnode.Node, error) {
	level := len(block) - len(strings.TrimLeft(block, "#"))
	return inlineLeaf(fmt.Sprintf("h%d", level), dropRunes(block, level+1))
}

// renderCode strips the fences; code content is never inline-rendered.
func renderCode(block string) (htmlnode.Node, error) {
	var content string
	if len(block) >= 2*len(codeFence) {
		content = block[len(codeFence) : len(block)-len(codeFence)]
	}
	code, err := htmlnode.NewLeaf("code", content, nil)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("pre", []htmlnode.Node{code}, nil), nil
}

func renderQuote(block string) (htmlnode.Node, error) {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = dropRunes(line, quoteMarkerWidth)
	}
	return inlineLeaf("blockquote", strings.Join(lines, "\n"))
}

// renderList emits one literal li per line; items are not inline-rendered.
func renderList(block, tag string, markerWidth int) (htmlnode.Node, error) {
	lines := strings.Split(block, "\n")
	items := make([]htmlnode.Node, 0, len(lines))
	for _, line := range lines {
		li, err := htmlnode.NewLeaf("li", dropRunes(line, markerWidth), nil)
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return htmlnode.NewParent(tag, items, nil), nil
}

// dropRunes removes the first n runes of s.
func dropRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}
