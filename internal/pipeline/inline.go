package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

// Inline delimiters, applied in this order.
const (
	boldDelimiter   = "**"
	italicDelimiter = "*"
	codeDelimiter   = "`"
)

var (
	imagePattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)

	// RE2 has no lookbehind: link candidates preceded by "!" are
	// rejected by findLinks.
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// Ref is a label/URL pair extracted from image or link syntax.
type Ref struct {
	Label string
	URL   string
}

// Tokenize splits text into inline spans.
// Passes run bold, italic, code, images, then links; a span typed by an
// earlier pass is never re-inspected. An unbalanced delimiter returns ErrSyntax.
func Tokenize(text string) ([]Span, error) {
	spans := []Span{Text(text)}

	var err error
	for _, d := range []struct {
		delim string
		kind  Kind
	}{
		{boldDelimiter, KindBold},
		{italicDelimiter, KindItalic},
		{codeDelimiter, KindCode},
	} {
		spans, err = splitDelimiter(spans, d.delim, d.kind)
		if err != nil {
			return nil, err
		}
	}

	spans = splitMatches(spans, findImages, KindImage)
	spans = splitMatches(spans, findLinks, KindLink)
	return spans, nil
}

// splitDelimiter splits every text span on delim, alternating text and kind.
func splitDelimiter(spans []Span, delim string, kind Kind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != KindText {
			out = append(out, s)
			continue
		}

		parts := strings.Split(s.Content, delim)
		switch len(parts) {
		case 1:
			out = append(out, s)
			continue
		case 2:
			return nil, fmt.Errorf("%w: unbalanced %q in %q", ErrSyntax, delim, s.Content)
		}

		styled := false
		for _, p := range parts {
			if p != "" {
				if styled {
					out = append(out, Span{Kind: kind, Content: p})
				} else {
					out = append(out, Text(p))
				}
			}
			styled = !styled
		}
	}
	return out, nil
}

// matchFinder returns submatch index slices for label and URL groups.
type matchFinder func(text string) [][]int

// splitMatches replaces matches inside text spans with spans of kind.
func splitMatches(spans []Span, find matchFinder, kind Kind) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != KindText {
			out = append(out, s)
			continue
		}

		matches := find(s.Content)
		if len(matches) == 0 {
			out = append(out, s)
			continue
		}

		text := s.Content
		pos := 0
		for _, m := range matches {
			if before := text[pos:m[0]]; before != "" {
				out = append(out, Text(before))
			}
			out = append(out, Span{Kind: kind, Content: text[m[2]:m[3]], Target: text[m[4]:m[5]]})
			pos = m[1]
		}
		if rest := text[pos:]; rest != "" {
			out = append(out, Text(rest))
		}
	}
	return out
}

func findImages(text string) [][]int {
	return imagePattern.FindAllStringSubmatchIndex(text, -1)
}

// findLinks finds link syntax not preceded by "!".
func findLinks(text string) [][]int {
	var out [][]int
	for off := 0; off < len(text); {
		loc := linkPattern.FindStringSubmatchIndex(text[off:])
		if loc == nil {
			break
		}
		for i := range loc {
			loc[i] += off
		}
		if loc[0] > 0 && text[loc[0]-1] == '!' {
			off = loc[0] + 1
			continue
		}
		out = append(out, loc)
		off = loc[1]
	}
	return out
}

func toRefs(text string, matches [][]int) []Ref {
	refs := make([]Ref, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, Ref{Label: text[m[2]:m[3]], URL: text[m[4]:m[5]]})
	}
	return refs
}

// ExtractImages returns every ![label](url) in text, left to right.
func ExtractImages(text string) []Ref {
	return toRefs(text, findImages(text))
}

// ExtractLinks returns every [label](url) in text that is not image syntax.
func ExtractLinks(text string) []Ref {
	return toRefs(text, findLinks(text))
}

// InlineHTML tokenizes text and concatenates the HTML of every span.
func InlineHTML(text string) (string, error) {
	spans, err := Tokenize(text)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, s := range spans {
		leaf, err := SpanToLeaf(s)
		if err != nil {
			return "", err
		}
		b.WriteString(leaf.HTML())
	}
	return b.String(), nil
}

// inlineLeaf wraps rendered inline HTML in a single tagged leaf.
func inlineLeaf(tag, text string) (*htmlnode.Leaf, error) {
	value, err := InlineHTML(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewLeaf(tag, value, nil)
}
