package pipeline

import (
	"fmt"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

// Kind identifies the inline style of a Span.
type Kind int

// Span kinds.
const (
	KindText Kind = iota
	KindBold
	KindItalic
	KindCode
	KindLink
	KindImage
)

var kindNames = [...]string{
	KindText:   "text",
	KindBold:   "bold",
	KindItalic: "italic",
	KindCode:   "code",
	KindLink:   "link",
	KindImage:  "image",
}

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) valid() bool {
	return k >= KindText && k <= KindImage
}

// hasTarget reports whether spans of this kind carry a URL.
func (k Kind) hasTarget() bool {
	return k == KindLink || k == KindImage
}

// Span is one classified fragment of inline text.
// Content is the display text (label for links, alt text for images).
// Target is the URL of a link or image; empty means no target.
type Span struct {
	Kind    Kind
	Content string
	Target  string
}

// NewSpan creates a validated span.
// Returns ErrType for unknown kinds or a target on a kind that cannot carry one.
func NewSpan(kind Kind, content, target string) (Span, error) {
	if !kind.valid() {
		return Span{}, fmt.Errorf("%w: %s", ErrType, kind)
	}
	if target != "" && !kind.hasTarget() {
		return Span{}, fmt.Errorf("%w: %s span cannot have target %q", ErrType, kind, target)
	}
	return Span{Kind: kind, Content: content, Target: target}, nil
}

// Text returns a plain text span.
func Text(s string) Span { return Span{Kind: KindText, Content: s} }

// Bold returns a bold span.
func Bold(s string) Span { return Span{Kind: KindBold, Content: s} }

// Italic returns an italic span.
func Italic(s string) Span { return Span{Kind: KindItalic, Content: s} }

// Code returns an inline code span.
func Code(s string) Span { return Span{Kind: KindCode, Content: s} }

// Link returns a link span.
func Link(label, url string) Span { return Span{Kind: KindLink, Content: label, Target: url} }

// Image returns an image span.
func Image(alt, url string) Span { return Span{Kind: KindImage, Content: alt, Target: url} }

func (s Span) String() string {
	if s.Target != "" {
		return fmt.Sprintf("Span(%s, %q, %q)", s.Kind, s.Content, s.Target)
	}
	return fmt.Sprintf("Span(%s, %q)", s.Kind, s.Content)
}

// SpanToLeaf converts a span to its HTML leaf node.
func SpanToLeaf(s Span) (*htmlnode.Leaf, error) {
	switch s.Kind {
	case KindText:
		return htmlnode.NewLeaf("", s.Content, nil)
	case KindBold:
		return htmlnode.NewLeaf("b", s.Content, nil)
	case KindItalic:
		return htmlnode.NewLeaf("i", s.Content, nil)
	case KindCode:
		return htmlnode.NewLeaf("code", s.Content, nil)
	case KindLink:
		var props htmlnode.Props
		if s.Target != "" {
			props = htmlnode.Props{{Key: "href", Value: s.Target}}
		}
		return htmlnode.NewLeaf("a", s.Content, props)
	case KindImage:
		return htmlnode.NewVoid("img", htmlnode.Props{
			{Key: "alt", Value: s.Content},
			{Key: "src", Value: s.Target},
		}), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrType, s.Kind)
	}
}
