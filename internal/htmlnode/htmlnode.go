// Package htmlnode models the HTML tree produced by the markdown pipeline.
//
// A tree is made of two node variants:
//   - Leaf: an optional tag wrapping a text value, never children
//   - Parent: a required tag wrapping child nodes, never its own text
//
// Both variants share attribute rendering through Props. Serialization does
// not escape text or attribute values.
package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValue indicates a node violates its construction invariants.
var ErrValue = errors.New("invalid node")

// voidElements renders without a closing tag or value.
var voidElements = map[string]bool{
	"img": true,
	"br":  true,
	"hr":  true,
}

// Node is implemented by *Leaf and *Parent only.
type Node interface {
	isNode()
}

// Attr is a single HTML attribute.
type Attr struct {
	Key   string
	Value string
}

// Props holds attributes in insertion order.
type Props []Attr

// Render returns the attribute string, each pair prefixed by a space.
// Returns "" when there are no attributes.
func (p Props) Render() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range p {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteByte('"')
	}
	return b.String()
}

// Leaf is a node holding direct text content.
// An empty Tag renders the Value as raw text.
type Leaf struct {
	Tag   string
	Value string
	Props Props
}

func (*Leaf) isNode() {}

// NewLeaf creates a leaf node. Returns ErrValue if value is empty.
func NewLeaf(tag, value string, props Props) (*Leaf, error) {
	if value == "" {
		if tag == "" {
			return nil, fmt.Errorf("%w: leaf requires a value", ErrValue)
		}
		return nil, fmt.Errorf("%w: <%s> leaf requires a value", ErrValue, tag)
	}
	return &Leaf{Tag: tag, Value: value, Props: props}, nil
}

// NewVoid creates a valueless leaf for a void element such as img.
// Panics if tag is not a void element (programmer error).
func NewVoid(tag string, props Props) *Leaf {
	if !voidElements[tag] {
		panic("htmlnode: NewVoid called with non-void tag " + tag)
	}
	return &Leaf{Tag: tag, Props: props}
}

// HTML serializes the leaf.
func (l *Leaf) HTML() string {
	if l.Tag == "" {
		return l.Value
	}
	if voidElements[l.Tag] && l.Value == "" {
		return "<" + l.Tag + l.Props.Render() + ">"
	}
	return "<" + l.Tag + l.Props.Render() + ">" + l.Value + "</" + l.Tag + ">"
}

// Parent is a node holding only children.
type Parent struct {
	Tag      string
	Children []Node
	Props    Props
}

func (*Parent) isNode() {}

// NewParent creates a parent node. Invariants are checked at serialization.
func NewParent(tag string, children []Node, props Props) *Parent {
	return &Parent{Tag: tag, Children: children, Props: props}
}

// HTML serializes the parent and its subtree.
// Returns ErrValue if the tag or the children are missing.
func (p *Parent) HTML() (string, error) {
	if p.Tag == "" {
		return "", fmt.Errorf("%w: parent requires a tag", ErrValue)
	}
	if len(p.Children) == 0 {
		return "", fmt.Errorf("%w: <%s> parent requires children", ErrValue, p.Tag)
	}

	var b strings.Builder
	b.WriteString("<" + p.Tag + p.Props.Render() + ">")
	for _, child := range p.Children {
		s, err := Serialize(child)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteString("</" + p.Tag + ">")
	return b.String(), nil
}

// Serialize renders any node to an HTML string.
func Serialize(n Node) (string, error) {
	switch n := n.(type) {
	case *Leaf:
		if n == nil {
			return "", fmt.Errorf("%w: nil leaf", ErrValue)
		}
		return n.HTML(), nil
	case *Parent:
		if n == nil {
			return "", fmt.Errorf("%w: nil parent", ErrValue)
		}
		return n.HTML()
	default:
		return "", fmt.Errorf("%w: unknown node type %T", ErrValue, n)
	}
}
