package pipeline

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// markdownExtensions are rewritten to htmlExtension in relative links.
var markdownExtensions = []string{".md", ".markdown"}

const htmlExtension = ".html"

// RewriteMarkdownLinks points relative links at generated pages instead of
// their markdown sources: a[href="guide/intro.md#setup"] becomes
// a[href="guide/intro.html#setup"].
//
// Absolute URLs, scheme-relative URLs, root-relative paths and anchors are
// left alone. Content without any candidate link is returned unchanged;
// otherwise it is re-rendered by the HTML parser.
func RewriteMarkdownLinks(htmlContent string) (string, error) {
	if !strings.Contains(htmlContent, "href") {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	if !rewriteNode(doc) {
		return htmlContent, nil
	}
	return renderHTML(doc, isFragment)
}

// parseHTML parses either a full document or a body fragment.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders a document, or only the children of a fragment container.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if !isFragment {
		if err := html.Render(&buf, doc); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rewriteNode walks the tree and reports whether any href changed.
func rewriteNode(n *html.Node) bool {
	changed := false
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key != "href" {
				continue
			}
			if rewritten, ok := rewriteHref(attr.Val); ok {
				n.Attr[i].Val = rewritten
				changed = true
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if rewriteNode(c) {
			changed = true
		}
	}
	return changed
}

// rewriteHref swaps a markdown extension for .html on relative hrefs.
func rewriteHref(href string) (string, bool) {
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "/") {
		return "", false
	}

	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}

	ext := path.Ext(u.Path)
	for _, md := range markdownExtensions {
		if strings.EqualFold(ext, md) {
			u.Path = strings.TrimSuffix(u.Path, ext) + htmlExtension
			return u.String(), true
		}
	}
	return "", false
}
