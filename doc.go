// Package md2site converts a restricted subset of markdown into HTML pages.
//
// # Quick Start
//
// Convert a document and wrap it in the built-in page template:
//
//	conv, err := md2site.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2site.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", result.HTML, 0o644)
//
// The result also carries the converted body (Result.Body) and the page
// title (Result.Title) taken from the first level-one heading.
//
// # Supported Markdown
//
// A document is split into blocks on blank lines. Each block is one of:
//
//   - heading: "# " through any number of "#"
//   - fenced code: starts and ends with three backticks, content is literal
//   - quote: every line starts with ">"
//   - unordered list: every line starts with "* " or "- "
//   - ordered list: lines start with "1.", "2.", ... in sequence
//   - paragraph: anything else
//
// Paragraphs, headings and quotes support inline **bold**, *italic*,
// `code`, [links](url) and ![images](url). Inline styles do not nest, and
// an unclosed delimiter fails the whole document with ErrSyntax.
//
// Text is not HTML-escaped. Use WithSanitize when the markdown comes from
// untrusted authors.
//
// # Core Functions
//
// The converter is built from plain functions that can be used directly:
//
//	root, err := md2site.ConvertDocument(markdown) // node tree
//	body, err := md2site.Serialize(root)           // HTML string
//	title, err := md2site.ExtractTitle(body)       // first <h1>
//	page := md2site.RenderPage(tmpl, title, body)  // template substitution
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2site.NewConverter(
//	    md2site.WithTemplateName("blog"),
//	    md2site.WithAssetPath("./theme"),
//	    md2site.WithLinkRewrite(),
//	    md2site.WithMinify(),
//	)
//
// A Converter holds no per-conversion state and may be shared by goroutines.
//
// # Custom Templates
//
// Templates are HTML files containing "{{ Title }}" and "{{ Content }}".
// Each placeholder is replaced once; the title is substituted first.
//
//	theme/
//	└── templates/
//	    └── blog.html
package md2site
