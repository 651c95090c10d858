package md2site

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/tdewolff/minify/v2"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Input is one markdown document to convert.
type Input struct {
	Markdown string
}

// Result holds the outputs of one conversion.
type Result struct {
	Title string // inner HTML of the first <h1>
	Body  string // converted document, a single <div>
	HTML  []byte // full page: Body and Title substituted into the template
}

// Converter turns markdown documents into full HTML pages.
// Create with NewConverter; safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	template      string
	minifier      *minify.M
	contentPolicy *bluemonday.Policy
	titlePolicy   *bluemonday.Policy
}

// NewConverter creates a Converter using the built-in "default" template
// unless options select another one.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{templateName: assets.DefaultTemplateName},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.resolveTemplate(); err != nil {
		return nil, err
	}

	if c.cfg.minify {
		c.minifier = newMinifier()
	}
	if c.cfg.sanitize {
		c.contentPolicy = newContentPolicy()
		c.titlePolicy = newTitlePolicy()
	}

	return c, nil
}

// resolveTemplate loads the configured template and checks its placeholder.
func (c *Converter) resolveTemplate() error {
	tmpl := c.cfg.template
	if tmpl == "" {
		resolver, err := assets.NewResolver(c.cfg.assetPath)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		tmpl, err = resolver.LoadTemplate(c.cfg.templateName)
		if err != nil {
			if errors.Is(err, assets.ErrTemplateNotFound) {
				return fmt.Errorf("%w: %q", ErrTemplateNotFound, c.cfg.templateName)
			}
			return fmt.Errorf("loading template %q: %w", c.cfg.templateName, err)
		}
	}

	if !strings.Contains(tmpl, ContentPlaceholder) {
		return fmt.Errorf("%w: missing %s", ErrInvalidTemplate, ContentPlaceholder)
	}
	c.template = tmpl
	return nil
}

// Template returns the page template in use.
func (c *Converter) Template() string {
	return c.template
}

// Convert converts one document and renders it into the page template.
// The document must contain a level-one heading, which becomes the title.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := MarkdownToHTML(input.Markdown)
	if err != nil {
		return nil, err
	}

	title, err := ExtractTitle(body)
	if err != nil {
		return nil, err
	}

	if c.contentPolicy != nil {
		body = c.contentPolicy.Sanitize(body)
		title = c.titlePolicy.Sanitize(title)
	}

	if c.cfg.rewriteLinks {
		body, err = pipeline.RewriteMarkdownLinks(body)
		if err != nil {
			return nil, fmt.Errorf("%w: rewriting links: %v", ErrPostProcess, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page := RenderPage(c.template, title, body)

	if c.minifier != nil {
		page, err = c.minifier.String(htmlMediaType, page)
		if err != nil {
			return nil, fmt.Errorf("%w: minifying: %v", ErrPostProcess, err)
		}
	}

	return &Result{
		Title: title,
		Body:  body,
		HTML:  []byte(page),
	}, nil
}
