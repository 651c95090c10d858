package md2site

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds options applied before NewConverter resolves the template.
type converterConfig struct {
	template     string // literal template content, wins over templateName
	templateName string
	assetPath    string
	minify       bool
	sanitize     bool
	rewriteLinks bool
}

// WithTemplate uses tmpl as the page template instead of loading one by name.
func WithTemplate(tmpl string) Option {
	return func(c *Converter) {
		c.cfg.template = tmpl
	}
}

// WithTemplateName selects a template by name from the asset path,
// falling back to the built-in templates. Defaults to "default".
// Panics if name is empty (programmer error).
func WithTemplateName(name string) Option {
	if name == "" {
		panic("md2site: WithTemplateName name must not be empty")
	}
	return func(c *Converter) {
		c.cfg.templateName = name
	}
}

// WithAssetPath sets a directory containing templates/{name}.html overrides.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithMinify minifies every rendered page.
func WithMinify() Option {
	return func(c *Converter) {
		c.cfg.minify = true
	}
}

// WithSanitize strips unsafe markup (scripts, event handlers, javascript:
// URLs) from converted content before it enters the template.
func WithSanitize() Option {
	return func(c *Converter) {
		c.cfg.sanitize = true
	}
}

// WithLinkRewrite points relative links to .md files at the generated .html pages.
func WithLinkRewrite() Option {
	return func(c *Converter) {
		c.cfg.rewriteLinks = true
	}
}
