package assets

// TemplateLoader loads HTML page templates by name.
type TemplateLoader interface {
	// LoadTemplate loads a template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}

// DefaultTemplateName is the name of the built-in page template.
const DefaultTemplateName = "default"
