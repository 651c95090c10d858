package assets

var defaultLoader = NewEmbeddedLoader()

// LoadTemplate loads a built-in template by name.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// DefaultTemplate returns the built-in page template.
func DefaultTemplate() string {
	tmpl, err := defaultLoader.LoadTemplate(DefaultTemplateName)
	if err != nil {
		panic("assets: embedded default template missing: " + err.Error())
	}
	return tmpl
}
