package assets

import "errors"

// Resolver tries a custom directory first and falls back to the embedded
// templates when the custom directory does not have the requested name.
type Resolver struct {
	custom   TemplateLoader // nil if no custom path configured
	embedded TemplateLoader
}

// NewResolver creates a Resolver. An empty customBasePath uses embedded
// templates only; a non-empty one must be a valid directory.
func NewResolver(customBasePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}

	return r, nil
}

// LoadTemplate loads a template, custom directory first.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadTemplate(name)
	}

	content, err := r.custom.LoadTemplate(name)
	if err == nil {
		return content, nil
	}

	// Validation and I/O errors are not masked by the fallback.
	if !errors.Is(err, ErrTemplateNotFound) {
		return "", err
	}
	return r.embedded.LoadTemplate(name)
}

// HasCustomLoader reports whether a custom directory is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

var _ TemplateLoader = (*Resolver)(nil)
