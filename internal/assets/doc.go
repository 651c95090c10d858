// Package assets provides the HTML page templates pages are rendered into.
//
// # Loader Architecture
//
//	TemplateLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - templates compiled in with go:embed
//	    ├── FilesystemLoader  - templates from a custom directory
//	    └── Resolver          - custom first, embedded fallback
//
// A template is plain HTML containing the "{{ Title }}" and "{{ Content }}"
// placeholders. The embedded "default" template is a minimal HTML5 page.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {name}.html
//
// # Security
//
// Template names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
