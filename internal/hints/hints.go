// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	userDir := filepath.Join(".config", "go-md2site")
	for _, p := range searchedPaths {
		if strings.Contains(p, userDir) || strings.Contains(p, "go-md2site/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForContentNotFound returns a hint when no markdown source was found.
func ForContentNotFound(dir string) string {
	return format(fmt.Sprintf("pass markdown files or a directory, or create %q", dir))
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplateNotFound lists the templates that can be selected by name.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForUnbalancedDelimiter returns a hint for inline markup left open.
func ForUnbalancedDelimiter() string {
	return format("every **, * or ` needs a closing marker in the same block")
}

// ForMissingTitle returns a hint for pages without a level-one heading.
func ForMissingTitle() string {
	return format("start the page with a \"# Title\" heading")
}

// ForEmptyElement returns a hint for markers with nothing after them.
func ForEmptyElement() string {
	return format("heading, list and quote markers must be followed by text")
}

// ForWorkers returns a hint for an out-of-range worker count.
func ForWorkers(maxWorkers int) string {
	return format(fmt.Sprintf("use --workers between 1 and %d, or 0 for automatic", maxWorkers))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
