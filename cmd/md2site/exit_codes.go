package main

import (
	"errors"
	"os"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// Exit codes for md2site CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All pages generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or template
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitSyntax  = 4 // Markdown could not be converted
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Markdown errors (exit 4)
	if errors.Is(err, md2site.ErrSyntax) ||
		errors.Is(err, md2site.ErrType) ||
		errors.Is(err, md2site.ErrValue) ||
		errors.Is(err, md2site.ErrNoTitle) {
		return ExitSyntax
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrCopyStatic) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, fileutil.ErrNotDirectory) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrOverlappingDirs) ||
		errors.Is(err, md2site.ErrEmptyMarkdown) ||
		errors.Is(err, md2site.ErrInvalidTemplate) ||
		errors.Is(err, md2site.ErrTemplateNotFound) ||
		errors.Is(err, md2site.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrUnsafeOutput) ||
		errors.Is(err, ErrConfigExists) {
		return ExitUsage
	}

	return ExitGeneral
}
