// Package fileutil provides file and path helpers for site generation.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrNotDirectory = errors.New("not a directory")
	ErrOutsideRoot  = errors.New("path is outside the content root")
)

// HTMLExtension replaces the markdown extension of generated pages.
const HTMLExtension = ".html"

var markdownExtensions = []string{".md", ".markdown"}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
//
// Examples:
//   - "default" -> false (name)
//   - "./page.html" -> true
//   - "C:\site\page.html" -> true
//   - "layouts/blog" -> true
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsMarkdown reports whether path has a .md or .markdown extension (any case).
func IsMarkdown(path string) bool {
	ext := filepath.Ext(path)
	for _, md := range markdownExtensions {
		if strings.EqualFold(ext, md) {
			return true
		}
	}
	return false
}

// OutputPath maps a markdown source under contentRoot to its page under
// outputRoot: content/blog/post.md -> public/blog/post.html.
// An empty contentRoot places the page directly in outputRoot.
func OutputPath(contentRoot, outputRoot, srcPath string) (string, error) {
	rel := filepath.Base(srcPath)
	if contentRoot != "" {
		var err error
		rel, err = filepath.Rel(contentRoot, srcPath)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrOutsideRoot, srcPath, err)
		}
		if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return "", fmt.Errorf("%w: %s", ErrOutsideRoot, srcPath)
		}
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + HTMLExtension
	return filepath.Join(outputRoot, rel), nil
}

// WriteFileAtomic writes data to path through a temporary file in the same
// directory, creating parent directories as needed. Readers never observe a
// partially written page.
func WriteFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".md2site-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// CopyDir recursively copies src into dst, creating dst if needed.
// Existing files in dst are overwritten; other files are left in place.
// Returns the number of files copied.
func CopyDir(src, dst string) (int, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%w: %s", ErrNotDirectory, src)
	}

	copied := 0
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		copied++
		return nil
	})
	return copied, err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) // #nosec G304 -- walked from a configured directory
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst) // #nosec G304 -- mirrors src under the output directory
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}
