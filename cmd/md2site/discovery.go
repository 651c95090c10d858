package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/hints"
)

// PageToBuild pairs a markdown source with its generated page.
type PageToBuild struct {
	InputPath  string
	OutputPath string
}

// discoverPages resolves the markdown sources to build. Positional args
// (files or directories) win over content.dir from the config.
func discoverPages(args []string, cfg *config.Config) ([]PageToBuild, error) {
	inputs := args
	if len(inputs) == 0 {
		if !fileutil.DirExists(cfg.Content.Dir) {
			return nil, fmt.Errorf("%w: %s does not exist%s", ErrNoInput, cfg.Content.Dir, hints.ForContentNotFound(cfg.Content.Dir))
		}
		inputs = []string{cfg.Content.Dir}
	}

	var pages []PageToBuild
	seen := make(map[string]bool)
	for _, input := range inputs {
		found, err := discoverInput(input, cfg)
		if err != nil {
			return nil, err
		}
		for _, p := range found {
			if seen[p.InputPath] {
				continue
			}
			seen[p.InputPath] = true
			pages = append(pages, p)
		}
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: in %s%s", ErrNoInput, strings.Join(inputs, ", "), hints.ForContentNotFound(cfg.Content.Dir))
	}
	return pages, nil
}

// discoverInput expands one file or directory argument.
func discoverInput(input string, cfg *config.Config) ([]PageToBuild, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.IsMarkdown(input) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, input)
		}
		out, err := pageOutputPath(cfg.Content.Dir, cfg.Output.Dir, input)
		if err != nil {
			return nil, err
		}
		return []PageToBuild{{InputPath: input, OutputPath: out}}, nil
	}

	var pages []PageToBuild
	err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != input && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !fileutil.IsMarkdown(path) {
			return nil
		}
		out, err := fileutil.OutputPath(input, cfg.Output.Dir, path)
		if err != nil {
			return err
		}
		pages = append(pages, PageToBuild{InputPath: path, OutputPath: out})
		return nil
	})
	return pages, err
}

// pageOutputPath mirrors a single file under the content directory; a file
// outside it lands directly in the output directory.
func pageOutputPath(contentDir, outputDir, path string) (string, error) {
	out, err := fileutil.OutputPath(contentDir, outputDir, path)
	if errors.Is(err, fileutil.ErrOutsideRoot) {
		return fileutil.OutputPath("", outputDir, path)
	}
	return out, err
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// resolveWorkers returns the concurrency limit: GOMAXPROCS when
// configured is 0, never more than the number of pages, at least 1.
func resolveWorkers(configured, pages int) int {
	n := configured
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > pages {
		n = pages
	}
	if n < 1 {
		n = 1
	}
	return n
}
