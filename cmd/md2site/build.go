package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no markdown input found")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteHTML          = errors.New("failed to write HTML file")
	ErrCopyStatic         = errors.New("failed to copy static files")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrUnsafeOutput       = errors.New("refusing to clean output directory")
)

// runBuildCmd parses build flags, runs the build and reports the outcome.
func runBuildCmd(args []string, deps *Dependencies) int {
	flags, positional, err := parseBuildFlags(args, deps.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runBuild(ctx, positional, flags, deps); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runBuild orchestrates site generation: config, static copy, discovery,
// batch conversion and reporting.
func runBuild(ctx context.Context, positionalArgs []string, flags *buildFlags, deps *Dependencies) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	converter, err := newConverter(cfg)
	if err != nil {
		return err
	}

	pages, err := discoverPages(positionalArgs, cfg)
	if err != nil {
		return err
	}

	if err := prepareOutput(cfg, flags.common, deps); err != nil {
		return err
	}

	workers := resolveWorkers(cfg.Build.Workers, len(pages))
	if flags.common.verbose {
		fmt.Fprintf(deps.Stderr, "Building %d page(s) with %d worker(s)\n", len(pages), workers)
	}

	results := buildBatch(ctx, converter, pages, workers, deps.Now)

	failed := printResults(results, cfg.Template.Name, flags.common, deps)
	if failed > 0 {
		return fmt.Errorf("%d of %d page(s) failed: %w", failed, len(results), firstError(results))
	}
	return nil
}

// loadConfig loads the named config, or md2site.yaml when present, or the
// built-in defaults.
func loadConfig(name string) (*config.Config, error) {
	if name != "" {
		return config.LoadConfig(name)
	}
	cfg, err := config.LoadConfig(config.DefaultName)
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

// mergeFlags applies CLI flags over config values. Empty strings and unset
// flags leave the config untouched.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.static != "" {
		cfg.Static.Dir = flags.static
	}
	if flags.workersSet {
		cfg.Build.Workers = flags.workers
	}
	if flags.assets.template != "" {
		cfg.Template.Name = flags.assets.template
	}
	if flags.assets.assetPath != "" {
		cfg.Template.Path = flags.assets.assetPath
	}
	if flags.post.minify {
		cfg.Build.Minify = true
	}
	if flags.post.sanitize {
		cfg.Build.Sanitize = true
	}
	if flags.post.rewriteLinks {
		cfg.Build.RewriteLinks = true
	}
	if flags.post.clean {
		cfg.Build.Clean = true
	}
}

// newConverter builds the page converter described by cfg.
// A template name containing a path separator is read as a file.
func newConverter(cfg *config.Config) (*md2site.Converter, error) {
	var opts []md2site.Option

	switch name := cfg.Template.Name; {
	case fileutil.IsFilePath(name):
		tmpl, err := assets.ReadTemplateFile(name)
		if err != nil {
			if errors.Is(err, assets.ErrTemplateNotFound) {
				return nil, fmt.Errorf("%w: %s", md2site.ErrTemplateNotFound, name)
			}
			return nil, err
		}
		opts = append(opts, md2site.WithTemplate(tmpl))
	case name != "":
		opts = append(opts, md2site.WithTemplateName(name), md2site.WithAssetPath(cfg.Template.Path))
	default:
		opts = append(opts, md2site.WithAssetPath(cfg.Template.Path))
	}

	if cfg.Build.Minify {
		opts = append(opts, md2site.WithMinify())
	}
	if cfg.Build.Sanitize {
		opts = append(opts, md2site.WithSanitize())
	}
	if cfg.Build.RewriteLinks {
		opts = append(opts, md2site.WithLinkRewrite())
	}

	return md2site.NewConverter(opts...)
}

// prepareOutput optionally removes the output directory, then copies the
// static directory into it. A missing static directory is skipped.
func prepareOutput(cfg *config.Config, common commonFlags, deps *Dependencies) error {
	if cfg.Build.Clean {
		if err := checkCleanable(cfg); err != nil {
			return err
		}
		if err := os.RemoveAll(cfg.Output.Dir); err != nil {
			return fmt.Errorf("%w: removing %s: %v", ErrWriteHTML, cfg.Output.Dir, err)
		}
		if common.verbose {
			fmt.Fprintf(deps.Stderr, "Removed %s\n", cfg.Output.Dir)
		}
	}

	if cfg.Static.Dir == "" || !fileutil.DirExists(cfg.Static.Dir) {
		return nil
	}

	n, err := fileutil.CopyDir(cfg.Static.Dir, cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCopyStatic, err)
	}
	if common.verbose {
		fmt.Fprintf(deps.Stderr, "Copied %d static file(s) from %s to %s\n", n, cfg.Static.Dir, cfg.Output.Dir)
	}
	return nil
}

// checkCleanable rejects output directories whose removal would delete the
// working directory or a source directory.
func checkCleanable(cfg *config.Config) error {
	out, err := filepath.Abs(cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsafeOutput, err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsafeOutput, err)
	}
	if isWithin(out, cwd) {
		return fmt.Errorf("%w: %s contains the working directory", ErrUnsafeOutput, cfg.Output.Dir)
	}
	for _, src := range []string{cfg.Content.Dir, cfg.Static.Dir} {
		if src == "" {
			continue
		}
		abs, err := filepath.Abs(src)
		if err != nil {
			continue
		}
		if isWithin(out, abs) {
			return fmt.Errorf("%w: %s contains %s", ErrUnsafeOutput, cfg.Output.Dir, src)
		}
	}
	return nil
}

// isWithin reports whether path equals dir or lies below it.
func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// hintFor returns an actionable hint for well-known failures.
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(userConfigCandidates())
	case errors.Is(err, md2site.ErrTemplateNotFound):
		return hints.ForTemplateNotFound([]string{assets.DefaultTemplateName})
	case errors.Is(err, ErrInvalidWorkerCount):
		return hints.ForWorkers(config.MaxWorkers)
	case errors.Is(err, ErrWriteHTML), errors.Is(err, ErrCopyStatic):
		return hints.ForOutputDirectory()
	case errors.Is(err, md2site.ErrNoTitle):
		return hints.ForMissingTitle()
	case errors.Is(err, md2site.ErrSyntax):
		return hints.ForUnbalancedDelimiter()
	case errors.Is(err, md2site.ErrValue):
		return hints.ForEmptyElement()
	}
	return ""
}

// userConfigCandidates lists where a named config would be found outside
// the working directory.
func userConfigCandidates() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "go-md2site", config.DefaultName+".yaml")}
}
