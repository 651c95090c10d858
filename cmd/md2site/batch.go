package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// PageConverter is the interface for the conversion service.
type PageConverter interface {
	Convert(ctx context.Context, input md2site.Input) (*md2site.Result, error)
}

// Compile-time interface implementation check.
var _ PageConverter = (*md2site.Converter)(nil)

// BuildResult holds the outcome of a single page.
type BuildResult struct {
	InputPath  string
	OutputPath string
	Title      string
	Err        error
	Duration   time.Duration
}

// buildBatch generates every page with at most workers in flight.
// Every page is attempted; a failure never stops the others.
// Results keep the order of pages.
func buildBatch(ctx context.Context, conv PageConverter, pages []PageToBuild, workers int, now func() time.Time) []BuildResult {
	if len(pages) == 0 {
		return nil
	}

	if workers < 1 {
		workers = 1
	}
	results := make([]BuildResult, len(pages))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, page := range pages {
		i, page := i, page
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = BuildResult{InputPath: page.InputPath, OutputPath: page.OutputPath, Err: err}
				return nil
			}
			results[i] = buildPage(ctx, conv, page, now)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// buildPage converts one markdown file and writes its page.
func buildPage(ctx context.Context, conv PageConverter, page PageToBuild, now func() time.Time) BuildResult {
	start := now()
	result := BuildResult{
		InputPath:  page.InputPath,
		OutputPath: page.OutputPath,
	}
	finish := func(err error) BuildResult {
		result.Err = err
		result.Duration = now().Sub(start)
		return result
	}

	content, err := os.ReadFile(page.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return finish(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	converted, err := conv.Convert(ctx, md2site.Input{Markdown: string(content)})
	if err != nil {
		return finish(err)
	}
	result.Title = converted.Title

	if err := fileutil.WriteFileAtomic(page.OutputPath, converted.HTML); err != nil {
		return finish(fmt.Errorf("%w: %v", ErrWriteHTML, err))
	}

	return finish(nil)
}

// ResultSummary holds the count of succeeded and failed pages.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed pages.
func countResults(results []BuildResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// firstError returns the first failure in page order.
func firstError(results []BuildResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printResults outputs per-page results and returns the failure count.
func printResults(results []BuildResult, templateName string, common commonFlags, deps *Dependencies) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(deps.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if common.quiet {
			continue
		}

		if common.verbose {
			fmt.Fprintf(deps.Stdout, "Generating page from %s to %s using %s (%v)\n",
				r.InputPath, r.OutputPath, templateName, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(deps.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !common.quiet && len(results) > 1 {
		fmt.Fprintf(deps.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
