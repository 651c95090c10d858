package main

import (
	"errors"
	"fmt"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// ErrConfigExists is returned by init when md2site.yaml is already present.
var ErrConfigExists = errors.New("config file already exists")

// starterPage is written to content/index.md by init.
const starterPage = `# Welcome

This page was generated by **md2site**. Edit ` + "`content/index.md`" + ` and run ` + "`md2site build`" + `.

* Pages mirror the content directory
* Files in static are copied as is
`

// runInitCmd parses init flags, scaffolds a site and reports the outcome.
func runInitCmd(args []string, deps *Dependencies) int {
	flags, positional, err := parseInitFlags(args, deps.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	dir := "."
	if len(positional) > 0 {
		dir = positional[0]
	}

	if err := runInit(dir, flags, deps); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runInit writes the default config and a starter page into dir.
// An existing config is kept unless forced; an existing page is always kept.
func runInit(dir string, flags *initFlags, deps *Dependencies) error {
	cfg := config.DefaultConfig()

	configPath := filepath.Join(dir, config.DefaultName+".yaml")
	if fileutil.FileExists(configPath) && !flags.force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, configPath)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := fileutil.WriteFileAtomic(configPath, data); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}
	created := []string{configPath}

	pagePath := filepath.Join(dir, cfg.Content.Dir, "index.md")
	if !fileutil.FileExists(pagePath) {
		if err := fileutil.WriteFileAtomic(pagePath, []byte(starterPage)); err != nil {
			return fmt.Errorf("writing %s: %w", pagePath, err)
		}
		created = append(created, pagePath)
	}

	if !flags.quiet {
		for _, path := range created {
			fmt.Fprintf(deps.Stdout, "Created %s\n", path)
		}
	}
	return nil
}
