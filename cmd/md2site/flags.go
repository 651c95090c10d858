package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// assetFlags selects the page template.
type assetFlags struct {
	template  string // name, or path to an .html file
	assetPath string // directory holding templates/{name}.html
}

// postFlags enables optional processing steps. A flag can only turn a step
// on; a step enabled in the config file stays enabled.
type postFlags struct {
	minify       bool
	sanitize     bool
	rewriteLinks bool
	clean        bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common     commonFlags
	output     string
	static     string
	workers    int
	workersSet bool // distinguishes an explicit --workers 0 from the default
	assets     assetFlags
	post       postFlags
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed output")
}

func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.template, "template", "", "template name or .html file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with templates/{name}.html overrides")
}

func addPostFlags(fs *flag.FlagSet, f *postFlags) {
	fs.BoolVar(&f.minify, "minify", false, "minify generated pages")
	fs.BoolVar(&f.sanitize, "sanitize", false, "strip unsafe markup from page content")
	fs.BoolVar(&f.rewriteLinks, "rewrite-links", false, "point relative .md links at .html pages")
	fs.BoolVar(&f.clean, "clean", false, "remove the output directory before building")
}

// parseBuildFlags parses build command flags and returns positional args.
// Errors and usage are written to w.
func parseBuildFlags(args []string, w io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &buildFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.static, "static", "", "static files directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)
	addPostFlags(fs, &f.post)

	fs.Usage = func() { printBuildUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.workersSet = fs.Changed("workers")

	return f, fs.Args(), nil
}

// initFlags holds flags for the init command.
type initFlags struct {
	force bool
	quiet bool
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string, w io.Writer) (*initFlags, []string, error) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &initFlags{}

	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing config file")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")

	fs.Usage = func() { printInitUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
