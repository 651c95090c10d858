package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Generate HTML pages from markdown (default)")
	fmt.Fprintln(w, "  init       Write a starter md2site.yaml and content directory")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2site help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site build [input...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate one HTML page per markdown file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown files or directories (default: content.dir from config)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory")
	fmt.Fprintln(w, "      --static <dir>        Static files copied into the output")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: md2site.yaml if present)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Template:")
	fmt.Fprintln(w, "      --template <s>        Template name or .html file path")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with templates/{name}.html overrides")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Processing:")
	fmt.Fprintln(w, "      --minify              Minify generated pages")
	fmt.Fprintln(w, "      --sanitize            Strip unsafe markup from page content")
	fmt.Fprintln(w, "      --rewrite-links       Point relative .md links at .html pages")
	fmt.Fprintln(w, "      --clean               Remove the output directory before building")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show each page and timing")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site init [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write md2site.yaml and content/index.md into dir (default: current directory).")
	fmt.Fprintln(w, "Existing markdown is never overwritten.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --force               Overwrite an existing md2site.yaml")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(deps.Stdout)
	case "init":
		printInitUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: md2site version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: md2site help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}
