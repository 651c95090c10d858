package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	configureMaxProcs(hasVerboseFlag(os.Args[1:]), os.Stderr)
	os.Exit(runMain(os.Args, DefaultDeps()))
}

// configureMaxProcs aligns GOMAXPROCS with the container CPU quota, which
// also bounds the automatic worker count.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func configureMaxProcs(verbose bool, w io.Writer) {
	logger := func(string, ...interface{}) {}
	if verbose {
		logger = func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}
	_, _ = maxprocs.Set(maxprocs.Logger(logger))
}

// hasVerboseFlag reports whether -v or --verbose appears before flag parsing.
func hasVerboseFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}
	return false
}

// runMain dispatches to a command and returns the process exit code.
// args follows os.Args: args[0] is the program name.
// Without a known command, arguments are passed to build.
func runMain(args []string, deps *Dependencies) int {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	if len(rest) == 0 || !isCommand(rest[0]) {
		return runBuildCmd(rest, deps)
	}

	switch cmd, cmdArgs := rest[0], rest[1:]; cmd {
	case "build":
		return runBuildCmd(cmdArgs, deps)
	case "init":
		return runInitCmd(cmdArgs, deps)
	case "version", "--version":
		fmt.Fprintf(deps.Stdout, "md2site %s\n", Version)
		return ExitSuccess
	default:
		runHelp(cmdArgs, deps)
		return ExitSuccess
	}
}

// isCommand reports whether name selects a command rather than build input.
func isCommand(name string) bool {
	switch name {
	case "build", "init", "version", "--version", "help", "-h", "--help":
		return true
	}
	return false
}
