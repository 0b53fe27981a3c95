package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"

	blush "github.com/alnah/go-blush"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand is returned for a first argument that names no command.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches args and returns the process exit code.
// With no command, the book on stdin is preprocessed: that is how mdBook
// invokes the binary.
func runMain(ctx context.Context, args []string, env *Environment) int {
	envCfg, err := loadEnvConfig(env.Environ())
	if err != nil {
		return reportError(env.Stderr, err)
	}
	warnUnknownEnvVars(env.Stderr, env.Environ())

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	if len(rest) == 0 || strings.HasPrefix(rest[0], "-") {
		return reportError(env.Stderr, runPreprocess(ctx, rest, envCfg, env))
	}

	switch rest[0] {
	case "supports":
		return runSupports(rest[1:], env)
	case "install":
		return reportError(env.Stderr, runInstall(rest[1:], envCfg, env))
	case "version":
		fmt.Fprintf(env.Stdout, "%s %s (mdBook %s)\n", blush.Name, Version, blush.MDBookVersion)
		return ExitSuccess
	case "help":
		return runHelp(rest[1:], env)
	default:
		fmt.Fprintf(env.Stderr, "%s: %s\n\n", ErrUnknownCommand, rest[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// reportError prints err, if any, and maps it to an exit code.
func reportError(w io.Writer, err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(w, "error: %v\n", err)
	return exitCodeFor(err)
}

// setMaxProcs configures GOMAXPROCS, logging the decision only when verbose.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply.
func setMaxProcs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}
