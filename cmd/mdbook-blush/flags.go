package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Usage errors raised while parsing command lines.
var (
	ErrInvalidFlag = errors.New("invalid flag")
	ErrTooManyArgs = errors.New("too many arguments")
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	verbose bool
}

// preprocessFlags holds flags for the default preprocess mode.
type preprocessFlags struct {
	common commonFlags
}

// installFlags holds flags for the install command.
type installFlags struct {
	common commonFlags
	cssDir string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
}

// newFlagSet creates a FlagSet that reports to w and returns errors.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseFlagSet parses args, mapping pflag failures to ErrInvalidFlag.
// flag.ErrHelp is returned as is so callers can exit successfully.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	return nil
}

// parsePreprocessFlags parses flags of the default mode. It takes no
// positional arguments.
func parsePreprocessFlags(args []string, w io.Writer) (*preprocessFlags, error) {
	f := &preprocessFlags{}
	fs := newFlagSet("mdbook-blush", w, printUsage)
	addCommonFlags(fs, &f.common)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, fs.Arg(0))
	}
	return f, nil
}

// parseInstallFlags parses install command flags and returns the optional
// book root.
func parseInstallFlags(args []string, w io.Writer) (*installFlags, string, error) {
	f := &installFlags{}
	fs := newFlagSet("install", w, printInstallUsage)
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.cssDir, "css-dir", "", "stylesheet directory relative to the book root (default \"theme/css\")")

	if err := parseFlagSet(fs, args); err != nil {
		return nil, "", err
	}
	switch fs.NArg() {
	case 0:
		return f, "", nil
	case 1:
		return f, fs.Arg(0), nil
	default:
		return nil, "", fmt.Errorf("%w: install takes at most one directory, got %d", ErrTooManyArgs, fs.NArg())
	}
}
