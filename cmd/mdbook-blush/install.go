package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-blush/internal/bookconfig"
	"github.com/alnah/go-blush/internal/hints"
)

// runInstall registers the preprocessor in a book and writes the stylesheet.
func runInstall(args []string, envCfg *envConfig, env *Environment) error {
	flags, dir, err := parseInstallFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cssDir := flags.cssDir
	if cssDir == "" {
		cssDir = envCfg.CSSDir
	}
	verbose := flags.common.verbose || envCfg.Verbose

	result, err := bookconfig.Install(bookconfig.InstallOptions{BookRoot: dir, CSSDir: cssDir})
	if err != nil {
		return withInstallHint(err, dir)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(env.Stderr, "warning: %s\n", w)
	}
	if result.ConfigChanged {
		fmt.Fprintf(env.Stdout, "Updated %s\n", result.ConfigPath)
	} else if verbose {
		fmt.Fprintf(env.Stdout, "%s already configured\n", result.ConfigPath)
	}
	fmt.Fprintf(env.Stdout, "Wrote %s\n", result.CSSPath)
	return nil
}

// withInstallHint appends an actionable hint to known install failures.
func withInstallHint(err error, dir string) error {
	var shapeErr *bookconfig.ShapeError
	switch {
	case errors.Is(err, bookconfig.ErrBookConfigNotFound):
		return fmt.Errorf("%w%s", err, hints.ForBookConfigNotFound(dir))
	case errors.As(err, &shapeErr):
		return fmt.Errorf("%w%s", err, hints.ForBookConfigShape(shapeErr.Key))
	default:
		return err
	}
}
