package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	blush "github.com/alnah/go-blush"
	"github.com/alnah/go-blush/internal/hints"
)

// runPreprocess reads the book from stdin, rewrites it and writes it to stdout.
func runPreprocess(ctx context.Context, args []string, envCfg *envConfig, env *Environment) error {
	flags, err := parsePreprocessFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	verbose := flags.common.verbose || envCfg.Verbose
	setMaxProcs(verbose, env.Stderr)

	hostCtx, book, err := blush.ParseInput(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForMalformedInput())
	}

	compatible, err := blush.CheckVersion(hostCtx.MDBookVersion)
	if err != nil {
		return err
	}
	if !compatible {
		fmt.Fprintf(env.Stderr,
			"warning: The %s plugin was built against version %s of mdbook, but is being called from version %s%s\n",
			blush.Name, blush.MDBookVersion, hostCtx.MDBookVersion, hints.ForVersionMismatch(blush.MDBookVersion))
	}

	var opts []blush.Option
	if verbose {
		fmt.Fprintf(env.Stderr, "%s: renderer %q, mdBook %s\n", blush.Name, hostCtx.Renderer, hostCtx.MDBookVersion)
		opts = append(opts, blush.WithLogger(env.Stderr))
	}

	p := blush.NewPreprocessor(opts...)
	if err := p.Run(ctx, book); err != nil {
		return fmt.Errorf("%s: %w", p.Name(), err)
	}
	return blush.WriteOutput(env.Stdout, book)
}
