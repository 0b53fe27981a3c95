package main

import (
	blush "github.com/alnah/go-blush"
)

// runSupports answers mdBook's renderer probe through the exit code only.
func runSupports(args []string, env *Environment) int {
	if len(args) != 1 {
		printSupportsUsage(env.Stderr)
		return ExitUsage
	}
	if blush.NewPreprocessor().SupportsRenderer(args[0]) {
		return ExitSuccess
	}
	return ExitGeneral
}
