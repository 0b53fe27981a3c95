package main

import (
	"io"
	"os"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Environ func() []string // KEY=value pairs, like os.Environ
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Environ: os.Environ,
	}
}
