package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdbook-blush [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command, reads an mdBook book from stdin, converts ==text==")
	fmt.Fprintln(w, "to small caps and writes the book to stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  supports   Report whether a renderer is supported")
	fmt.Fprintln(w, "  install    Register the preprocessor and stylesheet in book.toml")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -v, --verbose    Log per-chapter progress to stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdbook-blush help <command>' for details on a specific command.")
}

// printSupportsUsage prints usage for the supports command.
func printSupportsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdbook-blush supports <renderer>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit 0 if the renderer is supported (html only), 1 otherwise.")
}

// printInstallUsage prints usage for the install command.
func printInstallUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdbook-blush install [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add [preprocessor.blush] and the stylesheet to book.toml, then write")
	fmt.Fprintln(w, "the stylesheet. Running it again changes nothing.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Book root containing book.toml (default: current directory)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --css-dir <dir>  Stylesheet directory relative to dir (default: theme/css)")
	fmt.Fprintln(w, "  -v, --verbose        Show what was written")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  BLUSH_CSS_DIR        Default for --css-dir")
	fmt.Fprintln(w, "  BLUSH_VERBOSE        Default for --verbose")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "supports":
		printSupportsUsage(env.Stdout)
	case "install":
		printInstallUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdbook-blush version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdbook-blush help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
