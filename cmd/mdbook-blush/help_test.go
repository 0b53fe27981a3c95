package main

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunHelp - help command
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no command", nil, ExitSuccess, "Commands:", ""},
		{"supports", []string{"supports"}, ExitSuccess, "mdbook-blush supports <renderer>", ""},
		{"install", []string{"install"}, ExitSuccess, "--css-dir", ""},
		{"version", []string{"version"}, ExitSuccess, "mdbook-blush version", ""},
		{"help", []string{"help"}, ExitSuccess, "mdbook-blush help [command]", ""},
		{"unknown", []string{"frobnicate"}, ExitUsage, "", "Unknown command: frobnicate"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv("")
			if code := runHelp(tt.args, env); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestPrintUsage_ListsEveryCommand(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv("")
	runHelp(nil, env)

	for _, cmd := range []string{"supports", "install", "version", "help"} {
		if !strings.Contains(stdout.String(), "  "+cmd+" ") {
			t.Errorf("usage does not list %q:\n%s", cmd, stdout)
		}
	}
}
