package bookconfig

// Notes:
// - Textual edits are checked byte for byte against testdata/edit_cases.yaml.
// - Reformatted output is checked by decoding it again: BurntSushi/toml's
//   key order and spacing are not part of the contract.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/alnah/go-blush/internal/yamlutil"
)

const testCSSPath = "theme/css/blush.css"

type editCase struct {
	Name    string `yaml:"name"`
	Input   string `yaml:"input"`
	Want    string `yaml:"want"`
	Changed bool   `yaml:"changed"`
}

// ---------------------------------------------------------------------------
// TestEdit_Textual - Comment-preserving edits from fixtures
// ---------------------------------------------------------------------------

func TestEdit_Textual(t *testing.T) {
	t.Parallel()

	var fixture struct {
		Cases []editCase `yaml:"cases"`
	}
	if err := yamlutil.ReadFile("testdata/edit_cases.yaml", &fixture); err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	if len(fixture.Cases) == 0 {
		t.Fatal("fixture has no cases")
	}

	for _, tt := range fixture.Cases {
		tt := tt
		t.Run(tt.Name, func(t *testing.T) {
			t.Parallel()

			got, err := Edit([]byte(tt.Input), testCSSPath)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Changed != tt.Changed {
				t.Errorf("Changed = %v, want %v", got.Changed, tt.Changed)
			}
			if got.Reformatted {
				t.Error("Reformatted = true, want textual edit")
			}
			if string(got.Content) != tt.Want {
				t.Errorf("Content:\ngot:  %q\nwant: %q", got.Content, tt.Want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEdit_Idempotent - A second edit is a no-op
// ---------------------------------------------------------------------------

func TestEdit_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"[book]\ntitle = \"x\"\n",
		"[output.html]\ndefault-theme = \"rust\"\n",
		"[output.html]\nadditional-css = [\"custom.css\"]\n",
	}

	for _, input := range inputs {
		first, err := Edit([]byte(input), testCSSPath)
		if err != nil {
			t.Fatalf("first Edit(%q): %v", input, err)
		}
		second, err := Edit(first.Content, testCSSPath)
		if err != nil {
			t.Fatalf("second Edit(%q): %v", input, err)
		}
		if second.Changed {
			t.Errorf("second Edit(%q) changed content:\n%s", input, second.Content)
		}
		if n := strings.Count(string(second.Content), testCSSPath); n != 1 {
			t.Errorf("Edit(%q): css path appears %d times, want 1", input, n)
		}
	}
}

// ---------------------------------------------------------------------------
// TestEdit_Reformat - Fallback when a textual edit is not possible
// ---------------------------------------------------------------------------

func TestEdit_Reformat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantCSS []string
	}{
		{
			name:    "array without entry",
			input:   "[output.html]\nadditional-css = [\"custom.css\"]\n",
			wantCSS: []string{"custom.css", testCSSPath},
		},
		{
			name:    "dotted output.html keys",
			input:   "output.html.default-theme = \"light\"\n",
			wantCSS: []string{testCSSPath},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Edit([]byte(tt.input), testCSSPath)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Changed || !got.Reformatted {
				t.Errorf("Changed = %v, Reformatted = %v, want both true", got.Changed, got.Reformatted)
			}
			if len(got.Warnings) == 0 || !strings.Contains(got.Warnings[len(got.Warnings)-1], "reformatted") {
				t.Errorf("Warnings = %v, want reformat warning", got.Warnings)
			}

			var doc struct {
				Output struct {
					HTML struct {
						AdditionalCSS []string `toml:"additional-css"`
					} `toml:"html"`
				} `toml:"output"`
				Preprocessor map[string]map[string]any `toml:"preprocessor"`
			}
			if _, err := toml.Decode(string(got.Content), &doc); err != nil {
				t.Fatalf("reformatted content does not decode: %v\n%s", err, got.Content)
			}
			if strings.Join(doc.Output.HTML.AdditionalCSS, ",") != strings.Join(tt.wantCSS, ",") {
				t.Errorf("additional-css = %v, want %v", doc.Output.HTML.AdditionalCSS, tt.wantCSS)
			}
			if _, ok := doc.Preprocessor[keyBlush]; !ok {
				t.Error("preprocessor.blush missing after reformat")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEdit_Errors - Shape and parse errors
// ---------------------------------------------------------------------------

func TestEdit_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
		wantKey string
	}{
		{"invalid toml", "[output.html\n", ErrBookConfigParse, ""},
		{"output not a table", "output = 1\n", ErrBookConfigShape, "output"},
		{"output.html not a table", "[output]\nhtml = \"yes\"\n", ErrBookConfigShape, "output.html"},
		{"additional-css not an array", "[output.html]\nadditional-css = \"a.css\"\n", ErrBookConfigShape, "output.html.additional-css"},
		{"preprocessor not a table", "preprocessor = [1, 2]\n", ErrBookConfigShape, "preprocessor"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Edit([]byte(tt.input), testCSSPath)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Edit() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantKey == "" {
				return
			}
			var shapeErr *ShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("error %v is not a *ShapeError", err)
			}
			if shapeErr.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", shapeErr.Key, tt.wantKey)
			}
		})
	}
}

func TestEdit_BlushNotTableWarns(t *testing.T) {
	t.Parallel()

	input := "[output.html]\nadditional-css = [\"theme/css/blush.css\"]\n\n[preprocessor]\nblush = true\n"
	got, err := Edit([]byte(input), testCSSPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Changed {
		t.Error("Changed = true, want false")
	}
	if len(got.Warnings) != 1 || !strings.Contains(got.Warnings[0], "preprocessor.blush is not a table") {
		t.Errorf("Warnings = %v, want not-a-table warning", got.Warnings)
	}
}

// ---------------------------------------------------------------------------
// TestCSSPath - Stylesheet path normalization
// ---------------------------------------------------------------------------

func TestCSSPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dir  string
		want string
	}{
		{"theme/css", "theme/css/blush.css"},
		{"./theme/css/", "theme/css/blush.css"},
		{"assets", "assets/blush.css"},
		{".", "blush.css"},
	}

	for _, tt := range tests {
		tt := tt
		if got := CSSPath(tt.dir); got != tt.want {
			t.Errorf("CSSPath(%q) = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestQuote(t *testing.T) {
	t.Parallel()

	if got := quote(`a"b\c`); got != `"a\"b\\c"` {
		t.Errorf("quote() = %s, want %s", got, `"a\"b\\c"`)
	}
}
