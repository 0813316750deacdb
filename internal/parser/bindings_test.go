package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kolkov/symexpr/internal/parser"
)

func TestParseBindings(t *testing.T) {
	tests := []struct {
		src  string
		mode parser.Mode
		want map[string]complex128
	}{
		{"", 0, map[string]complex128{}},
		{"x = 3", 0, map[string]complex128{"x": 3}},
		{"x = -1 y = 12 t = 11", 0, map[string]complex128{"x": -1, "y": 12, "t": 11}},
		{"x = 3 + 4I", 0, map[string]complex128{"x": 3 + 4i}},
		{"x = -0013.000I + 4 y = -12 - 123I", 0, map[string]complex128{"x": 4 - 13i, "y": -12 - 123i}},
		{"x = -1+  I y = 12 - I003.00t = 11", 0, map[string]complex128{"x": -1 + 1i, "y": 12 - 3i, "t": 11}},
		// Signs stick until the next sign.
		{"x = -1 2", 0, map[string]complex128{"x": -3}},
		{"x = 2 * 3", 0, map[string]complex128{"x": 5}},
		{"X = 1 x = 2", 0, map[string]complex128{"x": 2}},
		{"x=.5I", parser.StrictLiterals, map[string]complex128{"x": 0.5i}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := parser.ParseBindings(tt.src, tt.mode)
			if err != nil {
				t.Fatalf("ParseBindings(%q) error = %v", tt.src, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseBindings(%q) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestParseBindingsErrors(t *testing.T) {
	tests := []struct {
		src  string
		mode parser.Mode
		want string
	}{
		{"3", 0, `1:1: expected name, got number "3"`},
		{"x 3", 0, `1:3: expected =, got number "3"`},
		{"x", 0, "1:2: expected =, got end of input"},
		{"x =", 0, "1:1: missing value for x"},
		{"x = y = 1", 0, "1:1: missing value for x"},
		{"x = (1)", 0, `1:5: unexpected "(" in value of x`},
		{"x = 1.2.3", 0, `1:5: malformed number "1.2.3"`},
		{"x = 3I5", parser.StrictLiterals, `1:5: malformed number "3I5"`},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := parser.ParseBindings(tt.src, tt.mode)
			if err == nil {
				t.Fatalf("ParseBindings(%q) succeeded, want error", tt.src)
			}
			if err.Error() != tt.want {
				t.Errorf("error = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}
