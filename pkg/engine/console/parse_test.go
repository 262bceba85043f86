// Package console tests the command-line tokenizer: whitespace splitting,
// double-quote grouping, and unterminated-quote errors.
package console

import "testing"

func argsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		verb string
		args []string
	}{
		{"cmd a b", "cmd", []string{"a", "b"}},
		{"cmd", "cmd", nil},
		{"  cmd   a  ", "cmd", []string{"a"}},
		{`cmd "a b" c`, "cmd", []string{"a b", "c"}},
		{`cmd ""`, "cmd", []string{""}},
		{`set msg "hello   world"`, "set", []string{"msg", "hello   world"}},
		{`cmd pre"mid dle"post`, "cmd", []string{"premid dlepost"}},
	}
	for _, tc := range tests {
		verb, args, err := Parse(tc.line)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tc.line, err)
			continue
		}
		if verb != tc.verb {
			t.Errorf("Parse(%q) verb = %q, want %q", tc.line, verb, tc.verb)
		}
		if !argsEqual(args, tc.args) {
			t.Errorf("Parse(%q) args = %q, want %q", tc.line, args, tc.args)
		}
	}
}

func TestParse_UnterminatedQuote(t *testing.T) {
	for _, line := range []string{`cmd "unterminated`, `cmd a "b`, `"`} {
		if _, _, err := Parse(line); err != ErrUnterminatedQuote {
			t.Errorf("Parse(%q) err = %v, want ErrUnterminatedQuote", line, err)
		}
	}
}

func TestParse_EmptyLine(t *testing.T) {
	verb, args, err := Parse("   ")
	if err != nil || verb != "" || len(args) != 0 {
		t.Errorf("Parse(blank) = (%q, %q, %v), want empty and no error", verb, args, err)
	}
}
