// Package console tests the variable store: overwrite semantics and the
// unset-versus-empty distinction.
package console

import "testing"

func TestVars_LastWriteWins(t *testing.T) {
	v := NewVars()
	v.Set("x", "1")
	v.Set("x", "2")
	if got, _ := v.Get("x"); got != "2" {
		t.Errorf("Get(x) = %q, want %q", got, "2")
	}
}

func TestVars_UnsetDistinctFromEmpty(t *testing.T) {
	v := NewVars()
	if _, ok := v.Get("missing"); ok {
		t.Error("Get of never-set name reported ok")
	}
	v.Set("empty", "")
	got, ok := v.Get("empty")
	if !ok || got != "" {
		t.Errorf("Get(empty) = (%q, %v), want (\"\", true)", got, ok)
	}
}

func TestVars_NamesSorted(t *testing.T) {
	v := NewVars()
	for _, name := range []string{"zoom", "ambient", "fov"} {
		v.Set(name, "1")
	}
	want := []string{"ambient", "fov", "zoom"}
	if got := v.Names(); !argsEqual(got, want) {
		t.Errorf("Names() = %q, want %q", got, want)
	}
}
