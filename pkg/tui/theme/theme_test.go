// ABOUTME: Tests for theme types, builtin palettes, and the global theme pointer
// ABOUTME: Verifies that every palette field is populated

package theme

import (
	"reflect"
	"slices"
	"testing"
)

func assertComplete(t *testing.T, name string, p Palette) {
	t.Helper()
	v := reflect.ValueOf(p)
	for i := range v.NumField() {
		c := v.Field(i).Interface().(Color)
		if c.Code() == "" {
			t.Errorf("%s: palette field %s is empty", name, v.Type().Field(i).Name)
		}
	}
}

func TestDefaultPalette_AllFieldsSet(t *testing.T) {
	t.Parallel()
	assertComplete(t, "default", DefaultPalette())
}

func TestBuiltins_AllFieldsSet(t *testing.T) {
	t.Parallel()
	for _, name := range BuiltinNames() {
		th := Builtin(name)
		if th == nil {
			t.Fatalf("Builtin(%q) = nil", name)
		}
		if th.Name != name {
			t.Errorf("Builtin(%q).Name = %q", name, th.Name)
		}
		assertComplete(t, name, th.Palette)
	}
}

func TestBuiltinNames_Sorted(t *testing.T) {
	t.Parallel()
	want := []string{"dark", "default", "light", "monochrome"}
	if got := BuiltinNames(); !slices.Equal(got, want) {
		t.Errorf("BuiltinNames() = %v; want %v", got, want)
	}
	if Builtin("neon") != nil {
		t.Error("Builtin(neon) should be nil")
	}
}

func TestCurrent_SetAndRestore(t *testing.T) {
	saved := Current()
	defer Set(saved)

	if saved == nil {
		t.Fatal("Current() = nil")
	}
	Set(Builtin("dark"))
	if Current().Name != "dark" {
		t.Errorf("Current().Name = %q; want dark", Current().Name)
	}
	Set(nil)
	if Current().Name != "dark" {
		t.Error("Set(nil) should be ignored")
	}
}
