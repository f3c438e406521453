package validation_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-vesselcalc/pkg/validation"
)

func TestNumericText(t *testing.T) {
	cases := map[string]bool{
		"":       true,
		".":      true,
		"0":      true,
		"007":    true,
		"12.5":   true,
		"12.":    true,
		".5":     true,
		"12.5.3": false,
		"-5":     false,
		"+5":     false,
		"5,":     false,
		"1e3":    false,
		"10a":    false,
		" 1":     false,
		"1 ":     false,
		"..":     false,
		"١٢":     false,
	}

	for input, want := range cases {
		if got := validation.NumericText(input); got != want {
			t.Errorf("NumericText(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestValidator_ObserverSeesOnlyRejections(t *testing.T) {
	type rejection struct{ Key, Text string }
	var seen []rejection

	v := validation.New(validation.WithObserver(func(key, text string) {
		seen = append(seen, rejection{key, text})
	}))

	if !v.Accept("loa", "10") {
		t.Fatalf("expected 10 to be accepted")
	}
	if v.Accept("loa", "10a") {
		t.Fatalf("expected 10a to be rejected")
	}
	if v.Accept("draft", "1.2.3") {
		t.Fatalf("expected 1.2.3 to be rejected")
	}

	want := []rejection{{"loa", "10a"}, {"draft", "1.2.3"}}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("rejections mismatch (-want +got):\n%s", diff)
	}
}

func TestValidator_NilIsUsable(t *testing.T) {
	var v *validation.Validator
	if !v.Accept("speed", "1.5") {
		t.Fatalf("nil validator should still apply the grammar")
	}
	if v.Accept("speed", "x") {
		t.Fatalf("nil validator accepted invalid text")
	}
}

func TestCheck(t *testing.T) {
	if err := validation.Check("3.14"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validation.Check("3,14"); !errors.Is(err, validation.ErrNotNumeric) {
		t.Fatalf("expected ErrNotNumeric, got %v", err)
	}
}
