package form_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-vesselcalc/pkg/form"
	"github.com/goliatone/go-vesselcalc/pkg/taxonomy"
	"github.com/goliatone/go-vesselcalc/pkg/validation"
	"github.com/goliatone/go-vesselcalc/pkg/wizard"
)

func TestNew_AllFieldsEmpty(t *testing.T) {
	m := form.New()

	want := map[string]string{
		"speed": "", "bollardPull": "", "loa": "", "width": "", "draft": "",
		"numEngines": "", "enginePower": "", "engineRPM": "", "gearboxRatio": "",
	}
	if diff := cmp.Diff(want, m.Values()); diff != "" {
		t.Fatalf("initial values mismatch (-want +got):\n%s", diff)
	}
}

func TestFields_Order(t *testing.T) {
	var keys []string
	for _, field := range form.Fields() {
		keys = append(keys, field.Key)
	}
	want := []string{"speed", "bollardPull", "loa", "width", "draft", "numEngines", "enginePower", "engineRPM", "gearboxRatio"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	field, ok := form.Lookup(form.KeyEnginePower)
	if !ok || field.Unit != "kW" || field.Placeholder() != "Enter Engine Power" {
		t.Fatalf("unexpected engine power field: %#v", field)
	}
}

func TestSetField_RejectionLeavesValue(t *testing.T) {
	m := form.New()
	if !m.SetField(form.KeyLOA, "10") {
		t.Fatalf("expected 10 to be accepted")
	}
	if m.SetField(form.KeyLOA, "10a") {
		t.Fatalf("expected 10a to be rejected")
	}
	if got := m.Value(form.KeyLOA); got != "10" {
		t.Fatalf("loa = %q, want 10", got)
	}
}

func TestSetField_Idempotent(t *testing.T) {
	m := form.New()
	for i := 0; i < 3; i++ {
		if !m.SetField(form.KeyDraft, "1.5") {
			t.Fatalf("attempt %d rejected", i)
		}
	}
	if got := m.Value(form.KeyDraft); got != "1.5" {
		t.Fatalf("draft = %q", got)
	}
}

func TestSetField_UnknownKey(t *testing.T) {
	m := form.New()
	if m.SetField("keelDepth", "3") {
		t.Fatalf("unknown keys must be rejected")
	}
	if _, ok := m.Values()["keelDepth"]; ok {
		t.Fatalf("unknown key stored")
	}
}

func TestSetField_ObserverHook(t *testing.T) {
	var rejected []string
	m := form.New(form.WithValidator(validation.New(validation.WithObserver(func(key, text string) {
		rejected = append(rejected, key+"="+text)
	}))))

	m.SetField(form.KeySpeed, "-5")
	m.SetField(form.KeySpeed, "5")
	m.SetField(form.KeySpeed, "5,")

	if diff := cmp.Diff([]string{"speed=-5", "speed=5,"}, rejected); diff != "" {
		t.Fatalf("observer mismatch (-want +got):\n%s", diff)
	}
	if got := m.Value(form.KeySpeed); got != "5" {
		t.Fatalf("speed = %q", got)
	}
}

func TestReset(t *testing.T) {
	m := form.New()
	m.SetField(form.KeyWidth, "4")
	m.Reset()
	if got := m.Value(form.KeyWidth); got != "" {
		t.Fatalf("width = %q after reset", got)
	}
}

func TestBuildRequest(t *testing.T) {
	machine := wizard.New(taxonomy.Default())
	m := form.New()

	if _, err := m.BuildRequest(machine.Selection()); !errors.Is(err, form.ErrIncompleteSelection) {
		t.Fatalf("expected ErrIncompleteSelection, got %v", err)
	}

	_ = machine.SelectCategory("planing")
	if _, err := m.BuildRequest(machine.Selection()); !errors.Is(err, form.ErrIncompleteSelection) {
		t.Fatalf("expected ErrIncompleteSelection without sub type, got %v", err)
	}
	_ = machine.SelectSubType("speed-boat")

	m.SetField(form.KeyLOA, "10")
	m.SetField(form.KeyGearboxRatio, "2.")

	req, err := m.BuildRequest(machine.Selection())
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	want := form.Request{VesselType: "planing", SubType: "speed-boat", LOA: "10", GearboxRatio: "2."}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Fatalf("request mismatch (-want +got):\n%s", diff)
	}

	m.SetField(form.KeyLOA, "12")
	if req.LOA != "10" {
		t.Fatalf("request must hold a copy of the form values")
	}
}

func TestRequest_Float(t *testing.T) {
	req := form.Request{LOA: "10.5", Width: "", Draft: ".", GearboxRatio: "0"}

	cases := []struct {
		key      string
		fallback float64
		want     float64
	}{
		{form.KeyLOA, 0, 10.5},
		{form.KeyWidth, 0, 0},
		{form.KeyDraft, 0, 0},
		{form.KeyGearboxRatio, 1, 1},
		{"unknown", 7, 7},
	}
	for _, tc := range cases {
		if got := req.Float(tc.key, tc.fallback); got != tc.want {
			t.Errorf("Float(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}
