package result_test

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-vesselcalc/pkg/result"
)

func TestPresent_FixedGroupOrderAndRounding(t *testing.T) {
	var r result.Result
	if err := json.Unmarshal([]byte(`{"performance":{"maxSpeed":12.345},"vessel_characteristics":{"diameter":3}}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []result.Section{
		{Key: "vessel_characteristics", Label: "Vessel Characteristics", Rows: []result.Row{
			{Key: "diameter", Label: "Diameter", Value: "3.00"},
		}},
		{Key: "performance", Label: "Performance", Rows: []result.Row{
			{Key: "maxSpeed", Label: "Max Speed", Value: "12.35"},
		}},
	}
	got := result.Present(r)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
	if line := got[1].Rows[0].String(); line != "Max Speed: 12.35" {
		t.Fatalf("row string = %q", line)
	}
}

func TestPresent_SkipsAbsentEmptyAndUnknownGroups(t *testing.T) {
	r := result.New(
		result.Group{Key: "extra", Metrics: []result.Metric{{Key: "x", Value: 1.0}}},
		result.Group{Key: "propulsion_parameters", Metrics: []result.Metric{}},
		result.Group{Key: "performance", Metrics: []result.Metric{{Key: "predictedSpeed", Value: 300.0}}},
	)

	got := result.Present(r)
	if len(got) != 1 || got[0].Key != "performance" {
		t.Fatalf("expected only performance, got %#v", got)
	}
	if line := got[0].Rows[0].String(); line != "Predicted Speed: 300.00" {
		t.Fatalf("row = %q", line)
	}
}

func TestPresenter_Format(t *testing.T) {
	p := result.NewPresenter()
	cases := []struct {
		in   any
		want string
	}{
		{3.0, "3.00"},
		{12.345, "12.35"},
		{2.675, "2.68"},
		{-12.345, "-12.35"},
		{-0.001, "0.00"},
		{int64(7), "7.00"},
		{json.Number("1.5"), "1.50"},
		{nil, "N/A"},
		{"12", "N/A"},
		{true, "N/A"},
		{math.NaN(), "N/A"},
		{math.Inf(1), "N/A"},
		{1e15 + 0.5, "1000000000000000.50"},
		{-2.5e20, "-250000000000000000000.00"},
		{math.MaxFloat64, strconv.FormatFloat(math.MaxFloat64, 'f', 2, 64)},
	}
	for _, tc := range cases {
		if got := p.Format(tc.in); got != tc.want {
			t.Errorf("Format(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPresenter_Options(t *testing.T) {
	p := result.NewPresenter(result.WithPrecision(1), result.WithMissing("-"))
	if got := p.Format(1.25); got != "1.3" {
		t.Fatalf("precision 1: %q", got)
	}
	if got := p.Format(nil); got != "-" {
		t.Fatalf("missing: %q", got)
	}
}

func TestHumanize(t *testing.T) {
	cases := map[string]string{
		"vessel_characteristics": "Vessel Characteristics",
		"predicted_speed":        "Predicted Speed",
		"maxSpeed":               "Max Speed",
		"predictedBollardPull":   "Predicted Bollard Pull",
		"engineRPM":              "Engine RPM",
		"RPMLimit":               "RPM Limit",
		"bar":                    "Bar",
		"a__b":                   "A B",
	}
	for in, want := range cases {
		if got := result.Humanize(in); got != want {
			t.Errorf("Humanize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPresent_HugeFiniteValues(t *testing.T) {
	var r result.Result
	if err := json.Unmarshal([]byte(`{"performance":{"predictedSpeed":300,"huge":1.7976931348623157e308}}`), &r); err != nil {
		t.Fatalf("decode: %v", err)
	}

	sections := result.Present(r)
	if len(sections) != 1 || len(sections[0].Rows) != 2 {
		t.Fatalf("unexpected sections %+v", sections)
	}
	if got := sections[0].Rows[0].String(); got != "Predicted Speed: 300.00" {
		t.Fatalf("first row = %q", got)
	}
	huge := sections[0].Rows[1].Value
	if strings.Contains(huge, "Inf") || !strings.HasSuffix(huge, ".00") {
		t.Fatalf("huge value = %q", huge)
	}
}
