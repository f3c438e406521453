package gateway_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-vesselcalc/pkg/form"
	"github.com/goliatone/go-vesselcalc/pkg/gateway"
	"github.com/goliatone/go-vesselcalc/pkg/result"
	"github.com/goliatone/go-vesselcalc/pkg/taxonomy"
)

func TestLocalCalculateFormulas(t *testing.T) {
	gw := gateway.NewLocal()
	got, err := gw.Calculate(context.Background(), form.Request{
		VesselType:   "displacement",
		SubType:      "tug",
		BollardPull:  "60",
		LOA:          "30",
		Width:        "10",
		Draft:        "4.5",
		NumEngines:   "2",
		EnginePower:  "1200",
		GearboxRatio: "4",
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	want := result.New(
		result.Group{Key: result.GroupVesselCharacteristics, Metrics: []result.Metric{
			{Key: "loa", Value: 30.0},
			{Key: "width", Value: 10.0},
			{Key: "draft", Value: 4.5},
		}},
		result.Group{Key: result.GroupPropulsionParameters, Metrics: []result.Metric{
			{Key: "diameter", Value: 40.0},
			{Key: "pitch", Value: 20.0},
			{Key: "bar", Value: 1.5},
		}},
		result.Group{Key: result.GroupPerformance, Metrics: []result.Metric{
			{Key: "predicted_speed", Value: 600.0},
			{Key: "predicted_bollard_pull", Value: 50.0},
		}},
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluateDefaultsEmptyValues(t *testing.T) {
	got := gateway.Evaluate(form.Request{NumEngines: "3", EnginePower: "100", GearboxRatio: "."})

	performance, ok := got.Group(result.GroupPerformance)
	if !ok {
		t.Fatalf("performance group missing")
	}
	speed, _ := performance.Value("predicted_speed")
	if speed != 300.0 {
		t.Fatalf("predicted_speed = %v, want 300 (gearbox ratio defaults to 1)", speed)
	}
	pull, _ := performance.Value("predicted_bollard_pull")
	if pull != -10.0 {
		t.Fatalf("predicted_bollard_pull = %v, want -10", pull)
	}

	rows := result.Present(got)
	if diff := cmp.Diff("Diameter: 0.00", rows[1].Rows[0].String()); diff != "" {
		t.Fatalf("presented diameter mismatch (-want +got):\n%s", diff)
	}
}

func TestLocalCalculateRejectsUnknownSelection(t *testing.T) {
	catalog := taxonomy.MustNew(taxonomy.Entry{
		Category: taxonomy.Category{ID: "barge", Name: "Barge"},
		SubTypes: []taxonomy.SubType{{ID: "hopper"}},
	})
	gw := gateway.NewLocal(gateway.WithCatalog(catalog))

	cases := []form.Request{
		{VesselType: "planing", SubType: "rib"},
		{VesselType: "barge", SubType: "tanker"},
		{},
	}
	for _, req := range cases {
		_, err := gw.Calculate(context.Background(), req)
		if !errors.Is(err, gateway.ErrRejected) {
			t.Fatalf("expected ErrRejected for %+v, got %v", req, err)
		}
	}

	if _, err := gw.Calculate(context.Background(), form.Request{VesselType: "barge", SubType: "hopper"}); err != nil {
		t.Fatalf("expected known selection to succeed: %v", err)
	}
}

func TestLocalCalculateCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.NewLocal().Calculate(ctx, form.Request{VesselType: "planing", SubType: "rib"})
	if !errors.Is(err, gateway.ErrUnreachable) || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected unreachable wrapping context.Canceled, got %v", err)
	}
}

func TestFuncAdapter(t *testing.T) {
	called := false
	var gw gateway.Gateway = gateway.Func(func(ctx context.Context, req form.Request) (result.Result, error) {
		called = true
		return result.Result{}, nil
	})
	if _, err := gw.Calculate(context.Background(), form.Request{}); err != nil || !called {
		t.Fatalf("Func adapter not invoked: called=%v err=%v", called, err)
	}
}
