package testsupport

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-vesselcalc/pkg/form"
	"github.com/goliatone/go-vesselcalc/pkg/gateway"
	"github.com/goliatone/go-vesselcalc/pkg/result"
	"github.com/goliatone/go-vesselcalc/pkg/session"
)

// SampleResult returns a result covering all three groups, including a null
// metric.
func SampleResult() result.Result {
	return result.New(
		result.Group{Key: result.GroupVesselCharacteristics, Metrics: []result.Metric{
			{Key: "loa", Value: 24.0},
			{Key: "width", Value: 6.5},
			{Key: "draft", Value: 1.2},
		}},
		result.Group{Key: result.GroupPropulsionParameters, Metrics: []result.Metric{
			{Key: "diameter", Value: 30.5},
			{Key: "pitch", Value: 15.25},
			{Key: "bar", Value: nil},
		}},
		result.Group{Key: result.GroupPerformance, Metrics: []result.Metric{
			{Key: "predicted_speed", Value: 1333.333},
			{Key: "predicted_bollard_pull", Value: 2.675},
		}},
	)
}

// FixedGateway answers every calculation with res and err.
func FixedGateway(res result.Result, err error) gateway.Func {
	return func(ctx context.Context, _ form.Request) (result.Result, error) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result.Result{}, gateway.Unreachable(ctxErr)
		}
		return res, err
	}
}

// SessionAt builds a session over gw and walks it to the specification step
// for category/subType.
func SessionAt(t *testing.T, gw gateway.Gateway, category, subType string, options ...session.Option) *session.Session {
	t.Helper()

	s, err := session.New(gw, options...)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := s.SelectCategory(category); err != nil {
		t.Fatalf("select category %q: %v", category, err)
	}
	if err := s.SelectSubType(subType); err != nil {
		t.Fatalf("select sub-type %q: %v", subType, err)
	}
	return s
}

// MustDecodeJSON decodes a JSON payload into a generic value.
func MustDecodeJSON(t *testing.T, data []byte) any {
	t.Helper()

	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("decode json: %v\n%s", err, data)
	}
	return out
}

// MustWriteFile writes a fixture into dir and returns its path.
func MustWriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

