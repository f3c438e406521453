package contract_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-vesselcalc/pkg/contract"
	"github.com/goliatone/go-vesselcalc/pkg/form"
)

func TestLoad(t *testing.T) {
	c, err := contract.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !strings.Contains(string(c.Document()), contract.CalculatePath) {
		t.Fatalf("document does not mention %s", contract.CalculatePath)
	}
}

func TestValidateRequest(t *testing.T) {
	c := contract.MustLoad()

	ok := form.Request{VesselType: "planing", SubType: "rib", LOA: "10", Draft: "1."}
	if err := c.ValidateRequest(ok); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	cases := map[string]any{
		"missing vessel type": map[string]any{"sub_type": "rib"},
		"empty sub type":      form.Request{VesselType: "planing"},
		"bad numeric text":    form.Request{VesselType: "planing", SubType: "rib", LOA: "-1"},
		"number not string":   map[string]any{"vessel_type": "planing", "sub_type": "rib", "loa": 10.0},
		"not an object":       []any{"planing"},
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			if err := c.ValidateRequest(payload); !errors.Is(err, contract.ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}
		})
	}
}

func TestValidateResponse(t *testing.T) {
	c := contract.MustLoad()

	valid := []map[string]any{
		{"status": "success", "results": map[string]any{"performance": map[string]any{"predicted_speed": 300.0, "max": nil}}},
		{"status": "error", "message": "unknown vessel type"},
	}
	for _, payload := range valid {
		if err := c.ValidateResponse(payload); err != nil {
			t.Fatalf("valid response rejected: %v (%v)", err, payload)
		}
	}

	invalid := []any{
		map[string]any{"message": "no status"},
		map[string]any{"status": "success", "results": map[string]any{"performance": map[string]any{"speed": "fast"}}},
		"success",
	}
	for _, payload := range invalid {
		if err := c.ValidateResponse(payload); !errors.Is(err, contract.ErrInvalidResponse) {
			t.Fatalf("expected ErrInvalidResponse for %v, got %v", payload, err)
		}
	}
}

func TestParse_MissingSchemas(t *testing.T) {
	doc := []byte("openapi: 3.0.3\ninfo: {title: t, version: '1'}\npaths: {}\n")
	if _, err := contract.Parse(context.Background(), doc); err == nil {
		t.Fatalf("expected error for document without schemas")
	}
	if _, err := contract.Parse(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty document")
	}
}
