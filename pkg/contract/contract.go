package contract

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// CalculatePath is the route of the calculation operation.
const CalculatePath = "/api/v1/calculate"

const (
	requestSchemaName  = "CalculationRequest"
	responseSchemaName = "CalculationResponse"
)

var (
	// ErrInvalidRequest wraps request payload schema violations.
	ErrInvalidRequest = errors.New("contract: invalid calculation request")
	// ErrInvalidResponse wraps response payload schema violations.
	ErrInvalidResponse = errors.New("contract: invalid calculation response")
)

//go:embed openapi.yaml
var document []byte

// Contract validates payloads against the calculation service OpenAPI
// document.
type Contract struct {
	raw      []byte
	request  *openapi3.Schema
	response *openapi3.Schema
}

// Load parses and validates the embedded OpenAPI document.
func Load(ctx context.Context) (*Contract, error) {
	return Parse(ctx, document)
}

// MustLoad panics when the embedded document cannot be loaded.
func MustLoad() *Contract {
	c, err := Load(context.Background())
	if err != nil {
		panic(err)
	}
	return c
}

// Parse loads a contract from raw OpenAPI bytes. The document must declare
// the CalculationRequest and CalculationResponse schemas.
func Parse(ctx context.Context, raw []byte) (*Contract, error) {
	if len(raw) == 0 {
		return nil, errors.New("contract: document is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("contract: load document: %w", err)
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("contract: validate document: %w", err)
	}

	request, err := lookupSchema(spec, requestSchemaName)
	if err != nil {
		return nil, err
	}
	response, err := lookupSchema(spec, responseSchemaName)
	if err != nil {
		return nil, err
	}

	return &Contract{
		raw:      append([]byte(nil), raw...),
		request:  request,
		response: response,
	}, nil
}

// Document returns the raw OpenAPI document.
func (c *Contract) Document() []byte {
	return append([]byte(nil), c.raw...)
}

// ValidateRequest checks a request payload. payload may be a decoded JSON
// value or any JSON-marshalable Go value.
func (c *Contract) ValidateRequest(payload any) error {
	return visit(c.request, payload, ErrInvalidRequest)
}

// ValidateResponse checks a response payload.
func (c *Contract) ValidateResponse(payload any) error {
	return visit(c.response, payload, ErrInvalidResponse)
}

func visit(schema *openapi3.Schema, payload any, kind error) error {
	value, err := toJSONValue(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", kind, err)
	}
	if err := schema.VisitJSON(value); err != nil {
		return fmt.Errorf("%w: %v", kind, err)
	}
	return nil
}

func lookupSchema(spec *openapi3.T, name string) (*openapi3.Schema, error) {
	if spec.Components == nil {
		return nil, fmt.Errorf("contract: document has no components")
	}
	ref, ok := spec.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("contract: schema %q not declared", name)
	}
	return ref.Value, nil
}

func toJSONValue(payload any) (any, error) {
	switch payload.(type) {
	case nil, map[string]any, []any, string, float64, bool:
		return payload, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
