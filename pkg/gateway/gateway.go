package gateway

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-vesselcalc/pkg/contract"
	"github.com/goliatone/go-vesselcalc/pkg/form"
	"github.com/goliatone/go-vesselcalc/pkg/result"
	"github.com/goliatone/go-vesselcalc/pkg/taxonomy"
)

// StatusSuccess is the wire status of a successful calculation.
const StatusSuccess = "success"

// Gateway runs a calculation.
type Gateway interface {
	Calculate(ctx context.Context, req form.Request) (result.Result, error)
}

// Func adapts a function to the Gateway interface.
type Func func(ctx context.Context, req form.Request) (result.Result, error)

// Calculate calls f.
func (f Func) Calculate(ctx context.Context, req form.Request) (result.Result, error) {
	return f(ctx, req)
}

// Response is the wire envelope returned by the calculation service.
type Response struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Results *result.Result `json:"results,omitempty"`
}

type config struct {
	client    *http.Client
	timeout   time.Duration
	logger    *zap.Logger
	contract  *contract.Contract
	catalog   *taxonomy.Catalog
	requestID func() string
}

// Option configures a gateway.
type Option func(*config)

// WithHTTPClient overrides the HTTP client used by the HTTP gateway.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		if client != nil {
			cfg.client = client
		}
	}
}

// WithTimeout bounds each calculation call. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) {
		if timeout >= 0 {
			cfg.timeout = timeout
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithContract validates response payloads against the OpenAPI contract.
// Violations are reported as unreachable errors.
func WithContract(c *contract.Contract) Option {
	return func(cfg *config) {
		cfg.contract = c
	}
}

// WithCatalog sets the catalog the local gateway checks selections against.
func WithCatalog(catalog *taxonomy.Catalog) Option {
	return func(cfg *config) {
		if catalog != nil {
			cfg.catalog = catalog
		}
	}
}

// WithRequestID overrides the X-Request-ID generator.
func WithRequestID(fn func() string) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.requestID = fn
		}
	}
}

func newConfig(options []Option) config {
	cfg := config{
		timeout: 15 * time.Second,
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
