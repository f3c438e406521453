package server

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-vesselcalc/pkg/contract"
	"github.com/goliatone/go-vesselcalc/pkg/gateway"
	"github.com/goliatone/go-vesselcalc/pkg/taxonomy"
)

const (
	defaultBasePath     = "/api/v1"
	defaultMaxBodyBytes = 64 << 10
)

// Options configures the calculation service.
type Options struct {
	BasePath     string
	MaxBodyBytes int64
	// Engine answers calculations. Defaults to the local engine over Catalog.
	Engine gateway.Gateway
	// Catalog is served on the catalog route. Defaults to taxonomy.Default.
	Catalog *taxonomy.Catalog
	// Contract validates request payloads. Nil disables validation.
	Contract *contract.Contract
	Logger   *zap.Logger
}

// OptionFn mutates Options.
type OptionFn func(*Options)

// DefaultOptions returns the built-in options.
func DefaultOptions() Options {
	return Options{
		BasePath:     defaultBasePath,
		MaxBodyBytes: defaultMaxBodyBytes,
	}
}

// NewOptions applies fns over DefaultOptions and fills remaining defaults.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.BasePath == "" {
		opts.BasePath = defaultBasePath
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	if opts.Catalog == nil {
		opts.Catalog = taxonomy.Default()
	}
	if opts.Engine == nil {
		opts.Engine = gateway.NewLocal(gateway.WithCatalog(opts.Catalog), gateway.WithLogger(opts.Logger))
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

func WithBasePath(path string) OptionFn {
	return func(o *Options) {
		o.BasePath = path
	}
}

func WithMaxBodyBytes(n int64) OptionFn {
	return func(o *Options) {
		o.MaxBodyBytes = n
	}
}

func WithEngine(engine gateway.Gateway) OptionFn {
	return func(o *Options) {
		o.Engine = engine
	}
}

func WithCatalog(catalog *taxonomy.Catalog) OptionFn {
	return func(o *Options) {
		o.Catalog = catalog
	}
}

func WithContract(c *contract.Contract) OptionFn {
	return func(o *Options) {
		o.Contract = c
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		o.Logger = logger
	}
}
