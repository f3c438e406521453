package session

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-vesselcalc/pkg/result"
	"github.com/goliatone/go-vesselcalc/pkg/taxonomy"
	"github.com/goliatone/go-vesselcalc/pkg/validation"
)

// Option configures a Session.
type Option func(*Session)

// WithCatalog injects the vessel catalog. Defaults to taxonomy.Default.
func WithCatalog(catalog *taxonomy.Catalog) Option {
	return func(s *Session) {
		if catalog != nil {
			s.catalog = catalog
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPresenter overrides the result presenter.
func WithPresenter(p *result.Presenter) Option {
	return func(s *Session) {
		if p != nil {
			s.presenter = p
		}
	}
}

// WithValidator overrides the field validator used by the form.
func WithValidator(v *validation.Validator) Option {
	return func(s *Session) {
		if v != nil {
			s.validator = v
		}
	}
}
