// Package vesselcalc wires the catalog, calculation gateways, wizard session
// and screen renderers into a few convenience constructors.
//
//	gw := vesselcalc.NewLocalGateway()
//	s, _ := vesselcalc.NewSession(gw)
//	_ = s.SelectCategory("planing")
//	_ = s.SelectSubType("rib")
//	s.SetField("speed", "35")
//	_, _ = s.Calculate(ctx)
package vesselcalc

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-vesselcalc/pkg/gateway"
	"github.com/goliatone/go-vesselcalc/pkg/render"
	"github.com/goliatone/go-vesselcalc/pkg/renderers/jsonview"
	"github.com/goliatone/go-vesselcalc/pkg/renderers/text"
	"github.com/goliatone/go-vesselcalc/pkg/session"
	"github.com/goliatone/go-vesselcalc/pkg/taxonomy"
)

// Session aliases session.Session so callers can stay on the root package.
type Session = session.Session

// View aliases session.View.
type View = session.View

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// DefaultCatalog returns the embedded hull catalog.
func DefaultCatalog() *taxonomy.Catalog {
	return taxonomy.Default()
}

// LoadCatalog reads a YAML or JSON catalog from path. An empty path returns
// the embedded catalog.
func LoadCatalog(path string) (*taxonomy.Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return taxonomy.Default(), nil
	}
	catalog, err := taxonomy.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vesselcalc: load catalog: %w", err)
	}
	return catalog, nil
}

// NewLocalGateway returns the in-process calculation engine.
func NewLocalGateway(options ...gateway.Option) *gateway.Local {
	return gateway.NewLocal(options...)
}

// NewHTTPGateway returns a gateway posting to a remote calculation service.
func NewHTTPGateway(endpoint string, options ...gateway.Option) (*gateway.HTTP, error) {
	return gateway.NewHTTP(endpoint, options...)
}

// NewSession starts a wizard session over gw.
func NewSession(gw gateway.Gateway, options ...session.Option) (*Session, error) {
	return session.New(gw, options...)
}

// DefaultRegistry returns a registry holding the text and json renderers.
func DefaultRegistry(options ...text.Option) (*render.Registry, error) {
	textRenderer, err := text.New(options...)
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(textRenderer, jsonview.New())
}
