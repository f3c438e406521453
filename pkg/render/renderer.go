package render

import (
	"context"

	"github.com/goliatone/go-vesselcalc/pkg/session"
)

// Renderer converts a session view into a byte representation (plain text,
// JSON, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view session.View, options RenderOptions) ([]byte, error)
}
