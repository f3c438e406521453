// Package jsonview renders wizard screens as JSON documents for scripting
// and HTTP consumers.
package jsonview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-vesselcalc/pkg/render"
	"github.com/goliatone/go-vesselcalc/pkg/session"
	"github.com/goliatone/go-vesselcalc/pkg/taxonomy"
)

// Renderer encodes session views as JSON.
type Renderer struct{}

var _ render.Renderer = Renderer{}

// New returns the JSON renderer.
func New() Renderer {
	return Renderer{}
}

func (Renderer) Name() string {
	return "json"
}

func (Renderer) ContentType() string {
	return "application/json"
}

// Render encodes view. Category icons are stripped unless options.Icons is
// set.
func (Renderer) Render(_ context.Context, view session.View, options render.RenderOptions) ([]byte, error) {
	if !options.Icons {
		view = withoutIcons(view)
	}

	var (
		out []byte
		err error
	)
	if options.Indent {
		out, err = json.MarshalIndent(view, "", "  ")
	} else {
		out, err = json.Marshal(view)
	}
	if err != nil {
		return nil, fmt.Errorf("jsonview: encode view: %w", err)
	}
	return append(out, '\n'), nil
}

func withoutIcons(view session.View) session.View {
	if len(view.Categories) > 0 {
		categories := make([]taxonomy.Category, len(view.Categories))
		for i, category := range view.Categories {
			category.Icon = ""
			categories[i] = category
		}
		view.Categories = categories
	}
	if view.Category != nil {
		category := *view.Category
		category.Icon = ""
		view.Category = &category
	}
	return view
}
