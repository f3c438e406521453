package text

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-vesselcalc/pkg/render"
	rendertemplate "github.com/goliatone/go-vesselcalc/pkg/render/template"
	gotemplate "github.com/goliatone/go-vesselcalc/pkg/render/template/gotemplate"
	"github.com/goliatone/go-vesselcalc/pkg/session"
	"github.com/goliatone/go-vesselcalc/pkg/wizard"
)

const defaultWidth = 40

// Option configures the text renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle. It must provide
// categories.tpl, subtypes.tpl and specifications.tpl under templates/.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk laid out like
// the embedded bundle.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer draws wizard screens as plain text.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the text renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
			gotemplate.WithFilter("units", filterUnits),
		)
		if err != nil {
			return nil, fmt.Errorf("text renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render draws the screen for the view's step.
func (r *Renderer) Render(_ context.Context, view session.View, options render.RenderOptions) ([]byte, error) {
	name, err := templateFor(view.Step)
	if err != nil {
		return nil, err
	}

	width := options.Width
	if width <= 0 {
		width = defaultWidth
	}
	data := map[string]any{
		"view":        view,
		"icons":       options.Icons,
		"rule":        strings.Repeat("=", width),
		"label_width": labelWidth(view.Fields),
	}

	out, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return nil, fmt.Errorf("text renderer: render %s: %w", view.Step, err)
	}
	return []byte(tidy(out)), nil
}

func templateFor(step wizard.Step) (string, error) {
	switch step {
	case wizard.ChoosingCategory:
		return "templates/categories.tpl", nil
	case wizard.ChoosingSubType:
		return "templates/subtypes.tpl", nil
	case wizard.EnteringSpecifications:
		return "templates/specifications.tpl", nil
	default:
		return "", fmt.Errorf("text renderer: unknown step %d", step)
	}
}

func labelWidth(fields []session.FieldView) int {
	width := 0
	for _, field := range fields {
		label := field.Label
		if field.Unit != "" {
			label += " (" + field.Unit + ")"
		}
		if n := utf8.RuneCountInString(label); n > width {
			width = n
		}
	}
	return width
}

// tidy strips trailing spaces and collapses runs of blank lines left behind
// by template tags.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := true
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.TrimRight(strings.Join(out, "\n"), "\n") + "\n"
}
