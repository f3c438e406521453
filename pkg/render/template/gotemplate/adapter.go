package gotemplate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-vesselcalc/pkg/render/template"
)

// Option configures an Engine.
type Option func(*config)

type config struct {
	files     fs.FS
	extension string
	filters   map[string]pongo2.FilterFunction
}

// WithFS sets the template source.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.files = files
	}
}

// WithExtension overrides the ".tpl" suffix appended to bare template names.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.extension = ext
	}
}

// WithFilter registers a pongo2 filter when the engine is built. pongo2
// filters are process wide; a name that is already registered keeps its
// first definition.
func WithFilter(name string, fn pongo2.FilterFunction) Option {
	return func(cfg *config) {
		if cfg.filters == nil {
			cfg.filters = make(map[string]pongo2.FilterFunction)
		}
		cfg.filters[strings.TrimSpace(name)] = fn
	}
}

// Engine caches parsed templates from one template set.
type Engine struct {
	set       *pongo2.TemplateSet
	extension string

	mu    sync.Mutex
	cache map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an Engine. WithFS is required.
func New(options ...Option) (*Engine, error) {
	cfg := config{extension: ".tpl"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.files == nil {
		return nil, errors.New("gotemplate: template filesystem is required")
	}

	for name, fn := range cfg.filters {
		if name == "" || fn == nil {
			return nil, fmt.Errorf("gotemplate: invalid filter %q", name)
		}
		if pongo2.FilterExists(name) {
			continue
		}
		if err := pongo2.RegisterFilter(name, fn); err != nil {
			return nil, fmt.Errorf("gotemplate: register filter %q: %w", name, err)
		}
	}

	return &Engine{
		set:       pongo2.NewSet("vesselcalc", pongo2.NewFSLoader(cfg.files)),
		extension: cfg.extension,
		cache:     make(map[string]*pongo2.Template),
	}, nil
}

// RenderTemplate executes the template at name. data must encode to a JSON
// object.
func (e *Engine) RenderTemplate(name string, data any) (string, error) {
	if !strings.HasSuffix(name, e.extension) {
		name += e.extension
	}

	tmpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}
	ctx, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %s: %w", name, err)
	}
	out, err := tmpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute %s: %w", name, err)
	}
	return out, nil
}

func (e *Engine) lookup(name string) (*pongo2.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load %s: %w", name, err)
	}
	e.cache[name] = tmpl
	return tmpl, nil
}

func toContext(data any) (pongo2.Context, error) {
	if data == nil {
		return pongo2.Context{}, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode data: %w", err)
	}
	var ctx pongo2.Context
	if err := json.Unmarshal(raw, &ctx); err != nil {
		return nil, fmt.Errorf("template data must be an object: %w", err)
	}
	return ctx, nil
}
