// Package template defines the template engine seam used by text-based
// renderers. The gotemplate sub-package provides a pongo2 implementation.
package template
