package render

// RenderOptions describe per-call presentation tweaks that leave the view
// itself untouched.
type RenderOptions struct {
	// Icons includes the sanitized category icon markup in the output.
	Icons bool
	// Indent pretty-prints structured output.
	Indent bool
	// Width is the target line width for text output. Zero uses the renderer
	// default.
	Width int
}
