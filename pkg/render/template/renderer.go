package template

// TemplateRenderer executes named templates against arbitrary data.
type TemplateRenderer interface {
	RenderTemplate(name string, data any) (string, error)
}
