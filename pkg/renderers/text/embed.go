package text

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded screen templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
