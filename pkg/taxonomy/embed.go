package taxonomy

import (
	"embed"
	"sync"
)

//go:embed data/catalog.yaml
var embeddedCatalog embed.FS

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the bundled catalog: five hull categories with four
// sub-types each.
func Default() *Catalog {
	defaultOnce.Do(func() {
		catalog, err := LoadFS(embeddedCatalog, "data/catalog.yaml")
		if err != nil {
			// The bundled document is covered by tests.
			panic(err)
		}
		defaultCatalog = catalog
	})
	return defaultCatalog
}
