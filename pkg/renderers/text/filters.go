package text

import (
	"strings"

	"github.com/flosch/pongo2/v6"
)

// filterUnits appends a unit suffix: {{ label|units:unit }} -> "Draft (m)".
func filterUnits(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	text := in.String()
	if param == nil || param.IsNil() {
		return pongo2.AsValue(text), nil
	}
	unit := strings.TrimSpace(param.String())
	if unit == "" {
		return pongo2.AsValue(text), nil
	}
	return pongo2.AsValue(text + " (" + unit + ")"), nil
}
