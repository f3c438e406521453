package taxonomy

import "errors"

var (
	// ErrEmptyCatalog is returned when a catalog declares no categories.
	ErrEmptyCatalog = errors.New("taxonomy: catalog has no categories")
	// ErrDuplicateID flags repeated category or sub-type identifiers.
	ErrDuplicateID = errors.New("taxonomy: duplicate id")
	// ErrMissingSubTypes flags a category without a sub-type list.
	ErrMissingSubTypes = errors.New("taxonomy: category has no sub-type list")
)
