package wizard

import "errors"

var (
	// ErrInvalidTransition is returned when an action does not apply to the
	// current step.
	ErrInvalidTransition = errors.New("wizard: invalid transition")
	// ErrUnknownCategory is returned for category ids missing from the catalog.
	ErrUnknownCategory = errors.New("wizard: unknown category")
	// ErrUnknownSubType is returned for sub-type ids not offered by the
	// selected category.
	ErrUnknownSubType = errors.New("wizard: unknown sub-type")
)
