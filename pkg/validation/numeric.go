package validation

import (
	"errors"
	"regexp"
)

// ErrNotNumeric is returned by Check when the text falls outside the numeric
// entry grammar. Prompt drivers that expect an error-returning validator use
// it; the form model itself rejects silently.
var ErrNotNumeric = errors.New("validation: value must contain only digits and at most one decimal point")

// numericText accepts partial decimal entries: "", ".", "12", "12.", ".5".
var numericText = regexp.MustCompile(`^\d*\.?\d*$`)

// NumericText reports whether text is a valid, possibly incomplete, unsigned
// decimal entry.
func NumericText(text string) bool {
	return numericText.MatchString(text)
}

// Observer is notified whenever a keyed edit is rejected.
type Observer func(key, text string)

// Validator applies the numeric grammar to keyed edits.
type Validator struct {
	observer Observer
}

// Option configures a Validator.
type Option func(*Validator)

// WithObserver registers a hook that sees rejected edits.
func WithObserver(fn Observer) Option {
	return func(v *Validator) {
		v.observer = fn
	}
}

// New constructs a Validator.
func New(options ...Option) *Validator {
	v := &Validator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	return v
}

// Accept reports whether text may be stored under key. Rejections are
// reported to the observer, never to the caller as an error.
func (v *Validator) Accept(key, text string) bool {
	if NumericText(text) {
		return true
	}
	if v != nil && v.observer != nil {
		v.observer(key, text)
	}
	return false
}

// Check is the error-returning form of NumericText.
func Check(text string) error {
	if NumericText(text) {
		return nil
	}
	return ErrNotNumeric
}
