package form

import (
	"github.com/goliatone/go-vesselcalc/pkg/validation"
	"github.com/goliatone/go-vesselcalc/pkg/wizard"
)

// Option configures a Model.
type Option func(*Model)

// WithValidator replaces the default numeric validator, typically to attach
// a rejection observer.
func WithValidator(v *validation.Validator) Option {
	return func(m *Model) {
		if v != nil {
			m.validator = v
		}
	}
}

// Model stores the raw text of every specification field. All values start
// empty and only ever hold text accepted by the validator.
type Model struct {
	values    map[string]string
	validator *validation.Validator
}

// New constructs an empty form.
func New(options ...Option) *Model {
	m := &Model{
		values:    make(map[string]string, len(fields)),
		validator: validation.New(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	m.Reset()
	return m
}

// Fields returns the field definitions in display order.
func (m *Model) Fields() []Field {
	return Fields()
}

// Value returns the stored text for key.
func (m *Model) Value(key string) string {
	return m.values[key]
}

// Values returns a copy of every field value.
func (m *Model) Values() map[string]string {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// SetField stores text under key when key is a known field and text passes
// the numeric grammar. Rejected edits leave the form untouched and report
// false; there is no error channel.
func (m *Model) SetField(key, text string) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	if !m.validator.Accept(key, text) {
		return false
	}
	m.values[key] = text
	return true
}

// Reset clears every field.
func (m *Model) Reset() {
	for _, field := range fields {
		m.values[field.Key] = ""
	}
}

// BuildRequest combines the selection with a copy of all field values.
func (m *Model) BuildRequest(selection wizard.Selection) (Request, error) {
	if !selection.Complete() {
		return Request{}, ErrIncompleteSelection
	}
	return Request{
		VesselType:   selection.Category.ID,
		SubType:      selection.SubType,
		Speed:        m.values[KeySpeed],
		BollardPull:  m.values[KeyBollardPull],
		LOA:          m.values[KeyLOA],
		Width:        m.values[KeyWidth],
		Draft:        m.values[KeyDraft],
		NumEngines:   m.values[KeyNumEngines],
		EnginePower:  m.values[KeyEnginePower],
		EngineRPM:    m.values[KeyEngineRPM],
		GearboxRatio: m.values[KeyGearboxRatio],
	}, nil
}
