package wizard

import (
	"fmt"

	"github.com/goliatone/go-vesselcalc/pkg/taxonomy"
)

// Step identifies the active wizard screen.
type Step int

const (
	ChoosingCategory Step = iota
	ChoosingSubType
	EnteringSpecifications
)

func (s Step) String() string {
	switch s {
	case ChoosingCategory:
		return "choosing-category"
	case ChoosingSubType:
		return "choosing-sub-type"
	case EnteringSpecifications:
		return "entering-specifications"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Action names the event that caused a transition.
type Action string

const (
	ActionSelectCategory Action = "select-category"
	ActionSelectSubType  Action = "select-sub-type"
	ActionBack           Action = "back"
)

// Selection is the wizard's current choice. SubType is empty until chosen.
type Selection struct {
	Category *taxonomy.Category
	SubType  string
}

// Complete reports whether both a category and a sub-type are recorded.
func (s Selection) Complete() bool {
	return s.Category != nil && s.SubType != ""
}

// Transition describes a completed step change.
type Transition struct {
	From   Step
	To     Step
	Action Action
}

// Hook observes transitions after they are applied.
type Hook func(Transition)

// Option configures a Machine.
type Option func(*Machine)

// WithHook registers a transition hook. Hooks run in registration order.
func WithHook(hook Hook) Option {
	return func(m *Machine) {
		if hook != nil {
			m.hooks = append(m.hooks, hook)
		}
	}
}

// Machine tracks the wizard position. It is not safe for concurrent use;
// callers serialise events (see pkg/session).
type Machine struct {
	catalog   *taxonomy.Catalog
	step      Step
	selection Selection
	hooks     []Hook
}

// New constructs a Machine over catalog, starting at ChoosingCategory. A nil
// catalog falls back to taxonomy.Default.
func New(catalog *taxonomy.Catalog, options ...Option) *Machine {
	if catalog == nil {
		catalog = taxonomy.Default()
	}
	m := &Machine{catalog: catalog, step: ChoosingCategory}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	return m
}

// Catalog returns the injected catalog.
func (m *Machine) Catalog() *taxonomy.Catalog {
	return m.catalog
}

// Step returns the active step.
func (m *Machine) Step() Step {
	return m.step
}

// Selection returns a copy of the current selection.
func (m *Machine) Selection() Selection {
	out := Selection{SubType: m.selection.SubType}
	if m.selection.Category != nil {
		category := *m.selection.Category
		out.Category = &category
	}
	return out
}

// Categories lists the selectable categories.
func (m *Machine) Categories() []taxonomy.Category {
	return m.catalog.Categories()
}

// SubTypes lists the sub-types of the selected category, or nil before a
// category is chosen.
func (m *Machine) SubTypes() []taxonomy.SubType {
	if m.selection.Category == nil {
		return nil
	}
	subs, _ := m.catalog.SubTypes(m.selection.Category.ID)
	return subs
}

// SelectCategory records a category and advances to ChoosingSubType.
func (m *Machine) SelectCategory(id string) error {
	if m.step != ChoosingCategory {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, ActionSelectCategory, m.step)
	}
	category, ok := m.catalog.Category(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, id)
	}
	m.selection.Category = &category
	m.advance(ChoosingSubType, ActionSelectCategory)
	return nil
}

// SelectSubType records a sub-type of the selected category and advances to
// EnteringSpecifications.
func (m *Machine) SelectSubType(id string) error {
	if m.step != ChoosingSubType {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, ActionSelectSubType, m.step)
	}
	if _, ok := m.catalog.SubType(m.selection.Category.ID, id); !ok {
		return fmt.Errorf("%w: %q in category %q", ErrUnknownSubType, id, m.selection.Category.ID)
	}
	m.selection.SubType = id
	m.advance(EnteringSpecifications, ActionSelectSubType)
	return nil
}

// Back unwinds one step and reports whether anything changed.
func (m *Machine) Back() bool {
	switch m.step {
	case EnteringSpecifications:
		m.selection.SubType = ""
		m.advance(ChoosingSubType, ActionBack)
		return true
	case ChoosingSubType:
		m.selection = Selection{}
		m.advance(ChoosingCategory, ActionBack)
		return true
	default:
		return false
	}
}

func (m *Machine) advance(to Step, action Action) {
	transition := Transition{From: m.step, To: to, Action: action}
	m.step = to
	for _, hook := range m.hooks {
		hook(transition)
	}
}
