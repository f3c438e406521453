package session

import (
	"github.com/goliatone/go-vesselcalc/pkg/form"
	"github.com/goliatone/go-vesselcalc/pkg/result"
	"github.com/goliatone/go-vesselcalc/pkg/taxonomy"
	"github.com/goliatone/go-vesselcalc/pkg/wizard"
)

// Screen headings.
const (
	TitleCategories     = "Vessel Calculator"
	SubtitleCategories  = "Select the type of hull for your vessel"
	TitleSubTypes       = "Select Vessel Type"
	TitleSpecifications = "Vessel Specifications"
)

// FieldView is a specification input with its current text.
type FieldView struct {
	form.Field
	Placeholder string `json:"placeholder"`
	Value       string `json:"value"`
}

// View is a consistent snapshot of the session for renderers.
type View struct {
	Step       wizard.Step         `json:"-"`
	StepName   string              `json:"step"`
	Title      string              `json:"title"`
	Subtitle   string              `json:"subtitle,omitempty"`
	CanGoBack  bool                `json:"can_go_back"`
	Categories []taxonomy.Category `json:"categories,omitempty"`
	Category   *taxonomy.Category  `json:"category,omitempty"`
	SubTypes   []taxonomy.SubType  `json:"sub_types,omitempty"`
	SubType    string              `json:"sub_type,omitempty"`
	Fields     []FieldView         `json:"fields,omitempty"`
	Loading    bool                `json:"loading,omitempty"`
	Sections   []result.Section    `json:"sections,omitempty"`
	Notice     string              `json:"notice,omitempty"`
}

// View captures the active screen.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	step := s.machine.Step()
	selection := s.machine.Selection()
	view := View{
		Step:      step,
		StepName:  step.String(),
		CanGoBack: step != wizard.ChoosingCategory,
		Category:  selection.Category,
		SubType:   selection.SubType,
	}

	switch step {
	case wizard.ChoosingCategory:
		view.Title = TitleCategories
		view.Subtitle = SubtitleCategories
		view.Categories = s.machine.Categories()
	case wizard.ChoosingSubType:
		view.Title = TitleSubTypes
		view.SubTypes = s.machine.SubTypes()
		if view.SubTypes == nil {
			view.SubTypes = []taxonomy.SubType{}
		}
	case wizard.EnteringSpecifications:
		view.Title = TitleSpecifications
		view.Subtitle = Heading(selection)
		for _, field := range s.form.Fields() {
			view.Fields = append(view.Fields, FieldView{
				Field:       field,
				Placeholder: field.Placeholder(),
				Value:       s.form.Value(field.Key),
			})
		}
		view.Loading = s.loading()
		if s.result != nil {
			view.Sections = s.presenter.Present(*s.result)
		}
		if s.failure != nil {
			view.Notice = FailureNotice
		}
	}
	return view
}

// Heading renders "<category name> - <sub type id>" for a complete
// selection.
func Heading(selection wizard.Selection) string {
	if selection.Category == nil {
		return ""
	}
	if selection.SubType == "" {
		return selection.Category.Name
	}
	return selection.Category.Name + " - " + selection.SubType
}
