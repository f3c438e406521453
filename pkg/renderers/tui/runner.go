package tui

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-vesselcalc/pkg/session"
	"github.com/goliatone/go-vesselcalc/pkg/validation"
	"github.com/goliatone/go-vesselcalc/pkg/wizard"
)

// Runner drives a session through terminal prompts: cards become select
// options, fields become inputs, and "Back" entries act as the back button.
type Runner struct {
	session  *session.Session
	driver   PromptDriver
	theme    Theme
	logger   *zap.Logger
	pageSize int
}

// New constructs a Runner over s. The survey driver is used unless
// WithPromptDriver is given.
func New(s *session.Session, options ...Option) (*Runner, error) {
	if s == nil {
		return nil, errors.New("tui: session is required")
	}
	r := &Runner{
		session:  s,
		logger:   zap.NewNop(),
		pageSize: 12,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r, nil
}

// Run prompts until the user exits from the category screen, the context is
// cancelled, or the driver fails. Choosing Exit returns nil.
func (r *Runner) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var (
			done bool
			err  error
		)
		switch step := r.session.Step(); step {
		case wizard.ChoosingCategory:
			done, err = r.chooseCategory(ctx)
		case wizard.ChoosingSubType:
			err = r.chooseSubType(ctx)
		case wizard.EnteringSpecifications:
			err = r.enterSpecifications(ctx)
		default:
			err = fmt.Errorf("tui: unexpected step %s", step)
		}
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (r *Runner) chooseCategory(ctx context.Context) (bool, error) {
	view := r.session.View()
	options := make([]string, 0, len(view.Categories)+1)
	for _, category := range view.Categories {
		options = append(options, category.Name)
	}
	options = append(options, OptionExit)

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      view.Title,
		Options:      options,
		DefaultIndex: -1,
		Help:         view.Subtitle,
		PageSize:     r.pageSize,
	})
	if err != nil {
		return false, err
	}
	switch {
	case idx == len(view.Categories):
		return true, nil
	case idx < 0 || idx > len(view.Categories):
		return false, r.warn(ctx, "Invalid selection")
	}
	return false, r.session.SelectCategory(view.Categories[idx].ID)
}

func (r *Runner) chooseSubType(ctx context.Context) error {
	view := r.session.View()
	if len(view.SubTypes) == 0 {
		if err := r.info(ctx, "No sub-types available for "+view.Category.Name); err != nil {
			return err
		}
	}
	options := make([]string, 0, len(view.SubTypes)+1)
	for _, sub := range view.SubTypes {
		options = append(options, sub.Name)
	}
	options = append(options, OptionBack)

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      view.Title,
		Options:      options,
		DefaultIndex: -1,
		Help:         view.Category.Name,
		PageSize:     r.pageSize,
	})
	if err != nil {
		return err
	}
	switch {
	case idx == len(view.SubTypes):
		r.session.Back()
		return nil
	case idx < 0 || idx > len(view.SubTypes):
		return r.warn(ctx, "Invalid selection")
	}
	return r.session.SelectSubType(view.SubTypes[idx].ID)
}

func (r *Runner) enterSpecifications(ctx context.Context) error {
	view := r.session.View()
	options := make([]string, 0, len(view.Fields)+2)
	for _, field := range view.Fields {
		options = append(options, fieldOption(field))
	}
	calculateIdx := len(options)
	options = append(options, OptionCalculate, OptionBack)

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      view.Title + " (" + view.Subtitle + ")",
		Options:      options,
		DefaultIndex: -1,
		PageSize:     r.pageSize,
	})
	if err != nil {
		return err
	}

	switch {
	case idx >= 0 && idx < calculateIdx:
		return r.editField(ctx, view.Fields[idx])
	case idx == calculateIdx:
		return r.calculate(ctx)
	case idx == calculateIdx+1:
		r.session.Back()
		return nil
	default:
		return r.warn(ctx, "Invalid selection")
	}
}

func (r *Runner) editField(ctx context.Context, field session.FieldView) error {
	text, err := r.driver.Input(ctx, InputConfig{
		Message:   field.Label,
		Default:   field.Value,
		Help:      field.Placeholder,
		Validator: validation.Check,
	})
	if err != nil {
		return err
	}
	if !r.session.SetField(field.Key, text) {
		return r.warn(ctx, fmt.Sprintf("Invalid %s: %v", field.Label, validation.ErrNotNumeric))
	}
	return nil
}

func (r *Runner) calculate(ctx context.Context) error {
	if err := r.info(ctx, "Calculating..."); err != nil {
		return err
	}
	outcome, err := r.session.Calculate(ctx)
	if err != nil {
		return err
	}
	if !outcome.Applied {
		return nil
	}
	if outcome.Err != nil {
		r.logger.Warn("calculation failed", zap.Error(outcome.Err))
		return r.warn(ctx, r.session.Notice())
	}

	for _, section := range r.session.Sections() {
		if err := r.info(ctx, section.Label); err != nil {
			return err
		}
		for _, row := range section.Rows {
			if err := r.info(ctx, "  "+row.String()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Runner) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func (r *Runner) warn(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.ErrorPrefix+msg)
}

func fieldOption(field session.FieldView) string {
	label := field.Label
	if field.Unit != "" {
		label += " (" + field.Unit + ")"
	}
	value := field.Value
	if value == "" {
		value = "-"
	}
	return label + ": " + value
}

