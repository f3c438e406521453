package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-vesselcalc/pkg/form"
	"github.com/goliatone/go-vesselcalc/pkg/gateway"
	"github.com/goliatone/go-vesselcalc/pkg/result"
	"github.com/goliatone/go-vesselcalc/pkg/taxonomy"
	"github.com/goliatone/go-vesselcalc/pkg/validation"
	"github.com/goliatone/go-vesselcalc/pkg/wizard"
)

// Session is one wizard instance. It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	gateway   gateway.Gateway
	catalog   *taxonomy.Catalog
	validator *validation.Validator
	presenter *result.Presenter
	logger    *zap.Logger

	machine *wizard.Machine
	form    *form.Model

	generation uint64
	pending    uint64
	result     *result.Result
	failure    error

	inflight sync.WaitGroup
}

// Outcome reports how a calculation resolved.
type Outcome struct {
	// Applied is false when the session moved on before the response arrived.
	Applied bool
	Result  result.Result
	Err     error
}

// Ticket tracks a submitted calculation.
type Ticket struct {
	generation uint64
	done       chan struct{}
	outcome    Outcome
}

// Generation returns the request generation the ticket was issued for.
func (t *Ticket) Generation() uint64 {
	return t.generation
}

// Done is closed once the calculation resolved and its outcome was applied
// or discarded.
func (t *Ticket) Done() <-chan struct{} {
	return t.done
}

// Outcome returns the resolved outcome. It blocks until Done is closed.
func (t *Ticket) Outcome() Outcome {
	<-t.done
	return t.outcome
}

// New creates a session at the category step.
func New(gw gateway.Gateway, options ...Option) (*Session, error) {
	if gw == nil {
		return nil, ErrNoGateway
	}
	s := &Session{
		gateway:   gw,
		logger:    zap.NewNop(),
		presenter: result.NewPresenter(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.catalog == nil {
		s.catalog = taxonomy.Default()
	}
	if s.validator == nil {
		s.validator = validation.New()
	}
	s.machine = wizard.New(s.catalog, wizard.WithHook(s.onTransition))
	s.form = form.New(form.WithValidator(s.validator))
	return s, nil
}

// onTransition runs with s.mu held, from inside machine calls.
func (s *Session) onTransition(t wizard.Transition) {
	if t.From == wizard.EnteringSpecifications {
		s.form.Reset()
	}
	s.invalidate()
	s.logger.Debug("wizard transition",
		zap.Stringer("from", t.From),
		zap.Stringer("to", t.To),
		zap.String("action", string(t.Action)),
		zap.Uint64("generation", s.generation),
	)
}

func (s *Session) invalidate() {
	s.generation++
	s.result = nil
	s.failure = nil
}

// Catalog returns the session catalog.
func (s *Session) Catalog() *taxonomy.Catalog {
	return s.catalog
}

// Step returns the active wizard step.
func (s *Session) Step() wizard.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Step()
}

// Selection returns a copy of the current selection.
func (s *Session) Selection() wizard.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Selection()
}

// Categories lists the selectable categories.
func (s *Session) Categories() []taxonomy.Category {
	return s.catalog.Categories()
}

// SubTypes lists the sub-types of the selected category.
func (s *Session) SubTypes() []taxonomy.SubType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.SubTypes()
}

// SelectCategory chooses a category and advances to the sub-type step.
func (s *Session) SelectCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.SelectCategory(id)
}

// SelectSubType chooses a sub-type and advances to the specification step.
func (s *Session) SelectSubType(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.SelectSubType(id)
}

// Back unwinds one step. Leaving the specification step clears the form.
func (s *Session) Back() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Back()
}

// Restart returns to the category step with an empty form.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.machine.Back() {
	}
	s.form.Reset()
	s.invalidate()
}

// Fields returns the specification field definitions.
func (s *Session) Fields() []form.Field {
	return form.Fields()
}

// Value returns the current text of a field.
func (s *Session) Value(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Value(key)
}

// Values returns a copy of the form state.
func (s *Session) Values() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Values()
}

// SetField applies a field edit. Rejected edits leave the session untouched;
// accepted edits discard any displayed result.
func (s *Session) SetField(key, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.form.SetField(key, text) {
		return false
	}
	s.invalidate()
	return true
}

// Submit starts a calculation for the current selection and form values.
// The displayed result is cleared immediately.
func (s *Session) Submit(ctx context.Context) (*Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.machine.Step() != wizard.EnteringSpecifications {
		return nil, ErrNotReady
	}
	req, err := s.form.BuildRequest(s.machine.Selection())
	if err != nil {
		return nil, errors.Join(ErrNotReady, err)
	}

	s.invalidate()
	ticket := &Ticket{generation: s.generation, done: make(chan struct{})}
	s.pending = s.generation
	s.inflight.Add(1)

	s.logger.Debug("calculation submitted",
		zap.Uint64("generation", ticket.generation),
		zap.String("vessel_type", req.VesselType),
		zap.String("sub_type", req.SubType),
	)

	go s.run(ctx, req, ticket)
	return ticket, nil
}

func (s *Session) run(ctx context.Context, req form.Request, ticket *Ticket) {
	defer s.inflight.Done()
	defer close(ticket.done)

	res, err := s.gateway.Calculate(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	ticket.outcome = Outcome{Result: res, Err: err}
	if ticket.generation != s.generation {
		s.logger.Debug("discarding stale calculation",
			zap.Uint64("generation", ticket.generation),
			zap.Uint64("current", s.generation),
		)
		return
	}

	ticket.outcome.Applied = true
	s.pending = 0
	if err != nil {
		s.failure = err
		s.logger.Warn("calculation failed", zap.Uint64("generation", ticket.generation), zap.Error(err))
		return
	}
	s.result = &res
}

// Calculate submits and waits for the outcome.
func (s *Session) Calculate(ctx context.Context) (Outcome, error) {
	ticket, err := s.Submit(ctx)
	if err != nil {
		return Outcome{}, err
	}
	select {
	case <-ticket.Done():
		return ticket.outcome, nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

// Wait blocks until every submitted calculation resolved.
func (s *Session) Wait() {
	s.inflight.Wait()
}

// Generation returns the current request generation.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Loading reports whether the current generation awaits a response.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading()
}

func (s *Session) loading() bool {
	return s.pending != 0 && s.pending == s.generation
}

// Result returns the displayed result, if any.
func (s *Session) Result() (result.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return result.Result{}, false
	}
	return *s.result, true
}

// Sections returns the presented form of the displayed result.
func (s *Session) Sections() []result.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return nil
	}
	return s.presenter.Present(*s.result)
}

// Failure returns the typed error of the last applied calculation, if it
// failed.
func (s *Session) Failure() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failure
}

// Notice returns the user-facing failure message, or "".
func (s *Session) Notice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure == nil {
		return ""
	}
	return FailureNotice
}
