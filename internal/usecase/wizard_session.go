package usecase

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/pkg/logger"

	"github.com/google/uuid"
)

// WizardSession is one user's pass through the booking wizard
type WizardSession struct {
	mu sync.Mutex

	id        string
	state     WizardState
	draft     entity.BookingDraft
	config    entity.TourConfig
	user      *entity.User
	errors    map[string]string
	effects   []Effect
	result    *SubmitResult
	issued    map[string]struct{}
	updatedAt time.Time
}

// WizardView is the client-facing snapshot of a session
type WizardView struct {
	ID      string              `json:"id"`
	State   WizardState         `json:"state"`
	Step    int                 `json:"step"`
	Draft   entity.BookingDraft `json:"draft"`
	Tour    entity.TourConfig   `json:"tour"`
	Pricing Pricing             `json:"pricing"`
	Errors  map[string]string   `json:"errors,omitempty"`
	Effects []Effect            `json:"effects,omitempty"`
	Result  *SubmitResult       `json:"result,omitempty"`
}

// view must be called with s.mu held
func (s *WizardSession) view() *WizardView {
	draft := s.draft
	draft.CardCVC = ""
	if n := len(draft.CardNumber); n > 4 {
		draft.CardNumber = "•••• " + draft.CardNumber[n-4:]
	}

	return &WizardView{
		ID:      s.id,
		State:   s.state,
		Step:    s.state.Step(),
		Draft:   draft,
		Tour:    s.config,
		Pricing: CalculatePricing(s.draft, s.config),
		Errors:  s.errors,
		Effects: s.effects,
		Result:  s.result,
	}
}

// WizardStore keeps wizard sessions in memory
type WizardStore struct {
	mu       sync.RWMutex
	sessions map[string]*WizardSession
}

func NewWizardStore() *WizardStore {
	return &WizardStore{sessions: make(map[string]*WizardSession)}
}

func (s *WizardStore) put(session *WizardSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.id] = session
}

func (s *WizardStore) get(id string) (*WizardSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return session, nil
}

// Sweep drops sessions idle since before cutoff and returns how many went
func (s *WizardStore) Sweep(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if !session.mu.TryLock() {
			continue
		}
		idle := session.updatedAt.Before(cutoff)
		session.mu.Unlock()

		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions
func (s *WizardStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// BookingWizard drives wizard sessions through the state machine
type BookingWizard struct {
	store     *WizardStore
	tours     *TourConfigService
	submitter Submitter
	refPrefix string
	logger    logger.Logger
	now       func() time.Time

	rndMu sync.Mutex
	rnd   *rand.Rand
}

// NewBookingWizard creates a new booking wizard
func NewBookingWizard(
	store *WizardStore,
	tours *TourConfigService,
	submitter Submitter,
	refPrefix string,
	logger logger.Logger,
) *BookingWizard {
	if refPrefix == "" {
		refPrefix = "RT"
	}

	return &BookingWizard{
		store:     store,
		tours:     tours,
		submitter: submitter,
		refPrefix: refPrefix,
		logger:    logger,
		now:       time.Now,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start opens a session for tourID, pre-filled from user when present
func (w *BookingWizard) Start(ctx context.Context, tourID string, user *entity.User) *WizardView {
	cfg := w.tours.Config(ctx, tourID)

	session := &WizardSession{
		id:        uuid.NewString(),
		state:     StateContact,
		draft:     entity.NewBookingDraft(cfg, user),
		config:    cfg,
		user:      user,
		issued:    make(map[string]struct{}),
		updatedAt: w.now(),
	}
	w.store.put(session)

	w.logger.Debug("Wizard session started", "sessionId", session.id, "tourId", cfg.ID)

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.view()
}

// Get returns the current snapshot of a session
func (w *BookingWizard) Get(id string) (*WizardView, error) {
	session, err := w.store.get(id)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.view(), nil
}

// Patch merges a partial JSON draft into the session and reprices it
func (w *BookingWizard) Patch(id string, patch []byte) (*WizardView, error) {
	return w.withSession(id, func(s *WizardSession) error {
		if s.state.Step() == 0 {
			return ErrInvalidState
		}

		draft := s.draft
		if err := json.Unmarshal(patch, &draft); err != nil {
			return &ValidationError{Fields: map[string]string{"body": "Invalid draft: " + err.Error()}}
		}

		s.draft = draft
		s.errors = nil
		s.effects = nil
		return nil
	})
}

// Next validates the current step and advances
func (w *BookingWizard) Next(id string) (*WizardView, error) {
	return w.apply(id, WizardEvent{Kind: EventNext})
}

// Back returns to the previous step without validating
func (w *BookingWizard) Back(id string) (*WizardView, error) {
	return w.apply(id, WizardEvent{Kind: EventBack})
}

func (w *BookingWizard) apply(id string, event WizardEvent) (*WizardView, error) {
	return w.withSession(id, func(s *WizardSession) error {
		if s.state.Step() == 0 {
			return ErrInvalidState
		}

		next, effects, errs := Transition(s.state, s.draft, s.config, w.now(), event)
		s.state, s.effects, s.errors = next, effects, errs
		if len(errs) > 0 {
			return &ValidationError{Fields: errs}
		}
		return nil
	})
}

// Submit validates the payment step and submits the booking. A failed
// attempt returns the session to the payment step with its draft intact.
func (w *BookingWizard) Submit(ctx context.Context, id string) (*WizardView, error) {
	return w.withSession(id, func(s *WizardSession) error {
		if s.state != StatePayment {
			return ErrInvalidState
		}

		next, effects, errs := Transition(s.state, s.draft, s.config, w.now(), WizardEvent{Kind: EventSubmit})
		s.state, s.effects, s.errors = next, effects, errs
		if len(errs) > 0 {
			return &ValidationError{Fields: errs}
		}

		result, err := w.submitter.Submit(ctx, SubmitRequest{
			Reference: w.freshReference(s),
			Draft:     s.draft,
			Config:    s.config,
			User:      s.user,
		})
		if err != nil {
			s.fire(w.now(), WizardEvent{Kind: EventSubmitFailed, Message: "We could not complete your booking. Please try again."})
			return err
		}

		s.result = result
		s.fire(w.now(), WizardEvent{Kind: EventSubmitSucceeded, Method: s.draft.PaymentMethod})

		switch result.Outcome {
		case OutcomeRedirect:
			s.fire(w.now(), WizardEvent{Kind: EventCheckoutReady, URL: result.RedirectURL})
		case OutcomeCheckoutFailed:
			s.fire(w.now(), WizardEvent{Kind: EventCheckoutFailed, Message: result.Message})
		case OutcomePaymentPending:
			s.fire(w.now(), WizardEvent{Kind: EventCheckoutTimedOut})
		}

		w.logger.Info("Wizard submitted",
			"sessionId", s.id,
			"reference", result.Reference,
			"state", s.state)
		return nil
	})
}

// fire applies a submission event and appends its effects
func (s *WizardSession) fire(now time.Time, event WizardEvent) {
	next, effects, _ := Transition(s.state, s.draft, s.config, now, event)
	s.state = next
	s.effects = append(s.effects, effects...)
}

// freshReference issues a reference never used before in this session
func (w *BookingWizard) freshReference(s *WizardSession) string {
	w.rndMu.Lock()
	defer w.rndMu.Unlock()

	for {
		ref := GenerateReference(w.refPrefix, w.now(), w.rnd)
		if _, seen := s.issued[ref]; !seen {
			s.issued[ref] = struct{}{}
			return ref
		}
	}
}

// withSession runs fn under the session lock and returns the resulting view
// alongside fn's error.
func (w *BookingWizard) withSession(id string, fn func(s *WizardSession) error) (*WizardView, error) {
	session, err := w.store.get(id)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	err = fn(session)
	session.updatedAt = w.now()
	return session.view(), err
}
