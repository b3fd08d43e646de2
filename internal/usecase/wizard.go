package usecase

import (
	"time"

	"recharge-travels-service/internal/domain/entity"
)

// WizardState is a position in the booking wizard
type WizardState string

const (
	StateContact                    WizardState = "step1_contact"
	StateTripDetails                WizardState = "step2_trip_details"
	StatePayment                    WizardState = "step3_payment"
	StateSubmitting                 WizardState = "submitting"
	StateComplete                   WizardState = "complete"
	StateRedirected                 WizardState = "redirected"
	StatePaymentPendingVerification WizardState = "payment_pending_verification"
)

var stepStates = []WizardState{StateContact, StateTripDetails, StatePayment}

// Step returns 1-3 for form steps and 0 otherwise
func (s WizardState) Step() int {
	for i, st := range stepStates {
		if s == st {
			return i + 1
		}
	}
	return 0
}

// Terminal reports whether the wizard has finished
func (s WizardState) Terminal() bool {
	return s == StateComplete || s == StateRedirected || s == StatePaymentPendingVerification
}

func stateForStep(step int) WizardState {
	step = min(max(step, 1), len(stepStates))
	return stepStates[step-1]
}

type EventKind string

const (
	EventNext             EventKind = "next"
	EventBack             EventKind = "back"
	EventSubmit           EventKind = "submit"
	EventSubmitSucceeded  EventKind = "submit_succeeded"
	EventSubmitFailed     EventKind = "submit_failed"
	EventCheckoutReady    EventKind = "checkout_ready"
	EventCheckoutFailed   EventKind = "checkout_failed"
	EventCheckoutTimedOut EventKind = "checkout_timed_out"
)

// WizardEvent drives a transition. Method, URL and Message are only read
// by the events that carry them.
type WizardEvent struct {
	Kind    EventKind
	Method  string
	URL     string
	Message string
}

type EffectKind string

const (
	EffectScrollToTop        EffectKind = "scroll_to_top"
	EffectPersistAndPay      EffectKind = "persist_and_pay"
	EffectShowConfirmation   EffectKind = "show_confirmation"
	EffectShowError          EffectKind = "show_error"
	EffectRedirect           EffectKind = "redirect"
	EffectShowPaymentPending EffectKind = "show_payment_pending"
)

// Effect is a side effect requested by a transition
type Effect struct {
	Kind    EffectKind `json:"kind"`
	URL     string     `json:"url,omitempty"`
	Message string     `json:"message,omitempty"`
}

// Transition computes the next wizard state. It performs no I/O; the
// returned effects tell the caller what to do. Events that do not apply
// to the current state leave it unchanged.
func Transition(
	state WizardState,
	draft entity.BookingDraft,
	cfg entity.TourConfig,
	today time.Time,
	event WizardEvent,
) (WizardState, []Effect, map[string]string) {
	switch event.Kind {
	case EventNext:
		step := state.Step()
		if step == 0 {
			return state, nil, nil
		}
		if errs := ValidateStep(step, draft, cfg, today); len(errs) > 0 {
			return state, nil, errs
		}
		return stateForStep(step + 1), []Effect{{Kind: EffectScrollToTop}}, nil

	case EventBack:
		step := state.Step()
		if step == 0 {
			return state, nil, nil
		}
		return stateForStep(step - 1), nil, nil

	case EventSubmit:
		if state != StatePayment {
			return state, nil, nil
		}
		if errs := ValidateStep(3, draft, cfg, today); len(errs) > 0 {
			return state, nil, errs
		}
		return StateSubmitting, []Effect{{Kind: EffectPersistAndPay}}, nil
	}

	if state != StateSubmitting {
		return state, nil, nil
	}

	switch event.Kind {
	case EventSubmitSucceeded:
		if event.Method == entity.PaymentCard {
			return StateSubmitting, nil, nil
		}
		return StateComplete, []Effect{{Kind: EffectShowConfirmation}}, nil

	case EventSubmitFailed, EventCheckoutFailed:
		return StatePayment, []Effect{{Kind: EffectShowError, Message: event.Message}}, nil

	case EventCheckoutReady:
		return StateRedirected, []Effect{{Kind: EffectRedirect, URL: event.URL}}, nil

	case EventCheckoutTimedOut:
		return StatePaymentPendingVerification, []Effect{{Kind: EffectShowPaymentPending}}, nil
	}

	return state, nil, nil
}
