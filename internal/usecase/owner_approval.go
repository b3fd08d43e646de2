package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/pkg/logger"
	"recharge-travels-service/pkg/metrics"
)

// OwnerAction is an admin decision on a vehicle owner
type OwnerAction string

const (
	ActionApprove    OwnerAction = "approve"
	ActionReject     OwnerAction = "reject"
	ActionSuspend    OwnerAction = "suspend"
	ActionReactivate OwnerAction = "reactivate"
)

// CanTransition returns the status action leads to from the given status
func CanTransition(from entity.VerificationStatus, action OwnerAction) (entity.VerificationStatus, bool) {
	switch action {
	case ActionApprove:
		if from.IsPending() {
			return entity.OwnerVerified, true
		}
	case ActionReject:
		if from.IsPending() {
			return entity.OwnerRejected, true
		}
	case ActionSuspend:
		if from == entity.OwnerVerified {
			return entity.OwnerSuspended, true
		}
	case ActionReactivate:
		if from == entity.OwnerSuspended {
			return entity.OwnerVerified, true
		}
	}
	return from, false
}

// OwnerApproval runs the vehicle owner verification workflow
type OwnerApproval struct {
	owners    repository.OwnerRepository
	documents repository.OwnerDocumentRepository
	notifier  *Notifier
	publisher repository.EventPublisher
	metrics   *metrics.Metrics
	logger    logger.Logger
	now       func() time.Time
}

// NewOwnerApproval creates a new owner approval workflow
func NewOwnerApproval(
	owners repository.OwnerRepository,
	documents repository.OwnerDocumentRepository,
	notifier *Notifier,
	publisher repository.EventPublisher,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *OwnerApproval {
	return &OwnerApproval{
		owners:    owners,
		documents: documents,
		notifier:  notifier,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// List returns owners matching filter; read errors yield an empty list
func (a *OwnerApproval) List(ctx context.Context, filter entity.OwnerFilter) []entity.OwnerSubmission {
	owners, err := a.owners.List(ctx, filter)
	if err != nil {
		a.metrics.ErrorsCount.WithLabelValues("list_owners").Inc()
		a.logger.Error("Failed to list owners", "error", err)
		return []entity.OwnerSubmission{}
	}
	if owners == nil {
		return []entity.OwnerSubmission{}
	}
	return owners
}

func (a *OwnerApproval) Get(ctx context.Context, id string) (*entity.OwnerSubmission, error) {
	return a.owners.Get(ctx, id)
}

// Stats counts owners by review state. Both pending states count as pending.
func (a *OwnerApproval) Stats(ctx context.Context) (entity.OwnerCounts, error) {
	byStatus, err := a.owners.CountByStatus(ctx)
	if err != nil {
		return entity.OwnerCounts{}, fmt.Errorf("failed to count owners: %w", err)
	}

	var counts entity.OwnerCounts
	for status, n := range byStatus {
		counts.Total += n
		switch {
		case status.IsPending():
			counts.Pending += n
		case status == entity.OwnerVerified:
			counts.Verified += n
		case status == entity.OwnerRejected:
			counts.Rejected += n
		case status == entity.OwnerSuspended:
			counts.Suspended += n
		}
	}
	return counts, nil
}

// Approve verifies a pending owner and clears the final onboarding gate
func (a *OwnerApproval) Approve(ctx context.Context, id string, admin *entity.User, notes string) (*entity.OwnerSubmission, error) {
	return a.decide(ctx, id, ActionApprove, admin, strings.TrimSpace(notes))
}

// Reject refuses a pending owner. A note explaining why is required.
func (a *OwnerApproval) Reject(ctx context.Context, id string, admin *entity.User, notes string) (*entity.OwnerSubmission, error) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return nil, ErrNoteRequired
	}
	return a.decide(ctx, id, ActionReject, admin, notes)
}

// Suspend takes a verified owner offline
func (a *OwnerApproval) Suspend(ctx context.Context, id string, admin *entity.User, notes string) (*entity.OwnerSubmission, error) {
	return a.decide(ctx, id, ActionSuspend, admin, strings.TrimSpace(notes))
}

// Reactivate restores a suspended owner
func (a *OwnerApproval) Reactivate(ctx context.Context, id string, admin *entity.User) (*entity.OwnerSubmission, error) {
	return a.decide(ctx, id, ActionReactivate, admin, "")
}

func (a *OwnerApproval) decide(
	ctx context.Context,
	id string,
	action OwnerAction,
	admin *entity.User,
	notes string,
) (*entity.OwnerSubmission, error) {
	owner, err := a.owners.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next, ok := CanTransition(owner.VerificationStatus, action)
	if !ok {
		return nil, fmt.Errorf("%w: cannot %s owner in status %s", ErrInvalidTransition, action, owner.VerificationStatus)
	}

	now := a.now().UTC()
	fields := map[string]interface{}{"verificationStatus": next}
	if notes != "" {
		fields["verificationNotes"] = notes
	}

	switch action {
	case ActionApprove:
		fields["verificationSteps.step6_admin_verification"] = true
		fields["verifiedAt"] = now
		if admin != nil {
			fields["verifiedBy"] = admin.ID
		}
	case ActionReactivate:
		fields["verifiedAt"] = now
	}

	if err := a.owners.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("failed to %s owner %s: %w", action, id, err)
	}

	owner.VerificationStatus = next
	if notes != "" {
		owner.VerificationNotes = notes
	}
	if action == ActionApprove {
		owner.VerificationSteps.Step6AdminVerification = true
		owner.VerifiedAt = &now
		if admin != nil {
			owner.VerifiedBy = admin.ID
		}
	}

	a.metrics.OwnerDecisions.WithLabelValues(string(action)).Inc()
	a.logger.Info("Owner status changed",
		"ownerId", id,
		"action", action,
		"status", next)

	publishEvent(ctx, a.publisher, a.logger, ownerEventKey(action), id, map[string]interface{}{
		"status": string(next),
		"notes":  notes,
	})

	if (action == ActionApprove || action == ActionReject) && a.notifier != nil {
		a.notifier.Dispatch(EmailOwnerDecision, OwnerDecisionEmail{
			OwnerID:   id,
			OwnerName: owner.FullName,
			Email:     owner.Email,
			Status:    next,
			Notes:     notes,
			DecidedAt: now,
		})
	}

	return owner, nil
}

func ownerEventKey(action OwnerAction) string {
	switch action {
	case ActionApprove:
		return EventOwnerApproved
	case ActionReject:
		return EventOwnerRejected
	case ActionSuspend:
		return EventOwnerSuspended
	default:
		return EventOwnerReactivated
	}
}

// Documents lists an owner's uploaded documents
func (a *OwnerApproval) Documents(ctx context.Context, ownerID string) ([]entity.OwnerDocument, error) {
	docs, err := a.documents.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents for owner %s: %w", ownerID, err)
	}
	if docs == nil {
		docs = []entity.OwnerDocument{}
	}
	return docs, nil
}

// VerifyDocument accepts a pending document. The owner's status is not touched.
func (a *OwnerApproval) VerifyDocument(ctx context.Context, id string) (*entity.OwnerDocument, error) {
	doc, err := a.pendingDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	now := a.now().UTC()
	if err := a.documents.Update(ctx, id, map[string]interface{}{
		"status":     entity.DocumentVerified,
		"verifiedAt": now,
	}); err != nil {
		return nil, fmt.Errorf("failed to verify document %s: %w", id, err)
	}

	doc.Status = entity.DocumentVerified
	doc.VerifiedAt = &now
	a.logger.Info("Owner document verified", "documentId", id, "ownerId", doc.OwnerID)
	return doc, nil
}

// RejectDocument refuses a pending document with a reason
func (a *OwnerApproval) RejectDocument(ctx context.Context, id, reason string) (*entity.OwnerDocument, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	doc, err := a.pendingDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := a.documents.Update(ctx, id, map[string]interface{}{
		"status":          entity.DocumentRejected,
		"rejectionReason": reason,
	}); err != nil {
		return nil, fmt.Errorf("failed to reject document %s: %w", id, err)
	}

	doc.Status = entity.DocumentRejected
	doc.RejectionReason = reason
	a.logger.Info("Owner document rejected", "documentId", id, "ownerId", doc.OwnerID)
	return doc, nil
}

func (a *OwnerApproval) pendingDocument(ctx context.Context, id string) (*entity.OwnerDocument, error) {
	doc, err := a.documents.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.Status != entity.DocumentPending {
		return nil, fmt.Errorf("%w: document is %s", ErrInvalidTransition, doc.Status)
	}
	return doc, nil
}
