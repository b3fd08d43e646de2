package usecase

import (
	"context"
	"errors"
	"testing"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func owner(id string, status entity.VerificationStatus) entity.OwnerSubmission {
	o := entity.OwnerSubmission{
		FullName:           "Kasun Jayasuriya",
		Email:              "kasun@example.com",
		VerificationStatus: status,
	}
	o.ID = id
	return o
}

type approvalFixture struct {
	owners    *fakeOwnerRepo
	documents *fakeDocumentRepo
	sender    *fakeSender
	emails    *fakeEmailRepo
	publisher *fakePublisher
	notifier  *Notifier
	approval  *OwnerApproval
}

func newApprovalFixture(owners []entity.OwnerSubmission, docs ...entity.OwnerDocument) *approvalFixture {
	f := &approvalFixture{
		owners:    newFakeOwnerRepo(owners...),
		documents: newFakeDocumentRepo(docs...),
		sender:    &fakeSender{},
		emails:    newFakeEmailRepo(),
		publisher: &fakePublisher{},
	}
	m := newTestMetrics()
	f.notifier = NewNotifier(f.emails, f.sender, newStubRegistry(), m, testLogger)
	f.approval = NewOwnerApproval(f.owners, f.documents, f.notifier, f.publisher, m, testLogger)
	return f
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from   entity.VerificationStatus
		action OwnerAction
		want   entity.VerificationStatus
		ok     bool
	}{
		{entity.OwnerPendingVerification, ActionApprove, entity.OwnerVerified, true},
		{entity.OwnerPendingAdminReview, ActionApprove, entity.OwnerVerified, true},
		{entity.OwnerPendingAdminReview, ActionReject, entity.OwnerRejected, true},
		{entity.OwnerVerified, ActionSuspend, entity.OwnerSuspended, true},
		{entity.OwnerSuspended, ActionReactivate, entity.OwnerVerified, true},
		{entity.OwnerIncomplete, ActionApprove, entity.OwnerIncomplete, false},
		{entity.OwnerVerified, ActionApprove, entity.OwnerVerified, false},
		{entity.OwnerRejected, ActionReactivate, entity.OwnerRejected, false},
		{entity.OwnerPendingVerification, ActionSuspend, entity.OwnerPendingVerification, false},
		{entity.OwnerSuspended, ActionReject, entity.OwnerSuspended, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.action), func(t *testing.T) {
			next, ok := CanTransition(tt.from, tt.action)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestOwnerApproval_Approve(t *testing.T) {
	f := newApprovalFixture([]entity.OwnerSubmission{owner("o1", entity.OwnerPendingAdminReview)})
	admin := &entity.User{ID: "admin-1", Role: entity.RoleAdmin}

	got, err := f.approval.Approve(context.Background(), "o1", admin, "  all documents good ")
	require.NoError(t, err)
	assert.Equal(t, entity.OwnerVerified, got.VerificationStatus)
	assert.True(t, got.VerificationSteps.Step6AdminVerification)
	assert.Equal(t, "admin-1", got.VerifiedBy)
	require.NotNil(t, got.VerifiedAt)

	fields := f.owners.updates["o1"]
	assert.Equal(t, entity.OwnerVerified, fields["verificationStatus"])
	assert.Equal(t, true, fields["verificationSteps.step6_admin_verification"])
	assert.Equal(t, "all documents good", fields["verificationNotes"])

	f.notifier.Wait()
	sent := f.sender.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "kasun@example.com", sent[0].To)
	assert.Equal(t, string(entity.OwnerVerified), sent[0].Subject)

	assert.Equal(t, []string{EventOwnerApproved}, f.publisher.published())
}

func TestOwnerApproval_ApproveSucceedsWhenEmailFails(t *testing.T) {
	f := newApprovalFixture([]entity.OwnerSubmission{owner("o1", entity.OwnerPendingVerification)})
	f.sender.err = errors.New("smtp down")

	got, err := f.approval.Approve(context.Background(), "o1", nil, "")
	require.NoError(t, err)
	assert.Equal(t, entity.OwnerVerified, got.VerificationStatus)

	f.notifier.Wait()
	assert.Len(t, f.emails.failed, 1)
}

func TestOwnerApproval_InvalidTransitionWritesNothing(t *testing.T) {
	f := newApprovalFixture([]entity.OwnerSubmission{owner("o1", entity.OwnerRejected)})

	_, err := f.approval.Approve(context.Background(), "o1", nil, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = f.approval.Suspend(context.Background(), "o1", nil, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	assert.Empty(t, f.owners.updates)
	assert.Empty(t, f.publisher.published())
	f.notifier.Wait()
	assert.Empty(t, f.sender.messages())
}

func TestOwnerApproval_RejectNeedsNote(t *testing.T) {
	f := newApprovalFixture([]entity.OwnerSubmission{owner("o1", entity.OwnerPendingAdminReview)})

	_, err := f.approval.Reject(context.Background(), "o1", nil, "   ")
	assert.ErrorIs(t, err, ErrNoteRequired)
	assert.Empty(t, f.owners.updates)

	got, err := f.approval.Reject(context.Background(), "o1", nil, "NIC photo unreadable")
	require.NoError(t, err)
	assert.Equal(t, entity.OwnerRejected, got.VerificationStatus)
	assert.Equal(t, "NIC photo unreadable", got.VerificationNotes)
	f.notifier.Wait()
}

func TestOwnerApproval_SuspendAndReactivate(t *testing.T) {
	f := newApprovalFixture([]entity.OwnerSubmission{owner("o1", entity.OwnerVerified)})

	got, err := f.approval.Suspend(context.Background(), "o1", nil, "")
	require.NoError(t, err)
	assert.Equal(t, entity.OwnerSuspended, got.VerificationStatus)

	f.owners.owners["o1"].VerificationStatus = entity.OwnerSuspended
	got, err = f.approval.Reactivate(context.Background(), "o1", nil)
	require.NoError(t, err)
	assert.Equal(t, entity.OwnerVerified, got.VerificationStatus)

	f.notifier.Wait()
	assert.Empty(t, f.sender.messages(), "only approve and reject send email")
	assert.Equal(t, []string{EventOwnerSuspended, EventOwnerReactivated}, f.publisher.published())
}

func TestOwnerApproval_NotFound(t *testing.T) {
	f := newApprovalFixture(nil)

	_, err := f.approval.Approve(context.Background(), "nope", nil, "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOwnerApproval_ListNeverFails(t *testing.T) {
	f := newApprovalFixture(nil)
	f.owners.listErr = errors.New("cursor timeout")

	got := f.approval.List(context.Background(), entity.OwnerFilter{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestOwnerApproval_Stats(t *testing.T) {
	f := newApprovalFixture(nil)
	f.owners.counts = map[entity.VerificationStatus]int{
		entity.OwnerPendingVerification: 2,
		entity.OwnerPendingAdminReview:  3,
		entity.OwnerVerified:            4,
		entity.OwnerRejected:            1,
		entity.OwnerSuspended:           1,
		entity.OwnerIncomplete:          5,
	}

	stats, err := f.approval.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.OwnerCounts{Total: 16, Pending: 5, Verified: 4, Rejected: 1, Suspended: 1}, stats)
}

func pendingDoc(id string) entity.OwnerDocument {
	d := entity.OwnerDocument{OwnerID: "o1", DocumentType: "passport", Status: entity.DocumentPending}
	d.ID = id
	return d
}

func TestOwnerApproval_DocumentReview(t *testing.T) {
	f := newApprovalFixture(
		[]entity.OwnerSubmission{owner("o1", entity.OwnerPendingAdminReview)},
		pendingDoc("d1"), pendingDoc("d2"),
	)

	_, err := f.approval.RejectDocument(context.Background(), "d1", "")
	assert.ErrorIs(t, err, ErrReasonRequired)
	assert.Empty(t, f.documents.updates)

	doc, err := f.approval.RejectDocument(context.Background(), "d1", "Expired passport")
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentRejected, doc.Status)
	assert.Equal(t, "Expired passport", f.documents.updates["d1"]["rejectionReason"])

	doc, err = f.approval.VerifyDocument(context.Background(), "d2")
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentVerified, doc.Status)
	assert.NotNil(t, doc.VerifiedAt)

	assert.Empty(t, f.owners.updates, "document decisions leave the owner alone")

	f.documents.docs["d2"].Status = entity.DocumentVerified
	_, err = f.approval.VerifyDocument(context.Background(), "d2")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	docs, err := f.approval.Documents(context.Background(), "o1")
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}
