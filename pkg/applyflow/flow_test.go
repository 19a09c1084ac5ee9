// pkg/applyflow/flow_test.go
package applyflow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"grant-portal/internal/common/logger"
	"grant-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type stubSubmitter struct {
	resp     *models.SubmissionResponse
	status   int
	err      error
	requests []models.SubmissionRequest
}

func (s *stubSubmitter) Submit(ctx context.Context, req models.SubmissionRequest) (*models.SubmissionResponse, int, error) {
	s.requests = append(s.requests, req)
	return s.resp, s.status, s.err
}

func acceptingSubmitter() *stubSubmitter {
	return &stubSubmitter{
		resp:   &models.SubmissionResponse{Success: true, Message: "Application securely archived.", ReferenceID: "srv-ref-001"},
		status: 200,
	}
}

func newTestFlow(t *testing.T, submitter Submitter) (*Flow, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	return New(store, submitter, logger.NewTestLogger(t)), store
}

func advanceToCertify(t *testing.T, f *Flow) {
	t.Helper()
	require.NoError(t, f.NextProgram(ProgramStep{GrantID: "sba-biz-2026", GrantTitle: "SBA Small Business Assistance"}))
	require.NoError(t, f.NextPersonal(PersonalStep{
		FullName: "Alex Mercer",
		DOB:      "1988-03-14",
		Phone:    "617-555-0142",
		Email:    "alex@mercer.io",
		Address:  "44 Harbor View Rd",
	}))
	require.NoError(t, f.NextBanking(BankingStep{
		BankName:      "First Coastal",
		RoutingNumber: "211370545",
		AccountName:   "Alex Mercer",
		AccountNumber: "8830114672",
	}))
	require.NoError(t, f.Certify(CertifyStep{Certification: true, Signature: "Alex Mercer"}))
}

// ==========================
// Step Transition Tests
// ==========================

func TestFlow_StartsAtProgram(t *testing.T) {
	f, _ := newTestFlow(t, acceptingSubmitter())
	assert.Equal(t, StepProgram, f.Step())
}

func TestFlow_HappyPathTransitions(t *testing.T) {
	f, _ := newTestFlow(t, acceptingSubmitter())

	require.NoError(t, f.NextProgram(ProgramStep{GrantID: "sba-biz-2026", GrantTitle: "SBA Small Business Assistance"}))
	assert.Equal(t, StepPersonal, f.Step())

	require.NoError(t, f.NextPersonal(PersonalStep{FullName: "Alex Mercer", Email: "alex@mercer.io"}))
	assert.Equal(t, StepBanking, f.Step())

	require.NoError(t, f.NextBanking(BankingStep{}))
	assert.Equal(t, StepCertify, f.Step())
}

func TestFlow_Back(t *testing.T) {
	f, _ := newTestFlow(t, acceptingSubmitter())

	assert.Error(t, f.Back(), "cannot back out of the first step")

	require.NoError(t, f.NextProgram(ProgramStep{GrantID: "sba-biz-2026"}))
	require.NoError(t, f.Back())
	assert.Equal(t, StepProgram, f.Step())
}

func TestFlow_StepsOutOfOrderRejected(t *testing.T) {
	f, _ := newTestFlow(t, acceptingSubmitter())

	assert.Error(t, f.NextPersonal(PersonalStep{FullName: "Alex Mercer", Email: "alex@mercer.io"}))
	assert.Error(t, f.NextBanking(BankingStep{}))
	assert.Error(t, f.Certify(CertifyStep{}))
	_, err := f.Submit(context.Background())
	assert.Error(t, err)
}

// ==========================
// Step Validation Tests
// ==========================

func TestFlow_ProgramRequiresGrant(t *testing.T) {
	f, _ := newTestFlow(t, acceptingSubmitter())

	err := f.NextProgram(ProgramStep{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grantId")
	assert.Equal(t, StepProgram, f.Step(), "failed validation does not advance")
}

func TestFlow_PersonalValidation(t *testing.T) {
	cases := []struct {
		name  string
		step  PersonalStep
		field string
	}{
		{"missing name", PersonalStep{Email: "alex@mercer.io"}, "fullName"},
		{"missing email", PersonalStep{FullName: "Alex Mercer"}, "email"},
		{"bad email shape", PersonalStep{FullName: "Alex Mercer", Email: "not-an-email"}, "email"},
		{"placeholder name", PersonalStep{FullName: "John Doe", Email: "alex@mercer.io"}, "fullName"},
		{"placeholder phone", PersonalStep{FullName: "Alex Mercer", Email: "alex@mercer.io", Phone: "555-555-5555"}, "phone"},
		{"placeholder address", PersonalStep{FullName: "Alex Mercer", Email: "alex@mercer.io", Address: "123 Main St"}, "address"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, _ := newTestFlow(t, acceptingSubmitter())
			require.NoError(t, f.NextProgram(ProgramStep{GrantID: "sba-biz-2026"}))

			err := f.NextPersonal(tc.step)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestFlow_BankingValidation(t *testing.T) {
	f, _ := newTestFlow(t, acceptingSubmitter())
	require.NoError(t, f.NextProgram(ProgramStep{GrantID: "sba-biz-2026"}))
	require.NoError(t, f.NextPersonal(PersonalStep{FullName: "Alex Mercer", Email: "alex@mercer.io"}))

	err := f.NextBanking(BankingStep{RoutingNumber: "12345"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "9 digits")

	err = f.NextBanking(BankingStep{RoutingNumber: "123456789"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "routingNumber")

	assert.NoError(t, f.NextBanking(BankingStep{RoutingNumber: "211370545"}))
}

func TestFlow_CertifyRequiresCheckboxAndSignature(t *testing.T) {
	f, _ := newTestFlow(t, acceptingSubmitter())
	require.NoError(t, f.NextProgram(ProgramStep{GrantID: "sba-biz-2026"}))
	require.NoError(t, f.NextPersonal(PersonalStep{FullName: "Alex Mercer", Email: "alex@mercer.io"}))
	require.NoError(t, f.NextBanking(BankingStep{}))

	err := f.Certify(CertifyStep{Certification: false, Signature: "Alex Mercer"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "certify")

	err = f.Certify(CertifyStep{Certification: true, Signature: "Al Mercer"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Alex Mercer", "error names the expected value")

	// Trimmed, case-insensitive comparison.
	assert.NoError(t, f.Certify(CertifyStep{Certification: true, Signature: "  alex mercer "}))
}

// ==========================
// Submission Tests
// ==========================

func TestFlow_Submit_Success(t *testing.T) {
	submitter := acceptingSubmitter()
	f, store := newTestFlow(t, submitter)
	advanceToCertify(t, f)

	result, err := f.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "srv-ref-001", result.ReferenceID)
	assert.False(t, result.LocalFallback)
	assert.Equal(t, StepSubmitted, f.Step())

	records, _ := store.List()
	require.Len(t, records, 1)
	assert.Equal(t, "SBA Small Business Assistance", records[0].Title)
	assert.Equal(t, models.StatusPendingReview, records[0].Status)

	require.Len(t, submitter.requests, 1)
	assert.Equal(t, "211370545", submitter.requests[0].Branch, "routing number travels as branch")
}

func TestFlow_Submit_ExplicitRejectionPropagates(t *testing.T) {
	submitter := &stubSubmitter{
		resp:   &models.SubmissionResponse{Success: false, Message: "Duplicate Application: An application for this Grant ID has already been submitted with this email address."},
		status: 409,
	}
	f, store := newTestFlow(t, submitter)
	advanceToCertify(t, f)

	_, err := f.Submit(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Duplicate")
	assert.Equal(t, StepCertify, f.Step(), "rejection leaves the flow on certify")

	records, _ := store.List()
	assert.Empty(t, records, "no local record for a rejected submission")
}

func TestFlow_Submit_TransportFailureFallsBackLocally(t *testing.T) {
	submitter := &stubSubmitter{err: errors.New("connection refused")}
	f, store := newTestFlow(t, submitter)
	advanceToCertify(t, f)

	result, err := f.Submit(context.Background())

	require.NoError(t, err)
	assert.True(t, result.LocalFallback)
	assert.True(t, strings.HasPrefix(result.ReferenceID, "REF-"))
	assert.Equal(t, StepSubmitted, f.Step())

	records, _ := store.List()
	assert.Len(t, records, 1)
}

func TestFlow_Submit_LocalDuplicateAdvisory(t *testing.T) {
	submitter := acceptingSubmitter()
	f, store := newTestFlow(t, submitter)
	require.NoError(t, store.Save([]models.DisplayRecord{
		{ID: "REF-OLD", Title: "SBA Small Business Assistance", Status: models.StatusPendingReview},
	}))
	advanceToCertify(t, f)

	_, err := f.Submit(context.Background())

	require.ErrorIs(t, err, ErrDuplicateLocal)
	assert.Empty(t, submitter.requests, "rejection happens before the server is contacted")
}

func TestFlow_Submit_LocalDuplicateCheckIsTitleBased(t *testing.T) {
	submitter := acceptingSubmitter()
	f, store := newTestFlow(t, submitter)
	require.NoError(t, store.Save([]models.DisplayRecord{
		{ID: "REF-OLD", Title: "Medical Assistance Program", Status: models.StatusPendingReview},
	}))
	advanceToCertify(t, f)

	_, err := f.Submit(context.Background())

	require.NoError(t, err, "a different grant title does not trip the advisory check")
	records, _ := store.List()
	assert.Len(t, records, 2)
}

func TestFlow_Submit_ServerReferenceMissingGetsLocalID(t *testing.T) {
	submitter := &stubSubmitter{
		resp:   &models.SubmissionResponse{Success: true, Message: "Application securely archived."},
		status: 200,
	}
	f, _ := newTestFlow(t, submitter)
	advanceToCertify(t, f)

	result, err := f.Submit(context.Background())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.ReferenceID, "REF-"))
	assert.False(t, result.LocalFallback)
}

// ==========================
// Prefill Tests
// ==========================

func TestFlow_PrefillFromProfile(t *testing.T) {
	f, _ := newTestFlow(t, acceptingSubmitter())
	f.Prefill(models.Profile{
		FirstName: "Alex",
		LastName:  "Mercer",
		Email:     "alex@mercer.io",
		Phone:     "617-555-0142",
		Address:   "44 Harbor View Rd",
	})

	require.NoError(t, f.NextProgram(ProgramStep{GrantID: "sba-biz-2026"}))

	// Prefilled data still passes through validation when the step advances.
	assert.NoError(t, f.NextPersonal(*f.personal))
	assert.Equal(t, StepBanking, f.Step())
}
