// pkg/applyflow/flow.go

// Package applyflow drives the multi-step grant application: four validated
// steps (program, personal, banking, certify) followed by submission to the
// portal. Step data is held in step-specific structs that are only stored
// after their validation passes, so a flow sitting at the banking step can
// never carry unvalidated personal data.
package applyflow

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "grant-portal/internal/common/errors"
	"grant-portal/internal/common/logger"
	"grant-portal/internal/models"

	"github.com/google/uuid"
)

// ErrDuplicateLocal is the advisory pre-submit rejection raised when the
// local record store already holds an application for the selected grant.
// It is a UX shortcut only; the server's uniqueness constraint remains the
// authority either way.
var ErrDuplicateLocal = errors.New("an application for this grant program has already been submitted")

// ErrSubmissionInFlight guards against a double submit while a request is
// outstanding.
var ErrSubmissionInFlight = errors.New("a submission is already in progress")

// Result reports the outcome of Submit. LocalFallback is true when the
// portal was unreachable and the record exists only in the local store.
type Result struct {
	ReferenceID   string
	Record        models.DisplayRecord
	LocalFallback bool
}

// Flow is the application form controller. It is driven from a single UI
// goroutine and is not safe for concurrent use.
type Flow struct {
	step       Step
	submitting bool

	program  *ProgramStep
	personal *PersonalStep
	banking  *BankingStep
	certify  *CertifyStep

	store     RecordStore
	submitter Submitter
	logger    logger.Logger
	now       func() time.Time
}

func New(store RecordStore, submitter Submitter, log logger.Logger) *Flow {
	return &Flow{
		step:      StepProgram,
		store:     store,
		submitter: submitter,
		logger:    log.WithFields(map[string]interface{}{"component": "applyflow"}),
		now:       time.Now,
	}
}

// Step reports the flow's current position.
func (f *Flow) Step() Step {
	return f.step
}

// Prefill seeds the personal step from a saved applicant profile. The data
// still passes validation when the step is advanced.
func (f *Flow) Prefill(p models.Profile) {
	if f.step != StepProgram && f.step != StepPersonal {
		return
	}
	f.personal = &PersonalStep{
		FullName: strings.TrimSpace(p.FirstName + " " + p.LastName),
		Phone:    p.Phone,
		Email:    p.Email,
		Address:  p.Address,
	}
}

// Back moves one step toward the start. Completed step data is kept so the
// applicant does not retype it.
func (f *Flow) Back() error {
	if f.step <= StepProgram || f.step == StepSubmitted {
		return errors.New("cannot go back from this step")
	}
	f.step--
	return nil
}

// NextProgram validates the program selection and advances to the personal
// step.
func (f *Flow) NextProgram(p ProgramStep) error {
	if f.step != StepProgram {
		return f.wrongStep(StepProgram)
	}
	if err := p.validate(); err != nil {
		return err
	}
	f.program = &p
	f.step = StepPersonal
	return nil
}

// NextPersonal validates the identity fields and advances to banking.
func (f *Flow) NextPersonal(p PersonalStep) error {
	if f.step != StepPersonal {
		return f.wrongStep(StepPersonal)
	}
	if err := p.validate(); err != nil {
		return err
	}
	f.personal = &p
	f.step = StepBanking
	return nil
}

// NextBanking validates the disbursement fields and advances to certify.
func (f *Flow) NextBanking(b BankingStep) error {
	if f.step != StepBanking {
		return f.wrongStep(StepBanking)
	}
	if err := b.validate(); err != nil {
		return err
	}
	f.banking = &b
	f.step = StepCertify
	return nil
}

// Certify validates the certification checkbox and signature against the
// personal step's full name. The flow stays on the certify step; Submit
// performs the network call.
func (f *Flow) Certify(c CertifyStep) error {
	if f.step != StepCertify {
		return f.wrongStep(StepCertify)
	}
	if err := c.validate(f.personal.FullName); err != nil {
		return err
	}
	f.certify = &c
	return nil
}

// Submit runs the advisory local duplicate check, posts the draft to the
// portal, and records the outcome. Explicit server rejections (400/409)
// propagate and no local record is written. A transport failure is treated
// as local-only success: the record is stored client-side and the flow
// reaches Submitted, with LocalFallback set so callers can tell the two
// apart.
func (f *Flow) Submit(ctx context.Context) (*Result, error) {
	if f.step != StepCertify {
		return nil, f.wrongStep(StepCertify)
	}
	if f.certify == nil {
		return nil, errors.New("certification is incomplete")
	}
	if f.submitting {
		return nil, ErrSubmissionInFlight
	}

	if err := f.checkLocalDuplicate(); err != nil {
		return nil, err
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	req := f.buildRequest()
	resp, status, err := f.submitter.Submit(ctx, req)
	if err != nil {
		// Server never reached. Record locally and report success.
		f.logger.WithError(apperrors.NewNetworkUnreachableError(err)).Warn("Submission transport failed, storing record locally", nil)
		return f.finish(f.localReferenceID(), true)
	}

	if resp == nil || !resp.Success {
		message := "Submission was rejected."
		if resp != nil && resp.Message != "" {
			message = resp.Message
		}
		f.logger.Warn("Submission rejected by server", map[string]interface{}{
			"status": status,
		})
		return nil, errors.New(message)
	}

	referenceID := resp.ReferenceID
	if referenceID == "" {
		referenceID = f.localReferenceID()
	}
	return f.finish(referenceID, false)
}

// checkLocalDuplicate scans previously stored records for the selected
// grant's title.
func (f *Flow) checkLocalDuplicate() error {
	records, err := f.store.List()
	if err != nil {
		// Advisory only; a broken local cache must not block submission.
		f.logger.WithError(err).Warn("Local record scan failed, skipping duplicate pre-check", nil)
		return nil
	}
	for _, r := range records {
		if strings.EqualFold(r.Title, f.program.GrantTitle) {
			return ErrDuplicateLocal
		}
	}
	return nil
}

func (f *Flow) buildRequest() models.SubmissionRequest {
	return models.SubmissionRequest{
		GrantID:       f.program.GrantID,
		FullName:      f.personal.FullName,
		DOB:           f.personal.DOB,
		Phone:         f.personal.Phone,
		Email:         f.personal.Email,
		Address:       f.personal.Address,
		SSN:           f.banking.SSN,
		BankName:      f.banking.BankName,
		Branch:        f.banking.RoutingNumber,
		AccountName:   f.banking.AccountName,
		AccountNumber: f.banking.AccountNumber,
		Certification: f.certify.Certification,
		Signature:     f.certify.Signature,
	}
}

// finish appends the display record to the local store and moves the flow
// to Submitted.
func (f *Flow) finish(referenceID string, localFallback bool) (*Result, error) {
	record := models.DisplayRecord{
		ID:        referenceID,
		Title:     f.program.GrantTitle,
		GrantType: f.program.GrantTitle,
		Status:    models.StatusPendingReview,
		Date:      f.now().Format("01/02/2006"),
	}

	records, err := f.store.List()
	if err == nil {
		if saveErr := f.store.Save(append(records, record)); saveErr != nil {
			f.logger.WithError(saveErr).Warn("Failed to store submission record locally", nil)
		}
	} else {
		f.logger.WithError(err).Warn("Failed to read local records before store", nil)
	}

	f.step = StepSubmitted
	return &Result{
		ReferenceID:   referenceID,
		Record:        record,
		LocalFallback: localFallback,
	}, nil
}

func (f *Flow) localReferenceID() string {
	fragment := strings.ToUpper(uuid.New().String()[:8])
	return "REF-" + fragment
}

func (f *Flow) wrongStep(expected Step) error {
	return errors.New("step out of order: flow is at " + f.step.String() + ", expected " + expected.String())
}
