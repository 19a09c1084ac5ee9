// internal/application/service.go
package application

import (
	"context"
	"strings"
	"time"

	apperrors "grant-portal/internal/common/errors"
	"grant-portal/internal/common/logger"
	"grant-portal/internal/common/metrics"
	"grant-portal/internal/fraud"
	"grant-portal/internal/models"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// Store is the persistence surface the service needs.
type Store interface {
	Insert(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id string) (*models.Application, error)
	ListByEmail(ctx context.Context, email string) ([]models.Application, error)
}

// Notifier dispatches the operator summary after a submission is persisted.
type Notifier interface {
	NotifySubmission(ctx context.Context, app *models.Application) error
}

// Service runs the submission workflow: fraud scan, signature integrity,
// field remap, persist, notify. The fraud and signature checks run here even
// though the client performs the same checks; the server never trusts them.
type Service struct {
	store    Store
	notifier Notifier
	logger   logger.Logger
}

func NewService(store Store, notifier Notifier, log logger.Logger) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		logger:   log.WithFields(map[string]interface{}{"component": "application-service"}),
	}
}

// Submit processes one application payload and returns the persisted record.
func (s *Service) Submit(ctx context.Context, req models.SubmissionRequest) (*models.Application, error) {
	timer := prometheus.NewTimer(metrics.SubmissionDuration)
	defer timer.ObserveDuration()

	app, err := s.submit(ctx, req)
	if err != nil {
		metrics.SubmissionsRejected.WithLabelValues(string(apperrors.AsStandardError(err).Code)).Inc()
		return nil, err
	}
	metrics.SubmissionsAccepted.Inc()
	return app, nil
}

func (s *Service) submit(ctx context.Context, req models.SubmissionRequest) (*models.Application, error) {
	// Independent re-check of the client-side heuristics; a client that skips
	// its own validation gains nothing.
	if flagged, pattern := fraud.ScanValues(req.Values()); flagged {
		s.logger.Warn("submission flagged as suspicious", map[string]interface{}{
			"grantId": req.GrantID,
			"pattern": pattern,
		})
		return nil, apperrors.NewFraudSuspectedError("matched pattern: " + pattern)
	}

	if !signatureMatches(req.Signature, req.FullName) {
		return nil, apperrors.NewSignatureMismatchError("signature does not match fullName")
	}

	if err := ValidateSubmission(req); err != nil {
		return nil, err
	}

	app := &models.Application{
		ID:            uuid.New().String(),
		GrantID:       req.GrantID,
		FullName:      req.FullName,
		DOB:           req.DOB,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		SSN:           req.SSN,
		BankName:      req.BankName,
		RoutingNumber: req.Branch, // client sends the routing number as "branch"
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		Certification: req.Certification,
		Signature:     req.Signature,
		Status:        models.StatusPendingReview,
		SubmittedAt:   time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, app); err != nil {
		return nil, err
	}

	// Fire-and-forget relative to persistence: a lost notification never
	// rolls back or retries the stored record.
	if s.notifier != nil {
		if err := s.notifier.NotifySubmission(ctx, app); err != nil {
			s.logger.Warn("operator notification failed", map[string]interface{}{
				"applicationId": app.ID,
				"error":         err.Error(),
			})
		}
	}

	s.logger.Info("application submitted", map[string]interface{}{
		"applicationId": app.ID,
		"grantId":       app.GrantID,
	})
	return app, nil
}

// Get returns one stored application by reference id.
func (s *Service) Get(ctx context.Context, id string) (*models.Application, error) {
	return s.store.GetByID(ctx, id)
}

// ListByEmail returns the applicant's stored applications.
func (s *Service) ListByEmail(ctx context.Context, email string) ([]models.Application, error) {
	return s.store.ListByEmail(ctx, email)
}

func signatureMatches(signature, fullName string) bool {
	sig := strings.ToLower(strings.TrimSpace(signature))
	name := strings.ToLower(strings.TrimSpace(fullName))
	return sig != "" && sig == name
}
