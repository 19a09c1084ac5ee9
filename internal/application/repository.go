// internal/application/repository.go
package application

import (
	"context"
	"database/sql"
	"errors"

	apperrors "grant-portal/internal/common/errors"
	"grant-portal/internal/common/logger"
	"grant-portal/internal/models"

	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code surfaced when the unique index on
// (email, grant_id) rejects a second submission. The constraint is the only
// authoritative duplicate check in the system.
const uniqueViolation = "23505"

type Repository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewRepository(db *sql.DB, log logger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "application-repository"}),
	}
}

// Insert persists one application. A unique-index violation maps to
// DUPLICATE_SUBMISSION; anything else is a database insert fault.
func (r *Repository) Insert(ctx context.Context, app *models.Application) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO applications (
			id, grant_id, full_name, dob, phone, email, address, ssn,
			bank_name, routing_number, account_name, account_number,
			certification, signature, status, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		app.ID,
		app.GrantID,
		app.FullName,
		app.DOB,
		app.Phone,
		app.Email,
		app.Address,
		app.SSN,
		app.BankName,
		app.RoutingNumber,
		app.AccountName,
		app.AccountNumber,
		app.Certification,
		app.Signature,
		app.Status,
		app.SubmittedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return apperrors.NewDuplicateSubmissionError(app.Email, app.GrantID)
		}
		return apperrors.NewDatabaseInsertFailedError(err)
	}

	r.logger.Info("application record created", map[string]interface{}{
		"applicationId": app.ID,
		"grantId":       app.GrantID,
	})
	return nil
}

const selectColumns = `
	id, grant_id, full_name, dob, phone, email, address, ssn,
	bank_name, routing_number, account_name, account_number,
	certification, signature, status, submitted_at`

// GetByID fetches one application by its reference id.
func (r *Repository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT`+selectColumns+` FROM applications WHERE id = $1`, id)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("Application", "id: "+id)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return app, nil
}

// ListByEmail returns the applicant's submissions, newest first. Feeds the
// dashboard merge.
func (r *Repository) ListByEmail(ctx context.Context, email string) ([]models.Application, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT`+selectColumns+`
		FROM applications
		WHERE email = $1
		ORDER BY submitted_at DESC`, email)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		apps = append(apps, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return apps, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanApplication(row rowScanner) (*models.Application, error) {
	var app models.Application
	err := row.Scan(
		&app.ID,
		&app.GrantID,
		&app.FullName,
		&app.DOB,
		&app.Phone,
		&app.Email,
		&app.Address,
		&app.SSN,
		&app.BankName,
		&app.RoutingNumber,
		&app.AccountName,
		&app.AccountNumber,
		&app.Certification,
		&app.Signature,
		&app.Status,
		&app.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}
