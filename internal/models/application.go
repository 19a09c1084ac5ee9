// internal/models/application.go
package models

import "time"

// SubmissionRequest is the wire shape of POST /submit. The routing number
// arrives under the key "branch"; the field name on the form never matched the
// stored schema and the mismatch is preserved, not fixed.
type SubmissionRequest struct {
	GrantID       string `json:"grantId"`
	FullName      string `json:"fullName"`
	DOB           string `json:"dob,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email"`
	Address       string `json:"address,omitempty"`
	SSN           string `json:"ssn,omitempty"`
	BankName      string `json:"bankName,omitempty"`
	Branch        string `json:"branch,omitempty"` // routing number
	AccountName   string `json:"accountName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	Certification bool   `json:"certification,omitempty"`
	Signature     string `json:"signature"`
}

// Values returns every field as a string slice for the heuristic fraud scan,
// mirroring the original server's Object.values concatenation.
func (r SubmissionRequest) Values() []string {
	cert := ""
	if r.Certification {
		cert = "true"
	}
	return []string{
		r.GrantID, r.FullName, r.DOB, r.Phone, r.Email, r.Address,
		r.SSN, r.BankName, r.Branch, r.AccountName, r.AccountNumber,
		cert, r.Signature,
	}
}

// Application is the persisted record. The (Email, GrantID) pair is unique;
// the constraint lives in the database, not in application code.
type Application struct {
	ID            string    `json:"id"`
	GrantID       string    `json:"grantId"`
	FullName      string    `json:"fullName"`
	DOB           string    `json:"dob,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email"`
	Address       string    `json:"address,omitempty"`
	SSN           string    `json:"ssn,omitempty"`
	BankName      string    `json:"bankName,omitempty"`
	RoutingNumber string    `json:"routingNumber,omitempty"`
	AccountName   string    `json:"accountName,omitempty"`
	AccountNumber string    `json:"accountNumber,omitempty"`
	Certification bool      `json:"certification"`
	Signature     string    `json:"signature"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// Review statuses. Status is mutated by the review process outside this
// codebase; the portal only ever writes StatusPendingReview.
const (
	StatusPendingReview = "Pending Review"
	StatusUnderReview   = "Under Review"
	StatusApproved      = "Approved"
	StatusIncomplete    = "Incomplete"
)

// SubmissionResponse is the envelope returned by POST /submit.
type SubmissionResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ReferenceID string `json:"referenceId,omitempty"`
}

// DisplayRecord is the client-local projection of a submitted application used
// by the dashboard. It is a cache, not the source of truth.
type DisplayRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	GrantType string `json:"grantType"`
	Status    string `json:"status"`
	Date      string `json:"date"` // display string, loosely parsed when sorting
	IsStatic  bool   `json:"isStatic,omitempty"`
}

// Profile is the saved universal applicant profile (vProfile) used to pre-fill
// new applications.
type Profile struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	BusinessName      string `json:"businessName"`
	BusinessType      string `json:"businessType"`
	EIN               string `json:"ein"`
	AnnualRevenue     string `json:"annualRevenue"`
	NarrativeRaw      string `json:"narrativeRaw"`
	NarrativePolished string `json:"narrativePolished"`
}
