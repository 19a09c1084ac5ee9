// pkg/applyflow/steps.go
package applyflow

import (
	"regexp"
	"strings"

	"grant-portal/internal/fraud"
)

// Step identifies a position in the application flow.
type Step int

const (
	StepProgram Step = iota + 1
	StepPersonal
	StepBanking
	StepCertify
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepProgram:
		return "program"
	case StepPersonal:
		return "personal"
	case StepBanking:
		return "banking"
	case StepCertify:
		return "certify"
	case StepSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

var (
	emailPattern   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	routingPattern = regexp.MustCompile(`^\d{9}$`)
)

// ProgramStep carries the grant the applicant selected. GrantTitle is kept
// alongside the id because the local duplicate check compares titles.
type ProgramStep struct {
	GrantID    string
	GrantTitle string
}

func (p ProgramStep) validate() *fraud.FieldError {
	if strings.TrimSpace(p.GrantID) == "" {
		return &fraud.FieldError{Field: "grantId", Message: "Please select a grant program."}
	}
	return nil
}

// PersonalStep carries the applicant identity fields.
type PersonalStep struct {
	FullName string
	DOB      string
	Phone    string
	Email    string
	Address  string
}

func (p PersonalStep) validate() *fraud.FieldError {
	if strings.TrimSpace(p.FullName) == "" {
		return &fraud.FieldError{Field: "fullName", Message: "Full legal name is required."}
	}
	if strings.TrimSpace(p.Email) == "" {
		return &fraud.FieldError{Field: "email", Message: "Email address is required."}
	}
	if !emailPattern.MatchString(strings.TrimSpace(p.Email)) {
		return &fraud.FieldError{Field: "email", Message: "Please enter a valid email address."}
	}
	return fraud.CheckIdentity(p.FullName, p.Phone, p.Address)
}

// BankingStep carries disbursement details.
type BankingStep struct {
	SSN           string
	BankName      string
	RoutingNumber string
	AccountName   string
	AccountNumber string
}

func (b BankingStep) validate() *fraud.FieldError {
	if b.RoutingNumber != "" && !routingPattern.MatchString(b.RoutingNumber) {
		return &fraud.FieldError{Field: "routingNumber", Message: "Routing number must be exactly 9 digits."}
	}
	return fraud.CheckBanking(b.SSN, b.RoutingNumber, b.AccountNumber)
}

// CertifyStep carries the certification checkbox and the typed signature.
type CertifyStep struct {
	Certification bool
	Signature     string
	Narrative     string
}

// validate needs the full name from the personal step; signature equality is
// trimmed and case-insensitive.
func (c CertifyStep) validate(fullName string) *fraud.FieldError {
	if !c.Certification {
		return &fraud.FieldError{Field: "certification", Message: "You must certify that the information provided is accurate."}
	}
	if strings.TrimSpace(c.Signature) == "" {
		return &fraud.FieldError{Field: "signature", Message: "Digital signature is required."}
	}
	if !strings.EqualFold(strings.TrimSpace(c.Signature), strings.TrimSpace(fullName)) {
		return &fraud.FieldError{
			Field:   "signature",
			Message: "Signature must exactly match your full name: " + strings.TrimSpace(fullName),
		}
	}
	return nil
}
