// internal/fraud/detector.go
package fraud

import (
	"fmt"
	"regexp"
	"strings"
)

// denyPatterns are known placeholder/test values. This is pattern matching
// against throwaway data, not a statistical fraud model; the server runs the
// same scan again and never trusts the client-side result.
var denyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)test`),
	regexp.MustCompile(`(?i)demo`),
	regexp.MustCompile(`(?i)fake`),
	regexp.MustCompile(`(?i)john doe`),
	regexp.MustCompile(`(?i)jane doe`),
	regexp.MustCompile(`(?i)123 Main St`),
	regexp.MustCompile(`555-555-5555`),
	regexp.MustCompile(`(?i)asdf`),
	regexp.MustCompile(`(?i)qwerty`),
}

// sequentialPatterns flag implausible digit runs in SSN, routing and account
// fields.
var sequentialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`123456789`),
	regexp.MustCompile(`987654321`),
	regexp.MustCompile(`000000000`),
}

// FieldError attributes a heuristic rejection to a single form field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ScanValues concatenates all payload values and tests the deny list plus the
// sequential-digit patterns, mirroring the original isSuspicious helper. It
// returns the first matched pattern for diagnostics.
func ScanValues(values []string) (bool, string) {
	joined := strings.Join(values, " ")
	for _, p := range denyPatterns {
		if p.MatchString(joined) {
			return true, p.String()
		}
	}
	for _, p := range sequentialPatterns {
		if p.MatchString(joined) {
			return true, p.String()
		}
	}
	return false, ""
}

// CheckIdentity runs the deny-list over the identity fields entered in the
// personal step, attributing errors to specific fields for inline display.
func CheckIdentity(fullName, phone, address string) *FieldError {
	if matchesDenyList(fullName) {
		return &FieldError{Field: "fullName", Message: "Please enter your real legal name."}
	}
	if matchesDenyList(phone) {
		return &FieldError{Field: "phone", Message: "Please enter a valid, active phone number."}
	}
	if matchesDenyList(address) {
		return &FieldError{Field: "address", Message: "Please enter your actual residential address."}
	}
	return nil
}

// CheckBanking rejects sequential or all-zero digit strings in the banking
// step fields.
func CheckBanking(ssn, routingNumber, accountNumber string) *FieldError {
	if matchesSequential(ssn) {
		return &FieldError{Field: "ssn", Message: "SSN appears invalid."}
	}
	if matchesSequential(routingNumber) {
		return &FieldError{Field: "routingNumber", Message: "Routing number appears invalid."}
	}
	if matchesSequential(accountNumber) {
		return &FieldError{Field: "accountNumber", Message: "Account number appears invalid."}
	}
	return nil
}

func matchesDenyList(value string) bool {
	for _, p := range denyPatterns {
		if p.MatchString(value) {
			return true
		}
	}
	return false
}

func matchesSequential(value string) bool {
	if value == "" {
		return false
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, value)
	for _, p := range sequentialPatterns {
		if p.MatchString(digits) {
			return true
		}
	}
	return false
}
