// internal/application/schema.go
package application

import (
	"fmt"
	"strings"

	apperrors "grant-portal/internal/common/errors"
	"grant-portal/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// submissionSchema is the contract of POST /submit: grantId, fullName, email
// and signature are required, everything else is optional strings/booleans.
// The routing number travels as "branch".
var submissionSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"grantId", "fullName", "email", "signature"},
	"properties": map[string]interface{}{
		"grantId":       map[string]interface{}{"type": "string", "minLength": 1},
		"fullName":      map[string]interface{}{"type": "string", "minLength": 1},
		"dob":           map[string]interface{}{"type": "string"},
		"phone":         map[string]interface{}{"type": "string"},
		"email":         map[string]interface{}{"type": "string", "minLength": 3, "pattern": `^[^@\s]+@[^@\s]+\.[^@\s]+$`},
		"address":       map[string]interface{}{"type": "string"},
		"ssn":           map[string]interface{}{"type": "string"},
		"bankName":      map[string]interface{}{"type": "string"},
		"branch":        map[string]interface{}{"type": "string"},
		"accountName":   map[string]interface{}{"type": "string"},
		"accountNumber": map[string]interface{}{"type": "string"},
		"certification": map[string]interface{}{"type": "boolean"},
		"signature":     map[string]interface{}{"type": "string", "minLength": 1},
	},
}

// ValidateSubmission checks the payload against the submission schema and
// folds any violations into a single VALIDATION_FAILED error.
func ValidateSubmission(req models.SubmissionRequest) error {
	schemaLoader := gojsonschema.NewGoLoader(submissionSchema)
	documentLoader := gojsonschema.NewGoLoader(req)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return apperrors.NewInternalError(fmt.Errorf("schema validation: %w", err))
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return apperrors.NewValidationFailedError(strings.Join(msgs, "; "))
	}

	return nil
}
