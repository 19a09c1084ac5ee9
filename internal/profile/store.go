// internal/profile/store.go
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	apperrors "grant-portal/internal/common/errors"
	"grant-portal/internal/common/logger"
	"grant-portal/internal/models"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "vprofile:"

// fakeNamePattern mirrors the heuristic the profile editor has always used:
// one-word throwaway names are rejected before saving.
var fakeNamePattern = regexp.MustCompile(`(?i)^test$|^123$|^fake$`)

// Store persists the saved universal applicant profile (vProfile) keyed by
// email. Profiles pre-fill new applications; they are not the application
// record itself.
type Store struct {
	client *redis.Client
	logger logger.Logger
}

func NewStore(client *redis.Client, log logger.Logger) *Store {
	return &Store{
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "profile-store"}),
	}
}

// Save validates and writes the profile. Profiles have no TTL; they live
// until deleted.
func (s *Store) Save(ctx context.Context, p models.Profile) error {
	if err := Validate(p); err != nil {
		return err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := s.client.Set(ctx, keyPrefix+strings.ToLower(p.Email), data, 0).Err(); err != nil {
		return apperrors.NewInternalError(err)
	}

	s.logger.Info("profile saved", map[string]interface{}{"email": p.Email})
	return nil
}

// Load fetches the profile for an email address.
func (s *Store) Load(ctx context.Context, email string) (*models.Profile, error) {
	data, err := s.client.Get(ctx, keyPrefix+strings.ToLower(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NewResourceNotFoundError("Profile", "email: "+email)
		}
		return nil, apperrors.NewInternalError(err)
	}

	var p models.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &p, nil
}

// Delete removes a saved profile.
func (s *Store) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, keyPrefix+strings.ToLower(email)).Err(); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// Validate applies the profile editor's heuristics: real-looking name, a
// plausible phone number, and an email to key the record by.
func Validate(p models.Profile) error {
	if p.Email == "" {
		return apperrors.NewValidationFailedError("email is required")
	}
	if fakeNamePattern.MatchString(strings.TrimSpace(p.FirstName)) ||
		fakeNamePattern.MatchString(strings.TrimSpace(p.LastName)) {
		return apperrors.NewValidationFailedError("Please enter a valid legal name.")
	}
	if strings.Contains(p.Phone, "555-555") || len(digitsOnly(p.Phone)) < 10 {
		return apperrors.NewValidationFailedError("Please enter a valid, active phone number.")
	}
	return nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
