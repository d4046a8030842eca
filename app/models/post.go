package models

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// The backend refuses indexed string fields above 1,500 bytes and
// accounts characters at two bytes each, so the hard ceiling is 750
// characters per field.
const BackendStringLimit = 750

// DBStrLimit stays under the backend ceiling for safety; normalized
// fields never exceed it.
const DBStrLimit = BackendStringLimit - 50

var validate = validator.New()

// MissingFieldError reports the first required field absent from a
// submission.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing " + e.Field
}

// Validate checks required fields in declaration order and stops at the
// first failure. Presence is judged on the raw value: whitespace-only
// input passes here and trims down during normalization.
func (s *BlogSubmission) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &MissingFieldError{Field: strings.ToLower(verrs[0].Field())}
	}
	return err
}

// NormalizeField trims surrounding whitespace, then truncates to at most
// DBStrLimit characters. Pass-through otherwise: no escaping, no
// sanitization. Idempotent.
func NormalizeField(raw string) string {
	s := strings.TrimSpace(raw)
	if r := []rune(s); len(r) > DBStrLimit {
		return string(r[:DBStrLimit])
	}
	return s
}
