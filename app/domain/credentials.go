package domain

import (
	"net/mail"
)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 6

// Credentials holds the transient signup credentials. They are never
// persisted by this service, only forwarded to the identity provider.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Validate performs local validation of the credentials and returns
// per-field errors. No backend call is made here.
func (c Credentials) Validate() FieldErrors {
	errs := FieldErrors{}

	if c.Email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(c.Email); err != nil {
		errs["email"] = "invalid email format"
	}

	if c.Password == "" {
		errs["password"] = "password is required"
	} else if len(c.Password) < MinPasswordLength {
		errs["password"] = "password must be at least 6 characters long"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// FieldErrors maps a form field name to a user-facing error message
type FieldErrors map[string]string

// Merge copies all entries from other into the receiver
func (f FieldErrors) Merge(other FieldErrors) {
	for field, msg := range other {
		f[field] = msg
	}
}
