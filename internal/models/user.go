// Package models defines the data shapes exchanged with the CV platform API
// and the client-side validation applied before a request leaves the machine.
package models

import (
	"fmt"
	"regexp"
	"strings"
)

// UserSummary is the minimal identity the API echoes back after
// authentication. It is replaced wholesale on profile update, never
// partially mutated.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the account creation request body.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate is the profile update request body. All three fields are
// required; the server replaces the profile as a whole.
type ProfileUpdate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the login response: the authenticated identity plus the
// bearer token to attach to every subsequent call.
type AuthResponse struct {
	User  UserSummary `json:"user"`
	Token string      `json:"token"`
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidationErrors collects per-field validation messages. It implements
// error so callers can return it directly; an empty slice means valid.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

// ErrOrNil returns the collected errors as an error, or nil if none.
func (v ValidationErrors) ErrOrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func validEmail(email string) bool {
	return emailRe.MatchString(email)
}

// validPassword checks the account password policy: at least 8 characters
// with an upper-case letter, a lower-case letter, a digit and a special
// character.
func validPassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("!@#$%^&*", r):
			special = true
		}
	}
	return upper && lower && digit && special
}

const passwordRule = "password must be at least 8 characters and contain an upper-case letter, a lower-case letter, a digit and a special character (!@#$%^&*)"

// Validate checks the registration form before it reaches the network.
func (r RegisterRequest) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name: required")
	}
	if len(r.Name) > 50 {
		errs = append(errs, "name: must be 50 characters or less")
	}
	if !validEmail(r.Email) {
		errs = append(errs, "email: invalid address")
	}
	if !validPassword(r.Password) {
		errs = append(errs, fmt.Sprintf("password: %s", passwordRule))
	}
	return errs.ErrOrNil()
}

// Validate checks the login form. The password policy is not re-applied
// here: an existing account only needs a non-empty password to attempt a
// login.
func (c Credentials) Validate() error {
	var errs ValidationErrors
	if !validEmail(c.Email) {
		errs = append(errs, "email: invalid address")
	}
	if c.Password == "" {
		errs = append(errs, "password: required")
	}
	return errs.ErrOrNil()
}

// Validate checks the profile update form.
func (p ProfileUpdate) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, "name: required")
	}
	if !validEmail(p.Email) {
		errs = append(errs, "email: invalid address")
	}
	if !validPassword(p.Password) {
		errs = append(errs, fmt.Sprintf("password: %s", passwordRule))
	}
	return errs.ErrOrNil()
}
