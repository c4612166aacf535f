package models

import (
	"fmt"
	"regexp"
	"time"
)

// emailPattern is the basic local@domain.tld shape accepted at registration.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// PasswordHashExternal is stored in place of a password hash when the
// identity provider owns the credentials and no hash exists locally.
const PasswordHashExternal = "cognito_managed"

// User represents an account mirrored from the identity provider into the
// local document store. Credential material never lives here; PasswordHash
// is an opaque placeholder when identity is externally managed.
type User struct {
	// UserID is the unique identifier of the user. When the account is
	// created through the identity provider, this is the provider-issued id,
	// so the same logical user has a stable identifier across both systems.
	UserID string `json:"user_id"`

	// Email is the unique, validated address of the user.
	Email string `json:"email"`

	// PasswordHash is an opaque credential placeholder. It is never exposed
	// via JSON and never contains a plaintext password.
	PasswordHash string `json:"-"`

	// FirstName is the user's given name.
	FirstName string `json:"first_name"`

	// LastName is the user's family name.
	LastName string `json:"last_name"`

	// CreatedAt is the timestamp of account creation in the local store.
	CreatedAt time.Time `json:"created_at"`
}

// NewUser constructs a validated User.
//
// userID may be empty, in which case a fresh identifier is generated;
// passing the identity provider's id keeps the two systems aligned.
// The email must match [ValidateEmail] or an [ErrValidation] error is
// returned.
func NewUser(userID string, email string, passwordHash string, firstName string, lastName string) (User, error) {
	if err := ValidateEmail(email); err != nil {
		return User{}, err
	}

	if userID == "" {
		userID = newID()
	}

	return User{
		UserID:       userID,
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// ValidateEmail checks the address against the basic local@domain.tld
// pattern and returns an [ErrValidation] error on mismatch.
func ValidateEmail(email string) error {
	if email == "" || !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	return nil
}

// FullName returns the display name composed of first and last name.
func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}
