package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field length limits enforced on user input. These mirror the column
// widths in the users table.
const (
	MaxUserNameLength = 100
	MaxEmailLength    = 255
)

// User represents a registered user of the application.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given name and email.
// It generates a new UUID for the user ID, sets the creation/update
// timestamps, and normalizes the input (name trimmed, email trimmed and
// lowercased). Returns FieldViolations if validation fails.
func NewUser(name, email string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Name:      NormalizeName(name),
		Email:     NormalizeEmail(email),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Rename replaces the user's name and email and refreshes the update
// timestamp. Inputs are normalized before validation.
func (u *User) Rename(name, email string) error {
	updated := *u
	updated.Name = NormalizeName(name)
	updated.Email = NormalizeEmail(email)

	if err := updated.Validate(); err != nil {
		return err
	}

	updated.UpdatedAt = time.Now().UTC()
	*u = updated
	return nil
}

// Validate checks if the User has valid data. Returns FieldViolations
// naming every failing field, or nil if the user is valid.
func (u *User) Validate() error {
	var violations FieldViolations

	if u.ID == uuid.Nil {
		violations.Add("id", "cannot be empty")
	}

	if u.Name == "" {
		violations.Add("name", "cannot be empty")
	} else if len(u.Name) > MaxUserNameLength {
		violations.Add("name", "cannot exceed 100 characters")
	}

	if u.Email == "" {
		violations.Add("email", "cannot be empty")
	} else if len(u.Email) > MaxEmailLength {
		violations.Add("email", "cannot exceed 255 characters")
	} else if !validateEmailFormat(u.Email) {
		violations.Add("email", "invalid email format")
	}

	return violations.ErrOrNil()
}

// NormalizeName trims surrounding whitespace from a display name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// NormalizeEmail trims and lowercases an email address so that
// uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateEmailFormat performs basic validation of email format:
// a non-empty local part, an @, and a domain containing at least one
// dot that is neither its first nor last character.
func validateEmailFormat(email string) bool {
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	local := email[:atIndex]
	domain := email[atIndex+1:]

	if len(local) > 64 || strings.ContainsRune(domain, '@') {
		return false
	}

	// The domain needs an interior dot ("a.b" at minimum).
	dotIndex := strings.IndexByte(domain, '.')
	if dotIndex <= 0 || dotIndex == len(domain)-1 {
		return false
	}

	return true
}
