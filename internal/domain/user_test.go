package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("John Doe", "john@example.com")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Name != "John Doe" {
		t.Errorf("Expected name %q, got %q", "John Doe", user.Name)
	}

	if user.Email != "john@example.com" {
		t.Errorf("Expected email %q, got %q", "john@example.com", user.Email)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if !user.CreatedAt.Equal(user.UpdatedAt) {
		t.Error("Expected CreatedAt and UpdatedAt to match on creation")
	}
}

func TestNewUserNormalization(t *testing.T) {
	user, err := NewUser("  Jane Doe  ", "  Jane@Example.COM ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.Name != "Jane Doe" {
		t.Errorf("Expected trimmed name, got %q", user.Name)
	}

	if user.Email != "jane@example.com" {
		t.Errorf("Expected lowercased email, got %q", user.Email)
	}
}

func TestNewUserCollectsAllViolations(t *testing.T) {
	_, err := NewUser("   ", "not-an-email")
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}

	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected error to match ErrValidation, got %v", err)
	}

	var violations FieldViolations
	if !errors.As(err, &violations) {
		t.Fatalf("Expected FieldViolations, got %T", err)
	}

	if len(violations) != 2 {
		t.Fatalf("Expected 2 violations, got %d: %v", len(violations), violations)
	}

	if violations[0].Field != "name" || violations[1].Field != "email" {
		t.Errorf("Expected name and email violations, got %v", violations)
	}
}

func TestUserValidateLengthLimits(t *testing.T) {
	user := User{
		ID:    uuid.New(),
		Name:  strings.Repeat("a", MaxUserNameLength+1),
		Email: strings.Repeat("a", 60) + "@" + strings.Repeat("b", 200) + ".com",
	}

	err := user.Validate()
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}

	var violations FieldViolations
	if !errors.As(err, &violations) {
		t.Fatalf("Expected FieldViolations, got %T", err)
	}

	if len(violations) != 2 {
		t.Errorf("Expected name and email length violations, got %v", violations)
	}
}

func TestUserRename(t *testing.T) {
	user, err := NewUser("John Doe", "john@example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	originalCreatedAt := user.CreatedAt

	if err := user.Rename("Jane Doe", "JANE@example.com"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.Name != "Jane Doe" {
		t.Errorf("Expected updated name, got %q", user.Name)
	}

	if user.Email != "jane@example.com" {
		t.Errorf("Expected normalized updated email, got %q", user.Email)
	}

	if !user.CreatedAt.Equal(originalCreatedAt) {
		t.Error("Expected CreatedAt to be unchanged by Rename")
	}

	if user.UpdatedAt.Before(originalCreatedAt) {
		t.Error("Expected UpdatedAt to be refreshed by Rename")
	}

	// A failed rename must not mutate the user.
	if err := user.Rename("", "broken"); err == nil {
		t.Fatal("Expected validation error, got nil")
	}

	if user.Name != "Jane Doe" || user.Email != "jane@example.com" {
		t.Errorf("Expected user to be unchanged after failed rename, got %q/%q", user.Name, user.Email)
	}
}

func TestValidateEmailFormat(t *testing.T) {
	valid := []string{
		"test@example.com",
		"user.name@domain.co.uk",
		"user+tag@example.org",
	}
	for _, email := range valid {
		if !validateEmailFormat(email) {
			t.Errorf("Expected %q to be valid", email)
		}
	}

	invalid := []string{
		"",
		"invalid",
		"@example.com",
		"user@",
		"user@domain",
		"user@.com",
		"user@domain.",
	}
	for _, email := range invalid {
		if validateEmailFormat(email) {
			t.Errorf("Expected %q to be invalid", email)
		}
	}
}
