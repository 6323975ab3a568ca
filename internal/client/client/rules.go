package client

import (
	"regexp"
	"unicode/utf8"

	"github.com/dmitrijs2005/learninghub/internal/client/models"
)

// minPasswordLength counts characters, not bytes.
const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// checkSignIn applies the backend-side sign in rules in order.
func checkSignIn(c models.SignInCredentials) error {
	if c.Email == "" || c.Password == "" {
		return models.NewValidationError("Email and password are required")
	}
	if utf8.RuneCountInString(c.Password) < minPasswordLength {
		return models.NewValidationError("Invalid email or password")
	}
	return nil
}

// checkSignUp applies the backend-side sign up rules in order. The
// confirmation check runs before the email format check.
func checkSignUp(c models.SignUpCredentials) error {
	if c.Name == "" || c.Email == "" || c.Password == "" || c.ConfirmPassword == "" {
		return models.NewValidationError("All fields are required")
	}
	if c.Password != c.ConfirmPassword {
		return models.NewValidationError("Passwords do not match")
	}
	if utf8.RuneCountInString(c.Password) < minPasswordLength {
		return models.NewValidationError("Password must be at least 6 characters")
	}
	if !emailPattern.MatchString(c.Email) {
		return models.NewValidationError("Invalid email format")
	}
	return nil
}
