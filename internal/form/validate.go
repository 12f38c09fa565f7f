package form

import (
	"regexp"
	"strings"
)

// Field format patterns. PAN and Aadhaar are matched against the full
// sanitized value; email follows the usual local@domain.tld shape.
var (
	panPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	aadhaarPattern = regexp.MustCompile(`^[0-9]{12}$`)
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	nonDigits = regexp.MustCompile(`[^0-9]`)
)

// ValidationError describes a failed step validation. It is advisory: the
// wizard surfaces it as a transient notification and leaves every field
// value intact so the user can correct and retry.
type ValidationError struct {
	Title   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Title + ": " + e.Message
}

// validationErr builds the standard advisory error for a failed check.
func validationErr(message string) *ValidationError {
	return &ValidationError{
		Title:   "Validation Error",
		Message: message,
	}
}

// validateIdentity requires first name, last name and phone to be
// non-empty after trimming, and a gender selection. A single message is
// raised with no indication of which field is missing.
func (s *State) validateIdentity() *ValidationError {
	if strings.TrimSpace(s.FirstName) == "" ||
		strings.TrimSpace(s.LastName) == "" ||
		strings.TrimSpace(s.Phone) == "" ||
		!s.Gender.Valid() {
		return validationErr("Please fill in all required fields")
	}
	return nil
}

// validateAccount checks PAN format, Aadhaar format and the presence of a
// date of birth, short-circuiting on the first failure. The image is
// optional and never validated.
func (s *State) validateAccount() *ValidationError {
	if !panPattern.MatchString(s.PANNumber) {
		return validationErr("PAN should be in format: AAAAA1111A")
	}
	if !aadhaarPattern.MatchString(s.AadhaarNumber) {
		return validationErr("Aadhaar should be exactly 12 digits")
	}
	if s.DOB == nil {
		return validationErr("Please select your date of birth")
	}
	return nil
}

// validateCredentials checks email shape, minimum password length and
// password confirmation, short-circuiting on the first failure. The
// comparison is byte-exact with no trimming.
func (s *State) validateCredentials() *ValidationError {
	if !emailPattern.MatchString(s.Email) {
		return validationErr("Please enter a valid email address")
	}
	if len(s.Password) < 8 {
		return validationErr("Password must be at least 8 characters long")
	}
	if s.Password != s.ConfirmPassword {
		return validationErr("Passwords do not match")
	}
	return nil
}

// stripNonDigits removes every non-digit rune from s.
func stripNonDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}
