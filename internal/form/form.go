// Package form holds the account-creation form state and the per-step
// validation rules that gate progress through the wizard.
package form

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// Step identifies one screen of the three-step wizard.
type Step int

const (
	StepIdentity    Step = iota + 1 // Name, phone, gender
	StepAccount                     // PAN, Aadhaar, photo, date of birth
	StepCredentials                 // Email and password
)

// stepCount is the number of wizard steps.
const stepCount = 3

// Title returns the human-readable step name shown in the wizard header.
func (s Step) Title() string {
	switch s {
	case StepIdentity:
		return "Identity"
	case StepAccount:
		return "Account"
	case StepCredentials:
		return "Credentials"
	}
	return "Unknown"
}

// Gender is the enumerated gender selection.
type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Genders lists the selectable gender values in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// Valid reports whether g is one of the selectable values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Attachment is an opaque reference to a user-chosen local file.
// Contents are never read, validated, or transmitted.
type Attachment struct {
	Path string // Full path as picked
	Name string // Slugified display name derived from the filename
}

// NewAttachment builds an Attachment for the given path.
func NewAttachment(path string) *Attachment {
	base := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(base))
	name := slug.Make(strings.TrimSuffix(base, filepath.Ext(base)))
	if name == "" {
		name = "attachment"
	}
	return &Attachment{
		Path: path,
		Name: name + ext,
	}
}

// State is the full field set of the account-creation form plus the
// wizard's current step. It is owned by the wizard model and passed
// explicitly; there is no global form state.
type State struct {
	// Step 1: identity
	FirstName string
	LastName  string
	Phone     string
	Gender    Gender

	// Step 2: account
	PANNumber     string
	AadhaarNumber string
	Image         *Attachment // Optional, never validated
	DOB           *time.Time

	// Step 3: credentials
	Email           string
	Password        string
	ConfirmPassword string

	CurrentStep Step
	Submitted   bool
}

// NewState returns a fresh form state positioned on the first step.
func NewState() *State {
	return &State{CurrentStep: StepIdentity}
}

// Field identifies a string-valued form field for Set.
type Field int

const (
	FieldFirstName Field = iota
	FieldLastName
	FieldPhone
	FieldPAN
	FieldAadhaar
	FieldEmail
	FieldPassword
	FieldConfirmPassword
)

// Set unconditionally overwrites one string field. PAN input is forced to
// uppercase and Aadhaar input has non-digit runes stripped, matching the
// as-typed behavior of the form; no other field is normalized.
func (s *State) Set(field Field, value string) {
	switch field {
	case FieldFirstName:
		s.FirstName = value
	case FieldLastName:
		s.LastName = value
	case FieldPhone:
		s.Phone = value
	case FieldPAN:
		s.PANNumber = strings.ToUpper(value)
	case FieldAadhaar:
		s.AadhaarNumber = stripNonDigits(value)
	case FieldEmail:
		s.Email = value
	case FieldPassword:
		s.Password = value
	case FieldConfirmPassword:
		s.ConfirmPassword = value
	}
}

// SetGender overwrites the gender selection.
func (s *State) SetGender(g Gender) {
	s.Gender = g
}

// SetDOB overwrites the date of birth. A nil value clears it.
func (s *State) SetDOB(t *time.Time) {
	s.DOB = t
}

// SetImage overwrites the uploaded image reference. A nil value clears it.
func (s *State) SetImage(a *Attachment) {
	s.Image = a
}

// Validate runs the validator for the active step. A nil return means the
// step passed.
func (s *State) Validate() *ValidationError {
	switch s.CurrentStep {
	case StepIdentity:
		return s.validateIdentity()
	case StepAccount:
		return s.validateAccount()
	case StepCredentials:
		return s.validateCredentials()
	}
	return nil
}

// Next validates the active step and, on success, advances to the next
// step. On the final step a successful validation marks the form
// submitted instead; submitted is true only on the first such success so
// the caller raises exactly one completion notification.
func (s *State) Next() (submitted bool, verr *ValidationError) {
	if verr := s.Validate(); verr != nil {
		return false, verr
	}
	if s.CurrentStep < StepCredentials {
		s.CurrentStep++
		return false, nil
	}
	first := !s.Submitted
	s.Submitted = true
	return first, nil
}

// Back moves to the previous step without validating. On the first step
// it is a no-op.
func (s *State) Back() {
	if s.CurrentStep > StepIdentity {
		s.CurrentStep--
	}
}

// JumpTo moves directly to an earlier, already-visited step, bypassing
// validation. Jumping forward is not permitted; the step is unchanged and
// false is returned.
func (s *State) JumpTo(step Step) bool {
	if step < StepIdentity || step >= s.CurrentStep {
		return false
	}
	s.CurrentStep = step
	return true
}

// Steps lists all wizard steps in order.
func Steps() []Step {
	return []Step{StepIdentity, StepAccount, StepCredentials}
}
