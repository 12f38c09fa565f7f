package form

import (
	"testing"
	"time"
)

func TestValidateIdentity(t *testing.T) {
	base := func() *State {
		s := NewState()
		s.FirstName = "Asha"
		s.LastName = "Rao"
		s.Phone = "9876543210"
		s.Gender = GenderFemale
		return s
	}

	tests := []struct {
		name   string
		mutate func(*State)
		wantOK bool
	}{
		{
			name:   "all fields set",
			mutate: func(s *State) {},
			wantOK: true,
		},
		{
			name:   "missing first name",
			mutate: func(s *State) { s.FirstName = "" },
			wantOK: false,
		},
		{
			name:   "whitespace-only last name",
			mutate: func(s *State) { s.LastName = "   " },
			wantOK: false,
		},
		{
			name:   "missing phone",
			mutate: func(s *State) { s.Phone = "" },
			wantOK: false,
		},
		{
			name:   "gender unset",
			mutate: func(s *State) { s.Gender = GenderUnset },
			wantOK: false,
		},
		{
			name:   "gender outside enum",
			mutate: func(s *State) { s.Gender = Gender("robot") },
			wantOK: false,
		},
		{
			name:   "gender other",
			mutate: func(s *State) { s.Gender = GenderOther },
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mutate(s)
			verr := s.Validate()
			if tt.wantOK && verr != nil {
				t.Errorf("Validate() = %v, want nil", verr)
			}
			if !tt.wantOK {
				if verr == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if verr.Message != "Please fill in all required fields" {
					t.Errorf("message = %q, want single generic message", verr.Message)
				}
			}
		})
	}
}

func TestValidateAccount(t *testing.T) {
	dob := time.Date(1995, time.March, 14, 0, 0, 0, 0, time.UTC)

	base := func() *State {
		s := NewState()
		s.CurrentStep = StepAccount
		s.PANNumber = "ABCDE1234F"
		s.AadhaarNumber = "123456789012"
		s.DOB = &dob
		return s
	}

	tests := []struct {
		name    string
		mutate  func(*State)
		wantMsg string // empty = expect success
	}{
		{
			name:   "valid account fields",
			mutate: func(s *State) {},
		},
		{
			name:    "lowercase PAN rejected",
			mutate:  func(s *State) { s.PANNumber = "abcde1234f" },
			wantMsg: "PAN should be in format: AAAAA1111A",
		},
		{
			name:    "PAN with wrong digit count",
			mutate:  func(s *State) { s.PANNumber = "ABCDE123F" },
			wantMsg: "PAN should be in format: AAAAA1111A",
		},
		{
			name:    "aadhaar too short",
			mutate:  func(s *State) { s.AadhaarNumber = "12345678901" },
			wantMsg: "Aadhaar should be exactly 12 digits",
		},
		{
			name:    "aadhaar too long",
			mutate:  func(s *State) { s.AadhaarNumber = "1234567890123" },
			wantMsg: "Aadhaar should be exactly 12 digits",
		},
		{
			name:    "missing dob",
			mutate:  func(s *State) { s.DOB = nil },
			wantMsg: "Please select your date of birth",
		},
		{
			name: "PAN failure reported before aadhaar failure",
			mutate: func(s *State) {
				s.PANNumber = "bad"
				s.AadhaarNumber = "123"
			},
			wantMsg: "PAN should be in format: AAAAA1111A",
		},
		{
			name: "image is optional",
			mutate: func(s *State) {
				s.Image = nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mutate(s)
			verr := s.Validate()
			if tt.wantMsg == "" {
				if verr != nil {
					t.Errorf("Validate() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("Validate() = nil, want %q", tt.wantMsg)
			}
			if verr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", verr.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidateCredentials(t *testing.T) {
	base := func() *State {
		s := NewState()
		s.CurrentStep = StepCredentials
		s.Email = "user@example.com"
		s.Password = "hunter2hunter2"
		s.ConfirmPassword = "hunter2hunter2"
		return s
	}

	tests := []struct {
		name    string
		mutate  func(*State)
		wantMsg string
	}{
		{
			name:   "valid credentials",
			mutate: func(s *State) {},
		},
		{
			name:    "not an email",
			mutate:  func(s *State) { s.Email = "not-an-email" },
			wantMsg: "Please enter a valid email address",
		},
		{
			name:    "email missing tld dot",
			mutate:  func(s *State) { s.Email = "user@example" },
			wantMsg: "Please enter a valid email address",
		},
		{
			name:    "email with space",
			mutate:  func(s *State) { s.Email = "us er@example.com" },
			wantMsg: "Please enter a valid email address",
		},
		{
			name: "short password",
			mutate: func(s *State) {
				s.Password = "short1"
				s.ConfirmPassword = "short1"
			},
			wantMsg: "Password must be at least 8 characters long",
		},
		{
			name:    "password mismatch",
			mutate:  func(s *State) { s.ConfirmPassword = "Hunter2hunter2" },
			wantMsg: "Passwords do not match",
		},
		{
			name: "mismatch even when both individually valid",
			mutate: func(s *State) {
				s.Password = "password-one"
				s.ConfirmPassword = "password-two"
			},
			wantMsg: "Passwords do not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mutate(s)
			verr := s.Validate()
			if tt.wantMsg == "" {
				if verr != nil {
					t.Errorf("Validate() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("Validate() = nil, want %q", tt.wantMsg)
			}
			if verr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", verr.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidationErrorTitle(t *testing.T) {
	s := NewState()
	verr := s.Validate()
	if verr == nil {
		t.Fatal("expected validation error on empty state")
	}
	if verr.Title != "Validation Error" {
		t.Errorf("Title = %q, want %q", verr.Title, "Validation Error")
	}
	if verr.Error() == "" {
		t.Error("Error() should not be empty")
	}
}

func TestStripNonDigits(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1234-5678-9012", "123456789012"},
		{"1234 5678 9012", "123456789012"},
		{"abc", ""},
		{"", ""},
		{"987654321098", "987654321098"},
	}

	for _, tt := range tests {
		if got := stripNonDigits(tt.in); got != tt.want {
			t.Errorf("stripNonDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
