package formwizard

import (
	"strings"
	"testing"
	"time"

	"github.com/AD2708/multi-part/internal/form"
)

func TestSummaryContents(t *testing.T) {
	dob := time.Date(1995, time.March, 14, 0, 0, 0, 0, time.UTC)
	state := &form.State{
		FirstName:     "Asha",
		LastName:      "Verma",
		Phone:         "9876543210",
		Gender:        form.GenderFemale,
		PANNumber:     "ABCDE1234F",
		AadhaarNumber: "123412341234",
		DOB:           &dob,
		Image:         &form.Attachment{Path: "/photos/cat.png", Name: "cat.png"},
		Email:         "asha@example.com",
		Password:      "hunter2hunter2",
	}

	md := Summary(state, "02 Jan 2006")

	for _, want := range []string{
		"# Account Created",
		"Asha Verma",
		"9876543210",
		"ABCDE1234F",
		"XXXX XXXX 1234",
		"14 Mar 1995",
		"cat.png",
		"asha@example.com",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Summary missing %q", want)
		}
	}

	if strings.Contains(md, "hunter2hunter2") {
		t.Error("Summary must not contain the password")
	}
	if strings.Contains(md, "123412341234") {
		t.Error("Summary must not contain the full Aadhaar number")
	}
}

func TestMaskAadhaar(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"123412341234", "XXXX XXXX 1234"},
		{"1234", "1234"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := maskAadhaar(tt.input); got != tt.want {
			t.Errorf("maskAadhaar(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
