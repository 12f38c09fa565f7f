package formwizard

import (
	"fmt"
	"strings"

	"github.com/AD2708/multi-part/internal/form"
)

// Summary renders the submitted form as a markdown document for
// printing after the wizard exits. The password is never included and
// the Aadhaar number is masked to its last four digits.
func Summary(state *form.State, dateFormat string) string {
	var b strings.Builder

	b.WriteString("# Account Created\n\n")

	b.WriteString("## Identity\n\n")
	fmt.Fprintf(&b, "- **Name**: %s %s\n", state.FirstName, state.LastName)
	fmt.Fprintf(&b, "- **Phone**: %s\n", state.Phone)
	if state.Gender != form.GenderUnset {
		fmt.Fprintf(&b, "- **Gender**: %s\n", state.Gender)
	}
	b.WriteString("\n")

	b.WriteString("## Account\n\n")
	fmt.Fprintf(&b, "- **PAN**: %s\n", state.PANNumber)
	fmt.Fprintf(&b, "- **Aadhaar**: %s\n", maskAadhaar(state.AadhaarNumber))
	if state.DOB != nil {
		fmt.Fprintf(&b, "- **Date of Birth**: %s\n", state.DOB.Format(dateFormat))
	}
	if state.Image != nil {
		fmt.Fprintf(&b, "- **Photo**: %s\n", state.Image.Name)
	}
	b.WriteString("\n")

	b.WriteString("## Credentials\n\n")
	fmt.Fprintf(&b, "- **Email**: %s\n", state.Email)

	return b.String()
}

// maskAadhaar hides all but the last four digits.
func maskAadhaar(aadhaar string) string {
	if len(aadhaar) <= 4 {
		return aadhaar
	}
	return "XXXX XXXX " + aadhaar[len(aadhaar)-4:]
}
