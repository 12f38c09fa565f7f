package formwizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/AD2708/multi-part/internal/form"
	"github.com/AD2708/multi-part/internal/tui/theme"
)

// Modal layout constants
const (
	modalWidth        = 70                                                       // Total modal width including border
	modalPadding      = 2                                                        // Horizontal padding on each side
	modalBorderWidth  = 1                                                        // Border width on each side
	modalContentWidth = modalWidth - (modalPadding * 2) - (modalBorderWidth * 2) // 64
)

// newTextInput builds a themed text input for form fields.
func newTextInput(placeholder string) textinput.Model {
	t := theme.Current()

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBright)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	ti.SetWidth(50)
	return ti
}

// fieldLabel renders a form field label.
func fieldLabel(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Current().FgSubtle)).
		Render(text)
}

// focusMarker returns the row prefix for selectable non-input rows
// (date of birth, photo).
func focusMarker(focused bool) string {
	if focused {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Current().Primary)).
			Bold(true).
			Render("▸ ")
	}
	return "  "
}

// renderStepTrail renders the step indicator shown under the wizard
// title. Completed steps get a check mark, the active step is
// highlighted, upcoming steps are dimmed.
func renderStepTrail(current form.Step) string {
	t := theme.Current()

	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Bold(true)
	todoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted))
	sep := lipgloss.NewStyle().Foreground(lipgloss.Color(t.BorderDefault)).Render("  ·  ")

	var parts []string
	for _, s := range form.Steps() {
		label := fmt.Sprintf("%d %s", int(s), s.Title())
		switch {
		case s == current:
			parts = append(parts, activeStyle.Render(label))
		case s < current:
			parts = append(parts, doneStyle.Render("✓ "+s.Title()))
		default:
			parts = append(parts, todoStyle.Render(label))
		}
	}
	return strings.Join(parts, sep)
}
