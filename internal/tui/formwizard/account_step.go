package formwizard

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/AD2708/multi-part/internal/form"
	"github.com/AD2708/multi-part/internal/tui/theme"
	"github.com/AD2708/multi-part/internal/tui/wizard"
)

// accountOverlay tracks which picker is layered over the account step.
type accountOverlay int

const (
	overlayNone accountOverlay = iota
	overlayCalendar
	overlayPicker
)

// AccountStep collects PAN number, Aadhaar number, an optional photo and
// the date of birth. PAN input is uppercased and Aadhaar input reduced to
// digits as the user types. The date and photo fields open full overlays
// (calendar, image picker) on enter.
type AccountStep struct {
	state *form.State

	panInput     textinput.Model
	aadhaarInput textinput.Model
	focusIndex   int // 0=pan, 1=aadhaar, 2=date of birth, 3=photo

	overlay  accountOverlay
	calendar *wizard.Calendar
	picker   *wizard.ImagePicker

	dateFormat string
	startDir   string

	width  int
	height int
}

// NewAccountStep creates the account step with values restored from the
// form state. startDir is the directory the image picker opens in and
// dateFormat the display layout for the chosen date of birth.
func NewAccountStep(state *form.State, startDir, dateFormat string) *AccountStep {
	panInput := newTextInput("ABCDE1234F")
	panInput.CharLimit = 10
	panInput.SetValue(state.PANNumber)

	aadhaarInput := newTextInput("12-digit Aadhaar number")
	aadhaarInput.SetValue(state.AadhaarNumber)

	return &AccountStep{
		state:        state,
		panInput:     panInput,
		aadhaarInput: aadhaarInput,
		dateFormat:   dateFormat,
		startDir:     startDir,
		width:        60,
		height:       14,
	}
}

// Init focuses the PAN input.
func (s *AccountStep) Init() tea.Cmd {
	s.focusIndex = 0
	s.updateFocus()
	return textinput.Blink
}

// OverlayActive reports whether the calendar or image picker overlay is
// open. While an overlay is open the wizard routes all keys here.
func (s *AccountStep) OverlayActive() bool {
	return s.overlay != overlayNone
}

// Update handles messages for the account step.
func (s *AccountStep) Update(msg tea.Msg) tea.Cmd {
	switch s.overlay {
	case overlayCalendar:
		return s.updateCalendar(msg)
	case overlayPicker:
		return s.updatePicker(msg)
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab":
			if s.focusIndex == 3 {
				return func() tea.Msg {
					return wizard.TabExitForwardMsg{}
				}
			}
			s.focusIndex++
			s.updateFocus()
			return nil

		case "shift+tab":
			if s.focusIndex == 0 {
				return func() tea.Msg {
					return wizard.TabExitBackwardMsg{}
				}
			}
			s.focusIndex--
			s.updateFocus()
			return nil

		case "enter":
			switch s.focusIndex {
			case 2:
				s.calendar = wizard.NewCalendar(time.Now(), s.state.DOB)
				s.overlay = overlayCalendar
				return nil
			case 3:
				s.picker = wizard.NewImagePicker(s.startDir)
				s.picker.SetSize(s.width, s.height)
				s.overlay = overlayPicker
				return nil
			}
			return s.Submit()

		case "backspace", "delete":
			// Clear the optional photo when its row is focused.
			if s.focusIndex == 3 {
				s.state.SetImage(nil)
				return nil
			}
		}
	}

	// Forward to the focused input, write through and echo the stored
	// (sanitized) value back so the field displays it as typed.
	var cmd tea.Cmd
	switch s.focusIndex {
	case 0:
		s.panInput, cmd = s.panInput.Update(msg)
		s.state.Set(form.FieldPAN, s.panInput.Value())
		if s.panInput.Value() != s.state.PANNumber {
			s.panInput.SetValue(s.state.PANNumber)
		}
	case 1:
		s.aadhaarInput, cmd = s.aadhaarInput.Update(msg)
		s.state.Set(form.FieldAadhaar, s.aadhaarInput.Value())
		if s.aadhaarInput.Value() != s.state.AadhaarNumber {
			s.aadhaarInput.SetValue(s.state.AadhaarNumber)
		}
	}
	return cmd
}

// updateCalendar routes messages while the calendar overlay is open.
func (s *AccountStep) updateCalendar(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case wizard.DateSelectedMsg:
		s.state.SetDOB(msg.Date)
		s.closeOverlay()
		return nil
	case wizard.CalendarClosedMsg:
		s.closeOverlay()
		return nil
	}
	if s.calendar != nil {
		return s.calendar.Update(msg)
	}
	return nil
}

// updatePicker routes messages while the image picker overlay is open.
func (s *AccountStep) updatePicker(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case wizard.ImageSelectedMsg:
		s.state.SetImage(form.NewAttachment(msg.Path))
		s.closeOverlay()
		return nil
	case tea.KeyPressMsg:
		if msg.String() == "esc" {
			s.closeOverlay()
			return nil
		}
	}
	if s.picker != nil {
		return s.picker.Update(msg)
	}
	return nil
}

// closeOverlay drops the active overlay and its component.
func (s *AccountStep) closeOverlay() {
	s.overlay = overlayNone
	s.calendar = nil
	s.picker = nil
}

// updateFocus syncs focus state across the inputs.
func (s *AccountStep) updateFocus() {
	s.panInput.Blur()
	s.aadhaarInput.Blur()

	switch s.focusIndex {
	case 0:
		s.panInput.Focus()
	case 1:
		s.aadhaarInput.Focus()
	}
}

// View renders the account step (or the active overlay).
func (s *AccountStep) View() string {
	switch s.overlay {
	case overlayCalendar:
		if s.calendar != nil {
			return s.calendar.View()
		}
	case overlayPicker:
		if s.picker != nil {
			return s.picker.View()
		}
	}

	t := theme.Current()
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)).Italic(true)

	var b strings.Builder

	b.WriteString(fieldLabel("PAN Number"))
	b.WriteString("\n")
	b.WriteString(s.panInput.View())
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Aadhaar Number"))
	b.WriteString("\n")
	b.WriteString(s.aadhaarInput.View())
	b.WriteString("\n\n")

	dob := emptyStyle.Render("Not set")
	if s.state.DOB != nil {
		dob = valueStyle.Render(s.state.DOB.Format(s.dateFormat))
	}
	b.WriteString(focusMarker(s.focusIndex == 2))
	b.WriteString(fieldLabel("Date of Birth  "))
	b.WriteString(dob)
	b.WriteString("\n\n")

	photo := emptyStyle.Render("None (optional)")
	if s.state.Image != nil {
		photo = valueStyle.Render(s.state.Image.Name)
	}
	b.WriteString(focusMarker(s.focusIndex == 3))
	b.WriteString(fieldLabel("Photo          "))
	b.WriteString(photo)
	b.WriteString("\n\n")

	b.WriteString(wizard.RenderHintBar(
		"tab", "next field",
		"enter", "open/continue",
		"esc", "back",
	))

	return b.String()
}

// SetSize updates the dimensions for the step.
func (s *AccountStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.panInput.SetWidth(inputWidth)
	s.aadhaarInput.SetWidth(inputWidth)
	if s.picker != nil {
		s.picker.SetSize(width, height)
	}
}

// Focus gives focus to the first element.
func (s *AccountStep) Focus() {
	s.focusIndex = 0
	s.updateFocus()
}

// FocusLast gives focus to the last element (the photo row).
func (s *AccountStep) FocusLast() {
	s.focusIndex = 3
	s.updateFocus()
}

// Blur removes focus from all elements.
func (s *AccountStep) Blur() {
	s.panInput.Blur()
	s.aadhaarInput.Blur()
}

// Submit asks the wizard to advance past this step.
func (s *AccountStep) Submit() tea.Cmd {
	return func() tea.Msg {
		return StepSubmittedMsg{}
	}
}
