package formwizard

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/AD2708/multi-part/internal/form"
	"github.com/AD2708/multi-part/internal/tui/wizard"
)

// CredentialsStep collects email, password and password confirmation.
// Both password fields are masked.
type CredentialsStep struct {
	state *form.State

	emailInput    textinput.Model
	passwordInput textinput.Model
	confirmInput  textinput.Model
	focusIndex    int // 0=email, 1=password, 2=confirm

	width  int
	height int
}

// NewCredentialsStep creates the credentials step with values restored
// from the form state.
func NewCredentialsStep(state *form.State) *CredentialsStep {
	emailInput := newTextInput("you@example.com")
	emailInput.SetValue(state.Email)

	passwordInput := newTextInput("At least 8 characters")
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '•'
	passwordInput.SetValue(state.Password)

	confirmInput := newTextInput("Repeat password")
	confirmInput.EchoMode = textinput.EchoPassword
	confirmInput.EchoCharacter = '•'
	confirmInput.SetValue(state.ConfirmPassword)

	return &CredentialsStep{
		state:         state,
		emailInput:    emailInput,
		passwordInput: passwordInput,
		confirmInput:  confirmInput,
		width:         60,
		height:        10,
	}
}

// Init focuses the email input.
func (s *CredentialsStep) Init() tea.Cmd {
	s.focusIndex = 0
	s.updateFocus()
	return textinput.Blink
}

// Update handles messages for the credentials step.
func (s *CredentialsStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab":
			if s.focusIndex == 2 {
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
			return s.Submit()
		}
	}

	var cmd tea.Cmd
	switch s.focusIndex {
	case 0:
		s.emailInput, cmd = s.emailInput.Update(msg)
		s.state.Set(form.FieldEmail, s.emailInput.Value())
	case 1:
		s.passwordInput, cmd = s.passwordInput.Update(msg)
		s.state.Set(form.FieldPassword, s.passwordInput.Value())
	case 2:
		s.confirmInput, cmd = s.confirmInput.Update(msg)
		s.state.Set(form.FieldConfirmPassword, s.confirmInput.Value())
	}
	return cmd
}

// updateFocus syncs focus state across the inputs.
func (s *CredentialsStep) updateFocus() {
	s.emailInput.Blur()
	s.passwordInput.Blur()
	s.confirmInput.Blur()

	switch s.focusIndex {
	case 0:
		s.emailInput.Focus()
	case 1:
		s.passwordInput.Focus()
	case 2:
		s.confirmInput.Focus()
	}
}

// View renders the credentials step.
func (s *CredentialsStep) View() string {
	var b strings.Builder

	b.WriteString(fieldLabel("Email"))
	b.WriteString("\n")
	b.WriteString(s.emailInput.View())
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Password"))
	b.WriteString("\n")
	b.WriteString(s.passwordInput.View())
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Confirm Password"))
	b.WriteString("\n")
	b.WriteString(s.confirmInput.View())
	b.WriteString("\n\n")

	b.WriteString(wizard.RenderHintBar(
		"tab", "next field",
		"enter", "submit",
		"esc", "back",
	))

	return b.String()
}

// SetSize updates the dimensions for the step.
func (s *CredentialsStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.emailInput.SetWidth(inputWidth)
	s.passwordInput.SetWidth(inputWidth)
	s.confirmInput.SetWidth(inputWidth)
}

// Focus gives focus to the first input.
func (s *CredentialsStep) Focus() {
	s.focusIndex = 0
	s.updateFocus()
}

// FocusLast gives focus to the last input.
func (s *CredentialsStep) FocusLast() {
	s.focusIndex = 2
	s.updateFocus()
}

// Blur removes focus from all inputs.
func (s *CredentialsStep) Blur() {
	s.emailInput.Blur()
	s.passwordInput.Blur()
	s.confirmInput.Blur()
}

// Submit asks the wizard to advance past this step.
func (s *CredentialsStep) Submit() tea.Cmd {
	return func() tea.Msg {
		return StepSubmittedMsg{}
	}
}
