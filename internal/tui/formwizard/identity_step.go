package formwizard

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/AD2708/multi-part/internal/form"
	"github.com/AD2708/multi-part/internal/tui/wizard"
)

// IdentityStep collects first name, last name, phone number and gender.
// All values are written through to the form state as they change, so
// navigating away and back restores them.
type IdentityStep struct {
	state *form.State

	firstInput textinput.Model
	lastInput  textinput.Model
	phoneInput textinput.Model
	genderList *wizard.ChoiceList
	focusIndex int // 0=first name, 1=last name, 2=phone, 3=gender

	width  int
	height int
}

// NewIdentityStep creates the identity step with values restored from
// the form state.
func NewIdentityStep(state *form.State) *IdentityStep {
	firstInput := newTextInput("First name")
	firstInput.SetValue(state.FirstName)

	lastInput := newTextInput("Last name")
	lastInput.SetValue(state.LastName)

	phoneInput := newTextInput("Phone number")
	phoneInput.SetValue(state.Phone)

	choices := make([]wizard.Choice, 0, len(form.Genders))
	for _, g := range form.Genders {
		label := string(g)
		label = strings.ToUpper(label[:1]) + label[1:]
		choices = append(choices, wizard.Choice{
			ID:    string(g),
			Label: label,
		})
	}
	genderList := wizard.NewChoiceList(choices)
	genderList.SetSize(24, len(choices))
	if state.Gender != form.GenderUnset {
		genderList.SetCursorByID(string(state.Gender))
	}

	return &IdentityStep{
		state:      state,
		firstInput: firstInput,
		lastInput:  lastInput,
		phoneInput: phoneInput,
		genderList: genderList,
		width:      60,
		height:     10,
	}
}

// Init focuses the first input.
func (s *IdentityStep) Init() tea.Cmd {
	s.focusIndex = 0
	s.updateFocus()
	return textinput.Blink
}

// Update handles messages for the identity step.
func (s *IdentityStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case wizard.ChoiceMadeMsg:
		s.state.SetGender(form.Gender(msg.ID))
		return nil

	case tea.KeyPressMsg:
		switch msg.String() {
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
			// On the gender list enter makes a selection; elsewhere it
			// submits the step.
			if s.focusIndex == 3 {
				return s.genderList.Update(msg)
			}
			return s.Submit()
		}

		if s.focusIndex == 3 {
			return s.genderList.Update(msg)
		}
	}

	// Forward to the focused input and write the value through.
	var cmd tea.Cmd
	switch s.focusIndex {
	case 0:
		s.firstInput, cmd = s.firstInput.Update(msg)
		s.state.Set(form.FieldFirstName, s.firstInput.Value())
	case 1:
		s.lastInput, cmd = s.lastInput.Update(msg)
		s.state.Set(form.FieldLastName, s.lastInput.Value())
	case 2:
		s.phoneInput, cmd = s.phoneInput.Update(msg)
		s.state.Set(form.FieldPhone, s.phoneInput.Value())
	}
	return cmd
}

// updateFocus syncs focus state across the inputs and the gender list.
func (s *IdentityStep) updateFocus() {
	s.firstInput.Blur()
	s.lastInput.Blur()
	s.phoneInput.Blur()
	s.genderList.Blur()

	switch s.focusIndex {
	case 0:
		s.firstInput.Focus()
	case 1:
		s.lastInput.Focus()
	case 2:
		s.phoneInput.Focus()
	case 3:
		s.genderList.Focus()
	}
}

// View renders the identity step.
func (s *IdentityStep) View() string {
	var b strings.Builder

	b.WriteString(fieldLabel("First Name"))
	b.WriteString("\n")
	b.WriteString(s.firstInput.View())
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Last Name"))
	b.WriteString("\n")
	b.WriteString(s.lastInput.View())
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Phone Number"))
	b.WriteString("\n")
	b.WriteString(s.phoneInput.View())
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Gender"))
	b.WriteString("\n")
	b.WriteString(s.genderList.View())
	b.WriteString("\n\n")

	b.WriteString(wizard.RenderHintBar(
		"tab", "next field",
		"enter", "continue",
		"esc", "cancel",
	))

	return b.String()
}

// SetSize updates the dimensions for the step.
func (s *IdentityStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.firstInput.SetWidth(inputWidth)
	s.lastInput.SetWidth(inputWidth)
	s.phoneInput.SetWidth(inputWidth)
}

// Focus gives focus to the first element.
func (s *IdentityStep) Focus() {
	s.focusIndex = 0
	s.updateFocus()
}

// FocusLast gives focus to the last element (the gender list).
func (s *IdentityStep) FocusLast() {
	s.focusIndex = 3
	s.updateFocus()
}

// Blur removes focus from all elements.
func (s *IdentityStep) Blur() {
	s.firstInput.Blur()
	s.lastInput.Blur()
	s.phoneInput.Blur()
	s.genderList.Blur()
}

// Submit asks the wizard to advance past this step.
func (s *IdentityStep) Submit() tea.Cmd {
	return func() tea.Msg {
		return StepSubmittedMsg{}
	}
}
