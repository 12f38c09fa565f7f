package formwizard

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/AD2708/multi-part/internal/form"
	"github.com/AD2708/multi-part/internal/tui/wizard"
	"github.com/stretchr/testify/require"
)

func newAccountStep(t *testing.T) (*form.State, *AccountStep) {
	t.Helper()
	state := form.NewState()
	state.CurrentStep = form.StepAccount
	step := NewAccountStep(state, t.TempDir(), "02 Jan 2006")
	step.Init()
	return state, step
}

func TestAccountStepUppercasesPANAsTyped(t *testing.T) {
	state, step := newAccountStep(t)

	for _, r := range []string{"a", "b"} {
		step.Update(tea.KeyPressMsg{Text: r})
	}

	require.Equal(t, "AB", state.PANNumber)
	require.Equal(t, "AB", step.panInput.Value(), "the field shows the uppercased text")
}

func TestAccountStepStripsNonDigitsFromAadhaar(t *testing.T) {
	state, step := newAccountStep(t)
	step.Update(tea.KeyPressMsg{Text: "tab"})

	for _, r := range []string{"1", "x", "2", "-", "3"} {
		step.Update(tea.KeyPressMsg{Text: r})
	}

	require.Equal(t, "123", state.AadhaarNumber)
	require.Equal(t, "123", step.aadhaarInput.Value())
}

func TestAccountStepOpensCalendar(t *testing.T) {
	_, step := newAccountStep(t)
	step.focusIndex = 2

	step.Update(tea.KeyPressMsg{Text: "enter"})

	require.True(t, step.OverlayActive())
	require.NotNil(t, step.calendar)
}

func TestAccountStepDateSelectionSetsDOB(t *testing.T) {
	state, step := newAccountStep(t)
	step.focusIndex = 2
	step.Update(tea.KeyPressMsg{Text: "enter"})

	dob := time.Date(1995, time.March, 14, 0, 0, 0, 0, time.UTC)
	step.Update(wizard.DateSelectedMsg{Date: &dob})

	require.False(t, step.OverlayActive())
	require.NotNil(t, state.DOB)
	require.Equal(t, dob, *state.DOB)
}

func TestAccountStepCalendarCloseKeepsDOB(t *testing.T) {
	state, step := newAccountStep(t)
	dob := time.Date(1995, time.March, 14, 0, 0, 0, 0, time.UTC)
	state.SetDOB(&dob)

	step.focusIndex = 2
	step.Update(tea.KeyPressMsg{Text: "enter"})
	step.Update(wizard.CalendarClosedMsg{})

	require.False(t, step.OverlayActive())
	require.Equal(t, dob, *state.DOB)
}

func TestAccountStepImageSelection(t *testing.T) {
	state, step := newAccountStep(t)
	step.focusIndex = 3
	step.Update(tea.KeyPressMsg{Text: "enter"})
	require.True(t, step.OverlayActive())

	step.Update(wizard.ImageSelectedMsg{Path: "/photos/My Photo.PNG"})

	require.False(t, step.OverlayActive())
	require.NotNil(t, state.Image)
	require.Equal(t, "my-photo.png", state.Image.Name)
	require.Equal(t, "/photos/My Photo.PNG", state.Image.Path)
}

func TestAccountStepPickerEscCancels(t *testing.T) {
	state, step := newAccountStep(t)
	step.focusIndex = 3
	step.Update(tea.KeyPressMsg{Text: "enter"})

	step.Update(tea.KeyPressMsg{Text: "esc"})

	require.False(t, step.OverlayActive())
	require.Nil(t, state.Image)
}

func TestAccountStepClearPhoto(t *testing.T) {
	state, step := newAccountStep(t)
	state.SetImage(form.NewAttachment("/photos/cat.png"))

	step.focusIndex = 3
	step.Update(tea.KeyPressMsg{Text: "backspace"})

	require.Nil(t, state.Image)
}

func TestAccountStepViewShowsStoredValues(t *testing.T) {
	state, step := newAccountStep(t)
	dob := time.Date(1995, time.March, 14, 0, 0, 0, 0, time.UTC)
	state.SetDOB(&dob)
	state.SetImage(form.NewAttachment("/photos/cat.png"))

	view := step.View()
	require.Contains(t, view, "14 Mar 1995")
	require.Contains(t, view, "cat.png")
}
