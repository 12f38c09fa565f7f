package formwizard

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/AD2708/multi-part/internal/form"
	"github.com/AD2708/multi-part/internal/tui/wizard"
	"github.com/stretchr/testify/require"
)

func TestIdentityStepWritesThrough(t *testing.T) {
	state := form.NewState()
	step := NewIdentityStep(state)
	step.Init()

	step.Update(tea.KeyPressMsg{Text: "A"})
	require.Equal(t, "A", state.FirstName)

	step.Update(tea.KeyPressMsg{Text: "tab"})
	step.Update(tea.KeyPressMsg{Text: "V"})
	require.Equal(t, "V", state.LastName)
}

func TestIdentityStepRestoresValues(t *testing.T) {
	state := form.NewState()
	state.Set(form.FieldFirstName, "Asha")
	state.SetGender(form.GenderOther)

	step := NewIdentityStep(state)

	require.Equal(t, "Asha", step.firstInput.Value())
	require.Equal(t, "other", step.genderList.CursorChoice().ID)
}

func TestIdentityStepGenderSelection(t *testing.T) {
	state := form.NewState()
	step := NewIdentityStep(state)
	step.Init()

	step.Update(wizard.ChoiceMadeMsg{ID: "female", Index: 1})
	require.Equal(t, form.GenderFemale, state.Gender)
}

func TestIdentityStepEnterOnGenderSelects(t *testing.T) {
	state := form.NewState()
	step := NewIdentityStep(state)
	step.Init()
	step.FocusLast()

	step.genderList.SetCursorByID("male")
	cmd := step.Update(tea.KeyPressMsg{Text: "enter"})
	require.NotNil(t, cmd)

	made, ok := cmd().(wizard.ChoiceMadeMsg)
	require.True(t, ok)
	require.Equal(t, "male", made.ID)
}

func TestIdentityStepTabExits(t *testing.T) {
	state := form.NewState()
	step := NewIdentityStep(state)
	step.Init()

	// Shift+Tab on the first field exits backward.
	cmd := step.Update(tea.KeyPressMsg{Text: "shift+tab"})
	require.NotNil(t, cmd)
	_, ok := cmd().(wizard.TabExitBackwardMsg)
	require.True(t, ok)

	// Tab on the last field exits forward.
	step.FocusLast()
	cmd = step.Update(tea.KeyPressMsg{Text: "tab"})
	require.NotNil(t, cmd)
	_, ok = cmd().(wizard.TabExitForwardMsg)
	require.True(t, ok)
}

func TestIdentityStepEnterSubmits(t *testing.T) {
	state := form.NewState()
	step := NewIdentityStep(state)
	step.Init()

	cmd := step.Update(tea.KeyPressMsg{Text: "enter"})
	require.NotNil(t, cmd)
	_, ok := cmd().(StepSubmittedMsg)
	require.True(t, ok)
}
