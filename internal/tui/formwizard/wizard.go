// Package formwizard implements the three-step account creation wizard:
// identity, account details and credentials. Navigation is forward with
// per-step validation, backward without it.
package formwizard

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/AD2708/multi-part/internal/config"
	"github.com/AD2708/multi-part/internal/form"
	"github.com/AD2708/multi-part/internal/logger"
	"github.com/AD2708/multi-part/internal/tui"
	"github.com/AD2708/multi-part/internal/tui/theme"
	"github.com/AD2708/multi-part/internal/tui/wizard"
	uv "github.com/charmbracelet/ultraviolet"
)

// WizardModel is the main BubbleTea model for the account form wizard.
// It owns the form state and drives the step flow:
// identity → account → credentials → submitted.
type WizardModel struct {
	state  *form.State
	cfg    *config.Config
	width  int // Terminal width
	height int // Terminal height

	// Step components (only the active one is non-nil)
	identityStep    *IdentityStep
	accountStep     *AccountStep
	credentialsStep *CredentialsStep

	// Button bar with focus tracking
	buttonBar     *wizard.ButtonBar
	buttonFocused bool // True if buttons have focus (vs step content)

	// Cached button bars per step (prevents focus reset on re-render)
	identityButtonBar    *wizard.ButtonBar
	accountButtonBar     *wizard.ButtonBar
	credentialsButtonBar *wizard.ButtonBar

	toast *tui.Toast
}

// Run is the entry point for the account form wizard. It runs a
// standalone BubbleTea program and returns the final form state; check
// State.Submitted to see whether the user completed the form.
func Run(cfg *config.Config) (*form.State, error) {
	m := &WizardModel{
		state: form.NewState(),
		cfg:   cfg,
		toast: tui.NewToast(),
	}

	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("form wizard failed: %w", err)
	}

	wizModel, ok := finalModel.(*WizardModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}

	return wizModel.state, nil
}

// Init initializes the wizard model on the first step.
func (m *WizardModel) Init() tea.Cmd {
	return m.initCurrentStep()
}

// Update handles messages for the wizard.
func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Once the form is submitted, q exits.
		if m.state.Submitted && msg.String() == "q" {
			return m, tea.Quit
		}

		// An open calendar or image picker owns the keyboard.
		if m.stepCapturesKeys() {
			return m.updateCurrentStep(msg)
		}

		// Handle button-focused keyboard input
		if m.buttonFocused && m.buttonBar != nil {
			switch msg.String() {
			case "tab", "right":
				if !m.buttonBar.FocusNext() {
					m.buttonFocused = false
					m.buttonBar.Blur()
					m.focusStepContentFirst()
				}
				return m, nil
			case "shift+tab", "left":
				if !m.buttonBar.FocusPrev() {
					m.buttonFocused = false
					m.buttonBar.Blur()
					m.focusStepContentLast()
				}
				return m, nil
			case "enter", " ":
				return m.activateButton(m.buttonBar.FocusedButton())
			}
		}

		// Global keybindings. Tab stays with the step content, which
		// cycles its own fields and signals TabExit at either end.
		switch msg.String() {
		case "esc":
			if m.state.CurrentStep == form.StepIdentity {
				// On first step, cancel the wizard
				return m, tea.Quit
			}
			return m.goBack()
		case "alt+1":
			return m.jumpTo(form.StepIdentity)
		case "alt+2":
			return m.jumpTo(form.StepAccount)
		case "alt+3":
			return m.jumpTo(form.StepCredentials)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateCurrentStepSize()
		return m, nil

	case StepSubmittedMsg:
		prev := m.state.CurrentStep
		submitted, verr := m.state.Next()
		if verr != nil {
			logger.Debug("Step %d validation failed: %s", int(prev), verr.Message)
			return m, m.toast.Show(verr.Title, verr.Message, tui.ToastError)
		}
		if submitted {
			logger.Info("Account form submitted")
			return m, m.toast.Show("Success", "Form Submitted!", tui.ToastSuccess)
		}
		if m.state.CurrentStep != prev {
			m.buttonFocused = false
			m.buttonBar = nil // Clear button bar reference when changing steps
			return m, m.initCurrentStep()
		}
		return m, nil

	case tui.ToastDismissMsg:
		return m, m.toast.Update(msg)

	case wizard.TabExitForwardMsg:
		// Tab from last input - move to buttons
		m.buttonFocused = true
		m.blurStepContent()
		m.ensureButtonBar()
		m.buttonBar.FocusFirst()
		return m, nil

	case wizard.TabExitBackwardMsg:
		// Shift+Tab from first input - move to buttons from end
		m.buttonFocused = true
		m.blurStepContent()
		m.ensureButtonBar()
		m.buttonBar.FocusLast()
		return m, nil
	}

	// Forward messages to current step
	return m.updateCurrentStep(msg)
}

// View renders the wizard.
func (m *WizardModel) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		// Not ready to render
		view.Content = lipgloss.NewLayer("")
		return view
	}

	content := m.renderCurrentStep()

	// Center on screen
	centered := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	// Draw to canvas using ultraviolet
	canvas := uv.NewScreenBuffer(m.width, m.height)
	area := uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	}
	uv.NewStyledString(centered).Draw(canvas, area)

	// Toast renders over the content in the bottom-right corner.
	if m.toast.IsVisible() {
		uv.NewStyledString(m.toast.View(m.width, m.height)).Draw(canvas, area)
	}

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// stepCapturesKeys reports whether the active step owns all keyboard
// input (calendar or image picker overlay open on the account step).
func (m *WizardModel) stepCapturesKeys() bool {
	return m.state.CurrentStep == form.StepAccount &&
		m.accountStep != nil &&
		m.accountStep.OverlayActive()
}

// initCurrentStep initializes the current step component and returns any
// init commands. Components are rebuilt from the form state, so values
// survive navigation in either direction.
func (m *WizardModel) initCurrentStep() tea.Cmd {
	var cmd tea.Cmd
	switch m.state.CurrentStep {
	case form.StepIdentity:
		m.identityStep = NewIdentityStep(m.state)
		cmd = m.identityStep.Init()
	case form.StepAccount:
		m.accountStep = NewAccountStep(m.state, m.cfg.UploadDir, m.cfg.DateFormat)
		cmd = m.accountStep.Init()
	case form.StepCredentials:
		m.credentialsStep = NewCredentialsStep(m.state)
		cmd = m.credentialsStep.Init()
	}
	m.updateCurrentStepSize()
	return cmd
}

// updateCurrentStep forwards a message to the current step.
func (m *WizardModel) updateCurrentStep(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state.CurrentStep {
	case form.StepIdentity:
		if m.identityStep != nil {
			cmd = m.identityStep.Update(msg)
		}
	case form.StepAccount:
		if m.accountStep != nil {
			cmd = m.accountStep.Update(msg)
		}
	case form.StepCredentials:
		if m.credentialsStep != nil {
			cmd = m.credentialsStep.Update(msg)
		}
	}

	return m, cmd
}

// getModalContentSize returns the internal content dimensions for the modal.
func (m *WizardModel) getModalContentSize() (width, height int) {
	width = modalContentWidth

	// Height: responsive to terminal with bounds, minus modal chrome.
	height = m.height - 4
	if height < 20 {
		height = 20
	}
	if height > 40 {
		height = 40
	}
	height = height - 10
	if height < 10 {
		height = 10
	}
	return width, height
}

// updateCurrentStepSize updates the size of the current step.
func (m *WizardModel) updateCurrentStepSize() {
	contentWidth, contentHeight := m.getModalContentSize()

	switch m.state.CurrentStep {
	case form.StepIdentity:
		if m.identityStep != nil {
			m.identityStep.SetSize(contentWidth, contentHeight)
		}
	case form.StepAccount:
		if m.accountStep != nil {
			m.accountStep.SetSize(contentWidth, contentHeight)
		}
	case form.StepCredentials:
		if m.credentialsStep != nil {
			m.credentialsStep.SetSize(contentWidth, contentHeight)
		}
	}
}

// renderCurrentStep renders the content for the current step.
func (m *WizardModel) renderCurrentStep() string {
	currentTheme := theme.Current()
	step := m.state.CurrentStep

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(currentTheme.Primary))

	title := titleStyle.Render(fmt.Sprintf("Create Account - Step %d: %s", int(step), step.Title()))
	trail := renderStepTrail(step)

	var stepContent string
	switch step {
	case form.StepIdentity:
		if m.identityStep != nil {
			stepContent = m.identityStep.View()
		}
	case form.StepAccount:
		if m.accountStep != nil {
			stepContent = m.accountStep.View()
		}
	case form.StepCredentials:
		if m.credentialsStep != nil {
			stepContent = m.credentialsStep.View()
		}
	}

	m.ensureButtonBar()
	buttonBarContent := m.buttonBar.Render()

	hintText := "tab to navigate • alt+1/2/3 to revisit • esc to go back"
	if m.state.Submitted {
		hintText = "q or ctrl+c to exit"
	}
	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(currentTheme.FgMuted)).
		Render(hintText)

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Padding(2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(currentTheme.BorderDefault))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		trail,
		"",
		stepContent,
		"",
		buttonBarContent,
		"",
		hint,
	)

	return modalStyle.Render(content)
}

// ensureButtonBar creates the button bar if needed, using cached
// instances per step so focus state survives re-renders.
func (m *WizardModel) ensureButtonBar() {
	var cachedBar *wizard.ButtonBar
	switch m.state.CurrentStep {
	case form.StepIdentity:
		cachedBar = m.identityButtonBar
	case form.StepAccount:
		cachedBar = m.accountButtonBar
	case form.StepCredentials:
		cachedBar = m.credentialsButtonBar
	}

	if cachedBar != nil {
		m.buttonBar = cachedBar
		return
	}

	// Back is disabled on the first step; the final step submits.
	nextLabel := "Next →"
	if m.state.CurrentStep == form.StepCredentials {
		nextLabel = "Submit"
	}
	newBar := wizard.NewButtonBar(wizard.CreateBackNextButtons(
		m.state.CurrentStep > form.StepIdentity,
		nextLabel,
	))
	newBar.SetWidth(modalContentWidth)

	switch m.state.CurrentStep {
	case form.StepIdentity:
		m.identityButtonBar = newBar
	case form.StepAccount:
		m.accountButtonBar = newBar
	case form.StepCredentials:
		m.credentialsButtonBar = newBar
	}

	m.buttonBar = newBar
}

// activateButton handles button activation.
func (m *WizardModel) activateButton(btnID wizard.ButtonID) (tea.Model, tea.Cmd) {
	switch btnID {
	case wizard.ButtonBack:
		return m.goBack()
	case wizard.ButtonNext:
		return m, m.submitCurrentStep()
	}
	return m, nil
}

// goBack moves to the previous step without validating.
func (m *WizardModel) goBack() (tea.Model, tea.Cmd) {
	prev := m.state.CurrentStep
	m.state.Back()
	if m.state.CurrentStep == prev {
		return m, nil
	}
	m.buttonFocused = false
	m.buttonBar = nil // Clear button bar reference when changing steps
	return m, m.initCurrentStep()
}

// jumpTo revisits an earlier step directly. Forward jumps are refused by
// the form state, so this is a no-op unless step was already passed.
func (m *WizardModel) jumpTo(step form.Step) (tea.Model, tea.Cmd) {
	if !m.state.JumpTo(step) {
		return m, nil
	}
	logger.Debug("Jumped back to step %d", int(step))
	m.buttonFocused = false
	m.buttonBar = nil // Clear button bar reference when changing steps
	return m, m.initCurrentStep()
}

// submitCurrentStep asks the active step to submit.
func (m *WizardModel) submitCurrentStep() tea.Cmd {
	switch m.state.CurrentStep {
	case form.StepIdentity:
		if m.identityStep != nil {
			return m.identityStep.Submit()
		}
	case form.StepAccount:
		if m.accountStep != nil {
			return m.accountStep.Submit()
		}
	case form.StepCredentials:
		if m.credentialsStep != nil {
			return m.credentialsStep.Submit()
		}
	}
	return nil
}

// focusStepContentFirst focuses the first element in step content.
func (m *WizardModel) focusStepContentFirst() {
	switch m.state.CurrentStep {
	case form.StepIdentity:
		if m.identityStep != nil {
			m.identityStep.Focus()
		}
	case form.StepAccount:
		if m.accountStep != nil {
			m.accountStep.Focus()
		}
	case form.StepCredentials:
		if m.credentialsStep != nil {
			m.credentialsStep.Focus()
		}
	}
}

// focusStepContentLast focuses the last element in step content.
func (m *WizardModel) focusStepContentLast() {
	switch m.state.CurrentStep {
	case form.StepIdentity:
		if m.identityStep != nil {
			m.identityStep.FocusLast()
		}
	case form.StepAccount:
		if m.accountStep != nil {
			m.accountStep.FocusLast()
		}
	case form.StepCredentials:
		if m.credentialsStep != nil {
			m.credentialsStep.FocusLast()
		}
	}
}

// blurStepContent blurs all step content.
func (m *WizardModel) blurStepContent() {
	switch m.state.CurrentStep {
	case form.StepIdentity:
		if m.identityStep != nil {
			m.identityStep.Blur()
		}
	case form.StepAccount:
		if m.accountStep != nil {
			m.accountStep.Blur()
		}
	case form.StepCredentials:
		if m.credentialsStep != nil {
			m.credentialsStep.Blur()
		}
	}
}
