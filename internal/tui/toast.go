// Package tui provides shared terminal UI components for the account form.
package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/AD2708/multi-part/internal/tui/theme"
)

// ToastLevel selects the visual treatment of a notification.
type ToastLevel int

const (
	ToastSuccess ToastLevel = iota // Default notification (e.g. "Form Submitted!")
	ToastError                     // Destructive notification (validation failures)
)

// ToastDismissMsg is sent when the toast should be dismissed.
type ToastDismissMsg struct{}

// ShowToastMsg is sent to show a toast notification.
type ShowToastMsg struct {
	Title string
	Text  string
	Level ToastLevel
}

// Toast is a transient notification component. It shows a short title and
// a one-line message in the bottom-right corner and auto-dismisses after
// 3 seconds.
type Toast struct {
	title     string
	message   string
	level     ToastLevel
	visible   bool
	dismissAt time.Time
}

// NewToast creates a new Toast component.
func NewToast() *Toast {
	return &Toast{}
}

// Show displays a toast with the given title and message.
// The toast will auto-dismiss after 3 seconds.
func (t *Toast) Show(title, msg string, level ToastLevel) tea.Cmd {
	t.title = title
	t.message = msg
	t.level = level
	t.visible = true
	t.dismissAt = time.Now().Add(3 * time.Second)
	return t.dismissCmd()
}

// dismissCmd returns a command that will dismiss the toast after the remaining time.
func (t *Toast) dismissCmd() tea.Cmd {
	remaining := time.Until(t.dismissAt)
	if remaining <= 0 {
		remaining = 1 * time.Millisecond
	}
	return tea.Tick(remaining, func(time.Time) tea.Msg {
		return ToastDismissMsg{}
	})
}

// Update handles messages for the toast component.
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case ToastDismissMsg:
		t.visible = false
		t.title = ""
		t.message = ""
		return nil
	}
	return nil
}

// View renders the toast at the given screen dimensions.
// Returns empty string if toast is not visible.
// Positions the toast in the bottom-right corner.
func (t *Toast) View(width, height int) string {
	if !t.visible || t.message == "" {
		return ""
	}

	th := theme.Current()

	accent := th.Success
	if t.level == ToastError {
		accent = th.Error
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.BgBase)).
		Background(lipgloss.Color(accent)).
		Padding(0, 1).
		Bold(true)

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.FgBase)).
		Background(lipgloss.Color(th.BgSurface)).
		Padding(0, 1)

	content := titleStyle.Render(t.title) + messageStyle.Render(t.message)

	// Keep the toast inside the terminal width with 1 cell padding.
	contentWidth := lipgloss.Width(content)
	if contentWidth > width-2 {
		content = messageStyle.Width(width - 2).Render(t.title + ": " + t.message)
	}

	// Position at row height-2 (1 row above the bottom edge).
	verticalPadding := height - 2
	if verticalPadding < 0 {
		verticalPadding = 0
	}

	// Build the positioned toast with bottom-right alignment
	var result string
	for i := 0; i < verticalPadding; i++ {
		result += "\n"
	}
	result += lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Right).
		PaddingRight(1).
		Render(content)

	return result
}

// IsVisible returns whether the toast is currently visible.
func (t *Toast) IsVisible() bool {
	return t.visible
}

// Title returns the current toast title (empty if not visible).
func (t *Toast) Title() string {
	if !t.visible {
		return ""
	}
	return t.title
}

// Message returns the current toast message (empty if not visible).
func (t *Toast) Message() string {
	if !t.visible {
		return ""
	}
	return t.message
}

// Level returns the current toast level.
func (t *Toast) Level() ToastLevel {
	return t.level
}
