package wizard

import (
	"charm.land/lipgloss/v2"
	"github.com/AD2708/multi-part/internal/tui/theme"
)

// Hint bar styles
var (
	styleHintKey = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Current().FgSubtle)).
			Bold(true)

	styleHintDesc = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Current().FgMuted))

	styleHintSeparator = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.Current().BorderDefault))
)

// RenderHintBar renders a hint bar with the given key-description pairs.
// Example: RenderHintBar("↑↓", "navigate", "enter", "select", "esc", "back")
// Returns: "↑↓ navigate • enter select • esc back"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	var result string
	for i := 0; i < len(pairs); i += 2 {
		key := pairs[i]
		desc := pairs[i+1]

		if i > 0 {
			result += " " + styleHintSeparator.Render("•") + " "
		}

		result += styleHintKey.Render(key) + " " + styleHintDesc.Render(desc)
	}

	return result
}

// Messages shared by the step widgets.

// TabExitForwardMsg is sent when Tab is pressed on the last input.
// Parent should move focus to buttons.
type TabExitForwardMsg struct{}

// TabExitBackwardMsg is sent when Shift+Tab is pressed on the first input.
// Parent should move focus to buttons (from end).
type TabExitBackwardMsg struct{}
