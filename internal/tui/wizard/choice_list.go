package wizard

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/AD2708/multi-part/internal/tui/theme"
)

// Choice is one selectable entry in a ChoiceList.
type Choice struct {
	ID    string // Stable identifier reported on selection
	Label string // Display text
}

// ChoiceMadeMsg is sent when the user activates an entry with enter.
type ChoiceMadeMsg struct {
	ID    string
	Index int
}

// ChoiceList is a small vertical single-select list with cursor
// navigation and windowed scrolling for long option sets (e.g. the
// 100-entry year window).
type ChoiceList struct {
	choices []Choice
	cursor  int
	offset  int // First visible row
	height  int // Visible rows
	width   int
	focused bool
}

// NewChoiceList creates a choice list over the given entries.
func NewChoiceList(choices []Choice) *ChoiceList {
	return &ChoiceList{
		choices: choices,
		height:  8,
		width:   24,
	}
}

// SetSize updates the visible dimensions.
func (c *ChoiceList) SetSize(width, height int) {
	c.width = width
	if height < 1 {
		height = 1
	}
	c.height = height
	c.scrollToCursor()
}

// Focus marks the list focused (highlighted cursor).
func (c *ChoiceList) Focus() {
	c.focused = true
}

// Blur removes focus.
func (c *ChoiceList) Blur() {
	c.focused = false
}

// Focused reports whether the list has focus.
func (c *ChoiceList) Focused() bool {
	return c.focused
}

// Cursor returns the current cursor index.
func (c *ChoiceList) Cursor() int {
	return c.cursor
}

// SetCursor moves the cursor to the given index, clamped to the list.
func (c *ChoiceList) SetCursor(i int) {
	if i < 0 {
		i = 0
	}
	if i > len(c.choices)-1 {
		i = len(c.choices) - 1
	}
	c.cursor = i
	c.scrollToCursor()
}

// CursorChoice returns the entry under the cursor.
func (c *ChoiceList) CursorChoice() Choice {
	if c.cursor < 0 || c.cursor >= len(c.choices) {
		return Choice{}
	}
	return c.choices[c.cursor]
}

// SetCursorByID moves the cursor to the entry with the given ID, if present.
func (c *ChoiceList) SetCursorByID(id string) {
	for i, ch := range c.choices {
		if ch.ID == id {
			c.SetCursor(i)
			return
		}
	}
}

// Update handles navigation keys and selection.
func (c *ChoiceList) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(c.choices) == 0 {
		return nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
			c.scrollToCursor()
		}
	case "down", "j":
		if c.cursor < len(c.choices)-1 {
			c.cursor++
			c.scrollToCursor()
		}
	case "pgup":
		c.SetCursor(c.cursor - c.height)
	case "pgdown":
		c.SetCursor(c.cursor + c.height)
	case "enter", " ":
		choice := c.choices[c.cursor]
		idx := c.cursor
		return func() tea.Msg {
			return ChoiceMadeMsg{ID: choice.ID, Index: idx}
		}
	}

	return nil
}

// scrollToCursor keeps the cursor inside the visible window.
func (c *ChoiceList) scrollToCursor() {
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+c.height {
		c.offset = c.cursor - c.height + 1
	}
	if c.offset < 0 {
		c.offset = 0
	}
}

// View renders the visible window of the list.
func (c *ChoiceList) View() string {
	t := theme.Current()

	cursorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Primary)).
		Background(lipgloss.Color(t.BgSurface)).
		Bold(true)
	if !c.focused {
		cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)).
			Bold(true)
	}
	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase))

	var b strings.Builder
	end := c.offset + c.height
	if end > len(c.choices) {
		end = len(c.choices)
	}
	for i := c.offset; i < end; i++ {
		label := c.choices[i].Label
		if len(label) > c.width-2 && c.width > 5 {
			label = label[:c.width-5] + "..."
		}
		if i == c.cursor {
			b.WriteString(cursorStyle.Render("▸ " + label))
		} else {
			b.WriteString(normalStyle.Render("  " + label))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Len returns the number of entries.
func (c *ChoiceList) Len() int {
	return len(c.choices)
}
