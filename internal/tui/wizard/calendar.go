package wizard

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/AD2708/multi-part/internal/datepicker"
	"github.com/AD2708/multi-part/internal/tui/theme"
)

// calendarMode tracks which control layer of the calendar is active.
type calendarMode int

const (
	modeGrid  calendarMode = iota // Day-cell navigation
	modeMonth                     // Month selector list
	modeYear                      // Year selector list
)

// DateSelectedMsg is sent when the user confirms a day cell (Date set) or
// clears the selection (Date nil).
type DateSelectedMsg struct {
	Date *time.Time
}

// CalendarClosedMsg is sent when the calendar is dismissed without
// changing the selection.
type CalendarClosedMsg struct{}

// Calendar is the date picker widget: a month grid with a day cursor plus
// month and year selector lists layered on top of the displayed-month
// anchor. Moving the anchor never touches the selected date.
type Calendar struct {
	picker *datepicker.Picker
	cursor time.Time // Day cursor, always within the anchor month
	mode   calendarMode

	monthList *ChoiceList
	yearList  *ChoiceList

	width  int
	height int
}

// NewCalendar creates a calendar anchored on now's month. The selectable
// year window is snapshotted from now and stays fixed for the lifetime of
// the widget. A prior selection is restored and the anchor moved to its
// month so the user sees it immediately.
func NewCalendar(now time.Time, selected *time.Time) *Calendar {
	p := datepicker.New(now)

	cursor := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if selected != nil {
		p.Select(selected)
		p.SetYear(selected.Year())
		p.SetMonth(selected.Month())
		cursor = time.Date(selected.Year(), selected.Month(), selected.Day(), 0, 0, 0, 0, time.UTC)
	}

	months := make([]Choice, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, Choice{
			ID:    fmt.Sprintf("%d", int(m)),
			Label: m.String(),
		})
	}

	years := make([]Choice, 0, len(p.Years()))
	for _, y := range p.Years() {
		years = append(years, Choice{
			ID:    fmt.Sprintf("%d", y),
			Label: fmt.Sprintf("%d", y),
		})
	}

	c := &Calendar{
		picker:    p,
		cursor:    cursor,
		monthList: NewChoiceList(months),
		yearList:  NewChoiceList(years),
		width:     40,
		height:    14,
	}
	c.monthList.SetSize(20, 8)
	c.yearList.SetSize(20, 8)
	return c
}

// Selected returns the currently selected date, or nil.
func (c *Calendar) Selected() *time.Time {
	return c.picker.Selected()
}

// Anchor returns the displayed year and month.
func (c *Calendar) Anchor() (int, time.Month) {
	return c.picker.Anchor()
}

// SetSize updates the widget dimensions.
func (c *Calendar) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Update handles messages for the calendar.
func (c *Calendar) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ChoiceMadeMsg:
		return c.applyChoice(msg)

	case tea.KeyPressMsg:
		switch c.mode {
		case modeMonth:
			if msg.String() == "esc" {
				c.mode = modeGrid
				return nil
			}
			return c.monthList.Update(msg)
		case modeYear:
			if msg.String() == "esc" {
				c.mode = modeGrid
				return nil
			}
			return c.yearList.Update(msg)
		}
		return c.updateGrid(msg)
	}

	return nil
}

// applyChoice commits a month or year selector choice to the anchor.
// Only the anchor moves; the selected date is untouched.
func (c *Calendar) applyChoice(msg ChoiceMadeMsg) tea.Cmd {
	switch c.mode {
	case modeMonth:
		c.picker.SetMonth(time.Month(msg.Index + 1))
	case modeYear:
		c.picker.SetYear(c.picker.Years()[msg.Index])
	default:
		return nil
	}
	c.mode = modeGrid
	c.clampCursor()
	return nil
}

// updateGrid handles day-cursor navigation and selection.
func (c *Calendar) updateGrid(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		c.moveCursor(-1)
	case "right", "l":
		c.moveCursor(1)
	case "up", "k":
		c.moveCursor(-7)
	case "down", "j":
		c.moveCursor(7)
	case "[", "pgup":
		c.picker.StepMonth(-1)
		c.clampCursor()
	case "]", "pgdown":
		c.picker.StepMonth(1)
		c.clampCursor()
	case "m":
		_, month := c.picker.Anchor()
		c.monthList.SetCursor(int(month) - 1)
		c.monthList.Focus()
		c.mode = modeMonth
	case "y":
		year, _ := c.picker.Anchor()
		c.yearList.SetCursorByID(fmt.Sprintf("%d", year))
		c.yearList.Focus()
		c.mode = modeYear
	case "enter", " ":
		date := c.cursor
		c.picker.Select(&date)
		return func() tea.Msg {
			return DateSelectedMsg{Date: &date}
		}
	case "backspace", "delete":
		c.picker.Clear()
		return func() tea.Msg {
			return DateSelectedMsg{Date: nil}
		}
	case "esc":
		return func() tea.Msg {
			return CalendarClosedMsg{}
		}
	}
	return nil
}

// moveCursor shifts the day cursor and follows it across month
// boundaries, stepping the anchor with normal rollover.
func (c *Calendar) moveCursor(days int) {
	c.cursor = c.cursor.AddDate(0, 0, days)
	year, month := c.picker.Anchor()
	if c.cursor.Month() != month || c.cursor.Year() != year {
		if c.cursor.Before(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)) {
			c.picker.StepMonth(-1)
		} else {
			c.picker.StepMonth(1)
		}
	}
}

// clampCursor pulls the cursor into the anchor month, preserving the day
// number where possible.
func (c *Calendar) clampCursor() {
	year, month := c.picker.Anchor()
	day := c.cursor.Day()
	if max := datepicker.DaysIn(year, month); day > max {
		day = max
	}
	c.cursor = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// View renders the calendar (or the active selector list).
func (c *Calendar) View() string {
	t := theme.Current()

	switch c.mode {
	case modeMonth:
		title := lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true).
			Render("Select month")
		return lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			"",
			c.monthList.View(),
			"",
			RenderHintBar("↑↓", "navigate", "enter", "select", "esc", "back"),
		)
	case modeYear:
		title := lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true).
			Render("Select year")
		return lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			"",
			c.yearList.View(),
			"",
			RenderHintBar("↑↓", "navigate", "enter", "select", "esc", "back"),
		)
	}

	return c.viewGrid()
}

// viewGrid renders the month header, weekday row and day cells.
func (c *Calendar) viewGrid() string {
	t := theme.Current()
	year, month := c.picker.Anchor()

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Primary)).
		Bold(true)
	weekdayStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgSubtle))
	outsideStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted))
	dayStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase))
	cursorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.BgBase)).
		Background(lipgloss.Color(t.Secondary)).
		Bold(true)
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.BgBase)).
		Background(lipgloss.Color(t.Primary)).
		Bold(true)

	header := headerStyle.Render(fmt.Sprintf("◀ %s %d ▶", month, year))
	weekdays := weekdayStyle.Render("Su Mo Tu We Th Fr Sa")

	selected := c.picker.Selected()

	var rows []string
	for _, week := range datepicker.Grid(year, month) {
		var cells []string
		for _, d := range week {
			label := fmt.Sprintf("%2d", d.Date.Day())
			switch {
			case sameDay(d.Date, c.cursor) && d.InMonth:
				cells = append(cells, cursorStyle.Render(label))
			case selected != nil && sameDay(d.Date, *selected):
				cells = append(cells, selectedStyle.Render(label))
			case !d.InMonth:
				cells = append(cells, outsideStyle.Render(label))
			default:
				cells = append(cells, dayStyle.Render(label))
			}
		}
		rows = append(rows, strings.Join(cells, " "))
	}

	hint := RenderHintBar(
		"←→↑↓", "move",
		"[ ]", "month",
		"m/y", "pick",
		"enter", "select",
		"backspace", "clear",
		"esc", "close",
	)

	parts := []string{header, weekdays}
	parts = append(parts, rows...)
	parts = append(parts, "", hint)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// sameDay reports whether a and b fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
