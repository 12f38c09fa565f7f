// Package datepicker implements the calendar state behind the date-of-birth
// picker: a displayed month/year anchor, a fixed year window, and the
// selected date. Rendering is left to the TUI layer.
package datepicker

import "time"

// yearWindow is the number of selectable years. The window is snapshotted
// around the year the picker is created and never recomputed.
const yearWindow = 100

// Picker holds the calendar view state. The displayed anchor month can be
// changed freely without altering the selected date.
type Picker struct {
	year     int        // Anchor year
	month    time.Month // Anchor month
	selected *time.Time
	years    []int // Fixed window [y-50, y+49], snapshotted at creation
}

// New creates a picker anchored on now's month. The selectable year window
// is pinned to now's year at creation time; it does not slide afterwards.
func New(now time.Time) *Picker {
	years := make([]int, yearWindow)
	start := now.Year() - yearWindow/2
	for i := range years {
		years[i] = start + i
	}
	return &Picker{
		year:  now.Year(),
		month: now.Month(),
		years: years,
	}
}

// Anchor returns the currently displayed year and month.
func (p *Picker) Anchor() (int, time.Month) {
	return p.year, p.month
}

// Selected returns the selected date, or nil if none is selected.
func (p *Picker) Selected() *time.Time {
	return p.selected
}

// Years returns the fixed selectable year window in ascending order.
func (p *Picker) Years() []int {
	return p.years
}

// SetMonth replaces the anchor's month component; the year is unchanged.
func (p *Picker) SetMonth(m time.Month) {
	if m < time.January || m > time.December {
		return
	}
	p.month = m
}

// SetYear replaces the anchor's year component, clamped to the window.
func (p *Picker) SetYear(year int) {
	lo := p.years[0]
	hi := p.years[len(p.years)-1]
	if year < lo {
		year = lo
	}
	if year > hi {
		year = hi
	}
	p.year = year
}

// StepMonth moves the anchor delta months forward (or back for negative
// delta), with normal calendar rollover: December steps into January of
// the following year.
func (p *Picker) StepMonth(delta int) {
	t := time.Date(p.year, p.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	p.year = t.Year()
	p.month = t.Month()
}

// Select sets the selected date. A nil value clears the selection. The
// anchor is never moved by selection.
func (p *Picker) Select(date *time.Time) {
	if date == nil {
		p.selected = nil
		return
	}
	d := *date
	p.selected = &d
}

// Clear removes the current selection.
func (p *Picker) Clear() {
	p.selected = nil
}
