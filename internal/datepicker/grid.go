package datepicker

import "time"

// daysPerWeek is the grid width; weeks start on Sunday.
const daysPerWeek = 7

// Day is one cell of the calendar grid.
type Day struct {
	Date    time.Time
	InMonth bool // False for the leading/trailing days of adjacent months
}

// Week is one horizontal row of the grid.
type Week [daysPerWeek]Day

// Grid returns the day cells for the given month as full weeks, padded at
// both ends with days from the adjacent months so every row has seven
// cells. The first cell of the first week is always a Sunday.
func Grid(year int, month time.Month) []Week {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	// Walk back to the Sunday on or before the 1st.
	start := first.AddDate(0, 0, -int(first.Weekday()))

	// Walk the calendar a week at a time until the month is exhausted.
	var weeks []Week
	cur := start
	for {
		var w Week
		for i := 0; i < daysPerWeek; i++ {
			w[i] = Day{
				Date:    cur,
				InMonth: cur.Month() == month && cur.Year() == year,
			}
			cur = cur.AddDate(0, 0, 1)
		}
		weeks = append(weeks, w)

		if afterMonth(cur, year, month) {
			break
		}
	}
	return weeks
}

// afterMonth reports whether t falls after the last day of the month.
func afterMonth(t time.Time, year int, month time.Month) bool {
	end := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return !t.Before(end)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}
