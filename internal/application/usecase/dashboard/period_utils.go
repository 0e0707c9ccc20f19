package dashboard

import "time"

// weekLength is the number of calendar days in the trailing weekly window.
const weekLength = 7

// StartOfDay returns midnight of the calendar day containing t, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayWindow returns the window covering the calendar day containing t.
func DayWindow(t time.Time) DateWindow {
	start := StartOfDay(t)
	return DateWindow{From: start, To: start.AddDate(0, 0, 1)}
}

// MonthToDateWindow returns the window from the first day of t's month through the end of t's day.
func MonthToDateWindow(t time.Time) DateWindow {
	return DateWindow{
		From: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()),
		To:   StartOfDay(t).AddDate(0, 0, 1),
	}
}

// TrailingWeekWindow returns the window covering the 7 calendar days ending with t's day.
func TrailingWeekWindow(t time.Time) DateWindow {
	end := StartOfDay(t).AddDate(0, 0, 1)
	return DateWindow{From: end.AddDate(0, 0, -weekLength), To: end}
}
