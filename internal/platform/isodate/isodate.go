package isodate

import "time"

// Layout is the calendar-date format used everywhere in the planner.
const Layout = "2006-01-02"

func Format(t time.Time) string {
	return t.Format(Layout)
}

// AddDays shifts an ISO date by n calendar days. Unparseable input is
// returned unchanged so that a corrupt stored date degrades visibly
// instead of panicking.
func AddDays(date string, n int) string {
	t, err := time.Parse(Layout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(Layout)
}

func Valid(date string) bool {
	_, err := time.Parse(Layout, date)
	return err == nil
}
