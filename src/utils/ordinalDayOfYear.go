package utils

import "time"

// OrdinalDayOfYear returns the ordinal day number of t within its calendar
// year, with 1 for January 1st.
func OrdinalDayOfYear(t time.Time) int {
	return t.YearDay()
}
