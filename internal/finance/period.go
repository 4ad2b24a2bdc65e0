package finance

import "time"

// MonthRange returns the first and last calendar day of today's month. The
// end is found by stepping to day 28 plus four days (always landing in the
// next month regardless of month length) and walking back that date's
// day-of-month. Keep this formulation; it is the contract for month
// boundaries.
func MonthRange(today time.Time) (start, end time.Time) {
	y, m, _ := today.Date()
	loc := today.Location()

	start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
	next := time.Date(y, m, 28, 0, 0, 0, 0, loc).AddDate(0, 0, 4)
	end = next.AddDate(0, 0, -next.Day())
	return start, end
}
