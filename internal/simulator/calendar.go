package simulator

import (
	"fmt"
	"time"
)

// TradingDays expands [start, end] into the ordered sequence of business days
// (Monday-Friday) the simulation iterates. Time-of-day is ignored. An inverted
// range yields an empty sequence; rejecting it is the caller's job.
func TradingDays(start, end time.Time) []TradingDay {
	start = truncateToDay(start)
	end = truncateToDay(end)

	var days []TradingDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			continue
		}
		days = append(days, TradingDay{
			Date:     d,
			Label:    d.Format("Jan 2 2006"),
			MonthKey: d.Format("Jan 2006"),
			WeekKey:  fmt.Sprintf("Week %d, %d", weekNumber(d), d.Year()),
		})
	}
	return days
}

// weekNumber computes the 1-based week of the year from the day-of-year and
// the weekday of January 1st, so that weeks break on Sunday boundaries.
func weekNumber(d time.Time) int {
	jan1 := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, d.Location())
	offset := int(jan1.Weekday()) // 0 = Sunday
	return (d.YearDay() + offset + 6) / 7
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
