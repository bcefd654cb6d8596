package domain

import "time"

// Day aggregates quiz results finished on one calendar day
type Day struct {
	Date     time.Time
	Attempts int
	Correct  int
	Total    int
}

// DateString returns date in YYYYMMDD format
func (d Day) DateString() string {
	return d.Date.Format("20060102")
}

// Accuracy returns the share of correct answers in percent
func (d Day) Accuracy() int {
	if d.Total == 0 {
		return 0
	}
	return d.Correct * 100 / d.Total
}

// DisplayString returns user-friendly date string.
// now must be in the zone the days are grouped in.
func (d Day) DisplayString(now time.Time) string {
	date := d.Date

	if date.Year() == now.Year() && date.Month() == now.Month() && date.Day() == now.Day() {
		return "Today"
	}

	yesterday := now.AddDate(0, 0, -1)
	if date.Year() == yesterday.Year() && date.Month() == yesterday.Month() && date.Day() == yesterday.Day() {
		return "Yesterday"
	}

	return date.Format("2 Jan 2006")
}
