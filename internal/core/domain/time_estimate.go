package domain

import (
	"strconv"
	"strings"
)

const (
	minutesPerHour = 60
	hoursPerDay    = 24
	minutesPerDay  = minutesPerHour * hoursPerDay
)

// MaxTrackedMinutes bounds time spent and estimates (100 years) so sums and
// carries can never overflow.
const MaxTrackedMinutes = 100 * 365 * minutesPerDay

type TimeEstimate struct {
	Days    int
	Hours   int
	Minutes int
}

func (e TimeEstimate) negative() bool {
	return e.Days < 0 || e.Hours < 0 || e.Minutes < 0
}

// exceedsLimit bounds each component before summing them.
func (e TimeEstimate) exceedsLimit() bool {
	if e.Days > MaxTrackedMinutes/minutesPerDay ||
		e.Hours > MaxTrackedMinutes/minutesPerHour ||
		e.Minutes > MaxTrackedMinutes {
		return true
	}
	return e.TotalMinutes() > MaxTrackedMinutes
}

// TotalMinutes returns the estimate expressed in minutes.
func (e TimeEstimate) TotalMinutes() int {
	return e.Days*minutesPerDay + e.Hours*minutesPerHour + e.Minutes
}

// NormalizeTimeEstimate carries minutes into hours and hours into days.
// An all-zero estimate means "no estimate" and yields nil.
func NormalizeTimeEstimate(days, hours, minutes int) *TimeEstimate {
	hours += minutes / minutesPerHour
	minutes %= minutesPerHour
	days += hours / hoursPerDay
	hours %= hoursPerDay

	if days == 0 && hours == 0 && minutes == 0 {
		return nil
	}
	return &TimeEstimate{Days: days, Hours: hours, Minutes: minutes}
}

// FormatElapsed renders a minute count as "1d 2h 3m spent", skipping zero
// components. Zero or negative input renders as "".
func FormatElapsed(minutes int) string {
	if minutes <= 0 {
		return ""
	}

	days := minutes / minutesPerDay
	hours := (minutes % minutesPerDay) / minutesPerHour
	mins := minutes % minutesPerHour

	parts := make([]string, 0, 3)
	if days > 0 {
		parts = append(parts, strconv.Itoa(days)+"d")
	}
	if hours > 0 {
		parts = append(parts, strconv.Itoa(hours)+"h")
	}
	if mins > 0 {
		parts = append(parts, strconv.Itoa(mins)+"m")
	}
	return strings.Join(parts, " ") + " spent"
}
