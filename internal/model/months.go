package model

import "time"

// monthKeys are the lowercase names used for seasonality map lookups.
var monthKeys = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// MonthKey returns the seasonality map key for a 1-based month number.
// Out-of-range months return an empty string.
func MonthKey(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthKeys[month-1]
}

// ValidMonthKey reports whether the string is a recognized seasonality key.
func ValidMonthKey(key string) bool {
	for _, k := range monthKeys {
		if k == key {
			return true
		}
	}
	return false
}

// MonthName returns the display name for a 1-based month number.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return "???"
	}
	return time.Month(month).String()
}

// DaysInMonth returns the number of calendar days in the given month,
// accounting for leap years.
func DaysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
