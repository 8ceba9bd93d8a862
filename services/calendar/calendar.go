// Package calendar holds the month arithmetic shared by the entry store and
// the overview aggregator.
package calendar

import (
	"fmt"
	"time"

	"dairy/models"
	"dairy/utils"
)

// ValidateMonth rejects months outside 1..12 and years outside 1..9999.
func ValidateMonth(year, month int) error {
	if month < 1 || month > 12 {
		return utils.NewValidationError("month must be between 1 and 12, got %d", month)
	}
	if year < 1 || year > 9999 {
		return utils.NewValidationError("year must be between 1 and 9999, got %d", year)
	}
	return nil
}

// DaysInMonth follows the Gregorian calendar, leap years included.
func DaysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the half-open date range [first of month, first of next month).
func MonthRange(year, month int) (string, string, error) {
	if err := ValidateMonth(year, month); err != nil {
		return "", "", err
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	if year == 9999 && month == 12 {
		// Year 10000 would break lexical ordering of the date strings.
		return start.Format(models.DateLayout), "9999-12-32", nil
	}
	return start.Format(models.DateLayout), start.AddDate(0, 1, 0).Format(models.DateLayout), nil
}

// DateFor formats the ISO date of day within the month, validating the day.
func DateFor(year, month, day int) (string, error) {
	if err := ValidateMonth(year, month); err != nil {
		return "", err
	}
	if last := DaysInMonth(year, month); day < 1 || day > last {
		return "", utils.NewValidationError("day must be between 1 and %d, got %d", last, day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), nil
}
