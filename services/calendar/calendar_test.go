package calendar

import (
	"testing"

	"dairy/utils"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{1900, 2, 28},
		{2000, 2, 29},
		{2024, 1, 31},
		{2024, 4, 30},
		{2024, 12, 31},
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestMonthRange(t *testing.T) {
	cases := []struct {
		year, month int
		from, to    string
	}{
		{2024, 2, "2024-02-01", "2024-03-01"},
		{2023, 12, "2023-12-01", "2024-01-01"},
		{9999, 12, "9999-12-01", "9999-12-32"},
	}
	for _, tc := range cases {
		from, to, err := MonthRange(tc.year, tc.month)
		if err != nil {
			t.Fatalf("MonthRange(%d, %d): %v", tc.year, tc.month, err)
		}
		if from != tc.from || to != tc.to {
			t.Errorf("MonthRange(%d, %d) = [%s, %s), want [%s, %s)", tc.year, tc.month, from, to, tc.from, tc.to)
		}
	}
}

func TestValidateMonthRejectsOutOfRange(t *testing.T) {
	for _, tc := range []struct{ year, month int }{{2024, 0}, {2024, 13}, {0, 5}, {10000, 1}} {
		err := ValidateMonth(tc.year, tc.month)
		if !utils.IsValidation(err) {
			t.Errorf("ValidateMonth(%d, %d) = %v, want validation error", tc.year, tc.month, err)
		}
	}
}

func TestDateFor(t *testing.T) {
	got, err := DateFor(2024, 2, 29)
	if err != nil {
		t.Fatalf("DateFor: %v", err)
	}
	if got != "2024-02-29" {
		t.Fatalf("expected 2024-02-29, got %s", got)
	}

	if _, err := DateFor(2023, 2, 29); !utils.IsValidation(err) {
		t.Fatalf("expected validation error for 2023-02-29, got %v", err)
	}
	if _, err := DateFor(2024, 2, 0); !utils.IsValidation(err) {
		t.Fatalf("expected validation error for day 0, got %v", err)
	}
}
