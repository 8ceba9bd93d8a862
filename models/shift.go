package models

import "strings"

// Shift is one of the two fixed delivery windows.
type Shift string

const (
	ShiftMorning Shift = "Morning"
	ShiftNight   Shift = "Night"
)

// Shifts lists every delivery window in display order.
var Shifts = []Shift{ShiftMorning, ShiftNight}

func (s Shift) Valid() bool {
	return s == ShiftMorning || s == ShiftNight
}

func (s Shift) String() string {
	return string(s)
}

// ParseShift accepts any casing of "morning" or "night".
func ParseShift(raw string) (Shift, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "morning":
		return ShiftMorning, true
	case "night":
		return ShiftNight, true
	default:
		return "", false
	}
}
