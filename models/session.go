package models

// Session carries the caller's identity for a single request. It replaces the
// browser-local "userId" and "selectedShift" values the web client keeps.
type Session struct {
	AccountID string `json:"accountId"`
	Shift     Shift  `json:"shift,omitempty"` // preferred shift, may be empty
}

// ShiftOr returns the session's preferred shift, or fallback when none is set.
func (s Session) ShiftOr(fallback Shift) Shift {
	if s.Shift.Valid() {
		return s.Shift
	}
	return fallback
}
