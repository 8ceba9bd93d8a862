// File: models/reminder.go
package models

import "time"

// ReminderSetting holds the daily payment reminder configuration for a shift.
type ReminderSetting struct {
	AccountID    string    `bson:"accountId" json:"userId"`
	Shift        Shift     `bson:"shift" json:"shift"`
	Enabled      bool      `bson:"enabled" json:"enabled"`
	Time         string    `bson:"time" json:"time"`                 // HH:MM in the reminder timezone
	DurationDays int       `bson:"durationDays" json:"durationDays"` // number of consecutive days to remind
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

type ReminderRequest struct {
	Shift        string `json:"shift" binding:"required"`
	Enabled      bool   `json:"enabled"`
	Time         string `json:"time" binding:"required"`
	DurationDays int    `json:"durationDays"`
}

// ReminderTimes is the response shape of GET /api/payments/reminder-times.
type ReminderTimes struct {
	Success        bool   `json:"success"`
	Morning        string `json:"morning"`
	Night          string `json:"night"`
	EnabledMorning bool   `json:"enabledMorning"`
	EnabledNight   bool   `json:"enabledNight"`
}

// ReminderPayload is the asynq task body for a payment reminder.
type ReminderPayload struct {
	ReminderID string `json:"reminderId"`
	AccountID  string `json:"accountId"`
	Shift      Shift  `json:"shift"`
	FireDate   string `json:"fireDate"` // YYYY-MM-DD
	Time       string `json:"time"`     // HH:MM the task was scheduled for
	Title      string `json:"title"`
	Body       string `json:"body"`
}
