package models

import "time"

// Notification is a message handed to a notifier, e.g. a payment reminder
// listing unpaid customers.
type Notification struct {
	AccountID string            `json:"accountId"`
	Shift     Shift             `json:"shift"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data"`
	CreatedAt time.Time         `json:"createdAt"`
}
