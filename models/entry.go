// File: models/entry.go
package models

import "time"

// DateLayout is the transport and storage format for delivery dates.
const DateLayout = "2006-01-02"

// DeliveryEntry is one delivery for a customer on a date and shift. At most one
// entry exists per (customerId, shift, date).
type DeliveryEntry struct {
	ID           string    `bson:"id" json:"id"`
	AccountID    string    `bson:"accountId" json:"userId"`
	CustomerID   string    `bson:"customerId" json:"customerId"`
	CustomerName string    `bson:"customerName" json:"customerName"` // Display name at write time
	Shift        Shift     `bson:"shift" json:"shift"`
	Date         string    `bson:"date" json:"date"` // YYYY-MM-DD
	Litres       float64   `bson:"litres" json:"litres"`
	Rate         float64   `bson:"rate" json:"rate"`     // Currency per litre captured at write time
	Amount       float64   `bson:"amount" json:"amount"` // Persisted litres x rate
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Day returns the day of month of the entry date, or 0 if the date is malformed.
func (e DeliveryEntry) Day() int {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return 0
	}
	return t.Day()
}

// EntryRequest is the body of POST /api/milk and POST /api/overview/add.
type EntryRequest struct {
	CustomerID   string   `json:"customerId"`
	CustomerName string   `json:"customerName"`
	Shift        string   `json:"shift" binding:"required"`
	Litres       *float64 `json:"litres" binding:"required"`
	Rate         *float64 `json:"rate"`
	Amount       *float64 `json:"amount"` // accepted for compatibility, always recomputed
	Date         string   `json:"date" binding:"required"`
}

func (r EntryRequest) Ref() CustomerRef {
	return CustomerRef{ID: r.CustomerID, Name: r.CustomerName}
}
