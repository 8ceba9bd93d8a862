// File: models/payment.go
package models

import "time"

// PaymentRecord is a manual paid/unpaid toggle per customer and shift. It is
// not derived from deliveries.
type PaymentRecord struct {
	ID           string    `bson:"id" json:"id"`
	AccountID    string    `bson:"accountId" json:"userId"`
	CustomerName string    `bson:"customerName" json:"customerName"`
	Shift        Shift     `bson:"shift" json:"shift"`
	Paid         bool      `bson:"paid" json:"paid"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

type PaymentRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
	Shift        string `json:"shift" binding:"required"`
	Paid         bool   `json:"paid"`
}
