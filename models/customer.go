// File: models/customer.go
package models

import "time"

// Customer is a delivery recipient registered under an account.
type Customer struct {
	ID            string    `bson:"id" json:"id"`
	AccountID     string    `bson:"accountId" json:"userId"`                                // Owning account
	FullName      string    `bson:"fullName" json:"fullName"`                               // Preferred display name
	Nickname      *string   `bson:"nickname,omitempty" json:"nickname"`                     // Fallback display name
	PricePerLitre *float64  `bson:"pricePerLitre,omitempty" json:"pricePerLitre"`           // Default rate, nil when unset
	Shift         Shift     `bson:"shift" json:"shift"`                                     // Morning or Night
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DisplayName prefers the full name and falls back to the nickname.
func (c Customer) DisplayName() string {
	if c.FullName != "" {
		return c.FullName
	}
	if c.Nickname != nil {
		return *c.Nickname
	}
	return ""
}

// MatchesName reports whether name equals the full name or the nickname.
func (c Customer) MatchesName(name string) bool {
	if name == "" {
		return false
	}
	return c.FullName == name || (c.Nickname != nil && *c.Nickname == name)
}

// CustomerRequest is the payload for creating or updating a customer. Nil
// fields are left untouched on update.
type CustomerRequest struct {
	FullName      *string  `json:"fullName"`
	Nickname      *string  `json:"nickname"`
	PricePerLitre *float64 `json:"pricePerLitre"`
	Shift         *string  `json:"shift"`
}

// CustomerRef identifies a customer either by stable id or, for older
// clients, by display name. The id wins when both are set.
type CustomerRef struct {
	ID   string `json:"customerId,omitempty"`
	Name string `json:"customerName,omitempty"`
}

func (r CustomerRef) IsZero() bool {
	return r.ID == "" && r.Name == ""
}

func (r CustomerRef) String() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Name
}
