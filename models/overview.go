// File: models/overview.go
package models

// OverviewCell is one (day, customer) delivery in the monthly matrix.
type OverviewCell struct {
	Litres float64 `json:"litres"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// OverviewSnapshot is the monthly day x customer aggregation for one shift.
// It is built fresh on every query and never mutated afterwards.
type OverviewSnapshot struct {
	Shift                  Shift                           `json:"shift"`
	Month                  int                             `json:"month"`
	Year                   int                             `json:"year"`
	DaysInMonth            int                             `json:"daysInMonth"`
	Customers              []Customer                      `json:"customers"`
	Matrix                 map[int]map[string]OverviewCell `json:"matrix"` // day -> customer id -> cell
	TotalLitresPerCustomer map[string]float64              `json:"totalLitresPerCustomer"`
	TotalAmountPerCustomer map[string]float64              `json:"totalAmountPerCustomer"`
}

// Cell returns the delivery for a day and customer, if any.
func (s *OverviewSnapshot) Cell(day int, customerID string) (OverviewCell, bool) {
	row, ok := s.Matrix[day]
	if !ok {
		return OverviewCell{}, false
	}
	cell, ok := row[customerID]
	return cell, ok
}

// AdjustRequest is a quick-entry gesture against one cell: add Delta litres,
// or reset the cell to zero.
type AdjustRequest struct {
	Shift        string  `json:"shift" binding:"required"`
	Month        int     `json:"month" binding:"required"`
	Year         int     `json:"year" binding:"required"`
	Day          int     `json:"day" binding:"required"`
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName"`
	Delta        float64 `json:"delta"`
	Reset        bool    `json:"reset"`
}

func (r AdjustRequest) Ref() CustomerRef {
	return CustomerRef{ID: r.CustomerID, Name: r.CustomerName}
}
