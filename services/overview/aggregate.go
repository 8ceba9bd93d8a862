package overview

import (
	"time"

	"dairy/models"
	"dairy/services/calendar"

	"github.com/shopspring/decimal"
)

// Build derives the monthly snapshot from a roster and the entry log. It is a
// pure function: the same inputs always yield the same snapshot.
//
// Entries whose customer is not on the roster are dropped, as are entries for
// another shift or outside the month. When two entries land on the same cell
// the most recently updated one wins.
func Build(shift models.Shift, month, year int, roster []models.Customer, entries []models.DeliveryEntry) *models.OverviewSnapshot {
	days := calendar.DaysInMonth(year, month)

	snapshot := &models.OverviewSnapshot{
		Shift:                  shift,
		Month:                  month,
		Year:                   year,
		DaysInMonth:            days,
		Customers:              make([]models.Customer, len(roster)),
		Matrix:                 make(map[int]map[string]models.OverviewCell),
		TotalLitresPerCustomer: make(map[string]float64, len(roster)),
		TotalAmountPerCustomer: make(map[string]float64, len(roster)),
	}
	copy(snapshot.Customers, roster)

	ids := make(map[string]bool, len(roster))
	for _, c := range roster {
		ids[c.ID] = true
	}
	byName := uniqueNames(roster)

	written := make(map[int]map[string]time.Time)
	for _, e := range entries {
		if e.Shift != shift {
			continue
		}
		t, err := time.Parse(models.DateLayout, e.Date)
		if err != nil || t.Year() != year || int(t.Month()) != month {
			continue
		}
		customerID := e.CustomerID
		if customerID == "" {
			// Entries written by name only.
			customerID = byName[e.CustomerName]
		}
		if !ids[customerID] {
			continue
		}

		day := t.Day()
		row, ok := snapshot.Matrix[day]
		if !ok {
			row = make(map[string]models.OverviewCell)
			snapshot.Matrix[day] = row
			written[day] = make(map[string]time.Time)
		}
		if prev, seen := written[day][customerID]; seen && e.UpdatedAt.Before(prev) {
			continue
		}
		written[day][customerID] = e.UpdatedAt
		row[customerID] = models.OverviewCell{Litres: e.Litres, Rate: e.Rate, Amount: e.Amount}
	}

	litres := make(map[string]decimal.Decimal, len(roster))
	amounts := make(map[string]decimal.Decimal, len(roster))
	for _, row := range snapshot.Matrix {
		for id, cell := range row {
			litres[id] = litres[id].Add(decimal.NewFromFloat(cell.Litres))
			amounts[id] = amounts[id].Add(decimal.NewFromFloat(cell.Amount))
		}
	}
	for _, c := range roster {
		snapshot.TotalLitresPerCustomer[c.ID] = litres[c.ID].InexactFloat64()
		snapshot.TotalAmountPerCustomer[c.ID] = amounts[c.ID].InexactFloat64()
	}
	return snapshot
}

// uniqueNames maps every display name, full name or nickname that identifies
// exactly one roster customer to that customer's id.
func uniqueNames(roster []models.Customer) map[string]string {
	owners := make(map[string]map[string]bool)
	add := func(name, id string) {
		if name == "" {
			return
		}
		if owners[name] == nil {
			owners[name] = make(map[string]bool)
		}
		owners[name][id] = true
	}
	for _, c := range roster {
		add(c.FullName, c.ID)
		if c.Nickname != nil {
			add(*c.Nickname, c.ID)
		}
	}

	out := make(map[string]string, len(owners))
	for name, ids := range owners {
		if len(ids) != 1 {
			continue
		}
		for id := range ids {
			out[name] = id
		}
	}
	return out
}
