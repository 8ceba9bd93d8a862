package entry

import (
	"context"
	"time"

	entryRepo "dairy/database/repository/entry"
	"dairy/models"
	"dairy/services/customer"
)

// EntryService owns the delivery log: validated upserts, deletes and
// shift/month queries.
type EntryService interface {
	// UpsertEntry writes litres x rate for (customer, shift, date), replacing
	// any existing entry for that key.
	UpsertEntry(ctx context.Context, session models.Session, ref models.CustomerRef, shift models.Shift, date string, litres, rate float64) (*models.DeliveryEntry, error)
	// CreateEntry handles the raw entry form; the rate defaults to the
	// customer's price when omitted.
	CreateEntry(ctx context.Context, session models.Session, req models.EntryRequest) (*models.DeliveryEntry, error)
	GetEntry(ctx context.Context, customerID string, shift models.Shift, date string) (*models.DeliveryEntry, error)
	DeleteEntry(ctx context.Context, session models.Session, id string) error
	QueryByShiftAndMonth(ctx context.Context, session models.Session, shift models.Shift, month, year int) ([]models.DeliveryEntry, error)
	ListByShift(ctx context.Context, session models.Session, shift models.Shift) ([]models.DeliveryEntry, error)
}

// DefaultEntryService is the production implementation.
type DefaultEntryService struct {
	Repo      entryRepo.EntryRepository
	Customers customer.CustomerService
}

// ParseDate validates a YYYY-MM-DD date.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(models.DateLayout, raw)
}
