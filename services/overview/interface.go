package overview

import (
	"context"

	"dairy/models"
	"dairy/services/customer"
	"dairy/services/entry"
)

// OverviewService builds monthly snapshots and applies quick-entry
// adjustments. It holds no state between calls.
type OverviewService interface {
	BuildOverview(ctx context.Context, session models.Session, shift models.Shift, month, year int) (*models.OverviewSnapshot, error)
	// AdjustCell adds req.Delta litres to one cell, or resets it to zero, and
	// returns the rebuilt snapshot.
	AdjustCell(ctx context.Context, session models.Session, req models.AdjustRequest) (*models.OverviewSnapshot, error)
	ExportXLSX(ctx context.Context, session models.Session, shift models.Shift, month, year int) ([]byte, error)
}

// DefaultOverviewService is the production implementation.
type DefaultOverviewService struct {
	Customers customer.CustomerService
	Entries   entry.EntryService
	Locker    CellLocker
	// CurrencySymbol prefixes amount headers in exports.
	CurrencySymbol string
}

// NewOverviewService wires the service with an in-process locker when none is given.
func NewOverviewService(customers customer.CustomerService, entries entry.EntryService, locker CellLocker) *DefaultOverviewService {
	if locker == nil {
		locker = NewMemoryCellLocker(0)
	}
	return &DefaultOverviewService{
		Customers: customers,
		Entries:   entries,
		Locker:    locker,
	}
}
