package overview

import (
	"context"
	"math"
	"time"

	"dairy/models"
	"dairy/services/calendar"
	"dairy/utils"

	"go.uber.org/zap"
)

func (s *DefaultOverviewService) AdjustCell(ctx context.Context, session models.Session, req models.AdjustRequest) (*models.OverviewSnapshot, error) {
	kind := "add"
	if req.Reset {
		kind = "reset"
	}
	start := time.Now()
	snapshot, err := s.adjustCell(ctx, session, req)
	utils.ObserveCellAdjust(kind, utils.ResultOf(err), time.Since(start))
	return snapshot, err
}

func (s *DefaultOverviewService) adjustCell(ctx context.Context, session models.Session, req models.AdjustRequest) (*models.OverviewSnapshot, error) {
	shift, ok := models.ParseShift(req.Shift)
	if !ok {
		return nil, utils.NewValidationError("invalid shift %q", req.Shift)
	}
	date, err := calendar.DateFor(req.Year, req.Month, req.Day)
	if err != nil {
		return nil, err
	}
	if !req.Reset {
		if math.IsNaN(req.Delta) || math.IsInf(req.Delta, 0) || req.Delta < 0 {
			return nil, utils.NewValidationError("delta must be a non-negative number")
		}
	}

	c, err := s.Customers.Resolve(ctx, session, shift, req.Ref())
	if err != nil {
		return nil, err
	}

	// Read-modify-write of one cell is serialized per (customer, shift, date).
	unlock, err := s.Locker.Lock(ctx, CellKey(c.ID, shift, date))
	if err != nil {
		return nil, err
	}
	err = s.writeCell(ctx, session, c, shift, date, req)
	unlock()
	if err != nil {
		return nil, err
	}

	return s.BuildOverview(ctx, session, shift, req.Month, req.Year)
}

func (s *DefaultOverviewService) writeCell(ctx context.Context, session models.Session, c *models.Customer, shift models.Shift, date string, req models.AdjustRequest) error {
	current, err := s.Entries.GetEntry(ctx, c.ID, shift, date)
	if err != nil && !utils.IsNotFound(err) {
		return err
	}

	litres := 0.0
	if !req.Reset {
		if current != nil {
			litres = current.Litres
		}
		litres = utils.AddExact(litres, req.Delta)
	}

	rate, err := resolveRate(c, current, req.Reset)
	if err != nil {
		return err
	}

	stored, err := s.Entries.UpsertEntry(ctx, session, models.CustomerRef{ID: c.ID}, shift, date, litres, rate)
	if err != nil {
		return err
	}
	utils.GetLogger().Info("Cell adjusted",
		zap.String("accountId", session.AccountID),
		zap.String("customerId", c.ID),
		zap.String("shift", shift.String()),
		zap.String("date", date),
		zap.Bool("reset", req.Reset),
		zap.Float64("delta", req.Delta),
		zap.Float64("litres", stored.Litres),
		zap.Float64("rate", stored.Rate))
	return nil
}

// resolveRate reprices the cell at the customer's current default price. The
// stored rate is only used when the customer has no price; a reset with
// neither writes rate zero.
func resolveRate(c *models.Customer, current *models.DeliveryEntry, reset bool) (float64, error) {
	switch {
	case c.PricePerLitre != nil:
		return *c.PricePerLitre, nil
	case current != nil:
		return current.Rate, nil
	case reset:
		return 0, nil
	default:
		return 0, utils.NewValidationError("customer %q has no default price per litre", c.DisplayName())
	}
}
