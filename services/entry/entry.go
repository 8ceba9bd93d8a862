package entry

import (
	"context"
	"math"

	"dairy/models"
	"dairy/services/calendar"
	"dairy/utils"

	"go.uber.org/zap"
)

func (s *DefaultEntryService) UpsertEntry(ctx context.Context, session models.Session, ref models.CustomerRef, shift models.Shift, date string, litres, rate float64) (*models.DeliveryEntry, error) {
	if !shift.Valid() {
		return nil, utils.NewValidationError("invalid shift %q", shift)
	}
	day, err := ParseDate(date)
	if err != nil {
		return nil, utils.NewValidationError("invalid date %q, expected YYYY-MM-DD", date)
	}
	date = day.Format(models.DateLayout)
	if err := checkQuantity("litres", litres); err != nil {
		return nil, err
	}
	if err := checkQuantity("rate", rate); err != nil {
		return nil, err
	}

	c, err := s.Customers.Resolve(ctx, session, shift, ref)
	if err != nil {
		return nil, err
	}

	stored, err := s.Repo.Upsert(ctx, models.DeliveryEntry{
		AccountID:    session.AccountID,
		CustomerID:   c.ID,
		CustomerName: c.DisplayName(),
		Shift:        shift,
		Date:         date,
		Litres:       litres,
		Rate:         rate,
		Amount:       utils.MultiplyExact(litres, rate),
	})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Debug("Entry upserted",
		zap.String("entryId", stored.ID),
		zap.String("customerId", c.ID),
		zap.String("shift", shift.String()),
		zap.String("date", date),
		zap.Float64("litres", litres),
		zap.Float64("rate", rate))
	return stored, nil
}

func (s *DefaultEntryService) CreateEntry(ctx context.Context, session models.Session, req models.EntryRequest) (*models.DeliveryEntry, error) {
	shift, ok := models.ParseShift(req.Shift)
	if !ok {
		return nil, utils.NewValidationError("invalid shift %q", req.Shift)
	}
	if req.Litres == nil {
		return nil, utils.NewValidationError("litres is required")
	}

	rate := 0.0
	if req.Rate != nil {
		rate = *req.Rate
	} else {
		c, err := s.Customers.Resolve(ctx, session, shift, req.Ref())
		if err != nil {
			return nil, err
		}
		if c.PricePerLitre == nil {
			return nil, utils.NewValidationError("rate is required: customer %q has no default price", c.DisplayName())
		}
		rate = *c.PricePerLitre
	}
	return s.UpsertEntry(ctx, session, req.Ref(), shift, req.Date, *req.Litres, rate)
}

func (s *DefaultEntryService) GetEntry(ctx context.Context, customerID string, shift models.Shift, date string) (*models.DeliveryEntry, error) {
	return s.Repo.GetByKey(ctx, customerID, shift, date)
}

func (s *DefaultEntryService) DeleteEntry(ctx context.Context, session models.Session, id string) error {
	if id == "" {
		return utils.NewValidationError("entry id is required")
	}
	if err := s.Repo.DeleteByID(ctx, session.AccountID, id); err != nil {
		return err
	}
	utils.GetLogger().Info("Entry deleted", zap.String("accountId", session.AccountID), zap.String("entryId", id))
	return nil
}

func (s *DefaultEntryService) QueryByShiftAndMonth(ctx context.Context, session models.Session, shift models.Shift, month, year int) ([]models.DeliveryEntry, error) {
	if !shift.Valid() {
		return nil, utils.NewValidationError("invalid shift %q", shift)
	}
	from, to, err := calendar.MonthRange(year, month)
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByShiftAndRange(ctx, session.AccountID, shift, from, to)
}

func (s *DefaultEntryService) ListByShift(ctx context.Context, session models.Session, shift models.Shift) ([]models.DeliveryEntry, error) {
	if !shift.Valid() {
		return nil, utils.NewValidationError("invalid shift %q", shift)
	}
	return s.Repo.FindByShift(ctx, session.AccountID, shift)
}

func checkQuantity(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return utils.NewValidationError("%s must be a finite number", field)
	}
	if v < 0 {
		return utils.NewValidationError("%s must not be negative", field)
	}
	return nil
}
