package overview

import (
	"context"
	"time"

	"dairy/models"
	"dairy/services/calendar"
	"dairy/utils"

	"go.uber.org/zap"
)

func (s *DefaultOverviewService) BuildOverview(ctx context.Context, session models.Session, shift models.Shift, month, year int) (*models.OverviewSnapshot, error) {
	start := time.Now()
	snapshot, err := s.buildOverview(ctx, session, shift, month, year)
	utils.ObserveOverviewBuild(utils.ResultOf(err), time.Since(start))
	return snapshot, err
}

func (s *DefaultOverviewService) buildOverview(ctx context.Context, session models.Session, shift models.Shift, month, year int) (*models.OverviewSnapshot, error) {
	if !shift.Valid() {
		return nil, utils.NewValidationError("invalid shift %q", shift)
	}
	if err := calendar.ValidateMonth(year, month); err != nil {
		return nil, err
	}

	roster, err := s.Customers.ListCustomers(ctx, session, shift)
	if err != nil {
		return nil, err
	}
	entries, err := s.Entries.QueryByShiftAndMonth(ctx, session, shift, month, year)
	if err != nil {
		return nil, err
	}

	snapshot := Build(shift, month, year, roster, entries)
	utils.GetLogger().Debug("Overview built",
		zap.String("accountId", session.AccountID),
		zap.String("shift", shift.String()),
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("customers", len(roster)),
		zap.Int("entries", len(entries)))
	return snapshot, nil
}
