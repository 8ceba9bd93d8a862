package payment

import (
	"context"
	"strings"

	"dairy/models"
	"dairy/utils"

	"go.uber.org/zap"
)

func (s *DefaultPaymentService) SetPaid(ctx context.Context, session models.Session, req models.PaymentRequest) (*models.PaymentRecord, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, utils.NewValidationError("customerName is required")
	}
	shift, ok := models.ParseShift(req.Shift)
	if !ok {
		return nil, utils.NewValidationError("invalid shift %q", req.Shift)
	}

	record, err := s.Repo.Upsert(ctx, models.PaymentRecord{
		AccountID:    session.AccountID,
		CustomerName: name,
		Shift:        shift,
		Paid:         req.Paid,
	})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Payment status updated",
		zap.String("accountId", session.AccountID),
		zap.String("customerName", name),
		zap.String("shift", shift.String()),
		zap.Bool("paid", req.Paid))
	return record, nil
}

func (s *DefaultPaymentService) ListByShift(ctx context.Context, session models.Session, shift models.Shift) ([]models.PaymentRecord, error) {
	if !shift.Valid() {
		return nil, utils.NewValidationError("invalid shift %q", shift)
	}
	return s.Repo.FindByShift(ctx, session.AccountID, shift)
}

func (s *DefaultPaymentService) Unpaid(ctx context.Context, session models.Session, shift models.Shift) ([]string, error) {
	roster, err := s.Customers.ListCustomers(ctx, session, shift)
	if err != nil {
		return nil, err
	}
	records, err := s.ListByShift(ctx, session, shift)
	if err != nil {
		return nil, err
	}

	paid := make(map[string]bool, len(records))
	for _, r := range records {
		paid[r.CustomerName] = r.Paid
	}
	var unpaid []string
	for _, c := range roster {
		if !paid[c.DisplayName()] {
			unpaid = append(unpaid, c.DisplayName())
		}
	}
	return unpaid, nil
}
