package payment

import (
	"context"

	paymentRepo "dairy/database/repository/payment"
	"dairy/models"
	"dairy/services/customer"
)

// PaymentService tracks the manual paid/unpaid toggle per customer and shift.
type PaymentService interface {
	SetPaid(ctx context.Context, session models.Session, req models.PaymentRequest) (*models.PaymentRecord, error)
	ListByShift(ctx context.Context, session models.Session, shift models.Shift) ([]models.PaymentRecord, error)
	// Unpaid lists roster display names without a paid record.
	Unpaid(ctx context.Context, session models.Session, shift models.Shift) ([]string, error)
}

type DefaultPaymentService struct {
	Repo      paymentRepo.PaymentRepository
	Customers customer.CustomerService
}
