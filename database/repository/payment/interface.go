package paymentRepo

import (
	"context"

	"dairy/database"
	"dairy/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepository interface {
	// Upsert stores the paid flag keyed on (accountId, customerName, shift).
	Upsert(ctx context.Context, record models.PaymentRecord) (*models.PaymentRecord, error)
	FindByShift(ctx context.Context, accountID string, shift models.Shift) ([]models.PaymentRecord, error)
}

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo returns a PaymentRepository backed by the "payments" collection.
func NewMongoPaymentRepo() PaymentRepository {
	return &mongoPaymentRepo{
		coll: database.Database().Collection("payments"),
	}
}
