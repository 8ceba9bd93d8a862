package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"dairy/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoPaymentRepo) Upsert(ctx context.Context, record models.PaymentRecord) (*models.PaymentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"accountId":    record.AccountID,
		"customerName": record.CustomerName,
		"shift":        record.Shift,
	}
	update := bson.M{
		"$set":         bson.M{"paid": record.Paid, "updatedAt": time.Now()},
		"$setOnInsert": bson.M{"id": uuid.New().String()},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored models.PaymentRecord
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to upsert payment: %w", err)
	}
	return &stored, nil
}

func (r *mongoPaymentRepo) FindByShift(ctx context.Context, accountID string, shift models.Shift) ([]models.PaymentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "customerName", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"accountId": accountID, "shift": shift}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer cursor.Close(ctx)

	records := []models.PaymentRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return records, nil
}

// EnsureIndexes creates the unique key index on the payments collection.
func (r *mongoPaymentRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "accountId", Value: 1},
			{Key: "shift", Value: 1},
			{Key: "customerName", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("account_shift_customer_uniq"),
	})
	if err != nil {
		return fmt.Errorf("failed to create payment indexes: %w", err)
	}
	return nil
}
