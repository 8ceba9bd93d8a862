// File: database/repository/entry/crud.go
package entryRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dairy/models"
	"dairy/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoEntryRepo) Upsert(ctx context.Context, entry models.DeliveryEntry) (*models.DeliveryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	now := time.Now()

	filter := bson.M{
		"customerId": entry.CustomerID,
		"shift":      entry.Shift,
		"date":       entry.Date,
	}
	update := bson.M{
		"$set": bson.M{
			"accountId":    entry.AccountID,
			"customerName": entry.CustomerName,
			"litres":       entry.Litres,
			"rate":         entry.Rate,
			"amount":       entry.Amount,
			"updatedAt":    now,
		},
		"$setOnInsert": bson.M{
			"id":        entry.ID,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored models.DeliveryEntry
	err := retryOnDuplicateKey(func() error {
		return r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored)
	})
	if mongo.IsDuplicateKeyError(err) {
		return nil, utils.NewConflictError("entry for %s on %s is being written concurrently", entry.CustomerID, entry.Date)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to upsert entry: %w", err)
	}
	return &stored, nil
}

// retryOnDuplicateKey runs an upsert a second time when a concurrent insert of
// the same key won the race; the retry then matches the existing document.
func retryOnDuplicateKey(upsert func() error) error {
	err := upsert()
	if mongo.IsDuplicateKeyError(err) {
		err = upsert()
	}
	return err
}

func (r *mongoEntryRepo) GetByID(ctx context.Context, accountID, id string) (*models.DeliveryEntry, error) {
	return r.findOne(ctx, bson.M{"id": id, "accountId": accountID}, id)
}

func (r *mongoEntryRepo) GetByKey(ctx context.Context, customerID string, shift models.Shift, date string) (*models.DeliveryEntry, error) {
	return r.findOne(ctx, bson.M{"customerId": customerID, "shift": shift, "date": date}, customerID+"/"+date)
}

func (r *mongoEntryRepo) findOne(ctx context.Context, filter bson.M, key string) (*models.DeliveryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Newest write wins should a legacy duplicate exist.
	opts := options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	var entry models.DeliveryEntry
	err := r.coll.FindOne(ctx, filter, opts).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NewNotFoundError("entry", key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load entry: %w", err)
	}
	return &entry, nil
}

func (r *mongoEntryRepo) DeleteByID(ctx context.Context, accountID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "accountId": accountID})
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return utils.NewNotFoundError("entry", id)
	}
	return nil
}
