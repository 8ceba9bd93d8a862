// File: database/repository/entry/queries.go
package entryRepo

import (
	"context"
	"fmt"
	"time"

	"dairy/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindByShiftAndRange relies on YYYY-MM-DD dates sorting lexically.
func (r *mongoEntryRepo) FindByShiftAndRange(ctx context.Context, accountID string, shift models.Shift, fromDate, toDate string) ([]models.DeliveryEntry, error) {
	filter := bson.M{
		"accountId": accountID,
		"shift":     shift,
		"date":      bson.M{"$gte": fromDate, "$lt": toDate},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "updatedAt", Value: 1}})
	return r.find(ctx, filter, opts)
}

func (r *mongoEntryRepo) FindByShift(ctx context.Context, accountID string, shift models.Shift) ([]models.DeliveryEntry, error) {
	filter := bson.M{"accountId": accountID, "shift": shift}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "customerName", Value: 1}})
	return r.find(ctx, filter, opts)
}

func (r *mongoEntryRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.DeliveryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []models.DeliveryEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode entries: %w", err)
	}
	return entries, nil
}
