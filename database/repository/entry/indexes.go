// FILE: database/repository/entry/indexes.go
package entryRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the milk_entries collection.
func (r *mongoEntryRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One entry per customer, shift and date.
		{
			Keys:    bson.D{{Key: "customerId", Value: 1}, {Key: "shift", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("customer_shift_date_uniq"),
		},
		// Monthly overview scans.
		{
			Keys:    bson.D{{Key: "accountId", Value: 1}, {Key: "shift", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("account_shift_date_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create entry indexes: %w", err)
	}
	return nil
}
