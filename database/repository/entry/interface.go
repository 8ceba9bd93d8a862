// File: database/repository/entry/interface.go
package entryRepo

import (
	"context"

	"dairy/database"
	"dairy/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// EntryRepository is the authoritative delivery log.
type EntryRepository interface {
	// Upsert writes the entry keyed on (customerId, shift, date), replacing
	// litres/rate/amount of an existing one and keeping its id.
	Upsert(ctx context.Context, entry models.DeliveryEntry) (*models.DeliveryEntry, error)
	GetByID(ctx context.Context, accountID, id string) (*models.DeliveryEntry, error)
	GetByKey(ctx context.Context, customerID string, shift models.Shift, date string) (*models.DeliveryEntry, error)
	DeleteByID(ctx context.Context, accountID, id string) error
	// FindByShiftAndRange returns entries with fromDate <= date < toDate.
	FindByShiftAndRange(ctx context.Context, accountID string, shift models.Shift, fromDate, toDate string) ([]models.DeliveryEntry, error)
	FindByShift(ctx context.Context, accountID string, shift models.Shift) ([]models.DeliveryEntry, error)
}

type mongoEntryRepo struct {
	coll *mongo.Collection
}

// NewMongoEntryRepo returns an EntryRepository backed by the "milk_entries" collection.
func NewMongoEntryRepo() EntryRepository {
	return &mongoEntryRepo{
		coll: database.Database().Collection("milk_entries"),
	}
}
