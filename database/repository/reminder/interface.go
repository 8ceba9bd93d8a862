package reminderRepo

import (
	"context"

	"dairy/database"
	"dairy/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ReminderRepository interface {
	Upsert(ctx context.Context, setting models.ReminderSetting) error
	// Get returns a NotFoundError when the shift has never been configured.
	Get(ctx context.Context, accountID string, shift models.Shift) (*models.ReminderSetting, error)
}

type mongoReminderRepo struct {
	coll *mongo.Collection
}

// NewMongoReminderRepo returns a ReminderRepository backed by the "reminder_settings" collection.
func NewMongoReminderRepo() ReminderRepository {
	return &mongoReminderRepo{
		coll: database.Database().Collection("reminder_settings"),
	}
}
