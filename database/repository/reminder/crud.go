package reminderRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dairy/models"
	"dairy/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoReminderRepo) Upsert(ctx context.Context, setting models.ReminderSetting) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	setting.UpdatedAt = time.Now()
	filter := bson.M{"accountId": setting.AccountID, "shift": setting.Shift}
	_, err := r.coll.ReplaceOne(ctx, filter, setting, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save reminder setting: %w", err)
	}
	return nil
}

func (r *mongoReminderRepo) Get(ctx context.Context, accountID string, shift models.Shift) (*models.ReminderSetting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var setting models.ReminderSetting
	err := r.coll.FindOne(ctx, bson.M{"accountId": accountID, "shift": shift}).Decode(&setting)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NewNotFoundError("reminder setting", string(shift))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load reminder setting: %w", err)
	}
	return &setting, nil
}

func (r *mongoReminderRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "accountId", Value: 1}, {Key: "shift", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("account_shift_uniq"),
	})
	if err != nil {
		return fmt.Errorf("failed to create reminder indexes: %w", err)
	}
	return nil
}
