// File: database/repository/customer/crud.go
package customerRepo

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

func (r *mongoCustomerRepo) Create(ctx context.Context, customer models.Customer) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		return "", fmt.Errorf("failed to insert customer: %w", err)
	}
	return customer.ID, nil
}

func (r *mongoCustomerRepo) GetByID(ctx context.Context, accountID, id string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer models.Customer
	err := r.coll.FindOne(ctx, bson.M{"id": id, "accountId": accountID}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NewNotFoundError("customer", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	return &customer, nil
}

func (r *mongoCustomerRepo) FindByShift(ctx context.Context, accountID string, shift models.Shift) ([]models.Customer, error) {
	return r.find(ctx, bson.M{"accountId": accountID, "shift": shift})
}

func (r *mongoCustomerRepo) FindByAccount(ctx context.Context, accountID string) ([]models.Customer, error) {
	return r.find(ctx, bson.M{"accountId": accountID})
}

func (r *mongoCustomerRepo) find(ctx context.Context, filter bson.M) ([]models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "fullName", Value: 1}, {Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer cursor.Close(ctx)

	customers := []models.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}
	return customers, nil
}

func (r *mongoCustomerRepo) Update(ctx context.Context, customer models.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	customer.UpdatedAt = time.Now()
	filter := bson.M{"id": customer.ID, "accountId": customer.AccountID}
	update := bson.M{"$set": bson.M{
		"fullName":      customer.FullName,
		"nickname":      customer.Nickname,
		"pricePerLitre": customer.PricePerLitre,
		"shift":         customer.Shift,
		"updatedAt":     customer.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("customer", customer.ID)
	}
	return nil
}

func (r *mongoCustomerRepo) DeleteByID(ctx context.Context, accountID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "accountId": accountID})
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if res.DeletedCount == 0 {
		return utils.NewNotFoundError("customer", id)
	}
	return nil
}
