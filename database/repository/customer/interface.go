// File: database/repository/customer/interface.go
package customerRepo

import (
	"context"

	"dairy/database"
	"dairy/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer models.Customer) (string, error)
	GetByID(ctx context.Context, accountID, id string) (*models.Customer, error)
	FindByShift(ctx context.Context, accountID string, shift models.Shift) ([]models.Customer, error)
	FindByAccount(ctx context.Context, accountID string) ([]models.Customer, error)
	Update(ctx context.Context, customer models.Customer) error
	DeleteByID(ctx context.Context, accountID, id string) error
}

type mongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo returns a CustomerRepository backed by the "customers" collection.
func NewMongoCustomerRepo() CustomerRepository {
	return &mongoCustomerRepo{
		coll: database.Database().Collection("customers"),
	}
}
