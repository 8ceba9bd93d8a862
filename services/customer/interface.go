package customer

import (
	"context"

	customerRepo "dairy/database/repository/customer"
	"dairy/models"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, session models.Session, req models.CustomerRequest) (*models.Customer, error)
	GetCustomer(ctx context.Context, session models.Session, id string) (*models.Customer, error)
	// ListCustomers returns the shift roster ordered by display name.
	ListCustomers(ctx context.Context, session models.Session, shift models.Shift) ([]models.Customer, error)
	ListAll(ctx context.Context, session models.Session) ([]models.Customer, error)
	UpdateCustomer(ctx context.Context, session models.Session, id string, req models.CustomerRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, session models.Session, id string) error
	// Resolve finds the shift's customer for ref, by id when present and by
	// name otherwise.
	Resolve(ctx context.Context, session models.Session, shift models.Shift, ref models.CustomerRef) (*models.Customer, error)
}

// DefaultCustomerService is the production implementation.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}
