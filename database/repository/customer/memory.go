package customerRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"dairy/models"
	"dairy/utils"

	"github.com/google/uuid"
)

// MemoryCustomerRepo is an in-process CustomerRepository for tests and the
// "memory" store backend.
type MemoryCustomerRepo struct {
	mu   sync.RWMutex
	data map[string]models.Customer
}

func NewMemoryCustomerRepo() *MemoryCustomerRepo {
	return &MemoryCustomerRepo{data: make(map[string]models.Customer)}
}

func (r *MemoryCustomerRepo) Create(_ context.Context, customer models.Customer) (string, error) {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.data[customer.ID]; exists {
		return "", utils.NewConflictError("customer %q already exists", customer.ID)
	}
	r.data[customer.ID] = customer
	return customer.ID, nil
}

func (r *MemoryCustomerRepo) GetByID(_ context.Context, accountID, id string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	customer, ok := r.data[id]
	if !ok || customer.AccountID != accountID {
		return nil, utils.NewNotFoundError("customer", id)
	}
	return &customer, nil
}

func (r *MemoryCustomerRepo) FindByShift(_ context.Context, accountID string, shift models.Shift) ([]models.Customer, error) {
	return r.filter(func(c models.Customer) bool {
		return c.AccountID == accountID && c.Shift == shift
	}), nil
}

func (r *MemoryCustomerRepo) FindByAccount(_ context.Context, accountID string) ([]models.Customer, error) {
	return r.filter(func(c models.Customer) bool {
		return c.AccountID == accountID
	}), nil
}

func (r *MemoryCustomerRepo) filter(keep func(models.Customer) bool) []models.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Customer{}
	for _, c := range r.data {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FullName != out[j].FullName {
			return out[i].FullName < out[j].FullName
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *MemoryCustomerRepo) Update(_ context.Context, customer models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[customer.ID]
	if !ok || existing.AccountID != customer.AccountID {
		return utils.NewNotFoundError("customer", customer.ID)
	}
	customer.CreatedAt = existing.CreatedAt
	customer.UpdatedAt = time.Now()
	r.data[customer.ID] = customer
	return nil
}

func (r *MemoryCustomerRepo) DeleteByID(_ context.Context, accountID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[id]
	if !ok || existing.AccountID != accountID {
		return utils.NewNotFoundError("customer", id)
	}
	delete(r.data, id)
	return nil
}
