package paymentRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"dairy/models"

	"github.com/google/uuid"
)

type MemoryPaymentRepo struct {
	mu   sync.RWMutex
	data map[string]models.PaymentRecord
}

func NewMemoryPaymentRepo() *MemoryPaymentRepo {
	return &MemoryPaymentRepo{data: make(map[string]models.PaymentRecord)}
}

func (r *MemoryPaymentRepo) Upsert(_ context.Context, record models.PaymentRecord) (*models.PaymentRecord, error) {
	key := record.AccountID + "|" + string(record.Shift) + "|" + record.CustomerName

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.data[key]; ok {
		record.ID = existing.ID
	} else {
		record.ID = uuid.New().String()
	}
	record.UpdatedAt = time.Now()
	r.data[key] = record
	stored := record
	return &stored, nil
}

func (r *MemoryPaymentRepo) FindByShift(_ context.Context, accountID string, shift models.Shift) ([]models.PaymentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.PaymentRecord{}
	for _, rec := range r.data {
		if rec.AccountID == accountID && rec.Shift == shift {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerName < out[j].CustomerName })
	return out, nil
}
