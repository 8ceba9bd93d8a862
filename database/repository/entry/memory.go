package entryRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"dairy/models"
	"dairy/utils"

	"github.com/google/uuid"
)

// MemoryEntryRepo is an in-process EntryRepository for tests and the "memory"
// store backend.
type MemoryEntryRepo struct {
	mu    sync.RWMutex
	byID  map[string]models.DeliveryEntry
	byKey map[string]string // key -> id
	now   func() time.Time
}

func NewMemoryEntryRepo() *MemoryEntryRepo {
	return &MemoryEntryRepo{
		byID:  make(map[string]models.DeliveryEntry),
		byKey: make(map[string]string),
		now:   time.Now,
	}
}

func entryKey(customerID string, shift models.Shift, date string) string {
	return customerID + "|" + string(shift) + "|" + date
}

func (r *MemoryEntryRepo) Upsert(_ context.Context, entry models.DeliveryEntry) (*models.DeliveryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	key := entryKey(entry.CustomerID, entry.Shift, entry.Date)
	if id, ok := r.byKey[key]; ok {
		existing := r.byID[id]
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
	} else {
		if entry.ID == "" {
			entry.ID = uuid.New().String()
		}
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	r.byID[entry.ID] = entry
	r.byKey[key] = entry.ID
	stored := entry
	return &stored, nil
}

func (r *MemoryEntryRepo) GetByID(_ context.Context, accountID, id string) (*models.DeliveryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.byID[id]
	if !ok || entry.AccountID != accountID {
		return nil, utils.NewNotFoundError("entry", id)
	}
	return &entry, nil
}

func (r *MemoryEntryRepo) GetByKey(_ context.Context, customerID string, shift models.Shift, date string) (*models.DeliveryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byKey[entryKey(customerID, shift, date)]
	if !ok {
		return nil, utils.NewNotFoundError("entry", customerID+"/"+date)
	}
	entry := r.byID[id]
	return &entry, nil
}

func (r *MemoryEntryRepo) DeleteByID(_ context.Context, accountID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.byID[id]
	if !ok || entry.AccountID != accountID {
		return utils.NewNotFoundError("entry", id)
	}
	delete(r.byID, id)
	delete(r.byKey, entryKey(entry.CustomerID, entry.Shift, entry.Date))
	return nil
}

func (r *MemoryEntryRepo) FindByShiftAndRange(_ context.Context, accountID string, shift models.Shift, fromDate, toDate string) ([]models.DeliveryEntry, error) {
	out := r.filter(func(e models.DeliveryEntry) bool {
		return e.AccountID == accountID && e.Shift == shift && e.Date >= fromDate && e.Date < toDate
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].UpdatedAt.Before(out[j].UpdatedAt)
	})
	return out, nil
}

func (r *MemoryEntryRepo) FindByShift(_ context.Context, accountID string, shift models.Shift) ([]models.DeliveryEntry, error) {
	out := r.filter(func(e models.DeliveryEntry) bool {
		return e.AccountID == accountID && e.Shift == shift
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CustomerName < out[j].CustomerName
	})
	return out, nil
}

func (r *MemoryEntryRepo) filter(keep func(models.DeliveryEntry) bool) []models.DeliveryEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.DeliveryEntry{}
	for _, e := range r.byID {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
