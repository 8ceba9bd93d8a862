package reminderRepo

import (
	"context"
	"sync"
	"time"

	"dairy/models"
	"dairy/utils"
)

type MemoryReminderRepo struct {
	mu   sync.RWMutex
	data map[string]models.ReminderSetting
}

func NewMemoryReminderRepo() *MemoryReminderRepo {
	return &MemoryReminderRepo{data: make(map[string]models.ReminderSetting)}
}

func (r *MemoryReminderRepo) Upsert(_ context.Context, setting models.ReminderSetting) error {
	setting.UpdatedAt = time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[setting.AccountID+"|"+string(setting.Shift)] = setting
	return nil
}

func (r *MemoryReminderRepo) Get(_ context.Context, accountID string, shift models.Shift) (*models.ReminderSetting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	setting, ok := r.data[accountID+"|"+string(shift)]
	if !ok {
		return nil, utils.NewNotFoundError("reminder setting", string(shift))
	}
	return &setting, nil
}
