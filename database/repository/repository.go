package repository

import (
	"context"

	customerRepo "dairy/database/repository/customer"
	entryRepo "dairy/database/repository/entry"
	paymentRepo "dairy/database/repository/payment"
	reminderRepo "dairy/database/repository/reminder"
)

// Re-export the repository interfaces.
type CustomerRepository = customerRepo.CustomerRepository

type EntryRepository = entryRepo.EntryRepository

type PaymentRepository = paymentRepo.PaymentRepository

type ReminderRepository = reminderRepo.ReminderRepository

// Set groups every repository the services need.
type Set struct {
	Customers CustomerRepository
	Entries   EntryRepository
	Payments  PaymentRepository
	Reminders ReminderRepository
}

// indexer is implemented by the Mongo repositories.
type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// NewMongoSet builds Mongo-backed repositories on the global client.
func NewMongoSet() Set {
	return Set{
		Customers: customerRepo.NewMongoCustomerRepo(),
		Entries:   entryRepo.NewMongoEntryRepo(),
		Payments:  paymentRepo.NewMongoPaymentRepo(),
		Reminders: reminderRepo.NewMongoReminderRepo(),
	}
}

// NewMemorySet builds in-process repositories.
func NewMemorySet() Set {
	return Set{
		Customers: customerRepo.NewMemoryCustomerRepo(),
		Entries:   entryRepo.NewMemoryEntryRepo(),
		Payments:  paymentRepo.NewMemoryPaymentRepo(),
		Reminders: reminderRepo.NewMemoryReminderRepo(),
	}
}

// EnsureIndexes creates indexes for every repository that supports them.
func (s Set) EnsureIndexes(ctx context.Context) error {
	for _, repo := range []any{s.Customers, s.Entries, s.Payments, s.Reminders} {
		if ix, ok := repo.(indexer); ok {
			if err := ix.EnsureIndexes(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}
