// File: dairy/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Customer endpoints
	ListCustomersHandler  gin.HandlerFunc
	GetRosterHandler      gin.HandlerFunc
	CreateCustomerHandler gin.HandlerFunc
	UpdateCustomerHandler gin.HandlerFunc
	DeleteCustomerHandler gin.HandlerFunc

	// Milk entry endpoints
	ListEntriesHandler gin.HandlerFunc
	CreateEntryHandler gin.HandlerFunc
	DeleteEntryHandler gin.HandlerFunc

	// Overview endpoints
	GetOverviewHandler    gin.HandlerFunc
	AddOverviewHandler    gin.HandlerFunc
	AdjustOverviewHandler gin.HandlerFunc
	ExportOverviewHandler gin.HandlerFunc

	// Payment endpoints
	SetPaymentHandler    gin.HandlerFunc
	ListPaymentsHandler  gin.HandlerFunc
	ReminderTimesHandler gin.HandlerFunc
	SaveReminderHandler  gin.HandlerFunc

	// Health
	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from the domain handlers.
func NewHandlerBundle(ch *CustomerHandler, eh *EntryHandler, oh *OverviewHandler, ph *PaymentHandler) *HandlerBundle {
	return &HandlerBundle{
		ListCustomersHandler:  ch.ListCustomersHandler,
		GetRosterHandler:      ch.GetRosterHandler,
		CreateCustomerHandler: ch.CreateCustomerHandler,
		UpdateCustomerHandler: ch.UpdateCustomerHandler,
		DeleteCustomerHandler: ch.DeleteCustomerHandler,

		ListEntriesHandler: eh.ListEntriesHandler,
		CreateEntryHandler: eh.CreateEntryHandler,
		DeleteEntryHandler: eh.DeleteEntryHandler,

		GetOverviewHandler:    oh.GetOverviewHandler,
		AddOverviewHandler:    oh.AddOverviewHandler,
		AdjustOverviewHandler: oh.AdjustOverviewHandler,
		ExportOverviewHandler: oh.ExportOverviewHandler,

		SetPaymentHandler:    ph.SetPaymentHandler,
		ListPaymentsHandler:  ph.ListPaymentsHandler,
		ReminderTimesHandler: ph.ReminderTimesHandler,
		SaveReminderHandler:  ph.SaveReminderHandler,

		HealthHandler: HealthHandler,
	}
}
