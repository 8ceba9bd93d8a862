package handlers

import (
	"net/http"

	"dairy/models"
	"dairy/services/payment"
	"dairy/services/reminder"
	"dairy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves payment toggles and reminder settings.
type PaymentHandler struct {
	PaymentService  payment.PaymentService
	ReminderService reminder.ReminderService
}

func NewPaymentHandler(ps payment.PaymentService, rs reminder.ReminderService) *PaymentHandler {
	return &PaymentHandler{
		PaymentService:  ps,
		ReminderService: rs,
	}
}

// SetPaymentHandler handles POST /api/payments.
func (h *PaymentHandler) SetPaymentHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment payload", err.Error())
		return
	}
	record, err := h.PaymentService.SetPaid(c.Request.Context(), session, req)
	if err != nil {
		utils.RespondError(c, "Failed to update payment", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payment": record})
}

// ListPaymentsHandler handles GET /api/payments/:shift.
func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	shift, err := shiftFrom(session, c.Param("shift"))
	if err != nil {
		utils.RespondError(c, "Invalid shift", err)
		return
	}
	payments, err := h.PaymentService.ListByShift(c.Request.Context(), session, shift)
	if err != nil {
		utils.RespondError(c, "Failed to list payments", err)
		return
	}
	if payments == nil {
		payments = []models.PaymentRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payments": payments})
}

// ReminderTimesHandler handles GET /api/payments/reminder-times.
func (h *PaymentHandler) ReminderTimesHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	times, err := h.ReminderService.GetReminderTimes(c.Request.Context(), session)
	if err != nil {
		utils.RespondError(c, "Failed to load reminder times", err)
		return
	}
	c.JSON(http.StatusOK, times)
}

// SaveReminderHandler handles POST /api/payments/save-reminder.
func (h *PaymentHandler) SaveReminderHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req models.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reminder payload", err.Error())
		return
	}
	setting, scheduled, err := h.ReminderService.SaveReminder(c.Request.Context(), session, req)
	if err != nil {
		utils.RespondError(c, "Failed to save reminder", err)
		return
	}
	getLogger(c).Info("Reminder settings saved",
		zap.String("shift", setting.Shift.String()),
		zap.Int("scheduled", scheduled))
	c.JSON(http.StatusOK, gin.H{"success": true, "reminder": setting, "scheduled": scheduled})
}
