package handlers

import (
	"net/http"

	"dairy/models"
	"dairy/services/entry"
	"dairy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EntryHandler serves raw milk entries.
type EntryHandler struct {
	EntryService entry.EntryService
}

func NewEntryHandler(es entry.EntryService) *EntryHandler {
	return &EntryHandler{EntryService: es}
}

// ListEntriesHandler handles GET /api/milk/:shift.
func (h *EntryHandler) ListEntriesHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	shift, err := shiftFrom(session, c.Param("shift"))
	if err != nil {
		utils.RespondError(c, "Invalid shift", err)
		return
	}
	entries, err := h.EntryService.ListByShift(c.Request.Context(), session, shift)
	if err != nil {
		utils.RespondError(c, "Failed to list entries", err)
		return
	}
	if entries == nil {
		entries = []models.DeliveryEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// CreateEntryHandler handles POST /api/milk. The amount is always recomputed.
func (h *EntryHandler) CreateEntryHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req models.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid entry payload", err.Error())
		return
	}
	saved, err := h.EntryService.CreateEntry(c.Request.Context(), session, req)
	if err != nil {
		utils.RespondError(c, "Failed to save entry", err)
		return
	}
	getLogger(c).Info("Entry saved",
		zap.String("id", saved.ID),
		zap.String("customerId", saved.CustomerID),
		zap.String("date", saved.Date))
	c.JSON(http.StatusCreated, saved)
}

// DeleteEntryHandler handles DELETE /api/milk/:id.
func (h *EntryHandler) DeleteEntryHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := h.EntryService.DeleteEntry(c.Request.Context(), session, id); err != nil {
		utils.RespondError(c, "Failed to delete entry", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted"})
}
