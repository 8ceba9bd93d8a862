package handlers

import (
	"fmt"
	"net/http"

	"dairy/models"
	"dairy/services/entry"
	"dairy/services/overview"
	"dairy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// OverviewHandler serves the monthly overview matrix.
type OverviewHandler struct {
	OverviewService overview.OverviewService
	EntryService    entry.EntryService
}

func NewOverviewHandler(os overview.OverviewService, es entry.EntryService) *OverviewHandler {
	return &OverviewHandler{
		OverviewService: os,
		EntryService:    es,
	}
}

// GetOverviewHandler handles GET /api/overview?shift=&month=&year=.
func (h *OverviewHandler) GetOverviewHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	shift, month, year, err := overviewQuery(c, session)
	if err != nil {
		utils.RespondError(c, "Invalid overview query", err)
		return
	}
	snapshot, err := h.OverviewService.BuildOverview(c.Request.Context(), session, shift, month, year)
	if err != nil {
		utils.RespondError(c, "Failed to build overview", err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// AddOverviewHandler handles POST /api/overview/add, a direct upsert of one cell.
func (h *OverviewHandler) AddOverviewHandler(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"success": true, "entry": saved})
}

// AdjustOverviewHandler handles POST /api/overview/adjust and returns the rebuilt snapshot.
func (h *OverviewHandler) AdjustOverviewHandler(c *gin.Context) {
	logger := getLogger(c)
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req models.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid adjustment payload", err.Error())
		return
	}
	snapshot, err := h.OverviewService.AdjustCell(c.Request.Context(), session, req)
	if err != nil {
		utils.RespondError(c, "Failed to adjust cell", err)
		return
	}
	logger.Debug("Cell adjusted",
		zap.String("customer", req.Ref().String()),
		zap.Int("day", req.Day),
		zap.Bool("reset", req.Reset),
		zap.Float64("delta", req.Delta))
	c.JSON(http.StatusOK, snapshot)
}

// ExportOverviewHandler handles GET /api/overview/export as an xlsx attachment.
func (h *OverviewHandler) ExportOverviewHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	shift, month, year, err := overviewQuery(c, session)
	if err != nil {
		utils.RespondError(c, "Invalid overview query", err)
		return
	}
	data, err := h.OverviewService.ExportXLSX(c.Request.Context(), session, shift, month, year)
	if err != nil {
		utils.RespondError(c, "Failed to export overview", err)
		return
	}
	filename := fmt.Sprintf("overview-%s-%04d-%02d.xlsx", shift, year, month)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func overviewQuery(c *gin.Context, session models.Session) (models.Shift, int, int, error) {
	shift, err := shiftFrom(session, c.Query("shift"))
	if err != nil {
		return "", 0, 0, err
	}
	month, year, err := monthQuery(c)
	if err != nil {
		return "", 0, 0, err
	}
	return shift, month, year, nil
}
