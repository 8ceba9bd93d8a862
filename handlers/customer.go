package handlers

import (
	"net/http"

	"dairy/models"
	"dairy/services/customer"
	"dairy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerHandler serves the customer registry.
type CustomerHandler struct {
	CustomerService customer.CustomerService
}

func NewCustomerHandler(cs customer.CustomerService) *CustomerHandler {
	return &CustomerHandler{CustomerService: cs}
}

// ListCustomersHandler handles GET /api/customers?shift=. Without a shift every
// customer of the account is returned.
func (h *CustomerHandler) ListCustomersHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var (
		customers []models.Customer
		err       error
	)
	if raw := c.Query("shift"); raw != "" {
		shift, ok := models.ParseShift(raw)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "Invalid shift", raw)
			return
		}
		customers, err = h.CustomerService.ListCustomers(c.Request.Context(), session, shift)
	} else {
		customers, err = h.CustomerService.ListAll(c.Request.Context(), session)
	}
	if err != nil {
		utils.RespondError(c, "Failed to list customers", err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetRosterHandler handles GET /api/customers/:shift.
func (h *CustomerHandler) GetRosterHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	shift, err := shiftFrom(session, c.Param("shift"))
	if err != nil {
		utils.RespondError(c, "Invalid shift", err)
		return
	}
	customers, err := h.CustomerService.ListCustomers(c.Request.Context(), session, shift)
	if err != nil {
		utils.RespondError(c, "Failed to list customers", err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// CreateCustomerHandler handles POST /api/customers.
func (h *CustomerHandler) CreateCustomerHandler(c *gin.Context) {
	logger := getLogger(c)
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req models.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer payload", err.Error())
		return
	}
	created, err := h.CustomerService.CreateCustomer(c.Request.Context(), session, req)
	if err != nil {
		utils.RespondError(c, "Failed to create customer", err)
		return
	}
	logger.Info("Customer created", zap.String("id", created.ID), zap.String("shift", created.Shift.String()))
	c.JSON(http.StatusCreated, created)
}

// UpdateCustomerHandler handles PUT /api/customers/:id.
func (h *CustomerHandler) UpdateCustomerHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req models.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer payload", err.Error())
		return
	}
	updated, err := h.CustomerService.UpdateCustomer(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, "Failed to update customer", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCustomerHandler handles DELETE /api/customers/:id. Existing entries are
// kept and drop out of the overview.
func (h *CustomerHandler) DeleteCustomerHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := h.CustomerService.DeleteCustomer(c.Request.Context(), session, id); err != nil {
		utils.RespondError(c, "Failed to delete customer", err)
		return
	}
	getLogger(c).Info("Customer deleted", zap.String("id", id))
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
