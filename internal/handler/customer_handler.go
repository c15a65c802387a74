package handler

import (
	"net/http"

	"github.com/MyeongsupWorkSpace/sepnp/internal/service"
	"github.com/gin-gonic/gin"
)

// CustomerHandler 거래처 핸들러
type CustomerHandler struct {
	svc *service.CustomerService
}

func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req service.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		FailFromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": customer.ID})
}

// List GET /api/customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.svc.List(c.Request.Context(), c.Query("category"), c.Query("status"))
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, customers)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Customer ID is required")
		return
	}

	var req service.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		FailFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "customer": customer})
}

// Delete DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Customer ID is required")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		FailFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
