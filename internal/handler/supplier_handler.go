package handler

import (
	"net/http"
	"strings"

	"github.com/MyeongsupWorkSpace/sepnp/internal/model/entity"
	"github.com/MyeongsupWorkSpace/sepnp/internal/service"
	"github.com/gin-gonic/gin"
)

// SupplierHandler 업체 핸들러
type SupplierHandler struct {
	svc *service.SupplierService
}

func NewSupplierHandler(svc *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{svc: svc}
}

// CreateSupplierRequest 업체 등록 요청
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Create POST /api/suppliers
func (h *SupplierHandler) Create(c *gin.Context) {
	var req CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "name is required")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		BadRequest(c, "name is required")
		return
	}

	supplier := &entity.Supplier{
		Name:    name,
		Contact: req.Contact,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := h.svc.Create(c.Request.Context(), supplier); err != nil {
		FailFromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": supplier.ID, "name": supplier.Name})
}

// Search GET /api/suppliers?q=
func (h *SupplierHandler) Search(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("q"))

	suppliers, err := h.svc.Search(c.Request.Context(), keyword)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, suppliers)
}
