package handler

import (
	"net/http"

	"github.com/MyeongsupWorkSpace/sepnp/internal/service"
	"github.com/gin-gonic/gin"
)

// OrderHandler 수주 핸들러
type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// Create POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "order_no and quantity are required")
		return
	}

	order, err := h.svc.Create(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		FailFromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": order.ID, "order_no": order.OrderNo})
}

// List GET /api/orders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.svc.List(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, orders)
}

// Export GET /api/orders/export
func (h *OrderHandler) Export(c *gin.Context) {
	f, err := h.svc.ExportXLSX(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\"orders.xlsx\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write workbook: "+err.Error())
	}
}
