package handler

import (
	"net/http"

	"github.com/MyeongsupWorkSpace/sepnp/internal/service"
	"github.com/gin-gonic/gin"
)

// ProductHandler 제품 핸들러
type ProductHandler struct {
	svc *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Register POST /api/products
// 제품 등록: supplier/paper/materials 동시 처리 (단일 트랜잭션)
func (h *ProductHandler) Register(c *gin.Context) {
	var req service.RegisterProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	actor := GetActor(c)
	if actor.ID == "" {
		// the demo front-end sends created_by in the body
		actor.ID = req.CreatedBy
	}

	productID, err := h.svc.Register(c.Request.Context(), actor, &req)
	if err != nil {
		FailFromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "productId": productID})
}

// List GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, products)
}

// Get GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Product ID is required")
		return
	}

	product, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		FailFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}
