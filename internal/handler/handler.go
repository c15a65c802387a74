package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MyeongsupWorkSpace/sepnp/internal/repository"
	"github.com/MyeongsupWorkSpace/sepnp/internal/service"
	"github.com/gin-gonic/gin"
)

// Handlers 핸들러 집합
type Handlers struct {
	Auth       *AuthHandler
	Product    *ProductHandler
	Supplier   *SupplierHandler
	Customer   *CustomerHandler
	Order      *OrderHandler
	Assignment *AssignmentHandler
	Audit      *AuditHandler
	Stats      *StatsHandler
}

// NewHandlers 핸들러 집합 생성
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.Auth),
		Product:    NewProductHandler(svc.Product),
		Supplier:   NewSupplierHandler(svc.Supplier),
		Customer:   NewCustomerHandler(svc.Customer),
		Order:      NewOrderHandler(svc.Order),
		Assignment: NewAssignmentHandler(svc.Assignment),
		Audit:      NewAuditHandler(svc.Audit),
		Stats:      NewStatsHandler(svc.Stats),
	}
}

// Fail 오류 응답 ({"error": message})
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// BadRequest 파라미터 오류 응답
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

// NotFound 조회 실패 응답
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

// Conflict 중복 충돌 응답 (재시도 가능)
func Conflict(c *gin.Context, message string) {
	Fail(c, http.StatusConflict, message)
}

// InternalError 서버 오류 응답
func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}

// FailFromError maps the service error taxonomy onto HTTP statuses so
// the service layer stays free of transport concerns.
func FailFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNameRequired):
		BadRequest(c, err.Error())
	case errors.Is(err, repository.ErrConflict):
		Conflict(c, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, err.Error())
	default:
		InternalError(c, err.Error())
	}
}

// GetActor 요청 주체 추출 (JWT 클레임 우선, 없으면 빈 값)
func GetActor(c *gin.Context) service.Actor {
	return service.Actor{
		ID:   c.GetString("user_id"),
		Name: c.GetString("user_name"),
		IP:   c.ClientIP(),
	}
}

// GetPagination 페이지 파라미터 추출
func GetPagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}

	return page, pageSize
}

// ============================================================
// Audit Handler
// ============================================================

// AuditHandler 감사 로그 핸들러
type AuditHandler struct {
	svc *service.AuditService
}

func NewAuditHandler(svc *service.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// List GET /api/audit-logs?entity=&entity_id=
func (h *AuditHandler) List(c *gin.Context) {
	entityType := c.Query("entity")
	entityID := c.Query("entity_id")
	if entityType == "" || entityID == "" {
		BadRequest(c, "entity and entity_id are required")
		return
	}

	page, pageSize := GetPagination(c)
	result, err := h.svc.FindByEntity(c.Request.Context(), entityType, entityID, page, pageSize)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}
