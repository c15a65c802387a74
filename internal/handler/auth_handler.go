package handler

import (
	"errors"
	"net/http"

	"github.com/MyeongsupWorkSpace/sepnp/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler 인증/사원 핸들러
type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// LoginRequest 로그인 요청
type LoginRequest struct {
	LoginID  string `json:"loginId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "loginId and password are required")
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req.LoginID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			Fail(c, http.StatusUnauthorized, err.Error())
			return
		}
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"token":      result.Token,
		"expires_in": result.ExpiresIn,
		"emp":        result.Employee,
	})
}

// Me GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		Fail(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	emp, err := h.svc.GetEmployee(c.Request.Context(), userID)
	if err != nil {
		NotFound(c, "employee not found")
		return
	}

	c.JSON(http.StatusOK, emp)
}

// CreateUser POST /api/users
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	emp, err := h.svc.CreateEmployee(c.Request.Context(), &req)
	if err != nil {
		FailFromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "userId": emp.ID})
}

// ListUsers GET /api/users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	emps, err := h.svc.ListEmployees(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, emps)
}
