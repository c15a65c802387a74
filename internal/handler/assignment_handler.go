package handler

import (
	"net/http"

	"github.com/MyeongsupWorkSpace/sepnp/internal/service"
	"github.com/gin-gonic/gin"
)

// AssignmentHandler 작업자 편성 핸들러
type AssignmentHandler struct {
	svc *service.AssignmentService
}

func NewAssignmentHandler(svc *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{svc: svc}
}

// List GET /api/assignments?date=YYYY-MM-DD
func (h *AssignmentHandler) List(c *gin.Context) {
	assignments, err := h.svc.List(c.Request.Context(), c.Query("date"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// Create POST /api/assignments
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if req.CreatedBy == "" {
		req.CreatedBy = c.GetString("user_id")
		req.CreatedByName = c.GetString("user_name")
	}

	assignment, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		FailFromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": assignment.ID})
}

// Update PUT /api/assignments/:id
func (h *AssignmentHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Assignment ID is required")
		return
	}

	var req service.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if _, err := h.svc.Update(c.Request.Context(), id, &req); err != nil {
		FailFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Delete DELETE /api/assignments/:id
func (h *AssignmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Assignment ID is required")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		FailFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
