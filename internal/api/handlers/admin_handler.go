package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zero-Sign/swift-hire/internal/models"
	"github.com/Zero-Sign/swift-hire/internal/services"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

type AdminHandler struct {
	svc services.AdminService
}

func NewAdminHandler(svc services.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	name := c.Query("name")
	role := models.Role(c.Query("role"))

	users, err := h.svc.ListUsers(c.Request.Context(), name, role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	u, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type adminCreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	const op = "AdminHandler.CreateUser"

	var req adminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}

	u, err := h.svc.CreateUser(c.Request.Context(), services.AdminUserCreate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

type adminUpdateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	const op = "AdminHandler.UpdateUser"

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req adminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}

	u, err := h.svc.UpdateUser(c.Request.Context(), id, services.AdminUserUpdate{
		Name:  req.Name,
		Email: req.Email,
		Role:  models.Role(req.Role),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteUser(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
