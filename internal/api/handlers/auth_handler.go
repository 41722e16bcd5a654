package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zero-Sign/swift-hire/internal/services"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	identity, err := h.svc.Login(c.Request.Context(), email, password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, identity)
}
