package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zero-Sign/swift-hire/internal/services"
)

type InterviewerHandler struct {
	register services.RegisterService
}

func NewInterviewerHandler(register services.RegisterService) *InterviewerHandler {
	return &InterviewerHandler{register: register}
}

func (h *InterviewerHandler) Register(c *gin.Context) {
	in := services.InterviewerRegistration{
		Name:         c.PostForm("name"),
		Email:        c.PostForm("email"),
		Password:     c.PostForm("password"),
		Expertise:    c.PostForm("expertise"),
		Availability: c.PostForm("availability"),
		Department:   c.PostForm("department"),
	}

	identity, err := h.register.RegisterInterviewer(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, identity)
}
