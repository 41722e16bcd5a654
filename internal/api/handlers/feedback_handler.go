package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zero-Sign/swift-hire/internal/services"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

type FeedbackHandler struct {
	svc services.FeedbackService
}

func NewFeedbackHandler(svc services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

type feedbackRequest struct {
	UserEmail string `json:"user_email"`
	UserName  string `json:"user_name"`
	UserRole  string `json:"user_role"`
	Rating    int    `json:"rating"`
	Message   string `json:"message"`
}

// Create accepts either a JSON body or form fields.
func (h *FeedbackHandler) Create(c *gin.Context) {
	const op = "FeedbackHandler.Create"

	var in services.FeedbackInput
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req feedbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
			return
		}
		in = services.FeedbackInput{
			UserEmail: req.UserEmail,
			UserName:  req.UserName,
			UserRole:  req.UserRole,
			Rating:    req.Rating,
			Message:   req.Message,
		}
	} else {
		rating, err := parseFormUint(c, "rating")
		if err != nil {
			writeError(c, err)
			return
		}
		in = services.FeedbackInput{
			UserEmail: c.PostForm("user_email"),
			UserName:  c.PostForm("user_name"),
			UserRole:  c.PostForm("user_role"),
			Rating:    int(rating),
			Message:   c.PostForm("message"),
		}
	}

	f, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *FeedbackHandler) List(c *gin.Context) {
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 100)

	fs, err := h.svc.List(c.Request.Context(), skip, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, fs)
}

func (h *FeedbackHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	f, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FeedbackHandler) ListByUser(c *gin.Context) {
	fs, err := h.svc.ListByUser(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, fs)
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
