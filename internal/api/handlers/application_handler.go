package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zero-Sign/swift-hire/internal/models"
	"github.com/Zero-Sign/swift-hire/internal/services"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

type createApplicationRequest struct {
	CandidateEmail   string `json:"candidate_email" binding:"required,email"`
	JobID            uint   `json:"job_id" binding:"required"`
	InterviewerEmail string `json:"interviewer_email" binding:"required,email"`
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var req createApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.Create", "invalid request body", err))
		return
	}

	app, err := h.svc.Create(c.Request.Context(), services.ApplicationCreate{
		CandidateEmail:   req.CandidateEmail,
		JobID:            req.JobID,
		InterviewerEmail: req.InterviewerEmail,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *ApplicationHandler) Check(c *gin.Context) {
	jobID, ok := pathID(c, "job_id")
	if !ok {
		return
	}
	check, err := h.svc.Check(c.Request.Context(), c.Param("email"), jobID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}

func (h *ApplicationHandler) CountByCandidate(c *gin.Context) {
	count, err := h.svc.CountByCandidate(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *ApplicationHandler) ListByInterviewer(c *gin.Context) {
	rows, err := h.svc.ListByInterviewer(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ApplicationHandler) ListByCandidate(c *gin.Context) {
	rows, err := h.svc.ListByCandidate(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ApplicationHandler) Search(c *gin.Context) {
	result, err := h.svc.Search(c.Request.Context(), services.SearchParams{
		Search: c.Query("search"),
		Status: models.ApplicationStatus(c.DefaultQuery("status", string(models.StatusShortlisted))),
		Page:   intQuery(c, "page", 1),
		Limit:  intQuery(c, "limit", 10),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type updateApplicationRequest struct {
	Status               string     `json:"status" binding:"required"`
	InterviewFormURL     *string    `json:"interview_form_url"`
	InterviewSchedule    *time.Time `json:"interview_schedule"`
	InterviewDuration    *int       `json:"interview_duration"`
	InterviewTitle       *string    `json:"interview_title"`
	InterviewDescription *string    `json:"interview_description"`
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.UpdateStatus", "invalid request body", err))
		return
	}

	app, err := h.svc.UpdateStatus(c.Request.Context(), id, services.StatusUpdate{
		Status:               models.ApplicationStatus(req.Status),
		InterviewFormURL:     req.InterviewFormURL,
		InterviewSchedule:    req.InterviewSchedule,
		InterviewDuration:    req.InterviewDuration,
		InterviewTitle:       req.InterviewTitle,
		InterviewDescription: req.InterviewDescription,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

type noteRequest struct {
	Content   string `json:"content" binding:"required"`
	CreatedBy string `json:"created_by" binding:"required,email"`
}

func (h *ApplicationHandler) AddNote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.AddNote", "invalid request body", err))
		return
	}

	note, err := h.svc.AddNote(c.Request.Context(), id, req.Content, req.CreatedBy)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *ApplicationHandler) UpdateNote(c *gin.Context) {
	id, ok := pathID(c, "note_id")
	if !ok {
		return
	}

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.UpdateNote", "invalid request body", err))
		return
	}

	note, err := h.svc.UpdateNote(c.Request.Context(), id, req.Content, req.CreatedBy)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

type deleteNoteRequest struct {
	CreatedBy string `json:"created_by" binding:"required,email"`
}

func (h *ApplicationHandler) DeleteNote(c *gin.Context) {
	id, ok := pathID(c, "note_id")
	if !ok {
		return
	}

	var req deleteNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.DeleteNote", "invalid request body", err))
		return
	}

	if err := h.svc.DeleteNote(c.Request.Context(), id, req.CreatedBy); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
