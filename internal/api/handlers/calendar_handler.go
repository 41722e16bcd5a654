package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zero-Sign/swift-hire/internal/services"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

type CalendarHandler struct {
	svc services.CalendarService
}

func NewCalendarHandler(svc services.CalendarService) *CalendarHandler {
	return &CalendarHandler{svc: svc}
}

type calendarInviteRequest struct {
	CandidateEmail string `json:"candidate_email" binding:"required,email"`
	Summary        string `json:"summary" binding:"required"`
	Description    string `json:"description"`
	StartTime      string `json:"start_time" binding:"required"`
	EndTime        string `json:"end_time" binding:"required"`
	Timezone       string `json:"timezone"`
	MeetLink       string `json:"meet_link"`
}

func (h *CalendarHandler) SendInvite(c *gin.Context) {
	const op = "CalendarHandler.SendInvite"

	var req calendarInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}

	start, err := parseInviteTime(req.StartTime)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid start_time", err))
		return
	}
	end, err := parseInviteTime(req.EndTime)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid end_time", err))
		return
	}

	if err := h.svc.SendInvite(c.Request.Context(), services.CalendarInvite{
		CandidateEmail: req.CandidateEmail,
		Summary:        req.Summary,
		Description:    req.Description,
		Start:          start,
		End:            end,
		Timezone:       req.Timezone,
		MeetLink:       req.MeetLink,
	}); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Calendar invite sent successfully"})
}

// parseInviteTime accepts RFC 3339 timestamps, with or without an explicit
// offset; bare timestamps are taken as UTC.
func parseInviteTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}
