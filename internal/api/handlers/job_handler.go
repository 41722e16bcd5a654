package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zero-Sign/swift-hire/internal/services"
)

type JobHandler struct {
	jobs  services.JobService
	saved services.SavedJobService
}

func NewJobHandler(jobs services.JobService, saved services.SavedJobService) *JobHandler {
	return &JobHandler{jobs: jobs, saved: saved}
}

func (h *JobHandler) Create(c *gin.Context) {
	in := services.JobPostInput{
		Title:            c.PostForm("title"),
		Company:          c.PostForm("company"),
		Location:         c.PostForm("location"),
		Type:             c.PostForm("type"),
		Salary:           c.PostForm("salary"),
		Description:      c.PostForm("description"),
		Skills:           c.PostForm("skills"),
		InterviewerEmail: c.PostForm("interviewer_email"),
	}

	job, err := h.jobs.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobs.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	job, err := h.jobs.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) ListByInterviewer(c *gin.Context) {
	jobs, err := h.jobs.ListByInterviewer(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.jobs.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Job post and %d associated applications deleted successfully", deleted),
	})
}

func (h *JobHandler) SaveJob(c *gin.Context) {
	jobID, err := parseFormUint(c, "job_id")
	if err != nil {
		writeError(c, err)
		return
	}
	saved, err := h.saved.Save(c.Request.Context(), c.PostForm("candidate_email"), jobID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *JobHandler) UnsaveJob(c *gin.Context) {
	jobID, ok := pathID(c, "job_id")
	if !ok {
		return
	}
	if err := h.saved.Unsave(c.Request.Context(), c.Param("email"), jobID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job unsaved successfully"})
}

func (h *JobHandler) SavedJobs(c *gin.Context) {
	jobs, err := h.saved.ListJobs(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) CountSavedJobs(c *gin.Context) {
	count, err := h.saved.Count(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
