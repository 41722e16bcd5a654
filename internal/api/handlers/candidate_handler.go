package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zero-Sign/swift-hire/internal/models"
	"github.com/Zero-Sign/swift-hire/internal/services"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

type CandidateHandler struct {
	register   services.RegisterService
	candidates services.CandidateService
}

func NewCandidateHandler(register services.RegisterService, candidates services.CandidateService) *CandidateHandler {
	return &CandidateHandler{register: register, candidates: candidates}
}

func (h *CandidateHandler) Register(c *gin.Context) {
	const op = "CandidateHandler.Register"

	in := services.CandidateRegistration{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		Skills:   c.PostForm("skills"),
		Bio:      c.PostForm("bio"),
	}

	resumeFH, err := c.FormFile("resume")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "resume file is required", err))
		return
	}
	in.Resume, err = readUpload(resumeFH)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to read resume upload", err))
		return
	}

	if imageFH, err := c.FormFile("profile_image"); err == nil {
		in.ProfileImage, err = readUpload(imageFH)
		if err != nil {
			writeError(c, utils.E(utils.CodeInternal, op, "failed to read profile image upload", err))
			return
		}
	}

	identity, err := h.register.RegisterCandidate(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, identity)
}

func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.candidates.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

func (h *CandidateHandler) Update(c *gin.Context) {
	const op = "CandidateHandler.Update"

	in := services.CandidateUpdate{
		Name:      c.PostForm("name"),
		Skills:    c.PostForm("skills"),
		Education: models.Education(c.DefaultPostForm("education", string(models.EducationNotSpecified))),
	}
	if v, ok := c.GetPostForm("bio"); ok {
		in.Bio = &v
	}
	if v := c.PostForm("years_of_experience"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, op, "years_of_experience must be an integer", err))
			return
		}
		in.YearsOfExperience = n
	}

	if fh, err := c.FormFile("resume"); err == nil {
		in.Resume, err = readUpload(fh)
		if err != nil {
			writeError(c, utils.E(utils.CodeInternal, op, "failed to read resume upload", err))
			return
		}
	}
	if fh, err := c.FormFile("profile_image"); err == nil {
		in.ProfileImage, err = readUpload(fh)
		if err != nil {
			writeError(c, utils.E(utils.CodeInternal, op, "failed to read profile image upload", err))
			return
		}
	}

	candidate, err := h.candidates.Update(c.Request.Context(), c.Param("email"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

func (h *CandidateHandler) List(c *gin.Context) {
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 100)

	candidates, err := h.candidates.List(c.Request.Context(), skip, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

func (h *CandidateHandler) FilterBySkills(c *gin.Context) {
	candidates, err := h.candidates.FilterBySkills(c.Request.Context(), c.Query("skills"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

func (h *CandidateHandler) RecommendedJobs(c *gin.Context) {
	jobs, err := h.candidates.RecommendJobs(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}
