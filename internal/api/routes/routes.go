package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zero-Sign/swift-hire/internal/api/handlers"
)

type Deps struct {
	Auth        *handlers.AuthHandler
	Candidate   *handlers.CandidateHandler
	Interviewer *handlers.InterviewerHandler
	Job         *handlers.JobHandler
	Application *handlers.ApplicationHandler
	Feedback    *handlers.FeedbackHandler
	Calendar    *handlers.CalendarHandler
	Admin       *handlers.AdminHandler

	UploadDir string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "SwiftHire API is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Uploaded resumes and profile images are served straight off disk.
	r.Static("/uploads", d.UploadDir)

	r.POST("/login", d.Auth.Login)
	r.POST("/register/candidate", d.Candidate.Register)
	r.POST("/register/interviewer", d.Interviewer.Register)

	candidates := r.Group("/candidates")
	candidates.GET("", d.Candidate.List)
	candidates.GET("/filter", d.Candidate.FilterBySkills)
	candidates.GET("/:email", d.Candidate.Get)
	candidates.PUT("/:email", d.Candidate.Update)
	candidates.GET("/:email/recommended-jobs", d.Candidate.RecommendedJobs)

	jobs := r.Group("/job-posts")
	jobs.POST("", d.Job.Create)
	jobs.GET("", d.Job.List)
	jobs.GET("/:id", d.Job.Get)
	jobs.DELETE("/:id", d.Job.Delete)
	jobs.GET("/interviewer/:email", d.Job.ListByInterviewer)

	saved := r.Group("/saved-jobs")
	saved.POST("", d.Job.SaveJob)
	saved.GET("/count/:email", d.Job.CountSavedJobs)
	saved.GET("/:email", d.Job.SavedJobs)
	saved.DELETE("/:email/:job_id", d.Job.UnsaveJob)

	apps := r.Group("/job-applications")
	apps.POST("/", d.Application.Create)
	apps.GET("/count/:email", d.Application.CountByCandidate)
	apps.GET("/interviewer/:email", d.Application.ListByInterviewer)
	apps.GET("/candidate/:email", d.Application.ListByCandidate)
	apps.GET("/check/:email/:job_id", d.Application.Check)
	apps.GET("/shortlisted-candidate", d.Application.Search)
	apps.GET("/:id", d.Application.Get)
	apps.PATCH("/:id", d.Application.UpdateStatus)
	apps.POST("/:id/notes", d.Application.AddNote)
	apps.PATCH("/notes/:note_id", d.Application.UpdateNote)
	apps.DELETE("/notes/:note_id", d.Application.DeleteNote)

	feedback := r.Group("/feedback")
	feedback.POST("", d.Feedback.Create)
	feedback.GET("", d.Feedback.List)
	feedback.GET("/user/:email", d.Feedback.ListByUser)
	feedback.GET("/:id", d.Feedback.Get)
	feedback.DELETE("/:id", d.Feedback.Delete)

	r.POST("/calendar/send-calendar-invite", d.Calendar.SendInvite)

	admin := r.Group("/api/admin")
	admin.GET("/users", d.Admin.ListUsers)
	admin.POST("/users", d.Admin.CreateUser)
	admin.GET("/users/:id", d.Admin.GetUser)
	admin.PUT("/users/:id", d.Admin.UpdateUser)
	admin.DELETE("/users/:id", d.Admin.DeleteUser)
}
