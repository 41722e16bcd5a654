package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Zero-Sign/swift-hire/internal/api/handlers"
	"github.com/Zero-Sign/swift-hire/internal/api/middleware"
	"github.com/Zero-Sign/swift-hire/internal/api/routes"
	"github.com/Zero-Sign/swift-hire/internal/config"
	"github.com/Zero-Sign/swift-hire/internal/database"
	"github.com/Zero-Sign/swift-hire/internal/logger"
	"github.com/Zero-Sign/swift-hire/internal/mailer"
	pgrepo "github.com/Zero-Sign/swift-hire/internal/repositories/postgres"
	"github.com/Zero-Sign/swift-hire/internal/services"
	"github.com/Zero-Sign/swift-hire/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	l := logger.New(cfg.LogLevel)

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		l.Fatalf("postgres connect error: %v", err)
	}
	l.Info("postgres connected")

	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		l.Fatalf("upload dir error: %v", err)
	}

	mail := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailSender, cfg.EmailPassword)

	users := pgrepo.NewUserRepo(db)
	candidates := pgrepo.NewCandidateRepo(db)
	interviewers := pgrepo.NewInterviewerRepo(db)
	jobs := pgrepo.NewJobRepo(db)
	savedJobs := pgrepo.NewSavedJobRepo(db)
	applications := pgrepo.NewApplicationRepo(db)
	notes := pgrepo.NewNoteRepo(db)
	feedback := pgrepo.NewFeedbackRepo(db)

	authSvc := services.NewAuthService(users)
	registerSvc := services.NewRegisterService(db, store)
	candidateSvc := services.NewCandidateService(db, candidates, jobs, store)
	jobSvc := services.NewJobService(jobs)
	savedJobSvc := services.NewSavedJobService(savedJobs, jobs)
	applicationSvc := services.NewApplicationService(applications, notes, candidates, interviewers, jobs, mail)
	feedbackSvc := services.NewFeedbackService(feedback)
	calendarSvc := services.NewCalendarService(candidates, mail)
	adminSvc := services.NewAdminService(db, users)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{cfg.FrontendURL}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	routes.RegisterRoutes(r, routes.Deps{
		Auth:        handlers.NewAuthHandler(authSvc),
		Candidate:   handlers.NewCandidateHandler(registerSvc, candidateSvc),
		Interviewer: handlers.NewInterviewerHandler(registerSvc),
		Job:         handlers.NewJobHandler(jobSvc, savedJobSvc),
		Application: handlers.NewApplicationHandler(applicationSvc),
		Feedback:    handlers.NewFeedbackHandler(feedbackSvc),
		Calendar:    handlers.NewCalendarHandler(calendarSvc),
		Admin:       handlers.NewAdminHandler(adminSvc),
		UploadDir:   cfg.UploadDir,
	})

	addr := cfg.Host + ":" + cfg.Port
	l.WithField("addr", addr).Info("starting server")
	if err := r.Run(addr); err != nil {
		l.Fatalf("server error: %v", err)
	}
}
