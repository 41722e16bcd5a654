package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Zero-Sign/swift-hire/internal/api/handlers"
	"github.com/Zero-Sign/swift-hire/internal/api/routes"
	"github.com/Zero-Sign/swift-hire/internal/database"
	"github.com/Zero-Sign/swift-hire/internal/mailer"
	"github.com/Zero-Sign/swift-hire/internal/models"
	pgrepo "github.com/Zero-Sign/swift-hire/internal/repositories/postgres"
	"github.com/Zero-Sign/swift-hire/internal/services"
)

type recordingMailer struct {
	fail        bool
	statusCalls int
}

func (m *recordingMailer) SendStatusUpdate(context.Context, mailer.StatusUpdate) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.statusCalls++
	return nil
}

func (m *recordingMailer) SendCalendarInvite(context.Context, mailer.Invite) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	return nil
}

type nopUploader struct{}

func (nopUploader) Upload(_ context.Context, objectName, _ string, r io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	return "uploads/" + objectName, nil
}

func newTestServer(t *testing.T, mail *recordingMailer) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	users := pgrepo.NewUserRepo(db)
	candidates := pgrepo.NewCandidateRepo(db)
	jobs := pgrepo.NewJobRepo(db)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Auth:        handlers.NewAuthHandler(services.NewAuthService(users)),
		Candidate:   handlers.NewCandidateHandler(services.NewRegisterService(db, nopUploader{}), services.NewCandidateService(db, candidates, jobs, nopUploader{})),
		Interviewer: handlers.NewInterviewerHandler(services.NewRegisterService(db, nopUploader{})),
		Job:         handlers.NewJobHandler(services.NewJobService(jobs), services.NewSavedJobService(pgrepo.NewSavedJobRepo(db), jobs)),
		Application: handlers.NewApplicationHandler(services.NewApplicationService(
			pgrepo.NewApplicationRepo(db), pgrepo.NewNoteRepo(db), candidates,
			pgrepo.NewInterviewerRepo(db), jobs, mail)),
		Feedback:  handlers.NewFeedbackHandler(services.NewFeedbackService(pgrepo.NewFeedbackRepo(db))),
		Calendar:  handlers.NewCalendarHandler(services.NewCalendarService(candidates, mail)),
		Admin:     handlers.NewAdminHandler(services.NewAdminService(db, users)),
		UploadDir: t.TempDir(),
	})
	return r, db
}

func doForm(r *gin.Engine, method, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func seedCandidateRow(t *testing.T, db *gorm.DB, name, email string) {
	t.Helper()
	require.NoError(t, db.Create(&models.User{Name: name, Email: email, Password: "secret", Role: models.RoleCandidate}).Error)
	require.NoError(t, db.Create(&models.Candidate{
		Name: name, Email: email, Skills: "Python",
		Resume: "uploads/cv.pdf", ProfileImage: models.DefaultProfileImage,
		Education: models.EducationNotSpecified, Role: models.RoleCandidate,
	}).Error)
}

func seedJobRow(t *testing.T, db *gorm.DB) *models.JobPost {
	t.Helper()
	j := &models.JobPost{
		Title: "Backend Engineer", Company: "Acme", Location: "Remote",
		Type: "Full-time", Salary: "100k", Description: "d", Skills: "python",
		InterviewerEmail: "hr@acme.com",
	}
	require.NoError(t, db.Create(j).Error)
	return j
}

func TestHealthEndpoints(t *testing.T) {
	r, _ := newTestServer(t, &recordingMailer{})

	assert.Equal(t, http.StatusOK, doGet(r, "/").Code)
	assert.Equal(t, http.StatusOK, doGet(r, "/health").Code)
}

func TestLoginEndpoint(t *testing.T) {
	r, db := newTestServer(t, &recordingMailer{})
	seedCandidateRow(t, db, "Ali", "ali@example.com")

	w := doForm(r, http.MethodPost, "/login", url.Values{
		"email":    {"ali@example.com"},
		"password": {"secret"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Candidate", body["role"])
	assert.NotContains(t, body, "password")

	w = doForm(r, http.MethodPost, "/login", url.Values{
		"email":    {"ali@example.com"},
		"password": {"wrong"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestApplicationEndpoints(t *testing.T) {
	mail := &recordingMailer{}
	r, db := newTestServer(t, mail)
	seedCandidateRow(t, db, "Ali", "ali@example.com")
	seedJobRow(t, db)

	w := doJSON(r, http.MethodPost, "/job-applications/",
		`{"candidate_email":"ali@example.com","job_id":1,"interviewer_email":"hr@acme.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.JobApplication
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.StatusApplied, created.Status)

	w = doJSON(r, http.MethodPost, "/job-applications/",
		`{"candidate_email":"ali@example.com","job_id":1,"interviewer_email":"hr@acme.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doGet(r, "/job-applications/check/ali@example.com/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"applied":true`)

	w = doJSON(r, http.MethodPatch, "/job-applications/1", `{"status":"Shortlisted"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mail.statusCalls)

	w = doJSON(r, http.MethodPatch, "/job-applications/1", `{"status":"Hired"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplicationStatusEmailFailure(t *testing.T) {
	r, db := newTestServer(t, &recordingMailer{fail: true})
	seedCandidateRow(t, db, "Ali", "ali@example.com")
	seedJobRow(t, db)

	w := doJSON(r, http.MethodPost, "/job-applications/",
		`{"candidate_email":"ali@example.com","job_id":1,"interviewer_email":"hr@acme.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPatch, "/job-applications/1", `{"status":"Rejected"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var app models.JobApplication
	require.NoError(t, db.First(&app, 1).Error)
	assert.Equal(t, models.StatusApplied, app.Status)
}

func TestFeedbackEndpoints(t *testing.T) {
	r, _ := newTestServer(t, &recordingMailer{})

	w := doJSON(r, http.MethodPost, "/feedback",
		`{"user_email":"ali@example.com","user_name":"Ali","user_role":"Candidate","rating":5,"message":"great"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doForm(r, http.MethodPost, "/feedback", url.Values{
		"user_email": {"ali@example.com"},
		"user_name":  {"Ali"},
		"user_role":  {"Candidate"},
		"rating":     {"4"},
		"message":    {"still great"},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/feedback",
		`{"user_email":"ali@example.com","user_name":"Ali","user_role":"Candidate","rating":6}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doGet(r, "/feedback/user/ali@example.com")
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Feedback
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestAdminEndpoints(t *testing.T) {
	r, db := newTestServer(t, &recordingMailer{})

	w := doJSON(r, http.MethodPost, "/api/admin/users",
		`{"name":"Ali","email":"ali@example.com","password":"secret","role":"Candidate"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "password")

	var count int64
	require.NoError(t, db.Model(&models.Candidate{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	w = doJSON(r, http.MethodPost, "/api/admin/users",
		`{"name":"X","email":"x@example.com","password":"pw","role":"Admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doGet(r, "/api/admin/users?role=Candidate")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ali@example.com")
}

func TestCalendarEndpointValidation(t *testing.T) {
	r, db := newTestServer(t, &recordingMailer{})
	seedCandidateRow(t, db, "Ali", "ali@example.com")

	w := doJSON(r, http.MethodPost, "/calendar/send-calendar-invite",
		`{"candidate_email":"ali@example.com","summary":"Interview","start_time":"2026-09-10T14:00:00Z","end_time":"2026-09-10T14:45:00Z"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/calendar/send-calendar-invite",
		`{"candidate_email":"ali@example.com","summary":"Interview","start_time":"not-a-time","end_time":"2026-09-10T14:45:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/calendar/send-calendar-invite",
		`{"candidate_email":"ghost@example.com","summary":"Interview","start_time":"2026-09-10T14:00:00Z","end_time":"2026-09-10T14:45:00Z"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
