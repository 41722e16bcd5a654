package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Zero-Sign/swift-hire/internal/database"
	"github.com/Zero-Sign/swift-hire/internal/mailer"
	"github.com/Zero-Sign/swift-hire/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// every sqlite connection would be its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// stubMailer records sends, or fails every send when fail is set.
type stubMailer struct {
	fail        bool
	statusCalls []mailer.StatusUpdate
	inviteCalls []mailer.Invite
}

func (m *stubMailer) SendStatusUpdate(_ context.Context, u mailer.StatusUpdate) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.statusCalls = append(m.statusCalls, u)
	return nil
}

func (m *stubMailer) SendCalendarInvite(_ context.Context, inv mailer.Invite) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.inviteCalls = append(m.inviteCalls, inv)
	return nil
}

// stubUploader records object names and never touches disk.
type stubUploader struct {
	fail    bool
	uploads []string
}

func (u *stubUploader) Upload(_ context.Context, objectName, _ string, r io.Reader) (string, error) {
	if u.fail {
		return "", errors.New("disk full")
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	u.uploads = append(u.uploads, objectName)
	return "uploads/" + objectName, nil
}

func seedUser(t *testing.T, db *gorm.DB, name, email, password string, role models.Role) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email, Password: password, Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedCandidate(t *testing.T, db *gorm.DB, name, email, skills string) *models.Candidate {
	t.Helper()
	c := &models.Candidate{
		Name:         name,
		Email:        email,
		Skills:       skills,
		Resume:       "uploads/" + email + "_resume_cv.pdf",
		ProfileImage: models.DefaultProfileImage,
		Education:    models.EducationNotSpecified,
		Role:         models.RoleCandidate,
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedInterviewer(t *testing.T, db *gorm.DB, name, email string) *models.Interviewer {
	t.Helper()
	i := &models.Interviewer{Name: name, Email: email, Role: models.RoleInterviewer}
	require.NoError(t, db.Create(i).Error)
	return i
}

func seedJob(t *testing.T, db *gorm.DB, title, company, skills, interviewerEmail string, createdAt time.Time) *models.JobPost {
	t.Helper()
	j := &models.JobPost{
		Title:            title,
		Company:          company,
		Location:         "Remote",
		Type:             "Full-time",
		Salary:           "100k",
		Description:      "desc",
		Skills:           skills,
		InterviewerEmail: interviewerEmail,
		CreatedAt:        createdAt,
	}
	require.NoError(t, db.Create(j).Error)
	return j
}

func seedApplication(t *testing.T, db *gorm.DB, candidateEmail string, jobID uint, interviewerEmail string, status models.ApplicationStatus) *models.JobApplication {
	t.Helper()
	a := &models.JobApplication{
		CandidateEmail:   candidateEmail,
		JobID:            jobID,
		InterviewerEmail: interviewerEmail,
		Status:           status,
	}
	require.NoError(t, db.Create(a).Error)
	return a
}
