package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Zero-Sign/swift-hire/internal/mailer"
	"github.com/Zero-Sign/swift-hire/internal/models"
	pgrepo "github.com/Zero-Sign/swift-hire/internal/repositories/postgres"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

const maxNoteLength = 1000

type ApplicationCreate struct {
	CandidateEmail   string
	JobID            uint
	InterviewerEmail string
}

// StatusUpdate carries a validated target status plus optional interview
// metadata. Nil pointer fields are left unchanged on the row.
type StatusUpdate struct {
	Status               models.ApplicationStatus
	InterviewFormURL     *string
	InterviewSchedule    *time.Time
	InterviewDuration    *int
	InterviewTitle       *string
	InterviewDescription *string
}

type SearchParams struct {
	Search string
	Status models.ApplicationStatus
	Page   int
	Limit  int
}

type PaginatedApplications struct {
	Items []pgrepo.SearchRow `json:"items"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Size  int                `json:"size"`
	Pages int                `json:"pages"`
}

type ApplicationDetail struct {
	models.JobApplication
	CandidateName   string        `json:"candidate_name"`
	CandidateResume string        `json:"candidate_resume"`
	JobTitle        string        `json:"job_title"`
	Company         string        `json:"company"`
	JobLocation     string        `json:"job_location"`
	JobType         string        `json:"job_type"`
	Notes           []models.Note `json:"notes"`
}

type ApplicationCheck struct {
	Applied bool                      `json:"applied"`
	Status  *models.ApplicationStatus `json:"status"`
}

type ApplicationService interface {
	Create(ctx context.Context, in ApplicationCreate) (*models.JobApplication, error)
	Get(ctx context.Context, id uint) (*ApplicationDetail, error)
	Check(ctx context.Context, candidateEmail string, jobID uint) (*ApplicationCheck, error)
	CountByCandidate(ctx context.Context, email string) (int64, error)
	ListByInterviewer(ctx context.Context, email string) ([]pgrepo.InterviewerRow, error)
	ListByCandidate(ctx context.Context, email string) ([]pgrepo.CandidateRow, error)
	Search(ctx context.Context, p SearchParams) (*PaginatedApplications, error)
	UpdateStatus(ctx context.Context, id uint, upd StatusUpdate) (*models.JobApplication, error)

	AddNote(ctx context.Context, applicationID uint, content, createdBy string) (*models.Note, error)
	UpdateNote(ctx context.Context, noteID uint, content, updatedBy string) (*models.Note, error)
	DeleteNote(ctx context.Context, noteID uint, deletedBy string) error
}

type applicationService struct {
	apps       pgrepo.ApplicationRepository
	notes      pgrepo.NoteRepository
	candidates pgrepo.CandidateRepository
	interviews pgrepo.InterviewerRepository
	jobs       pgrepo.JobRepository
	mail       mailer.Sender
}

func NewApplicationService(
	apps pgrepo.ApplicationRepository,
	notes pgrepo.NoteRepository,
	candidates pgrepo.CandidateRepository,
	interviews pgrepo.InterviewerRepository,
	jobs pgrepo.JobRepository,
	mail mailer.Sender,
) ApplicationService {
	return &applicationService{
		apps:       apps,
		notes:      notes,
		candidates: candidates,
		interviews: interviews,
		jobs:       jobs,
		mail:       mail,
	}
}

func (s *applicationService) Create(ctx context.Context, in ApplicationCreate) (*models.JobApplication, error) {
	const op = "ApplicationService.Create"

	if _, err := s.candidates.GetByEmail(ctx, in.CandidateEmail); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "candidate not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get candidate", err)
	}
	if _, err := s.jobs.GetByID(ctx, in.JobID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}

	if _, err := s.apps.GetByPair(ctx, in.CandidateEmail, in.JobID); err == nil {
		return nil, utils.E(utils.CodeConflict, op, "you have already applied for this job", nil)
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to check existing application", err)
	}

	app := &models.JobApplication{
		CandidateEmail:   in.CandidateEmail,
		JobID:            in.JobID,
		InterviewerEmail: in.InterviewerEmail,
		Status:           models.StatusApplied,
	}
	if err := s.apps.Create(ctx, app); err != nil {
		// the unique index backs the pair invariant against concurrent creates
		return nil, utils.E(utils.CodeConflict, op, "you have already applied for this job", err)
	}
	return app, nil
}

func (s *applicationService) Get(ctx context.Context, id uint) (*ApplicationDetail, error) {
	const op = "ApplicationService.Get"

	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get application", err)
	}

	detail := &ApplicationDetail{
		JobApplication: *app,
		CandidateName:  "Unknown",
		JobTitle:       "Not specified",
		Company:        "Not specified",
	}

	if c, err := s.candidates.GetByEmail(ctx, app.CandidateEmail); err == nil {
		detail.CandidateName = c.Name
		detail.CandidateResume = c.Resume
	}
	if j, err := s.jobs.GetByID(ctx, app.JobID); err == nil {
		detail.JobTitle = j.Title
		detail.Company = j.Company
		detail.JobLocation = j.Location
		detail.JobType = j.Type
	}

	notes, err := s.notes.ListByApplication(ctx, id)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list notes", err)
	}
	detail.Notes = notes
	return detail, nil
}

func (s *applicationService) Check(ctx context.Context, candidateEmail string, jobID uint) (*ApplicationCheck, error) {
	const op = "ApplicationService.Check"

	app, err := s.apps.GetByPair(ctx, candidateEmail, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return &ApplicationCheck{Applied: false}, nil
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to check application", err)
	}
	return &ApplicationCheck{Applied: true, Status: &app.Status}, nil
}

func (s *applicationService) CountByCandidate(ctx context.Context, email string) (int64, error) {
	const op = "ApplicationService.CountByCandidate"

	if _, err := s.candidates.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return 0, utils.E(utils.CodeNotFound, op, "candidate not found", err)
		}
		return 0, utils.E(utils.CodeInternal, op, "failed to get candidate", err)
	}

	count, err := s.apps.CountByCandidate(ctx, email)
	if err != nil {
		return 0, utils.E(utils.CodeInternal, op, "failed to count applications", err)
	}
	return count, nil
}

func (s *applicationService) ListByInterviewer(ctx context.Context, email string) ([]pgrepo.InterviewerRow, error) {
	const op = "ApplicationService.ListByInterviewer"

	if _, err := s.interviews.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "interviewer not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get interviewer", err)
	}

	rows, err := s.apps.ListByInterviewer(ctx, email)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	return rows, nil
}

func (s *applicationService) ListByCandidate(ctx context.Context, email string) ([]pgrepo.CandidateRow, error) {
	const op = "ApplicationService.ListByCandidate"

	if _, err := s.candidates.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "candidate not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get candidate", err)
	}

	rows, err := s.apps.ListByCandidate(ctx, email)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	return rows, nil
}

func (s *applicationService) Search(ctx context.Context, p SearchParams) (*PaginatedApplications, error) {
	const op = "ApplicationService.Search"

	if p.Status != "" && !p.Status.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid status", nil)
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}

	rows, total, err := s.apps.Search(ctx, pgrepo.SearchFilter{
		Status: p.Status,
		Search: p.Search,
		Offset: (p.Page - 1) * p.Limit,
		Limit:  p.Limit,
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to search applications", err)
	}
	if rows == nil {
		rows = []pgrepo.SearchRow{}
	}

	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	if pages == 0 {
		pages = 1
	}
	return &PaginatedApplications{
		Items: rows,
		Total: total,
		Page:  p.Page,
		Size:  p.Limit,
		Pages: pages,
	}, nil
}

// UpdateStatus applies a status transition. Moving to Shortlisted or
// Rejected notifies the candidate first; if that send fails, the row is not
// touched.
func (s *applicationService) UpdateStatus(ctx context.Context, id uint, upd StatusUpdate) (*models.JobApplication, error) {
	const op = "ApplicationService.UpdateStatus"

	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get application", err)
	}

	if !upd.Status.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid status", nil)
	}

	if upd.Status == models.StatusShortlisted || upd.Status == models.StatusRejected {
		candidate, cErr := s.candidates.GetByEmail(ctx, app.CandidateEmail)
		job, jErr := s.jobs.GetByID(ctx, app.JobID)
		if cErr == nil && jErr == nil {
			err := s.mail.SendStatusUpdate(ctx, mailer.StatusUpdate{
				ToEmail:       candidate.Email,
				CandidateName: candidate.Name,
				JobTitle:      job.Title,
				Company:       job.Company,
				Status:        upd.Status,
			})
			if err != nil {
				return nil, utils.E(utils.CodeUnavailable, op, "failed to send status email", err)
			}
		}
	}

	app.Status = upd.Status
	if upd.InterviewFormURL != nil {
		app.InterviewFormURL = *upd.InterviewFormURL
	}
	if upd.InterviewSchedule != nil {
		app.InterviewSchedule = upd.InterviewSchedule
	}
	if upd.InterviewDuration != nil {
		app.InterviewDuration = *upd.InterviewDuration
	}
	if upd.InterviewTitle != nil {
		app.InterviewTitle = *upd.InterviewTitle
	}
	if upd.InterviewDescription != nil {
		app.InterviewDescription = *upd.InterviewDescription
	}

	if err := s.apps.Save(ctx, app); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update application", err)
	}
	return app, nil
}

func (s *applicationService) AddNote(ctx context.Context, applicationID uint, content, createdBy string) (*models.Note, error) {
	const op = "ApplicationService.AddNote"

	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get application", err)
	}

	if createdBy != app.InterviewerEmail {
		return nil, utils.E(utils.CodeForbidden, op, "only the assigned interviewer can add notes for this application", nil)
	}

	content, err = validNoteContent(op, content)
	if err != nil {
		return nil, err
	}

	note := &models.Note{
		ApplicationID: applicationID,
		Content:       content,
		CreatedBy:     createdBy,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create note", err)
	}
	return note, nil
}

func (s *applicationService) UpdateNote(ctx context.Context, noteID uint, content, updatedBy string) (*models.Note, error) {
	const op = "ApplicationService.UpdateNote"

	note, app, err := s.noteWithApplication(ctx, op, noteID)
	if err != nil {
		return nil, err
	}

	if updatedBy != app.InterviewerEmail {
		return nil, utils.E(utils.CodeForbidden, op, "only the assigned interviewer can update this note", nil)
	}

	content, err = validNoteContent(op, content)
	if err != nil {
		return nil, err
	}

	note.Content = content
	if err := s.notes.Save(ctx, note); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update note", err)
	}
	return note, nil
}

func (s *applicationService) DeleteNote(ctx context.Context, noteID uint, deletedBy string) error {
	const op = "ApplicationService.DeleteNote"

	note, app, err := s.noteWithApplication(ctx, op, noteID)
	if err != nil {
		return err
	}

	if deletedBy != app.InterviewerEmail {
		return utils.E(utils.CodeForbidden, op, "only the assigned interviewer can delete this note", nil)
	}

	if err := s.notes.Delete(ctx, note); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete note", err)
	}
	return nil
}

func (s *applicationService) noteWithApplication(ctx context.Context, op string, noteID uint) (*models.Note, *models.JobApplication, error) {
	note, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, nil, utils.E(utils.CodeNotFound, op, "note not found", err)
		}
		return nil, nil, utils.E(utils.CodeInternal, op, "failed to get note", err)
	}

	app, err := s.apps.GetByID(ctx, note.ApplicationID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, nil, utils.E(utils.CodeInternal, op, "failed to get application", err)
	}
	return note, app, nil
}

func validNoteContent(op, content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "note content cannot be empty", nil)
	}
	if len(content) > maxNoteLength {
		return "", utils.E(utils.CodeInvalidArgument, op, "note content cannot exceed 1000 characters", nil)
	}
	return content, nil
}
