package services

import (
	"context"
	"errors"
	"time"

	"github.com/Zero-Sign/swift-hire/internal/mailer"
	pgrepo "github.com/Zero-Sign/swift-hire/internal/repositories/postgres"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

type CalendarInvite struct {
	CandidateEmail string
	Summary        string
	Description    string
	Start          time.Time
	End            time.Time
	Timezone       string
	MeetLink       string
}

type CalendarService interface {
	SendInvite(ctx context.Context, inv CalendarInvite) error
}

type calendarService struct {
	candidates pgrepo.CandidateRepository
	mail       mailer.Sender
}

func NewCalendarService(candidates pgrepo.CandidateRepository, mail mailer.Sender) CalendarService {
	return &calendarService{candidates: candidates, mail: mail}
}

func (s *calendarService) SendInvite(ctx context.Context, inv CalendarInvite) error {
	const op = "CalendarService.SendInvite"

	candidate, err := s.candidates.GetByEmail(ctx, inv.CandidateEmail)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "candidate not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to get candidate", err)
	}

	if !inv.End.After(inv.Start) {
		return utils.E(utils.CodeInvalidArgument, op, "end_time must be after start_time", nil)
	}

	err = s.mail.SendCalendarInvite(ctx, mailer.Invite{
		ToEmail:       candidate.Email,
		CandidateName: candidate.Name,
		Summary:       inv.Summary,
		Description:   inv.Description,
		Start:         inv.Start,
		End:           inv.End,
		Timezone:      inv.Timezone,
		MeetLink:      inv.MeetLink,
	})
	if err != nil {
		return utils.E(utils.CodeUnavailable, op, "failed to send calendar invite", err)
	}
	return nil
}
