package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgrepo "github.com/Zero-Sign/swift-hire/internal/repositories/postgres"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

func TestSendCalendarInvite(t *testing.T) {
	db := testDB(t)
	mail := &stubMailer{}
	svc := NewCalendarService(pgrepo.NewCandidateRepo(db), mail)
	ctx := context.Background()

	seedCandidate(t, db, "Ali", "ali@example.com", "Python")

	start := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	inv := CalendarInvite{
		CandidateEmail: "ali@example.com",
		Summary:        "Technical Interview",
		Description:    "Round 1",
		Start:          start,
		End:            start.Add(45 * time.Minute),
		Timezone:       "UTC",
		MeetLink:       "https://meet.google.com/abc-defg-hij",
	}

	require.NoError(t, svc.SendInvite(ctx, inv))
	require.Len(t, mail.inviteCalls, 1)
	sent := mail.inviteCalls[0]
	assert.Equal(t, "ali@example.com", sent.ToEmail)
	assert.Equal(t, "Ali", sent.CandidateName)
	assert.Equal(t, "Technical Interview", sent.Summary)
}

func TestSendCalendarInviteValidation(t *testing.T) {
	db := testDB(t)
	mail := &stubMailer{}
	svc := NewCalendarService(pgrepo.NewCandidateRepo(db), mail)
	ctx := context.Background()

	seedCandidate(t, db, "Ali", "ali@example.com", "Python")
	start := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)

	err := svc.SendInvite(ctx, CalendarInvite{
		CandidateEmail: "ghost@example.com",
		Start:          start,
		End:            start.Add(time.Hour),
	})
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	err = svc.SendInvite(ctx, CalendarInvite{
		CandidateEmail: "ali@example.com",
		Start:          start,
		End:            start,
	})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	assert.Empty(t, mail.inviteCalls)
}

func TestSendCalendarInviteMailFailure(t *testing.T) {
	db := testDB(t)
	svc := NewCalendarService(pgrepo.NewCandidateRepo(db), &stubMailer{fail: true})
	ctx := context.Background()

	seedCandidate(t, db, "Ali", "ali@example.com", "Python")
	start := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)

	err := svc.SendInvite(ctx, CalendarInvite{
		CandidateEmail: "ali@example.com",
		Start:          start,
		End:            start.Add(time.Hour),
	})
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable))
}
