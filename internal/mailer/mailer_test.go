package mailer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Zero-Sign/swift-hire/internal/models"
)

func testInvite() Invite {
	start := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	return Invite{
		ToEmail:       "ali@example.com",
		CandidateName: "Ali",
		Summary:       "Technical Interview",
		Description:   "Round 1 with the backend team",
		Start:         start,
		End:           start.Add(45 * time.Minute),
		Timezone:      "UTC",
		MeetLink:      "https://meet.google.com/abc-defg-hij",
	}
}

func TestBuildICS(t *testing.T) {
	body := BuildICS(testInvite())

	assert.Contains(t, body, "BEGIN:VCALENDAR")
	assert.Contains(t, body, "METHOD:REQUEST")
	assert.Contains(t, body, "SUMMARY:Technical Interview")
	assert.Contains(t, body, "LOCATION:Online - Google Meet")
	assert.Contains(t, body, "DTSTART:20260910T140000Z")
	assert.Contains(t, body, "DTEND:20260910T144500Z")
	assert.Contains(t, body, "END:VCALENDAR")

	// serializer folds long lines, so match the link with folding stripped
	unfolded := strings.ReplaceAll(strings.ReplaceAll(body, "\r\n ", ""), "\n ", "")
	assert.Contains(t, unfolded, "meet.google.com/abc-defg-hij")
}

func TestStatusTemplates(t *testing.T) {
	shortlisted := StatusUpdate{
		ToEmail:       "ali@example.com",
		CandidateName: "Ali",
		JobTitle:      "Backend Engineer",
		Company:       "Acme",
		Status:        models.StatusShortlisted,
	}
	rejected := shortlisted
	rejected.Status = models.StatusRejected

	plain := statusPlainText(shortlisted, "noreply@swift-hire.com")
	assert.Contains(t, plain, "Dear Ali,")
	assert.Contains(t, plain, "Backend Engineer position at Acme")
	assert.Contains(t, plain, "Congratulations!")

	plain = statusPlainText(rejected, "noreply@swift-hire.com")
	assert.Contains(t, plain, "we regret to inform you")

	html := statusHTML(shortlisted, "noreply@swift-hire.com")
	assert.Contains(t, html, "#28a745")
	assert.Contains(t, html, "shortlisted")

	html = statusHTML(rejected, "noreply@swift-hire.com")
	assert.Contains(t, html, "#dc3545")
}

func TestInviteTemplates(t *testing.T) {
	inv := testInvite()

	plain := invitePlainText(inv)
	assert.Contains(t, plain, "Dear Ali,")
	assert.Contains(t, plain, "Event: Technical Interview")
	assert.Contains(t, plain, "Thursday, September 10, 2026 at 2:00 PM")
	assert.Contains(t, plain, "2:45 PM UTC")
	assert.Contains(t, plain, inv.MeetLink)

	html := inviteHTML(inv)
	assert.Contains(t, html, "Interview Invitation")
	assert.Contains(t, html, inv.MeetLink)
}

func TestBuildStatusMessage(t *testing.T) {
	s := NewSMTPSender("smtp.example.com", 587, "noreply@swift-hire.com", "pw")
	m := s.buildStatusMessage(StatusUpdate{
		ToEmail:       "ali@example.com",
		CandidateName: "Ali",
		JobTitle:      "Backend Engineer",
		Company:       "Acme",
		Status:        models.StatusShortlisted,
	})

	assert.Equal(t, []string{"ali@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Job Application Status Update - Backend Engineer at Acme"}, m.GetHeader("Subject"))
}

func TestBuildInviteMessage(t *testing.T) {
	s := NewSMTPSender("smtp.example.com", 587, "noreply@swift-hire.com", "pw")
	m := s.buildInviteMessage(testInvite())

	assert.Equal(t, []string{"Technical Interview"}, m.GetHeader("Subject"))

	var out strings.Builder
	_, err := m.WriteTo(&out)
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "invite.ics")
	assert.Contains(t, out.String(), "text/calendar")
}
