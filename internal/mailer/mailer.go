package mailer

import (
	"context"
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/Zero-Sign/swift-hire/internal/models"
)

// StatusUpdate announces an application moving to Shortlisted or Rejected.
type StatusUpdate struct {
	ToEmail       string
	CandidateName string
	JobTitle      string
	Company       string
	Status        models.ApplicationStatus
}

// Invite carries an interview calendar invitation.
type Invite struct {
	ToEmail       string
	CandidateName string
	Summary       string
	Description   string
	Start         time.Time
	End           time.Time
	Timezone      string
	MeetLink      string
}

// Sender delivers recruiting notifications. Sends are synchronous and on the
// caller's critical path; a failed send must fail the operation that
// triggered it.
type Sender interface {
	SendStatusUpdate(ctx context.Context, u StatusUpdate) error
	SendCalendarInvite(ctx context.Context, inv Invite) error
}

// SMTPSender sends through a plain STARTTLS SMTP relay.
type SMTPSender struct {
	host     string
	port     int
	sender   string
	password string
}

func NewSMTPSender(host string, port int, sender, password string) *SMTPSender {
	return &SMTPSender{host: host, port: port, sender: sender, password: password}
}

func (s *SMTPSender) SendStatusUpdate(_ context.Context, u StatusUpdate) error {
	return s.send(s.buildStatusMessage(u))
}

func (s *SMTPSender) SendCalendarInvite(_ context.Context, inv Invite) error {
	return s.send(s.buildInviteMessage(inv))
}

func (s *SMTPSender) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.host, s.port, s.sender, s.password)
	return d.DialAndSend(m)
}

func (s *SMTPSender) buildStatusMessage(u StatusUpdate) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.sender)
	m.SetHeader("To", u.ToEmail)
	m.SetHeader("Subject", fmt.Sprintf("Job Application Status Update - %s at %s", u.JobTitle, u.Company))
	m.SetBody("text/plain", statusPlainText(u, s.sender))
	m.AddAlternative("text/html", statusHTML(u, s.sender))
	return m
}

func (s *SMTPSender) buildInviteMessage(inv Invite) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.sender)
	m.SetHeader("To", inv.ToEmail)
	m.SetHeader("Subject", inv.Summary)
	m.SetBody("text/plain", invitePlainText(inv))
	m.AddAlternative("text/html", inviteHTML(inv))

	icsBody := BuildICS(inv)
	m.Attach("invite.ics",
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.WriteString(w, icsBody)
			return err
		}),
		gomail.SetHeader(map[string][]string{
			"Content-Type": {`text/calendar; method=REQUEST; name="invite.ics"`},
		}),
	)
	return m
}

// BuildICS renders the VCALENDAR attachment for an interview invite. The
// event is generated on the fly and never persisted.
func BuildICS(inv Invite) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodRequest)

	ev := cal.AddEvent(uuid.NewString() + "@swift-hire")
	ev.SetDtStampTime(time.Now().UTC())
	ev.SetStartAt(inv.Start.UTC())
	ev.SetEndAt(inv.End.UTC())
	ev.SetSummary(inv.Summary)
	ev.SetDescription(inv.Description + "\n\nMeeting Link: " + inv.MeetLink)
	ev.SetLocation("Online - Google Meet")
	ev.SetURL(inv.MeetLink)

	return cal.Serialize()
}
