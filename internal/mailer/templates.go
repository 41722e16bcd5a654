package mailer

import (
	"fmt"

	"github.com/Zero-Sign/swift-hire/internal/models"
)

func statusPlainText(u StatusUpdate, sender string) string {
	outcome := "Thank you for applying. After careful consideration, we regret to inform you that we will not be moving forward with your application at this time."
	if u.Status == models.StatusShortlisted {
		outcome = "Congratulations! Your application has been shortlisted. Our team will contact you soon with next steps."
	}

	return fmt.Sprintf(`Dear %s,

We are writing to update you on your application for the %s position at %s.

Status: %s

%s

Thank you for your interest in %s. For any questions, please contact us at %s.

Best regards,
Recruitment Team
`, u.CandidateName, u.JobTitle, u.Company, u.Status, outcome, u.Company, sender)
}

func statusHTML(u StatusUpdate, sender string) string {
	statusColor := "#dc3545"
	outcome := fmt.Sprintf(`<p>Thank you for applying. After careful consideration, we regret to inform you
        that we will not be moving forward with your application at this time. We greatly
        appreciate your interest in %s and wish you the best in your future endeavors.</p>`, u.Company)
	if u.Status == models.StatusShortlisted {
		statusColor = "#28a745"
		outcome = fmt.Sprintf(`<p>Congratulations! Your application has been <strong>shortlisted</strong>.
        Our recruitment team will reach out to you soon with the next steps in the
        interview process. We appreciate your interest in joining %s and look
        forward to speaking with you.</p>`, u.Company)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
    body { font-family: Arial, Helvetica, sans-serif; color: #333; line-height: 1.6; margin: 0; padding: 0; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9f9f9; }
    .header { background-color: #007bff; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
    .content { background-color: white; padding: 20px; border-radius: 0 0 5px 5px; box-shadow: 0 2px 5px rgba(0,0,0,0.1); }
    .details { margin: 20px 0; padding: 15px; background-color: #f1f1f1; border-radius: 5px; }
    .status { font-weight: bold; color: %s; }
    .footer { text-align: center; margin-top: 20px; font-size: 12px; color: #777; }
</style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>Job Application Update</h1></div>
    <div class="content">
      <h2>Dear %s,</h2>
      <p>We are pleased to provide an update on your application for the <strong>%s</strong> position at <strong>%s</strong>.</p>
      <div class="details">
        <p><strong>Application Status:</strong> <span class="status">%s</span></p>
        <p><strong>Job Title:</strong> %s</p>
        <p><strong>Company:</strong> %s</p>
      </div>
      %s
      <p>If you have any questions or need further assistance, please feel free to contact us at <a href="mailto:%s">%s</a>.</p>
      <p>Best regards,<br>Recruitment Team</p>
    </div>
    <div class="footer">
      <p>This is an automated message. Please do not reply directly to this email.</p>
      <p>&copy; %s Recruitment. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`, statusColor, u.CandidateName, u.JobTitle, u.Company, u.Status, u.JobTitle, u.Company,
		outcome, sender, sender, u.Company)
}

func invitePlainText(inv Invite) string {
	return fmt.Sprintf(`Dear %s,

You have been invited to an interview session.

Event: %s
Description: %s
Date & Time: %s - %s %s
Meeting Link: %s

Please join the meeting using the link above at the scheduled time.

Thank you,
Recruitment Team
`, inv.CandidateName, inv.Summary, inv.Description,
		inv.Start.Format("Monday, January 2, 2006 at 3:04 PM"),
		inv.End.Format("3:04 PM"), inv.Timezone, inv.MeetLink)
}

func inviteHTML(inv Invite) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
    body { font-family: Arial, Helvetica, sans-serif; color: #333; line-height: 1.6; margin: 0; padding: 0; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9f9f9; }
    .header { background-color: #007bff; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
    .content { background-color: white; padding: 20px; border-radius: 0 0 5px 5px; box-shadow: 0 2px 5px rgba(0,0,0,0.1); }
    .meeting-details { margin: 20px 0; padding: 15px; background-color: #f1f1f1; border-radius: 5px; }
    .meeting-link { padding: 10px; background-color: #e9f5ff; border-radius: 5px; margin: 15px 0; }
</style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>Interview Invitation</h1></div>
    <div class="content">
      <h2>Dear %s,</h2>
      <p>You have been invited to an interview session.</p>
      <div class="meeting-details">
        <p><strong>Event:</strong> %s</p>
        <p><strong>Description:</strong> %s</p>
        <p><strong>Date &amp; Time:</strong> %s - %s %s</p>
      </div>
      <div class="meeting-link">
        <p><strong>Meeting Link:</strong></p>
        <p><a href="%s" target="_blank">%s</a></p>
        <p>Please click the link above at the scheduled time to join the meeting.</p>
      </div>
      <p>Please ensure you are in a quiet environment with stable internet connectivity. Have your resume and any relevant materials ready for discussion.</p>
      <p>Thank you,<br>Recruitment Team</p>
    </div>
  </div>
</body>
</html>`, inv.CandidateName, inv.Summary, inv.Description,
		inv.Start.Format("Monday, January 2, 2006 at 3:04 PM"),
		inv.End.Format("3:04 PM"), inv.Timezone, inv.MeetLink, inv.MeetLink)
}
