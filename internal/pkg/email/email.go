package email

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/teamtrack/teamtrack-backend-go/internal/config"
)

const maxRetries = 3

// EmailService defines the interface for sending notification emails
type EmailService interface {
	SendLeaveDecision(to, employeeName, leaveType, startDate, endDate, status string) error
}

type emailServiceImpl struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
	tmpl   *template.Template
}

var leaveDecisionTemplate = template.Must(template.New("leave_decision").Parse(`<html>
<body style="font-family: sans-serif;">
  <p>Hi {{.EmployeeName}},</p>
  <p>Your {{.LeaveType}} leave request from <b>{{.StartDate}}</b> to <b>{{.EndDate}}</b> has been <b>{{.Status}}</b>.</p>
  <p>Open the employee portal for details.</p>
</body>
</html>`))

// NewEmailService creates a new email service instance. When no SMTP host is
// configured the service logs and drops every message instead of sending.
func NewEmailService(cfg config.SMTPConfig) EmailService {
	svc := &emailServiceImpl{cfg: cfg, tmpl: leaveDecisionTemplate}
	if cfg.Host != "" {
		svc.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return svc
}

type leaveDecisionEmailData struct {
	EmployeeName string
	LeaveType    string
	StartDate    string
	EndDate      string
	Status       string
}

// SendLeaveDecision notifies an employee that their leave request was decided
func (s *emailServiceImpl) SendLeaveDecision(to, employeeName, leaveType, startDate, endDate, status string) error {
	data := leaveDecisionEmailData{
		EmployeeName: employeeName,
		LeaveType:    leaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       status,
	}

	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := fmt.Sprintf("Leave Request %s", status)
	return s.sendHTML(to, subject, body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.dialer == nil {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := s.dialer.DialAndSend(msg)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
