package notify

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/adamspd/InterviewCoach/models"
	"github.com/adamspd/InterviewCoach/utils"
)

// LoadEmailConfig loads email configuration from environment
func LoadEmailConfig() *models.EmailConfig {
	return &models.EmailConfig{
		SMTPHost:    utils.GetEnvOrDefault("SMTP_HOST", ""),
		SMTPPort:    utils.GetEnvInt("SMTP_PORT", 465),
		Username:    utils.GetEnvOrDefault("SMTP_USERNAME", ""),
		Password:    utils.GetEnvOrDefault("SMTP_PASSWORD", ""),
		FromAddress: utils.GetEnvOrDefault("FROM_EMAIL", "noreply@localhost"),
		FromName:    utils.GetEnvOrDefault("FROM_NAME", "Interview Coach"),
	}
}

// EmailService handles email sending
type EmailService struct {
	config *models.EmailConfig
}

func NewEmailService(config *models.EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// BuildReportEmail renders a finished interview's feedback report as a plain
// text email.
func (es *EmailService) BuildReportEmail(report *models.FeedbackReport) (string, string) {
	subject := fmt.Sprintf("Your interview feedback: %s", report.OverallGrade)

	var b strings.Builder
	fmt.Fprintf(&b, "Interview complete! You earned a %s.\n\n", report.OverallGrade)
	fmt.Fprintf(&b, "Overall score: %.1f%%\n", report.OverallScore)
	fmt.Fprintf(&b, "Stages completed: %d/4\n", report.StagesCompleted)
	fmt.Fprintf(&b, "Time: %.1f minutes\n", report.TotalTimeMinutes)
	fmt.Fprintf(&b, "Hints used: %d\n", report.HintsUsed)

	if len(report.KeyStrengths) > 0 {
		b.WriteString("\nKey strengths:\n")
		for _, s := range report.KeyStrengths {
			fmt.Fprintf(&b, "  + %s\n", s)
		}
	}
	if len(report.KeyImprovements) > 0 {
		b.WriteString("\nAreas for improvement:\n")
		for _, s := range report.KeyImprovements {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}
	if len(report.NextSteps) > 0 {
		b.WriteString("\nNext steps:\n")
		for _, s := range report.NextSteps {
			fmt.Fprintf(&b, "  * %s\n", s)
		}
	}
	fmt.Fprintf(&b, "\nRecommended difficulty for your next problem: %s\n", report.DifficultyRecommendation)

	return subject, b.String()
}

func (es *EmailService) SendEmail(to, subject, body string) error {
	if es.config.SMTPHost == "" || es.config.Username == "" || es.config.Password == "" {
		utils.LogInfo("SMTP not configured, logging email instead")
		utils.LogInfo("=== EMAIL ===")
		utils.LogInfo("To: %s", to)
		utils.LogInfo("Subject: %s", subject)
		utils.LogInfo("Body: %s", body)
		utils.LogInfo("=============")
		return nil
	}

	return es.sendEmail(to, subject, body)
}

// sendEmail sends an email using SMTP with SSL support
func (es *EmailService) sendEmail(to, subject, body string) error {
	utils.LogInfo("Sending email to %s: %s", to, subject)

	message := fmt.Sprintf("From: %s <%s>\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", es.config.FromName, es.config.FromAddress, to, subject, body)

	addr := fmt.Sprintf("%s:%d", es.config.SMTPHost, es.config.SMTPPort)

	var conn net.Conn
	var err error

	if es.config.SMTPPort == 465 {
		// Port 465 uses implicit SSL (SMTPS)
		utils.LogDebug("Connecting to SMTP server %s with SSL", addr)
		tlsConfig := &tls.Config{
			ServerName: es.config.SMTPHost,
		}
		conn, err = tls.Dial("tcp", addr, tlsConfig)
		if err != nil {
			utils.LogError("Failed to establish SSL connection to %s: %v", addr, err)
			return err
		}
	} else {
		// Port 587 or 25 uses plain connection with STARTTLS
		utils.LogDebug("Connecting to SMTP server %s (plain)", addr)
		conn, err = net.Dial("tcp", addr)
		if err != nil {
			utils.LogError("Failed to connect to %s: %v", addr, err)
			return err
		}
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, es.config.SMTPHost)
	if err != nil {
		utils.LogError("Failed to create SMTP client: %v", err)
		return err
	}
	defer client.Quit()

	if es.config.SMTPPort != 465 {
		if ok, _ := client.Extension("STARTTLS"); ok {
			tlsConfig := &tls.Config{
				ServerName: es.config.SMTPHost,
			}
			if err = client.StartTLS(tlsConfig); err != nil {
				utils.LogError("Failed to start TLS: %v", err)
				return err
			}
		}
	}

	auth := smtp.PlainAuth("", es.config.Username, es.config.Password, es.config.SMTPHost)
	if err = client.Auth(auth); err != nil {
		utils.LogError("SMTP authentication failed: %v", err)
		return err
	}

	if err = client.Mail(es.config.FromAddress); err != nil {
		utils.LogError("Failed to set sender: %v", err)
		return err
	}

	if err = client.Rcpt(to); err != nil {
		utils.LogError("Failed to set recipient: %v", err)
		return err
	}

	writer, err := client.Data()
	if err != nil {
		utils.LogError("Failed to open data writer: %v", err)
		return err
	}
	defer writer.Close()

	if _, err = writer.Write([]byte(message)); err != nil {
		utils.LogError("Failed to write message: %v", err)
		return err
	}

	utils.LogInfo("Email sent successfully to %s", to)
	return nil
}
