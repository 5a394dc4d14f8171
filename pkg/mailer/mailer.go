package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"food-marketplace/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// sendTimeout bounds the whole SMTP exchange. gomail only puts a
// deadline on the dial, not on the conversation after it.
const sendTimeout = 30 * time.Second

// Mailer sends transactional emails over SMTP
type Mailer interface {
	SendOTP(to, code string, expiryMinutes int) error
	SendVendorApproval(to, vendorName string, approved bool) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.Logger
}

func NewMailer(config utils.EmailConfig, log *zap.Logger) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(config.Host, config.Port, config.User, config.Password),
		from:   config.From,
		log:    log.With(zap.String("component", "mailer")),
	}
}

var otpTemplate = template.Must(template.New("otp").Parse(`
<p>Hello,</p>
<p>Your verification code is:</p>
<h2 style="letter-spacing:4px">{{.Code}}</h2>
<p>The code expires in {{.ExpiryMinutes}} minutes. If you did not request it, ignore this email.</p>
`))

var approvalTemplate = template.Must(template.New("approval").Parse(`
<p>Hello,</p>
{{if .Approved}}
<p>Congratulations! Your restaurant <strong>{{.VendorName}}</strong> has been approved. Your menu is now visible on the marketplace.</p>
{{else}}
<p>We are sorry. Your restaurant <strong>{{.VendorName}}</strong> is not currently eligible to publish its menu on our marketplace.</p>
{{end}}
`))

func (m *smtpMailer) SendOTP(to, code string, expiryMinutes int) error {
	var body bytes.Buffer
	err := otpTemplate.Execute(&body, map[string]any{
		"Code":          code,
		"ExpiryMinutes": expiryMinutes,
	})
	if err != nil {
		return fmt.Errorf("render OTP email: %w", err)
	}

	return m.send(to, "Your login verification code", body.String())
}

func (m *smtpMailer) SendVendorApproval(to, vendorName string, approved bool) error {
	var body bytes.Buffer
	err := approvalTemplate.Execute(&body, map[string]any{
		"VendorName": vendorName,
		"Approved":   approved,
	})
	if err != nil {
		return fmt.Errorf("render approval email: %w", err)
	}

	subject := "Congratulations! Your restaurant has been approved."
	if !approved {
		subject = "Your restaurant is not eligible for our marketplace."
	}

	return m.send(to, subject, body.String())
}

func (m *smtpMailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	err := sendWithTimeout(func() error {
		return m.dialer.DialAndSend(msg)
	}, sendTimeout)
	if err != nil {
		m.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	m.log.Info("Email sent",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

func sendWithTimeout(send func() error, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() { errCh <- send() }()

	select {
	case err := <-errCh:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("timed out after %s", timeout)
	}
}
