package notify

import (
	"fmt"
	"net/smtp"
	"regexp"

	"agronomy-services-api-server/config"
)

var emailRecipient = regexp.MustCompile(`^(.+)@(.+)$`)

// EmailChannel delivers intents over SMTP.
type EmailChannel struct {
	cfg config.SMTPConfig
}

func NewEmailChannel(cfg config.SMTPConfig) *EmailChannel {
	return &EmailChannel{cfg: cfg}
}

func (c *EmailChannel) IsValid(recipient string) bool {
	return emailRecipient.MatchString(recipient)
}

func (c *EmailChannel) Deliver(intent Intent) error {
	subject, body := Render(intent)

	msg := []byte(fmt.Sprintf(
		"From: Aaron Agronomy Services <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		c.cfg.From, intent.Recipient, subject, body))

	auth := smtp.PlainAuth("", c.cfg.From, c.cfg.Password, c.cfg.Host)
	return smtp.SendMail(c.cfg.Host+":"+c.cfg.Port, auth, c.cfg.From, []string{intent.Recipient}, msg)
}
