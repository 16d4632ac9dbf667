package mailer

import (
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends mail through a fixed SMTP transport. Single attempt per
// call, no queueing.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	dialer := gomail.NewDialer(host, port, username, password)
	// Port 465 speaks TLS from the first byte (smtps), not STARTTLS.
	dialer.SSL = port == 465

	return &SMTPMailer{
		dialer: dialer,
		from:   from,
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "TicketBoom")
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}
