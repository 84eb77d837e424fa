package notify

import (
	"gopkg.in/gomail.v2"
)

// Mailer delivers transactional mail over SMTP. Constructed once at process
// start and shared read-only; the dialer opens a connection per send.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(host string, port int, username, password, from string) *Mailer {
	d := gomail.NewDialer(host, port, username, password)
	d.SSL = port == 465
	return &Mailer{dialer: d, from: from}
}

func (m *Mailer) send(to, toName, subject, text, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetAddressHeader("To", to, toName)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)
	return m.dialer.DialAndSend(msg)
}
