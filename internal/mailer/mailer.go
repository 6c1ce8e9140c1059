package mailer

import (
	"fmt"
	"strconv"

	gomail "gopkg.in/gomail.v2"

	"github.com/lacantina/turnos-api/internal/config"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
	site   string
}

func New(cfg *config.Config) *Mailer {
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}

	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.MailFrom,
		site:   cfg.SiteURL,
	}
}

// SendInvite mails the invitation link that lets the employee set a
// password and activate the account.
func (m *Mailer) SendInvite(email, fullName, token string) error {
	link := fmt.Sprintf("%s/auth/confirm?type=invite&token=%s", m.site, token)

	name := fullName
	if name == "" {
		name = email
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Invitación al sistema de turnos")
	msg.SetBody("text/html", fmt.Sprintf(
		`<p>Hola %s,</p>
<p>Te invitaron al sistema de turnos. Activá tu cuenta acá:</p>
<p><a href="%s">%s</a></p>
<p>El enlace vence en 7 días.</p>`,
		name, link, link,
	))

	return m.dialer.DialAndSend(msg)
}
