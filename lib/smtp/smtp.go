package smtp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	SendEMail(from, to, message, subject string) error
}

// Connect configures the mail client. Without a host every send is skipped with a warning.
func Connect(user, password, host, port string, tlsEnabled bool) error {
	if host != "" {
		if _, err := strconv.Atoi(port); err != nil {
			return errors.Errorf("invalid smtp port %q", port)
		}
	}
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		tlsEnabled: tlsEnabled,
	}
	return nil
}

// Enabled reports whether the client can deliver mail.
func Enabled() bool {
	i, ok := Instance.(*impl)
	return ok && i.configured()
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
}

func (i impl) SendEMail(from, to, message, subject string) (err error) {
	logger := log.
		WithField("sender", from).
		WithField("to", to)
	if !i.configured() {
		logger.Warn("e-mail not sent, smtp client is not configured")
		return nil
	}
	sendTo := []string{
		to,
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	body := strings.NewReader(buildMessage(from, to, subject, message))

	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.user, sendTo, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.user, sendTo, body)
	}
	if err != nil {
		logger.WithError(err).Error("e-mail send failed")
		return err
	}
	logger.Info("e-mail sent")
	return nil
}

func (i impl) configured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func buildMessage(from, to, subject, message string) string {
	mimeHeaders := "MIME-version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n"
	return fmt.Sprintf("To: %s\r\nSubject: ATS - %s\r\n%s\r\n%s\r\n\r\nSent by: %s\r\n", to, subject, mimeHeaders, message, from)
}

// Recorder keeps sent mail in memory.
type Recorder struct {
	Sent []Mail
}

type Mail struct {
	From    string
	To      string
	Subject string
	Message string
}

func (r *Recorder) SendEMail(from, to, message, subject string) error {
	r.Sent = append(r.Sent, Mail{From: from, To: to, Subject: subject, Message: message})
	return nil
}
