package initializers

import (
	"ats-backend/config"
	"ats-backend/lib/smtp"

	log "github.com/sirupsen/logrus"
)

func InitSmtp() {
	conf := config.Conf.Smtp
	if err := smtp.Connect(conf.User, conf.Password, conf.Host, conf.Port, *conf.TLSEnabled); err != nil {
		panic(err.Error())
	}
	if !smtp.Enabled() {
		log.Warn("SMTP is not configured, allocation e-mails are skipped")
		return
	}
	log.WithField("host", conf.Host).Info("SMTP client initialized")
}
