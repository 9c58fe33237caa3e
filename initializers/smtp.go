package initializers

import (
	log "github.com/sirupsen/logrus"
	"komreq-backend/config"
	"komreq-backend/lib/smtp"
)

func InitSmtp() {
	err := smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, *config.Conf.Smtp.TLSEnabled)
	if err != nil {
		panic(err.Error())
	}
	if !smtp.Instance.IsConfigured() {
		log.Warn("SMTP не настроен, уведомления на почту отправляться не будут")
	}
}
