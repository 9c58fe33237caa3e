package emailworker

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"komreq-backend/config"
	"komreq-backend/db"
	notificationstore "komreq-backend/lib/notification/store"
	"komreq-backend/lib/smtp"
	baseworker "komreq-backend/lib/utils/base-worker"
	"komreq-backend/lib/utils/helpers"
	"komreq-backend/models"
	dbmodels "komreq-backend/models/db"
)

const batchSize = 50

func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("notificationEmailWorker", 30*time.Second, time.Duration(config.Conf.Notification.EmailIntervalSec)*time.Second),
		store:    notificationstore.NewInstance(db.DB),
		sender:   smtp.Instance,
		delay:    time.Duration(config.Conf.Notification.EmailDelaySec) * time.Second,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	store  notificationstore.Provider
	sender smtp.Provider
	delay  time.Duration
}

// отправка на почту уведомлений, не доставленных через ws
func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.store.ListPending(time.Now().Add(-i.delay), batchSize)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка уведомлений для отправки")
		return
	}
	sent, failed := i.deliver(ctx, list)
	if err = i.store.SetDeliveryStatus(sent, models.DeliverySent); err != nil {
		logger.WithError(err).Error("ошибка обновления статуса доставки")
	}
	if err = i.store.SetDeliveryStatus(failed, models.DeliveryFailed); err != nil {
		logger.WithError(err).Error("ошибка обновления статуса доставки")
	}
	if len(list) > 0 {
		logger.
			WithField("sent", len(sent)).
			WithField("failed", len(failed)).
			Info("уведомления отправлены на почту")
	}
}

func (i impl) deliver(ctx context.Context, list []dbmodels.Notification) (sent, failed []uint) {
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			return sent, failed
		}
		if rec.User == nil || rec.User.Email == "" || !rec.User.IsActive {
			failed = append(failed, rec.ID)
			continue
		}
		err := i.sender.SendEMail(rec.User.Email, subject(rec), rec.Message)
		if err != nil {
			log.WithError(err).
				WithField("notification_id", rec.ID).
				Warn("ошибка отправки уведомления на почту")
			failed = append(failed, rec.ID)
			continue
		}
		sent = append(sent, rec.ID)
	}
	return sent, failed
}

func subject(rec dbmodels.Notification) string {
	if rec.RequestID != nil {
		return fmt.Sprintf("Заявка #%d", *rec.RequestID)
	}
	return "Уведомление"
}
