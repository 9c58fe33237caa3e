package notificationhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"komreq-backend/db"
	notificationstore "komreq-backend/lib/notification/store"
	connectionhub "komreq-backend/lib/ws/hub/connection-hub"
	"komreq-backend/models"
	notificationapimodels "komreq-backend/models/api/notification"
	dbmodels "komreq-backend/models/db"
	wsmodels "komreq-backend/models/ws"
)

// Pusher отправка созданных уведомлений подключенным пользователям
type Pusher interface {
	Push(list []dbmodels.Notification)
}

type Provider interface {
	Pusher
	List(userID string, filter notificationapimodels.NotificationFilter) ([]notificationapimodels.NotificationView, int64, error)
	MarkRead(userID string, id uint) error
	MarkAllRead(userID string) error
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(notificationstore.NewInstance(db.DB), connectionhub.Instance)
}

func NewInstance(store notificationstore.Provider, hub connectionhub.Provider) Provider {
	return impl{
		store: store,
		hub:   hub,
	}
}

type impl struct {
	store notificationstore.Provider
	hub   connectionhub.Provider
}

func (i impl) List(userID string, filter notificationapimodels.NotificationFilter) ([]notificationapimodels.NotificationView, int64, error) {
	list, rowCount, err := i.store.List(userID, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка уведомлений")
	}
	result := make([]notificationapimodels.NotificationView, 0, len(list))
	for _, rec := range list {
		result = append(result, notificationapimodels.NotificationConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) MarkRead(userID string, id uint) error {
	found, err := i.store.MarkRead(userID, id)
	if err != nil {
		return errors.Wrap(err, "ошибка обновления уведомления")
	}
	if !found {
		return models.NewNotFound("уведомление не найдено")
	}
	return nil
}

func (i impl) MarkAllRead(userID string) error {
	err := i.store.MarkAllRead(userID)
	if err != nil {
		return errors.Wrap(err, "ошибка обновления уведомлений")
	}
	return nil
}

// Push вызывается после фиксации транзакции
func (i impl) Push(list []dbmodels.Notification) {
	if i.hub == nil || len(list) == 0 {
		return
	}
	sendedIDs := make([]uint, 0, len(list))
	for _, rec := range list {
		if !i.hub.IsConnected(rec.UserID) {
			continue
		}
		if i.hub.SendMessage(wsmodels.NewServerMessage(rec)) {
			sendedIDs = append(sendedIDs, rec.ID)
		}
	}
	if err := i.store.SetDeliveryStatus(sendedIDs, models.DeliverySent); err != nil {
		log.WithError(err).Error("ошибка обновления статуса доставки уведомлений")
	}
}
