package connectionhub

import (
	"sync"

	"komreq-backend/db"
	notificationstore "komreq-backend/lib/notification/store"
	"komreq-backend/models"
	wsmodels "komreq-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string, conn *websocket.Conn)
	SendMessage(msg wsmodels.ServerMessage) bool
	SendClose(userID string)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
		store:   notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession //map[userID]
	store   notificationstore.Provider
}

// DeleteClient удаляет сессию, если она еще принадлежит этому соединению
func (i *impl) DeleteClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	sess, ok := i.clients[userID]
	ok = ok && sess.conn == conn
	if ok {
		delete(i.clients, userID)
	}
	i.mu.Unlock()
	if !ok {
		return
	}
	sess.stop()
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	oldSess, ok := i.clients[userID]
	i.clients[userID] = newSession(conn)
	i.mu.Unlock()
	if ok {
		oldSess.stop()
	}
	go i.sendDelayedMessages(userID)
}

// SendMessage ставит сообщение в очередь сессии, false - пользователь не подключен или очередь заполнена
func (i *impl) SendMessage(msg wsmodels.ServerMessage) bool {
	i.mu.RLock()
	sess, ok := i.clients[msg.ToUserID]
	i.mu.RUnlock()
	if !ok {
		return false
	}
	return sess.enqueue(msg)
}

func (i *impl) SendClose(userID string) {
	i.mu.RLock()
	sess, ok := i.clients[userID]
	i.mu.RUnlock()
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.RLock()
	sess, ok := i.clients[userID]
	i.mu.RUnlock()
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

// отправка уведомлений, созданных пока пользователь был не в сети
func (i *impl) sendDelayedMessages(userID string) {
	logger := log.WithField("user_id", userID)
	list, err := i.store.ListPendingByUser(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка не отправленных уведомлений")
		return
	}
	sendedIDs := []uint{}
	for _, item := range list {
		if !i.IsConnected(userID) {
			break
		}
		if i.SendMessage(wsmodels.NewServerMessage(item)) {
			sendedIDs = append(sendedIDs, item.ID)
		}
	}
	if len(sendedIDs) > 0 {
		err = i.store.SetDeliveryStatus(sendedIDs, models.DeliverySent)
		if err != nil {
			logger.WithError(err).Error("ошибка обновления статуса отправленных уведомлений")
		}
	}
}
