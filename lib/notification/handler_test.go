package notificationhandler

import (
	"testing"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"
	"komreq-backend/models"
	notificationapimodels "komreq-backend/models/api/notification"
	dbmodels "komreq-backend/models/db"
	wsmodels "komreq-backend/models/ws"
)

type fakeStore struct {
	list      []dbmodels.Notification
	delivered map[uint]models.DeliveryStatus
}

func (f *fakeStore) Create(rec dbmodels.Notification) (uint, error) {
	rec.ID = uint(len(f.list) + 1)
	f.list = append(f.list, rec)
	return rec.ID, nil
}

func (f *fakeStore) List(userID string, filter notificationapimodels.NotificationFilter) ([]dbmodels.Notification, int64, error) {
	result := []dbmodels.Notification{}
	for _, rec := range f.list {
		if rec.UserID != userID || (filter.UnreadOnly && rec.IsRead) {
			continue
		}
		result = append(result, rec)
	}
	return result, int64(len(result)), nil
}

func (f *fakeStore) MarkRead(userID string, id uint) (bool, error) {
	for idx, rec := range f.list {
		if rec.ID == id && rec.UserID == userID {
			f.list[idx].IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) MarkAllRead(userID string) error {
	for idx, rec := range f.list {
		if rec.UserID == userID {
			f.list[idx].IsRead = true
		}
	}
	return nil
}

func (f *fakeStore) SetDeliveryStatus(ids []uint, status models.DeliveryStatus) error {
	for _, id := range ids {
		f.delivered[id] = status
	}
	return nil
}

func (f *fakeStore) ListPending(sentBefore time.Time, limit int) ([]dbmodels.Notification, error) {
	return nil, nil
}

func (f *fakeStore) ListPendingByUser(userID string) ([]dbmodels.Notification, error) {
	return nil, nil
}

type fakeHub struct {
	connected map[string]bool
	sent      []wsmodels.ServerMessage
}

func (f *fakeHub) AddClient(userID string, conn *websocket.Conn)    {}
func (f *fakeHub) DeleteClient(userID string, conn *websocket.Conn) {}
func (f *fakeHub) SendClose(userID string)                          {}

func (f *fakeHub) SendMessage(msg wsmodels.ServerMessage) bool {
	f.sent = append(f.sent, msg)
	return true
}

func (f *fakeHub) IsConnected(userID string) bool {
	return f.connected[userID]
}

func TestPush(t *testing.T) {
	store := &fakeStore{delivered: map[uint]models.DeliveryStatus{}}
	hub := &fakeHub{connected: map[string]bool{"online": true}}
	h := NewInstance(store, hub)

	requestID := uint(3)
	h.Push([]dbmodels.Notification{
		{BaseIntModel: dbmodels.BaseIntModel{ID: 1}, UserID: "online", RequestID: &requestID, Type: models.NotificationComment, Message: "Новый комментарий"},
		{BaseIntModel: dbmodels.BaseIntModel{ID: 2}, UserID: "offline", RequestID: &requestID, Type: models.NotificationComment},
	})
	require.Len(t, hub.sent, 1)
	require.Equal(t, "online", hub.sent[0].ToUserID)
	require.Equal(t, uint(1), hub.sent[0].NotificationID)
	require.Equal(t, "Comment", hub.sent[0].Code)
	require.Equal(t, models.DeliverySent, store.delivered[1])
	_, ok := store.delivered[2]
	require.False(t, ok)
}

func TestMarkRead(t *testing.T) {
	store := &fakeStore{delivered: map[uint]models.DeliveryStatus{}}
	h := NewInstance(store, nil)
	_, _ = store.Create(dbmodels.Notification{UserID: "u1", Message: "a"})
	_, _ = store.Create(dbmodels.Notification{UserID: "u1", Message: "b"})
	_, _ = store.Create(dbmodels.Notification{UserID: "u2", Message: "c"})

	t.Run("foreign notification", func(t *testing.T) {
		err := h.MarkRead("u2", 1)
		require.True(t, models.IsErrorKind(err, models.NotFoundError))
	})
	t.Run("own notification", func(t *testing.T) {
		require.NoError(t, h.MarkRead("u1", 1))
		list, rowCount, err := h.List("u1", notificationapimodels.NotificationFilter{UnreadOnly: true})
		require.NoError(t, err)
		require.Equal(t, int64(1), rowCount)
		require.Equal(t, "b", list[0].Message)
	})
	t.Run("all", func(t *testing.T) {
		require.NoError(t, h.MarkAllRead("u1"))
		_, rowCount, err := h.List("u1", notificationapimodels.NotificationFilter{UnreadOnly: true})
		require.NoError(t, err)
		require.Zero(t, rowCount)
		_, rowCount, err = h.List("u2", notificationapimodels.NotificationFilter{UnreadOnly: true})
		require.NoError(t, err)
		require.Equal(t, int64(1), rowCount)
	})
}
