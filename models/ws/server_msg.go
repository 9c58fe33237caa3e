package wsmodels

import dbmodels "komreq-backend/models/db"

type ServerMessage struct {
	ToUserID       string `json:"-"`
	Time           string `json:"time"`                 // время события
	Code           string `json:"code"`                 // код события (тип уведомления)
	Msg            string `json:"msg"`                  // текст события
	RequestID      *uint  `json:"request_id,omitempty"` // заявка
	NotificationID uint   `json:"notification_id"`
}

func NewServerMessage(rec dbmodels.Notification) ServerMessage {
	return ServerMessage{
		ToUserID:       rec.UserID,
		Time:           rec.SentDate.Format("02.01.2006 15:04:05"),
		Code:           string(rec.Type),
		Msg:            rec.Message,
		RequestID:      rec.RequestID,
		NotificationID: rec.ID,
	}
}
