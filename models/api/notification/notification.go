package notificationapimodels

import (
	"time"

	"komreq-backend/models"
	apimodels "komreq-backend/models/api"
	dbmodels "komreq-backend/models/db"
)

type NotificationFilter struct {
	UnreadOnly bool `json:"unread_only" query:"unread_only"`
	apimodels.Pagination
}

type NotificationView struct {
	ID             uint                    `json:"id"`
	RequestID      *uint                   `json:"request_id,omitempty"`
	Type           models.NotificationType `json:"type"`
	Message        string                  `json:"message"`
	SentDate       time.Time               `json:"sent_date"`
	IsRead         bool                    `json:"is_read"`
	DeliveryStatus models.DeliveryStatus   `json:"delivery_status"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:             rec.ID,
		RequestID:      rec.RequestID,
		Type:           rec.Type,
		Message:        rec.Message,
		SentDate:       rec.SentDate,
		IsRead:         rec.IsRead,
		DeliveryStatus: rec.DeliveryStatus,
	}
}
