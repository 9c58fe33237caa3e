package dbmodels

import (
	"time"

	"komreq-backend/models"
)

type Notification struct {
	BaseIntModel
	UserID         string                  `gorm:"type:varchar(36);index"`
	User           *User                   `gorm:"foreignKey:UserID"`
	RequestID      *uint                   `gorm:"index"`
	Type           models.NotificationType `gorm:"type:varchar(50)"`
	Message        string                  `gorm:"type:text"`
	SentDate       time.Time               `gorm:"index"`
	IsRead         bool
	DeliveryStatus models.DeliveryStatus   `gorm:"type:varchar(20);default:Pending;index"`
}
