package dbmodels

import (
	"time"

	"komreq-backend/models"
)

type RequestHistory struct {
	BaseIntModel
	RequestID    uint                `gorm:"index"`
	OldStatusID  *uint
	OldStatus    *RequestStatus      `gorm:"foreignKey:OldStatusID"`
	NewStatusID  uint
	NewStatus    *RequestStatus      `gorm:"foreignKey:NewStatusID"`
	ChangedByID  string              `gorm:"type:varchar(36)"`
	ChangedBy    *User               `gorm:"foreignKey:ChangedByID"`
	ChangeDate   time.Time           `gorm:"index"`
	Comment      string              `gorm:"type:text"`
	FieldChanged models.HistoryField `gorm:"type:varchar(50)"`
	Changes      EntityChanges       `gorm:"type:jsonb"`
}

func (RequestHistory) TableName() string {
	return "request_histories"
}
