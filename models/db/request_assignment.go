package dbmodels

import (
	"time"

	"komreq-backend/models"
)

type RequestAssignment struct {
	BaseIntModel
	RequestID     uint            `gorm:"uniqueIndex:idx_request_assignment"`
	UserID        string          `gorm:"type:varchar(36);uniqueIndex:idx_request_assignment"`
	User          *User           `gorm:"foreignKey:UserID"`
	RoleInRequest models.UserRole `gorm:"type:varchar(50);uniqueIndex:idx_request_assignment"`
	AssignedDate  time.Time
	CompletedDate *time.Time
}
