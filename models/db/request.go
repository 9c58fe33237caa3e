package dbmodels

import (
	"time"

	"komreq-backend/models"
)

type Request struct {
	BaseIntModel
	CreatorID        string                 `gorm:"type:varchar(36);index"`
	Creator          *User                  `gorm:"foreignKey:CreatorID"`
	EquipmentTypeID  uint                   `gorm:"index"`
	EquipmentType    *EquipmentType         `gorm:"foreignKey:EquipmentTypeID"`
	Quantity         int                    `gorm:"check:quantity >= 1"`
	Priority         models.RequestPriority `gorm:"type:varchar(20);default:Medium"`
	CreatedDate      time.Time              `gorm:"index"`
	TargetCompletion *time.Time
	ManagerID        *string                `gorm:"type:varchar(36);index"`
	Manager          *User                  `gorm:"foreignKey:ManagerID"`
	CurrentStatusID  uint                   `gorm:"index;default:1"`
	CurrentStatus    *RequestStatus         `gorm:"foreignKey:CurrentStatusID"`
	StatusChangedAt  time.Time
	Comments         string                 `gorm:"type:text"`
	IsActive         bool                   `gorm:"default:true;index"`
	Assignments      []RequestAssignment    `gorm:"foreignKey:RequestID"`
}

func (r Request) IsManager(userID string) bool {
	return r.ManagerID != nil && *r.ManagerID == userID
}

// IsAssigned пользователь назначен на заявку (в любой роли)
func (r Request) IsAssigned(userID string) bool {
	for _, item := range r.Assignments {
		if item.UserID == userID {
			return true
		}
	}
	return false
}

func (r Request) IsAssignedAs(userID string, role models.UserRole) bool {
	for _, item := range r.Assignments {
		if item.UserID == userID && item.RoleInRequest == role {
			return true
		}
	}
	return false
}

func (r Request) GetStatusName() string {
	if r.CurrentStatus == nil {
		return ""
	}
	return r.CurrentStatus.Name
}

func (r Request) GetEquipmentName() string {
	if r.EquipmentType == nil {
		return ""
	}
	return r.EquipmentType.Name
}
