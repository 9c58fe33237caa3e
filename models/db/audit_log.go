package dbmodels

import "time"

type AuditLog struct {
	BaseIntModel
	UserID     string        `gorm:"type:varchar(36);index"`
	User       *User         `gorm:"foreignKey:UserID"`
	Action     string        `gorm:"type:varchar(100);index"`
	EntityType string        `gorm:"type:varchar(100)"`
	EntityID   string        `gorm:"type:varchar(36)"`
	Details    EntityChanges `gorm:"type:jsonb"`
	IpAddress  string        `gorm:"type:varchar(50)"`
	Timestamp  time.Time     `gorm:"index"`
}
