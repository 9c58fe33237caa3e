package dbmodels

import "time"

type EquipmentType struct {
	BaseIntModel
	Name           string    `gorm:"type:varchar(150);uniqueIndex"`
	Description    string    `gorm:"type:text"`
	Specifications string    `gorm:"type:jsonb;default:'{}'"`
	Price          float64   `gorm:"type:numeric(10,2)"`
	IsActive       bool      `gorm:"default:true"`
	CreatedAt      time.Time `gorm:"index"`
}
