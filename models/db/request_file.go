package dbmodels

import "time"

type RequestFile struct {
	BaseIntModel
	RequestID        uint   `gorm:"index"`
	FilePath         string `gorm:"type:varchar(500)"`
	FileName         string `gorm:"type:varchar(255)"`
	FileType         string `gorm:"type:varchar(255)"`
	FileSize         int64
	Description      string
	UploadedByUserID string `gorm:"type:varchar(36)"`
	UploadedBy       *User  `gorm:"foreignKey:UploadedByUserID"`
	UploadedDate     time.Time
	IsConfidential   bool
}
