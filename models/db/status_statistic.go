package dbmodels

import "time"

type StatusStatistic struct {
	BaseIntModel
	StatusID          uint           `gorm:"uniqueIndex:idx_status_statistic_day"`
	Status            *RequestStatus `gorm:"foreignKey:StatusID"`
	Date              time.Time      `gorm:"type:date;uniqueIndex:idx_status_statistic_day"`
	CountRequests     int64
	AvgCompletionDays *float64 `gorm:"type:numeric(10,2)"`
}
