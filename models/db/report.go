package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"komreq-backend/models"
)

type Report struct {
	BaseIntModel
	GeneratedByUserID string            `gorm:"type:varchar(36);index"`
	ReportType        models.ReportType `gorm:"type:varchar(20)"`
	Parameters        ReportParameters  `gorm:"type:jsonb"`
	FilePath          string            `gorm:"type:varchar(500)"`
	GeneratedAt       time.Time
}

// ReportParameters фильтр, по которому сформирован отчет
type ReportParameters struct {
	StatusID     *uint      `json:"status_id,omitempty"`
	Priority     string     `json:"priority,omitempty"`
	ClientUserID string     `json:"client_user_id,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	RowCount     int        `json:"row_count"`
}

func (j ReportParameters) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *ReportParameters) Scan(value any) error {
	return scanJSON(value, j)
}
