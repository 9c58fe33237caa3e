package reportapimodels

import (
	"time"

	"komreq-backend/models"
	dbmodels "komreq-backend/models/db"
)

type ReportFile struct {
	FileName    string
	ContentType string
	Body        []byte
}

type ReportView struct {
	ID          uint                      `json:"id"`
	ReportType  models.ReportType         `json:"report_type"`
	Parameters  dbmodels.ReportParameters `json:"parameters"`
	FilePath    string                    `json:"file_path"`
	GeneratedBy string                    `json:"generated_by"`
	GeneratedAt time.Time                 `json:"generated_at"`
}

func ReportConvert(rec dbmodels.Report) ReportView {
	return ReportView{
		ID:          rec.ID,
		ReportType:  rec.ReportType,
		Parameters:  rec.Parameters,
		FilePath:    rec.FilePath,
		GeneratedBy: rec.GeneratedByUserID,
		GeneratedAt: rec.GeneratedAt,
	}
}
