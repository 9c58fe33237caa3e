package statisticapimodels

import (
	"time"

	apimodels "komreq-backend/models/api"
	dbmodels "komreq-backend/models/db"
)

type StatisticFilter struct {
	apimodels.Period
}

type StatusStatisticView struct {
	StatusID          uint     `json:"status_id"`
	StatusName        string   `json:"status_name"`
	Date              string   `json:"date"`
	CountRequests     int64    `json:"count_requests"`
	AvgCompletionDays *float64 `json:"avg_completion_days,omitempty"`
}

func StatusStatisticConvert(rec dbmodels.StatusStatistic) StatusStatisticView {
	result := StatusStatisticView{
		StatusID:          rec.StatusID,
		Date:              rec.Date.Format(apimodels.DateLayout),
		CountRequests:     rec.CountRequests,
		AvgCompletionDays: rec.AvgCompletionDays,
	}
	if rec.Status != nil {
		result.StatusName = rec.Status.Name
	}
	return result
}

type RequestStatusView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsFinal     bool   `json:"is_final"`
	OrderNum    int    `json:"order_num"`
}

func RequestStatusConvert(rec dbmodels.RequestStatus) RequestStatusView {
	return RequestStatusView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		IsFinal:     rec.IsFinal,
		OrderNum:    rec.OrderNum,
	}
}

// Day начало суток в UTC
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
