package auditlogapimodels

import (
	"time"

	apimodels "komreq-backend/models/api"
	dbmodels "komreq-backend/models/db"
)

type AuditLogFilter struct {
	UserID string `json:"user_id" query:"user_id"`
	Action string `json:"action" query:"action"` // поиск по вхождению
	apimodels.Period
	apimodels.Pagination
}

func (r AuditLogFilter) Validate() error {
	return r.Period.Validate()
}

type AuditLogView struct {
	ID           uint                   `json:"id"`
	UserID       string                 `json:"user_id"`
	UserName     string                 `json:"user_name"`
	UserFullName string                 `json:"user_full_name"`
	Action       string                 `json:"action"`
	EntityID     string                 `json:"entity_id"`
	EntityType   string                 `json:"entity_type"`
	Details      dbmodels.EntityChanges `json:"details"`
	IpAddress    string                 `json:"ip_address"`
	Timestamp    time.Time              `json:"timestamp"`
}

func AuditLogConvert(rec dbmodels.AuditLog) AuditLogView {
	result := AuditLogView{
		ID:         rec.ID,
		UserID:     rec.UserID,
		Action:     rec.Action,
		EntityID:   rec.EntityID,
		EntityType: rec.EntityType,
		Details:    rec.Details,
		IpAddress:  rec.IpAddress,
		Timestamp:  rec.Timestamp,
	}
	if rec.User != nil {
		result.UserName = rec.User.UserName
		result.UserFullName = rec.User.FullName
	}
	return result
}
