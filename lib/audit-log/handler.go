package auditloghandler

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"komreq-backend/db"
	auditlogstore "komreq-backend/lib/audit-log/store"
	"komreq-backend/models"
	auditlogapimodels "komreq-backend/models/api/audit-log"
	dbmodels "komreq-backend/models/db"
)

// операции аудита, действие пишется как <ОПЕРАЦИЯ>_<Сущность>
const (
	OpCreate       = "CREATE"
	OpUpdate       = "UPDATE"
	OpDelete       = "DELETE"
	OpChangeStatus = "CHANGE_STATUS"
	OpComment      = "COMMENT"
	OpLogin        = "LOGIN"
)

// сущности аудита
const (
	EntityRequests           = "Requests"
	EntityRequestAssignments = "RequestAssignments"
	EntityRequestFiles       = "RequestFiles"
	EntityEquipmentTypes     = "EquipmentTypes"
	EntityUsers              = "Users"
	EntityReports            = "Reports"
)

func ActionName(op, entity string) string {
	return fmt.Sprintf("%s_%s", op, entity)
}

func NewRecord(caller models.Caller, op, entity string, entityID any, details dbmodels.EntityChanges) dbmodels.AuditLog {
	return dbmodels.AuditLog{
		UserID:     caller.UserID,
		Action:     ActionName(op, entity),
		EntityType: entity,
		EntityID:   fmt.Sprint(entityID),
		Details:    details,
		IpAddress:  caller.IP,
		Timestamp:  time.Now().UTC(),
	}
}

type Provider interface {
	List(filter auditlogapimodels.AuditLogFilter) (list []auditlogapimodels.AuditLogView, rowCount int64, err error)
	Get(id uint) (auditlogapimodels.AuditLogView, error)
	Save(rec dbmodels.AuditLog)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: auditlogstore.NewInstance(db.DB),
	}
}

type impl struct {
	store auditlogstore.Provider
}

func (i impl) List(filter auditlogapimodels.AuditLogFilter) ([]auditlogapimodels.AuditLogView, int64, error) {
	list, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения журнала аудита")
	}
	result := make([]auditlogapimodels.AuditLogView, 0, len(list))
	for _, rec := range list {
		result = append(result, auditlogapimodels.AuditLogConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Get(id uint) (auditlogapimodels.AuditLogView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return auditlogapimodels.AuditLogView{}, errors.Wrap(err, "ошибка получения записи аудита")
	}
	if rec == nil {
		return auditlogapimodels.AuditLogView{}, models.NewNotFound("запись аудита не найдена")
	}
	return auditlogapimodels.AuditLogConvert(*rec), nil
}

// Save запись аудита вне транзакции, ошибка только логируется
func (i impl) Save(rec dbmodels.AuditLog) {
	_, err := i.store.Create(rec)
	if err != nil {
		log.WithError(err).
			WithField("action", rec.Action).
			WithField("entity_id", rec.EntityID).
			Error("ошибка сохранения записи аудита")
	}
}
