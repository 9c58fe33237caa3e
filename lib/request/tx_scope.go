package requesthandler

import (
	"time"

	"github.com/pkg/errors"
	auditloghandler "komreq-backend/lib/audit-log"
	statusstatistichandler "komreq-backend/lib/status-statistic"
	"komreq-backend/models"
	dbmodels "komreq-backend/models/db"
)

// txScope побочные записи операции внутри одной транзакции
type txScope struct {
	Stores
	caller        models.Caller
	now           time.Time
	notifications []dbmodels.Notification
}

// inTx созданные уведомления отправляются по ws только после фиксации транзакции
func (i impl) inTx(caller models.Caller, fn func(scope *txScope) error) error {
	var created []dbmodels.Notification
	err := i.runTx(func(stores Stores) error {
		scope := &txScope{
			Stores: stores,
			caller: caller,
			now:    i.now(),
		}
		if err := fn(scope); err != nil {
			return err
		}
		created = scope.notifications
		return nil
	})
	if err != nil {
		return err
	}
	if i.pusher != nil {
		i.pusher.Push(created)
	}
	return nil
}

// activeRequest заявка для изменения, удаленная считается отсутствующей
func (s *txScope) activeRequest(id uint) (*dbmodels.Request, error) {
	rec, err := s.Request.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения заявки")
	}
	if rec == nil || !rec.IsActive {
		return nil, models.NewNotFound("заявка не найдена")
	}
	return rec, nil
}

func (s *txScope) history(rec dbmodels.RequestHistory) error {
	rec.ChangedByID = s.caller.UserID
	rec.ChangeDate = s.now
	if _, err := s.History.Create(rec); err != nil {
		return errors.Wrap(err, "ошибка записи истории заявки")
	}
	return nil
}

// detailsHistory запись истории без смены статуса, старый и новый статус совпадают
func (s *txScope) detailsHistory(req dbmodels.Request, field models.HistoryField, comment string, changes dbmodels.EntityChanges) error {
	return s.history(dbmodels.RequestHistory{
		RequestID:    req.ID,
		OldStatusID:  &req.CurrentStatusID,
		NewStatusID:  req.CurrentStatusID,
		Comment:      comment,
		FieldChanged: field,
		Changes:      changes,
	})
}

// notify пустой userID означает, что уведомлять некого
func (s *txScope) notify(userID string, requestID uint, nType models.NotificationType, message string) error {
	if userID == "" {
		return nil
	}
	rec := dbmodels.Notification{
		UserID:         userID,
		RequestID:      &requestID,
		Type:           nType,
		Message:        message,
		SentDate:       s.now,
		DeliveryStatus: models.DeliveryPending,
	}
	id, err := s.Notification.Create(rec)
	if err != nil {
		return errors.Wrap(err, "ошибка создания уведомления")
	}
	rec.ID = id
	s.notifications = append(s.notifications, rec)
	return nil
}

func (s *txScope) audit(op, entity string, entityID any, details dbmodels.EntityChanges) error {
	rec := auditloghandler.NewRecord(s.caller, op, entity, entityID, details)
	rec.Timestamp = s.now
	if _, err := s.Audit.Create(rec); err != nil {
		return errors.Wrap(err, "ошибка записи аудита")
	}
	return nil
}

// recount пересчет статистики за текущий день по статусам
func (s *txScope) recount(statusIDs ...uint) error {
	done := make(map[uint]bool, len(statusIDs))
	for _, statusID := range statusIDs {
		if done[statusID] {
			continue
		}
		done[statusID] = true
		status, err := s.Status.GetByID(statusID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения статуса")
		}
		if status == nil {
			continue
		}
		err = statusstatistichandler.Recount(s.Request, s.Statistic, *status, s.now)
		if err != nil {
			return errors.Wrap(err, "ошибка пересчета статистики")
		}
	}
	return nil
}
