package requesthandler

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	auditloghandler "komreq-backend/lib/audit-log"
	"komreq-backend/models"
	requestapimodels "komreq-backend/models/api/request"
	dbmodels "komreq-backend/models/db"
)

func (i impl) Create(caller models.Caller, data requestapimodels.RequestCreateData) (id uint, err error) {
	err = i.inTx(caller, func(scope *txScope) error {
		equipment, err := scope.EquipmentType.GetByID(data.EquipmentTypeID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения типа оборудования")
		}
		if equipment == nil || !equipment.IsActive {
			return models.NewNotFound("тип оборудования не найден")
		}
		creatorID, err := scope.resolveCreator(data.ClientUserID)
		if err != nil {
			return err
		}
		rec := dbmodels.Request{
			CreatorID:        creatorID,
			EquipmentTypeID:  equipment.ID,
			Quantity:         data.Quantity,
			Priority:         data.GetPriority(),
			CreatedDate:      scope.now,
			TargetCompletion: data.TargetCompletion,
			CurrentStatusID:  models.StatusNew,
			StatusChangedAt:  scope.now,
			Comments:         data.Comments,
			IsActive:         true,
		}
		if caller.IsSupervisor() {
			managerID := caller.UserID
			rec.ManagerID = &managerID
		}
		id, err = scope.Request.Create(rec)
		if err != nil {
			return errors.Wrap(err, "ошибка создания заявки")
		}
		err = scope.history(dbmodels.RequestHistory{
			RequestID:    id,
			NewStatusID:  models.StatusNew,
			Comment:      "Заявка создана",
			FieldChanged: models.HistoryFieldStatus,
		})
		if err != nil {
			return err
		}
		err = scope.notify(creatorID, id, models.NotificationStatusChange, fmt.Sprintf("Заявка #%v создана", id))
		if err != nil {
			return err
		}
		changes := dbmodels.EntityChanges{}
		changes.Add("equipment_type_id", nil, rec.EquipmentTypeID)
		changes.Add("quantity", nil, rec.Quantity)
		changes.Add("priority", nil, rec.Priority)
		changes.Add("creator_id", nil, rec.CreatorID)
		if err = scope.audit(auditloghandler.OpCreate, auditloghandler.EntityRequests, id, changes); err != nil {
			return err
		}
		return scope.recount(models.StatusNew)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// resolveCreator клиент, от имени которого создается заявка
func (s *txScope) resolveCreator(clientUserID string) (string, error) {
	if clientUserID == "" || clientUserID == s.caller.UserID {
		return s.caller.UserID, nil
	}
	if !s.caller.IsSupervisor() {
		return "", models.NewForbidden("создать заявку от имени другого клиента может только менеджер")
	}
	client, err := s.User.GetByID(clientUserID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения клиента")
	}
	if client == nil || !client.IsActive {
		return "", models.NewNotFound("клиент не найден")
	}
	if !client.HasRole(models.ClientRole) {
		return "", models.NewValidation("пользователь %v не является клиентом", client.UserName)
	}
	return client.ID, nil
}

func (i impl) Update(caller models.Caller, id uint, data requestapimodels.RequestUpdateData) error {
	return i.inTx(caller, func(scope *txScope) error {
		rec, err := scope.activeRequest(id)
		if err != nil {
			return err
		}
		if !rec.IsManager(caller.UserID) {
			return models.NewForbidden("изменять заявку может только ее менеджер")
		}
		updMap := map[string]interface{}{}
		changes := dbmodels.EntityChanges{}
		if data.Quantity != nil && *data.Quantity != rec.Quantity {
			updMap["quantity"] = *data.Quantity
			changes.Add("quantity", rec.Quantity, *data.Quantity)
		}
		if data.Priority != nil && *data.Priority != rec.Priority {
			updMap["priority"] = *data.Priority
			changes.Add("priority", rec.Priority, *data.Priority)
		}
		if data.Comments != nil && *data.Comments != rec.Comments {
			updMap["comments"] = *data.Comments
			changes.Add("comments", rec.Comments, *data.Comments)
		}
		if data.TargetCompletion != nil && (rec.TargetCompletion == nil || !data.TargetCompletion.Equal(*rec.TargetCompletion)) {
			updMap["target_completion"] = *data.TargetCompletion
			changes.Add("target_completion", rec.TargetCompletion, *data.TargetCompletion)
		}
		if len(updMap) == 0 {
			return nil
		}
		if err = scope.Request.Update(id, updMap); err != nil {
			return errors.Wrap(err, "ошибка обновления заявки")
		}
		if err = scope.detailsHistory(*rec, models.HistoryFieldDetails, "Изменены данные заявки", changes); err != nil {
			return err
		}
		return scope.audit(auditloghandler.OpUpdate, auditloghandler.EntityRequests, id, changes)
	})
}

func (i impl) ChangeStatus(caller models.Caller, id uint, data requestapimodels.ChangeStatusData) error {
	return i.inTx(caller, func(scope *txScope) error {
		rec, err := scope.activeRequest(id)
		if err != nil {
			return err
		}
		newStatus, err := scope.Status.GetByID(data.StatusID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения статуса")
		}
		if newStatus == nil {
			return models.NewNotFound("статус не найден")
		}
		if err = scope.checkStatusAccess(*rec, newStatus.ID); err != nil {
			return err
		}
		oldStatus, err := scope.Status.GetByID(rec.CurrentStatusID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения текущего статуса")
		}
		if oldStatus != nil && oldStatus.IsFinal {
			return models.NewConflict("заявка в статусе «%v», изменение статуса невозможно", oldStatus.Name)
		}
		if rec.CurrentStatusID == newStatus.ID {
			return models.NewValidation("заявка уже в статусе «%v»", newStatus.Name)
		}
		oldStatusID := rec.CurrentStatusID
		updMap := map[string]interface{}{
			"current_status_id": newStatus.ID,
			"status_changed_at": scope.now,
		}
		if err = scope.Request.Update(id, updMap); err != nil {
			return errors.Wrap(err, "ошибка изменения статуса заявки")
		}
		changes := dbmodels.EntityChanges{Description: data.Comment}
		changes.Add("current_status_id", oldStatusID, newStatus.ID)
		err = scope.history(dbmodels.RequestHistory{
			RequestID:    id,
			OldStatusID:  &oldStatusID,
			NewStatusID:  newStatus.ID,
			Comment:      data.Comment,
			FieldChanged: models.HistoryFieldStatus,
			Changes:      changes,
		})
		if err != nil {
			return err
		}
		message := fmt.Sprintf("Статус заявки #%v изменен на «%v»", id, newStatus.Name)
		if err = scope.notify(rec.CreatorID, id, models.NotificationStatusChange, message); err != nil {
			return err
		}
		if err = scope.audit(auditloghandler.OpChangeStatus, auditloghandler.EntityRequests, id, changes); err != nil {
			return err
		}
		return scope.recount(newStatus.ID, oldStatusID)
	})
}

// checkStatusAccess техник меняет статус только на назначенной заявке и только на допустимые
func (s *txScope) checkStatusAccess(rec dbmodels.Request, statusID uint) error {
	if s.caller.IsSupervisor() {
		return nil
	}
	if !s.caller.HasRole(models.TechnicianRole) {
		return models.NewForbidden("нет прав на изменение статуса")
	}
	assigned, err := s.Assignment.Exists(rec.ID, s.caller.UserID, models.TechnicianRole)
	if err != nil {
		return errors.Wrap(err, "ошибка проверки назначения")
	}
	if !assigned {
		return models.NewForbidden("техник не назначен на заявку")
	}
	if !models.IsTechnicianStatus(statusID) {
		return models.NewForbidden("техник может перевести заявку только в статусы «В работе» и «Доработка»")
	}
	return nil
}

func (i impl) AssignUser(caller models.Caller, id uint, data requestapimodels.AssignData) error {
	return i.inTx(caller, func(scope *txScope) error {
		rec, err := scope.activeRequest(id)
		if err != nil {
			return err
		}
		if !rec.IsManager(caller.UserID) && !caller.HasRole(models.AdminRole) {
			return models.NewForbidden("назначать сотрудников может только менеджер заявки или администратор")
		}
		user, err := scope.User.GetByID(data.UserID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения пользователя")
		}
		if user == nil || !user.IsActive {
			return models.NewNotFound("пользователь не найден")
		}
		if !user.HasRole(data.Role) {
			return models.NewValidation("у пользователя %v нет роли «%v»", user.UserName, data.Role.ToHuman())
		}
		exists, err := scope.Assignment.Exists(id, user.ID, data.Role)
		if err != nil {
			return errors.Wrap(err, "ошибка проверки назначения")
		}
		if exists {
			return models.NewConflict("пользователь %v уже назначен на заявку", user.UserName)
		}
		assignmentID, err := scope.Assignment.Create(dbmodels.RequestAssignment{
			RequestID:     id,
			UserID:        user.ID,
			RoleInRequest: data.Role,
			AssignedDate:  scope.now,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка назначения на заявку")
		}
		if data.Role == models.ManagerRole && rec.ManagerID == nil {
			if err = scope.Request.Update(id, map[string]interface{}{"manager_id": user.ID}); err != nil {
				return errors.Wrap(err, "ошибка назначения менеджера заявки")
			}
		}
		changes := dbmodels.EntityChanges{}
		changes.Add("user_id", nil, user.ID)
		changes.Add("role_in_request", nil, data.Role)
		comment := fmt.Sprintf("Назначен %v: %v", data.Role.ToHuman(), user.GetFullName())
		if err = scope.detailsHistory(*rec, models.HistoryFieldAssignment, comment, changes); err != nil {
			return err
		}
		message := fmt.Sprintf("Вы назначены на заявку #%v (%v)", id, data.Role.ToHuman())
		if err = scope.notify(user.ID, id, models.NotificationAssignment, message); err != nil {
			return err
		}
		return scope.audit(auditloghandler.OpCreate, auditloghandler.EntityRequestAssignments, assignmentID, changes)
	})
}

func (i impl) UploadFile(ctx context.Context, caller models.Caller, id uint, data requestapimodels.UploadFileData) (fileID uint, err error) {
	rec, err := i.stores.Request.GetByID(id)
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения заявки")
	}
	if rec == nil || !rec.IsActive {
		return 0, models.NewNotFound("заявка не найдена")
	}
	if !caller.IsStaff() {
		return 0, models.NewForbidden("нет прав на загрузку файлов")
	}
	if caller.IsOnlyTechnician() && !rec.IsAssignedAs(caller.UserID, models.TechnicianRole) {
		return 0, models.NewForbidden("техник не назначен на заявку")
	}
	path, err := i.fileStore.Save(ctx, data.FileName, bytes.NewReader(data.Body), int64(len(data.Body)), data.ContentType)
	if err != nil {
		return 0, errors.Wrap(err, "ошибка сохранения файла")
	}
	err = i.inTx(caller, func(scope *txScope) error {
		fileID, err = scope.File.Create(dbmodels.RequestFile{
			RequestID:        id,
			FilePath:         path,
			FileName:         data.FileName,
			FileType:         data.ContentType,
			FileSize:         int64(len(data.Body)),
			Description:      data.Description,
			UploadedByUserID: caller.UserID,
			UploadedDate:     scope.now,
			IsConfidential:   data.IsConfidential,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения данных файла")
		}
		changes := dbmodels.EntityChanges{Description: data.Description}
		changes.Add("file_name", nil, data.FileName)
		if err = scope.detailsHistory(*rec, models.HistoryFieldFile, fmt.Sprintf("Добавлен файл %v", data.FileName), changes); err != nil {
			return err
		}
		if err = scope.notify(fileAddedRecipient(*rec, data.IsConfidential, caller.UserID), id, models.NotificationFileAdded,
			fmt.Sprintf("К заявке #%v добавлен файл %v", id, data.FileName)); err != nil {
			return err
		}
		return scope.audit(auditloghandler.OpCreate, auditloghandler.EntityRequestFiles, fileID, changes)
	})
	if err != nil {
		if delErr := i.fileStore.Delete(ctx, path); delErr != nil {
			log.WithError(delErr).WithField("path", path).Warn("не удалось удалить файл после ошибки")
		}
		return 0, err
	}
	return fileID, nil
}

// fileAddedRecipient о конфиденциальном файле узнает только менеджер заявки
func fileAddedRecipient(rec dbmodels.Request, confidential bool, uploaderID string) string {
	if !confidential {
		return rec.CreatorID
	}
	if rec.ManagerID == nil || *rec.ManagerID == uploaderID {
		return ""
	}
	return *rec.ManagerID
}

func (i impl) AddComment(caller models.Caller, id uint, data requestapimodels.CommentData) error {
	return i.inTx(caller, func(scope *txScope) error {
		rec, err := scope.activeRequest(id)
		if err != nil {
			return err
		}
		assignments, err := scope.Assignment.ListByRequest(id)
		if err != nil {
			return errors.Wrap(err, "ошибка получения назначений заявки")
		}
		rec.Assignments = assignments
		if rec.CreatorID != caller.UserID && !rec.IsManager(caller.UserID) && !rec.IsAssigned(caller.UserID) {
			return models.NewForbidden("комментировать может только автор, менеджер или исполнитель заявки")
		}
		changes := dbmodels.EntityChanges{Description: data.Comment}
		if err = scope.detailsHistory(*rec, models.HistoryFieldComment, data.Comment, changes); err != nil {
			return err
		}
		message := fmt.Sprintf("Новый комментарий к заявке #%v: %v", id, data.Comment)
		for _, userID := range commentRecipients(*rec, caller.UserID) {
			if err = scope.notify(userID, id, models.NotificationComment, message); err != nil {
				return err
			}
		}
		return scope.audit(auditloghandler.OpComment, auditloghandler.EntityRequests, id, changes)
	})
}

// commentRecipients автор, менеджер и назначенные техники, каждый один раз, без автора комментария
func commentRecipients(rec dbmodels.Request, commenterID string) []string {
	candidates := []string{rec.CreatorID}
	if rec.ManagerID != nil {
		candidates = append(candidates, *rec.ManagerID)
	}
	for _, item := range rec.Assignments {
		if item.RoleInRequest == models.TechnicianRole {
			candidates = append(candidates, item.UserID)
		}
	}
	seen := map[string]bool{commenterID: true}
	result := make([]string, 0, len(candidates))
	for _, userID := range candidates {
		if userID == "" || seen[userID] {
			continue
		}
		seen[userID] = true
		result = append(result, userID)
	}
	return result
}

func (i impl) Delete(caller models.Caller, id uint) error {
	if !caller.HasRole(models.AdminRole) {
		return models.NewForbidden("удалять заявки может только администратор")
	}
	return i.inTx(caller, func(scope *txScope) error {
		rec, err := scope.activeRequest(id)
		if err != nil {
			return err
		}
		if err = scope.Request.Update(id, map[string]interface{}{"is_active": false}); err != nil {
			return errors.Wrap(err, "ошибка удаления заявки")
		}
		changes := dbmodels.EntityChanges{}
		changes.Add("is_active", true, false)
		if err = scope.audit(auditloghandler.OpDelete, auditloghandler.EntityRequests, id, changes); err != nil {
			return err
		}
		return scope.recount(rec.CurrentStatusID)
	})
}
