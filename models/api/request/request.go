package requestapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"komreq-backend/models"
	apimodels "komreq-backend/models/api"
)

type RequestCreateData struct {
	EquipmentTypeID  uint                   `json:"equipment_type_id"`
	Quantity         int                    `json:"quantity"`
	Priority         models.RequestPriority `json:"priority"`       // по умолчанию Medium
	ClientUserID     string                 `json:"client_user_id"` // клиент, от имени которого создается заявка
	TargetCompletion *time.Time             `json:"target_completion"`
	Comments         string                 `json:"comments"`
}

func (r RequestCreateData) Validate() error {
	if r.EquipmentTypeID == 0 {
		return errors.New("не указан тип оборудования")
	}
	if r.Quantity < 1 {
		return errors.New("количество должно быть не меньше 1")
	}
	if r.Priority != "" && !r.Priority.IsValid() {
		return errors.New("указан неизвестный приоритет")
	}
	return nil
}

func (r RequestCreateData) GetPriority() models.RequestPriority {
	if r.Priority == "" {
		return models.PriorityMedium
	}
	return r.Priority
}

// RequestUpdateData заполненные поля обновляются
type RequestUpdateData struct {
	Quantity         *int                    `json:"quantity"`
	Priority         *models.RequestPriority `json:"priority"`
	Comments         *string                 `json:"comments"`
	TargetCompletion *time.Time              `json:"target_completion"`
}

func (r RequestUpdateData) Validate() error {
	if r.Quantity != nil && *r.Quantity < 1 {
		return errors.New("количество должно быть не меньше 1")
	}
	if r.Priority != nil && !r.Priority.IsValid() {
		return errors.New("указан неизвестный приоритет")
	}
	return nil
}

type ChangeStatusData struct {
	StatusID uint   `json:"status_id"`
	Comment  string `json:"comment"`
}

func (r ChangeStatusData) Validate() error {
	if r.StatusID == 0 {
		return errors.New("не указан статус")
	}
	return nil
}

type AssignData struct {
	UserID string          `json:"user_id"`
	Role   models.UserRole `json:"role"`
}

func (r AssignData) Validate() error {
	if r.UserID == "" {
		return errors.New("не указан пользователь")
	}
	if !r.Role.IsRequestRole() {
		return errors.New("на заявку можно назначить только менеджера или техника")
	}
	return nil
}

type CommentData struct {
	Comment string `json:"comment"`
}

func (r CommentData) Validate() error {
	if strings.TrimSpace(r.Comment) == "" {
		return errors.New("комментарий не может быть пустым")
	}
	return nil
}

type UploadFileData struct {
	FileName       string
	ContentType    string
	Body           []byte
	Description    string
	IsConfidential bool
}

func (r UploadFileData) Validate() error {
	if r.FileName == "" || len(r.Body) == 0 {
		return errors.New("файл не загружен")
	}
	return nil
}

type RequestFilter struct {
	StatusID     uint                   `json:"status_id" query:"status_id"`
	Priority     models.RequestPriority `json:"priority" query:"priority"`
	ClientUserID string                 `json:"client_user_id" query:"client_user_id"`
	apimodels.Period
	apimodels.Pagination
}

func (r RequestFilter) Validate() error {
	if r.Priority != "" && !r.Priority.IsValid() {
		return errors.New("указан неизвестный приоритет")
	}
	return r.Period.Validate()
}
