package requestapimodels

import (
	"time"

	"komreq-backend/models"
	dbmodels "komreq-backend/models/db"
)

// RequestView представление заявки, зависит от роли пользователя
type RequestView interface {
	GetID() uint
}

// ClientRequestView заявка глазами клиента, без данных о сотрудниках
type ClientRequestView struct {
	ID               uint                   `json:"id"`
	EquipmentName    string                 `json:"equipment_name"`
	Quantity         int                    `json:"quantity"`
	Priority         models.RequestPriority `json:"priority"`
	CreatedDate      time.Time              `json:"created_date"`
	TargetCompletion *time.Time             `json:"target_completion,omitempty"`
	StatusName       string                 `json:"status_name"`
	Comments         string                 `json:"comments"`
}

func (v ClientRequestView) GetID() uint {
	return v.ID
}

// UserShort сотрудник или клиент в представлении для персонала
type UserShort struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
}

type EquipmentShort struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type StatusShort struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	IsFinal bool   `json:"is_final"`
}

type AssignmentView struct {
	UserID        string          `json:"user_id"`
	FullName      string          `json:"full_name"`
	RoleInRequest models.UserRole `json:"role_in_request"`
	AssignedDate  time.Time       `json:"assigned_date"`
}

type StaffRequestView struct {
	ID               uint                   `json:"id"`
	Creator          UserShort              `json:"creator"`
	Equipment        EquipmentShort         `json:"equipment"`
	Quantity         int                    `json:"quantity"`
	Priority         models.RequestPriority `json:"priority"`
	CreatedDate      time.Time              `json:"created_date"`
	TargetCompletion *time.Time             `json:"target_completion,omitempty"`
	StatusChangedAt  time.Time              `json:"status_changed_at"`
	Status           StatusShort            `json:"status"`
	Manager          *UserShort             `json:"manager,omitempty"`
	Assignments      []AssignmentView       `json:"assignments"`
	Comments         string                 `json:"comments"`
}

func (v StaffRequestView) GetID() uint {
	return v.ID
}

func ClientRequestConvert(rec dbmodels.Request) ClientRequestView {
	return ClientRequestView{
		ID:               rec.ID,
		EquipmentName:    rec.GetEquipmentName(),
		Quantity:         rec.Quantity,
		Priority:         rec.Priority,
		CreatedDate:      rec.CreatedDate,
		TargetCompletion: rec.TargetCompletion,
		StatusName:       rec.GetStatusName(),
		Comments:         rec.Comments,
	}
}

func StaffRequestConvert(rec dbmodels.Request) StaffRequestView {
	result := StaffRequestView{
		ID:               rec.ID,
		Creator:          userShort(rec.CreatorID, rec.Creator),
		Quantity:         rec.Quantity,
		Priority:         rec.Priority,
		CreatedDate:      rec.CreatedDate,
		TargetCompletion: rec.TargetCompletion,
		StatusChangedAt:  rec.StatusChangedAt,
		Status:           StatusShort{ID: rec.CurrentStatusID},
		Assignments:      make([]AssignmentView, 0, len(rec.Assignments)),
		Comments:         rec.Comments,
	}
	if rec.EquipmentType != nil {
		result.Equipment = EquipmentShort{
			ID:    rec.EquipmentType.ID,
			Name:  rec.EquipmentType.Name,
			Price: rec.EquipmentType.Price,
		}
	} else {
		result.Equipment = EquipmentShort{ID: rec.EquipmentTypeID}
	}
	if rec.CurrentStatus != nil {
		result.Status.Name = rec.CurrentStatus.Name
		result.Status.IsFinal = rec.CurrentStatus.IsFinal
	}
	if rec.ManagerID != nil {
		manager := userShort(*rec.ManagerID, rec.Manager)
		result.Manager = &manager
	}
	for _, item := range rec.Assignments {
		short := userShort(item.UserID, item.User)
		result.Assignments = append(result.Assignments, AssignmentView{
			UserID:        item.UserID,
			FullName:      short.FullName,
			RoleInRequest: item.RoleInRequest,
			AssignedDate:  item.AssignedDate,
		})
	}
	return result
}

func userShort(id string, rec *dbmodels.User) UserShort {
	result := UserShort{ID: id}
	if rec != nil {
		result.FullName = rec.GetFullName()
		result.Email = rec.Email
	}
	return result
}

// HistoryView запись истории, зависит от роли пользователя
type HistoryView interface {
	GetID() uint
}

type ClientHistoryView struct {
	ID         uint      `json:"id"`
	StatusName string    `json:"status_name"`
	ChangeDate time.Time `json:"change_date"`
	Comment    string    `json:"comment"`
}

func (v ClientHistoryView) GetID() uint {
	return v.ID
}

type StaffHistoryView struct {
	ID           uint                   `json:"id"`
	OldStatus    *StatusShort           `json:"old_status,omitempty"`
	NewStatus    StatusShort            `json:"new_status"`
	ChangedBy    UserShort              `json:"changed_by"`
	ChangeDate   time.Time              `json:"change_date"`
	Comment      string                 `json:"comment"`
	FieldChanged models.HistoryField    `json:"field_changed"`
	Changes      dbmodels.EntityChanges `json:"changes"`
}

func (v StaffHistoryView) GetID() uint {
	return v.ID
}

func ClientHistoryConvert(rec dbmodels.RequestHistory) ClientHistoryView {
	result := ClientHistoryView{
		ID:         rec.ID,
		ChangeDate: rec.ChangeDate,
		Comment:    rec.Comment,
	}
	if rec.NewStatus != nil {
		result.StatusName = rec.NewStatus.Name
	}
	return result
}

func StaffHistoryConvert(rec dbmodels.RequestHistory) StaffHistoryView {
	result := StaffHistoryView{
		ID:           rec.ID,
		NewStatus:    statusShort(rec.NewStatusID, rec.NewStatus),
		ChangedBy:    userShort(rec.ChangedByID, rec.ChangedBy),
		ChangeDate:   rec.ChangeDate,
		Comment:      rec.Comment,
		FieldChanged: rec.FieldChanged,
		Changes:      rec.Changes,
	}
	if rec.OldStatusID != nil {
		oldStatus := statusShort(*rec.OldStatusID, rec.OldStatus)
		result.OldStatus = &oldStatus
	}
	return result
}

func statusShort(id uint, rec *dbmodels.RequestStatus) StatusShort {
	result := StatusShort{ID: id}
	if rec != nil {
		result.Name = rec.Name
		result.IsFinal = rec.IsFinal
	}
	return result
}

type FileView struct {
	ID             uint      `json:"id"`
	FileName       string    `json:"file_name"`
	FileType       string    `json:"file_type"`
	FileSize       int64     `json:"file_size"`
	Description    string    `json:"description"`
	UploadedBy     UserShort `json:"uploaded_by"`
	UploadedDate   time.Time `json:"uploaded_date"`
	IsConfidential bool      `json:"is_confidential"`
}

func FileConvert(rec dbmodels.RequestFile) FileView {
	return FileView{
		ID:             rec.ID,
		FileName:       rec.FileName,
		FileType:       rec.FileType,
		FileSize:       rec.FileSize,
		Description:    rec.Description,
		UploadedBy:     userShort(rec.UploadedByUserID, rec.UploadedBy),
		UploadedDate:   rec.UploadedDate,
		IsConfidential: rec.IsConfidential,
	}
}
