package requesthandler

import (
	"context"
	"time"

	"github.com/pkg/errors"
	filestorage "komreq-backend/lib/file-storage"
	notificationhandler "komreq-backend/lib/notification"
	requeststore "komreq-backend/lib/request/store"
	"komreq-backend/models"
	requestapimodels "komreq-backend/models/api/request"
	dbmodels "komreq-backend/models/db"
)

type Provider interface {
	Create(caller models.Caller, data requestapimodels.RequestCreateData) (id uint, err error)
	Update(caller models.Caller, id uint, data requestapimodels.RequestUpdateData) error
	ChangeStatus(caller models.Caller, id uint, data requestapimodels.ChangeStatusData) error
	AssignUser(caller models.Caller, id uint, data requestapimodels.AssignData) error
	UploadFile(ctx context.Context, caller models.Caller, id uint, data requestapimodels.UploadFileData) (fileID uint, err error)
	ListFiles(caller models.Caller, id uint) ([]requestapimodels.FileView, error)
	GetFile(ctx context.Context, caller models.Caller, id, fileID uint) (body []byte, file requestapimodels.FileView, err error)
	AddComment(caller models.Caller, id uint, data requestapimodels.CommentData) error
	Get(caller models.Caller, id uint) (requestapimodels.RequestView, error)
	List(caller models.Caller, filter requestapimodels.RequestFilter) (list []requestapimodels.RequestView, rowCount int64, err error)
	History(caller models.Caller, id uint) ([]requestapimodels.HistoryView, error)
	Delete(caller models.Caller, id uint) error
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(defaultStores(), defaultTxRunner(), filestorage.Instance, notificationhandler.Instance)
}

func NewInstance(stores Stores, runTx TxRunner, fileStore filestorage.Provider, pusher notificationhandler.Pusher) Provider {
	return impl{
		stores:    stores,
		runTx:     runTx,
		fileStore: fileStore,
		pusher:    pusher,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

type impl struct {
	stores    Stores
	runTx     TxRunner
	fileStore filestorage.Provider
	pusher    notificationhandler.Pusher
	now       func() time.Time
}

// VisibilityScope ограничение списка заявок по ролям пользователя
func VisibilityScope(caller models.Caller) requeststore.Scope {
	switch {
	case caller.IsSupervisor():
		return requeststore.Scope{}
	case caller.HasRole(models.TechnicianRole):
		return requeststore.Scope{AssignedUserID: caller.UserID}
	default:
		return requeststore.Scope{CreatorID: caller.UserID}
	}
}

func canView(caller models.Caller, rec dbmodels.Request) bool {
	if caller.IsSupervisor() {
		return true
	}
	if caller.HasRole(models.TechnicianRole) && rec.IsAssigned(caller.UserID) {
		return true
	}
	return rec.CreatorID == caller.UserID
}

func requestView(caller models.Caller, rec dbmodels.Request) requestapimodels.RequestView {
	if caller.IsStaff() {
		return requestapimodels.StaffRequestConvert(rec)
	}
	return requestapimodels.ClientRequestConvert(rec)
}

// getVisible активная заявка, доступная пользователю
func (i impl) getVisible(caller models.Caller, id uint) (*dbmodels.Request, error) {
	rec, err := i.stores.Request.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения заявки")
	}
	if rec == nil || !rec.IsActive {
		return nil, models.NewNotFound("заявка не найдена")
	}
	if !canView(caller, *rec) {
		return nil, models.NewForbidden("нет доступа к заявке")
	}
	return rec, nil
}

func (i impl) Get(caller models.Caller, id uint) (requestapimodels.RequestView, error) {
	rec, err := i.getVisible(caller, id)
	if err != nil {
		return nil, err
	}
	return requestView(caller, *rec), nil
}

func (i impl) List(caller models.Caller, filter requestapimodels.RequestFilter) ([]requestapimodels.RequestView, int64, error) {
	list, rowCount, err := i.stores.Request.List(filter, VisibilityScope(caller))
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка заявок")
	}
	result := make([]requestapimodels.RequestView, 0, len(list))
	for _, rec := range list {
		result = append(result, requestView(caller, rec))
	}
	return result, rowCount, nil
}

// History история сохраняется и после удаления заявки, удаленные видят менеджеры и администраторы
func (i impl) History(caller models.Caller, id uint) ([]requestapimodels.HistoryView, error) {
	rec, err := i.stores.Request.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения заявки")
	}
	if rec == nil || (!rec.IsActive && !caller.IsSupervisor()) {
		return nil, models.NewNotFound("заявка не найдена")
	}
	if !canView(caller, *rec) {
		return nil, models.NewForbidden("нет доступа к заявке")
	}
	list, err := i.stores.History.ListByRequest(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения истории заявки")
	}
	result := make([]requestapimodels.HistoryView, 0, len(list))
	for _, item := range list {
		if caller.IsStaff() {
			result = append(result, requestapimodels.StaffHistoryConvert(item))
		} else if item.FieldChanged.IsClientVisible() {
			result = append(result, requestapimodels.ClientHistoryConvert(item))
		}
	}
	return result, nil
}

func (i impl) ListFiles(caller models.Caller, id uint) ([]requestapimodels.FileView, error) {
	if _, err := i.getVisible(caller, id); err != nil {
		return nil, err
	}
	list, err := i.stores.File.List(id, caller.IsStaff())
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка файлов")
	}
	result := make([]requestapimodels.FileView, 0, len(list))
	for _, rec := range list {
		result = append(result, requestapimodels.FileConvert(rec))
	}
	return result, nil
}

func (i impl) GetFile(ctx context.Context, caller models.Caller, id, fileID uint) ([]byte, requestapimodels.FileView, error) {
	if _, err := i.getVisible(caller, id); err != nil {
		return nil, requestapimodels.FileView{}, err
	}
	rec, err := i.stores.File.GetByID(id, fileID)
	if err != nil {
		return nil, requestapimodels.FileView{}, errors.Wrap(err, "ошибка получения файла")
	}
	if rec == nil || (rec.IsConfidential && !caller.IsStaff()) {
		return nil, requestapimodels.FileView{}, models.NewNotFound("файл не найден")
	}
	body, err := i.fileStore.Get(ctx, rec.FilePath)
	if err != nil {
		if errors.Is(err, filestorage.ErrFileNotFound) {
			return nil, requestapimodels.FileView{}, models.NewNotFound("файл не найден в хранилище")
		}
		return nil, requestapimodels.FileView{}, errors.Wrap(err, "ошибка чтения файла")
	}
	return body, requestapimodels.FileConvert(*rec), nil
}
