package requesthandler

import (
	"bytes"
	"context"
	"io"
	"slices"
	"time"

	"github.com/pkg/errors"
	filestorage "komreq-backend/lib/file-storage"
	requeststore "komreq-backend/lib/request/store"
	"komreq-backend/models"
	auditlogapimodels "komreq-backend/models/api/audit-log"
	notificationapimodels "komreq-backend/models/api/notification"
	requestapimodels "komreq-backend/models/api/request"
	usersapimodels "komreq-backend/models/api/users"
	dbmodels "komreq-backend/models/db"
)

// memDB хранилище в памяти, транзакция откатывается к снимку
type memDB struct {
	requests      []dbmodels.Request
	assignments   []dbmodels.RequestAssignment
	files         []dbmodels.RequestFile
	histories     []dbmodels.RequestHistory
	notifications []dbmodels.Notification
	audits        []dbmodels.AuditLog
	statistics    []dbmodels.StatusStatistic
	users         []dbmodels.User
	equipment     []dbmodels.EquipmentType
	statuses      []dbmodels.RequestStatus

	failNotification bool
}

func newMemDB() *memDB {
	return &memDB{
		statuses: []dbmodels.RequestStatus{
			{BaseIntModel: dbmodels.BaseIntModel{ID: models.StatusNew}, Name: "Новая", OrderNum: 1},
			{BaseIntModel: dbmodels.BaseIntModel{ID: models.StatusInProcessing}, Name: "В обработке", OrderNum: 2},
			{BaseIntModel: dbmodels.BaseIntModel{ID: models.StatusInProgress}, Name: "В работе", OrderNum: 3},
			{BaseIntModel: dbmodels.BaseIntModel{ID: models.StatusAdjustment}, Name: "Доработка", OrderNum: 4},
			{BaseIntModel: dbmodels.BaseIntModel{ID: models.StatusCompleted}, Name: "Завершена", IsFinal: true, OrderNum: 5},
			{BaseIntModel: dbmodels.BaseIntModel{ID: models.StatusCancelled}, Name: "Отменена", IsFinal: true, OrderNum: 6},
		},
	}
}

func (m *memDB) clone() memDB {
	return memDB{
		requests:         slices.Clone(m.requests),
		assignments:      slices.Clone(m.assignments),
		files:            slices.Clone(m.files),
		histories:        slices.Clone(m.histories),
		notifications:    slices.Clone(m.notifications),
		audits:           slices.Clone(m.audits),
		statistics:       slices.Clone(m.statistics),
		users:            slices.Clone(m.users),
		equipment:        slices.Clone(m.equipment),
		statuses:         slices.Clone(m.statuses),
		failNotification: m.failNotification,
	}
}

func (m *memDB) stores() Stores {
	return Stores{
		Request:       fakeRequestStore{m},
		Assignment:    fakeAssignmentStore{m},
		File:          fakeFileStore{m},
		History:       fakeHistoryStore{m},
		Notification:  fakeNotificationStore{m},
		Audit:         fakeAuditStore{m},
		Statistic:     fakeStatisticStore{m},
		User:          fakeUserStore{m},
		EquipmentType: fakeEquipmentStore{m},
		Status:        fakeStatusStore{m},
	}
}

func (m *memDB) runTx(fn func(stores Stores) error) error {
	snapshot := m.clone()
	if err := fn(m.stores()); err != nil {
		*m = snapshot
		return err
	}
	return nil
}

func (m *memDB) addUser(id string, roles ...models.UserRole) {
	rec := dbmodels.User{
		BaseModel: dbmodels.BaseModel{ID: id},
		UserName:  id,
		FullName:  "User " + id,
		IsActive:  true,
	}
	for _, role := range roles {
		rec.Roles = append(rec.Roles, dbmodels.UserRoleLink{UserID: id, Role: role})
	}
	m.users = append(m.users, rec)
}

func (m *memDB) addEquipment(id uint, name string, active bool) {
	m.equipment = append(m.equipment, dbmodels.EquipmentType{
		BaseIntModel: dbmodels.BaseIntModel{ID: id},
		Name:         name,
		Price:        100,
		IsActive:     active,
	})
}

func (m *memDB) statistic(statusID uint, day time.Time) *dbmodels.StatusStatistic {
	for _, rec := range m.statistics {
		if rec.StatusID == statusID && rec.Date.Equal(day) {
			return &rec
		}
	}
	return nil
}

func (m *memDB) notificationsFor(userID string) []dbmodels.Notification {
	var result []dbmodels.Notification
	for _, rec := range m.notifications {
		if rec.UserID == userID {
			result = append(result, rec)
		}
	}
	return result
}

type fakeRequestStore struct{ m *memDB }

func (s fakeRequestStore) Create(rec dbmodels.Request) (uint, error) {
	rec.ID = uint(len(s.m.requests) + 1)
	rec.Assignments = nil
	s.m.requests = append(s.m.requests, rec)
	return rec.ID, nil
}

func (s fakeRequestStore) GetByID(id uint) (*dbmodels.Request, error) {
	for _, rec := range s.m.requests {
		if rec.ID != id {
			continue
		}
		for _, item := range s.m.equipment {
			if item.ID == rec.EquipmentTypeID {
				rec.EquipmentType = &item
			}
		}
		for _, item := range s.m.statuses {
			if item.ID == rec.CurrentStatusID {
				rec.CurrentStatus = &item
			}
		}
		rec.Assignments, _ = fakeAssignmentStore{s.m}.ListByRequest(id)
		return &rec, nil
	}
	return nil, nil
}

func (s fakeRequestStore) Update(id uint, updMap map[string]interface{}) error {
	for idx := range s.m.requests {
		rec := &s.m.requests[idx]
		if rec.ID != id {
			continue
		}
		for key, value := range updMap {
			switch key {
			case "quantity":
				rec.Quantity = value.(int)
			case "priority":
				rec.Priority = value.(models.RequestPriority)
			case "comments":
				rec.Comments = value.(string)
			case "target_completion":
				target := value.(time.Time)
				rec.TargetCompletion = &target
			case "current_status_id":
				rec.CurrentStatusID = value.(uint)
			case "status_changed_at":
				rec.StatusChangedAt = value.(time.Time)
			case "manager_id":
				managerID := value.(string)
				rec.ManagerID = &managerID
			case "is_active":
				rec.IsActive = value.(bool)
			default:
				return errors.Errorf("неизвестное поле %v", key)
			}
		}
		return nil
	}
	return errors.New("заявка не найдена")
}

func (s fakeRequestStore) ListAll(filter requestapimodels.RequestFilter, scope requeststore.Scope) ([]dbmodels.Request, error) {
	var result []dbmodels.Request
	for _, rec := range s.m.requests {
		if !rec.IsActive {
			continue
		}
		if filter.StatusID != 0 && rec.CurrentStatusID != filter.StatusID {
			continue
		}
		if filter.Priority != "" && rec.Priority != filter.Priority {
			continue
		}
		if filter.ClientUserID != "" && rec.CreatorID != filter.ClientUserID {
			continue
		}
		if scope.CreatorID != "" && rec.CreatorID != scope.CreatorID {
			continue
		}
		full, _ := s.GetByID(rec.ID)
		if scope.AssignedUserID != "" && !full.IsAssigned(scope.AssignedUserID) {
			continue
		}
		result = append(result, *full)
	}
	return result, nil
}

func (s fakeRequestStore) List(filter requestapimodels.RequestFilter, scope requeststore.Scope) ([]dbmodels.Request, int64, error) {
	list, err := s.ListAll(filter, scope)
	return list, int64(len(list)), err
}

func (s fakeRequestStore) CountActiveByStatus(statusID uint) (int64, error) {
	var count int64
	for _, rec := range s.m.requests {
		if rec.IsActive && rec.CurrentStatusID == statusID {
			count++
		}
	}
	return count, nil
}

func (s fakeRequestStore) AvgCompletionDays(statusID uint) (*float64, error) {
	var total float64
	var count int
	for _, rec := range s.m.requests {
		if rec.IsActive && rec.CurrentStatusID == statusID {
			total += rec.StatusChangedAt.Sub(rec.CreatedDate).Hours() / 24
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	avg := total / float64(count)
	return &avg, nil
}

type fakeAssignmentStore struct{ m *memDB }

func (s fakeAssignmentStore) Create(rec dbmodels.RequestAssignment) (uint, error) {
	rec.ID = uint(len(s.m.assignments) + 1)
	s.m.assignments = append(s.m.assignments, rec)
	return rec.ID, nil
}

func (s fakeAssignmentStore) Exists(requestID uint, userID string, role models.UserRole) (bool, error) {
	for _, rec := range s.m.assignments {
		if rec.RequestID == requestID && rec.UserID == userID && rec.RoleInRequest == role {
			return true, nil
		}
	}
	return false, nil
}

func (s fakeAssignmentStore) ListByRequest(requestID uint) ([]dbmodels.RequestAssignment, error) {
	var result []dbmodels.RequestAssignment
	for _, rec := range s.m.assignments {
		if rec.RequestID == requestID {
			result = append(result, rec)
		}
	}
	return result, nil
}

type fakeFileStore struct{ m *memDB }

func (s fakeFileStore) Create(rec dbmodels.RequestFile) (uint, error) {
	rec.ID = uint(len(s.m.files) + 1)
	s.m.files = append(s.m.files, rec)
	return rec.ID, nil
}

func (s fakeFileStore) GetByID(requestID, id uint) (*dbmodels.RequestFile, error) {
	for _, rec := range s.m.files {
		if rec.RequestID == requestID && rec.ID == id {
			return &rec, nil
		}
	}
	return nil, nil
}

func (s fakeFileStore) List(requestID uint, withConfidential bool) ([]dbmodels.RequestFile, error) {
	var result []dbmodels.RequestFile
	for _, rec := range s.m.files {
		if rec.RequestID == requestID && (withConfidential || !rec.IsConfidential) {
			result = append(result, rec)
		}
	}
	return result, nil
}

type fakeHistoryStore struct{ m *memDB }

func (s fakeHistoryStore) Create(rec dbmodels.RequestHistory) (uint, error) {
	rec.ID = uint(len(s.m.histories) + 1)
	s.m.histories = append(s.m.histories, rec)
	return rec.ID, nil
}

func (s fakeHistoryStore) ListByRequest(requestID uint) ([]dbmodels.RequestHistory, error) {
	var result []dbmodels.RequestHistory
	for _, rec := range s.m.histories {
		if rec.RequestID == requestID {
			result = append(result, rec)
		}
	}
	return result, nil
}

type fakeNotificationStore struct{ m *memDB }

func (s fakeNotificationStore) Create(rec dbmodels.Notification) (uint, error) {
	if s.m.failNotification {
		return 0, errors.New("db error")
	}
	rec.ID = uint(len(s.m.notifications) + 1)
	s.m.notifications = append(s.m.notifications, rec)
	return rec.ID, nil
}

func (s fakeNotificationStore) List(userID string, filter notificationapimodels.NotificationFilter) ([]dbmodels.Notification, int64, error) {
	list := s.m.notificationsFor(userID)
	return list, int64(len(list)), nil
}

func (s fakeNotificationStore) MarkRead(userID string, id uint) (bool, error) {
	return false, nil
}

func (s fakeNotificationStore) MarkAllRead(userID string) error {
	return nil
}

func (s fakeNotificationStore) SetDeliveryStatus(ids []uint, status models.DeliveryStatus) error {
	return nil
}

func (s fakeNotificationStore) ListPending(sentBefore time.Time, limit int) ([]dbmodels.Notification, error) {
	return nil, nil
}

func (s fakeNotificationStore) ListPendingByUser(userID string) ([]dbmodels.Notification, error) {
	return nil, nil
}

type fakeAuditStore struct{ m *memDB }

func (s fakeAuditStore) Create(rec dbmodels.AuditLog) (uint, error) {
	rec.ID = uint(len(s.m.audits) + 1)
	s.m.audits = append(s.m.audits, rec)
	return rec.ID, nil
}

func (s fakeAuditStore) GetByID(id uint) (*dbmodels.AuditLog, error) {
	return nil, nil
}

func (s fakeAuditStore) List(filter auditlogapimodels.AuditLogFilter) ([]dbmodels.AuditLog, int64, error) {
	return s.m.audits, int64(len(s.m.audits)), nil
}

type fakeStatisticStore struct{ m *memDB }

func (s fakeStatisticStore) Upsert(rec dbmodels.StatusStatistic) error {
	for idx, item := range s.m.statistics {
		if item.StatusID == rec.StatusID && item.Date.Equal(rec.Date) {
			rec.ID = item.ID
			s.m.statistics[idx] = rec
			return nil
		}
	}
	rec.ID = uint(len(s.m.statistics) + 1)
	s.m.statistics = append(s.m.statistics, rec)
	return nil
}

func (s fakeStatisticStore) List(from, to *time.Time) ([]dbmodels.StatusStatistic, error) {
	return s.m.statistics, nil
}

type fakeUserStore struct{ m *memDB }

func (s fakeUserStore) Create(rec dbmodels.User, roles []models.UserRole) (string, error) {
	return "", errors.New("not implemented")
}

func (s fakeUserStore) GetByID(id string) (*dbmodels.User, error) {
	for _, rec := range s.m.users {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, nil
}

func (s fakeUserStore) FindByUserName(userName string) (*dbmodels.User, error) {
	return nil, nil
}

func (s fakeUserStore) FindByEmail(email string) (*dbmodels.User, error) {
	return nil, nil
}

func (s fakeUserStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (s fakeUserStore) SetRole(id string, role models.UserRole) error {
	return nil
}

func (s fakeUserStore) List(filter usersapimodels.UserFilter) ([]dbmodels.User, int64, error) {
	return s.m.users, int64(len(s.m.users)), nil
}

type fakeEquipmentStore struct{ m *memDB }

func (s fakeEquipmentStore) Create(rec dbmodels.EquipmentType) (uint, error) {
	return 0, errors.New("not implemented")
}

func (s fakeEquipmentStore) GetByID(id uint) (*dbmodels.EquipmentType, error) {
	for _, rec := range s.m.equipment {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, nil
}

func (s fakeEquipmentStore) FindByName(name string) (*dbmodels.EquipmentType, error) {
	return nil, nil
}

func (s fakeEquipmentStore) Update(id uint, updMap map[string]interface{}) error {
	return nil
}

func (s fakeEquipmentStore) List(onlyActive bool) ([]dbmodels.EquipmentType, error) {
	return s.m.equipment, nil
}

type fakeStatusStore struct{ m *memDB }

func (s fakeStatusStore) GetByID(id uint) (*dbmodels.RequestStatus, error) {
	for _, rec := range s.m.statuses {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, nil
}

func (s fakeStatusStore) List() ([]dbmodels.RequestStatus, error) {
	return s.m.statuses, nil
}

func (s fakeStatusStore) Save(rec dbmodels.RequestStatus) error {
	return nil
}

// fakeFileStorage файловое хранилище в памяти
type fakeFileStorage struct {
	files map[string][]byte
}

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{files: map[string][]byte{}}
}

func (s *fakeFileStorage) Save(ctx context.Context, fileName string, reader io.Reader, size int64, contentType string) (string, error) {
	buf := bytes.Buffer{}
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", err
	}
	path := filestorage.StoredName(fileName)
	s.files[path] = buf.Bytes()
	return path, nil
}

func (s *fakeFileStorage) Get(ctx context.Context, path string) ([]byte, error) {
	body, ok := s.files[path]
	if !ok {
		return nil, filestorage.ErrFileNotFound
	}
	return body, nil
}

func (s *fakeFileStorage) Delete(ctx context.Context, path string) error {
	delete(s.files, path)
	return nil
}

type fakePusher struct {
	pushed []dbmodels.Notification
}

func (p *fakePusher) Push(list []dbmodels.Notification) {
	p.pushed = append(p.pushed, list...)
}

func newCaller(userID string, roles ...models.UserRole) models.Caller {
	return models.Caller{UserID: userID, UserName: userID, Roles: roles, IP: "127.0.0.1"}
}
