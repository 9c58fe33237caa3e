package usershandler

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"komreq-backend/db"
	auditloghandler "komreq-backend/lib/audit-log"
	authutils "komreq-backend/lib/utils/auth-utils"
	usersstore "komreq-backend/lib/users/store"
	connectionhub "komreq-backend/lib/ws/hub/connection-hub"
	"komreq-backend/models"
	usersapimodels "komreq-backend/models/api/users"
	dbmodels "komreq-backend/models/db"
)

// PermissionsFunc права ролей для фронта
type PermissionsFunc func(roles []models.UserRole) map[models.Module][]models.Permission

// SessionCloser закрывает ws соединения заблокированного пользователя
type SessionCloser interface {
	SendClose(userID string)
}

type Provider interface {
	Register(data usersapimodels.RegisterRequest, ip string) (id string, err error)
	Login(data usersapimodels.LoginRequest, ip string) (usersapimodels.JWTResponse, error)
	Me(userID string) (usersapimodels.MeView, error)
	List(filter usersapimodels.UserFilter) (list []usersapimodels.UserView, rowCount int64, err error)
	Create(caller models.Caller, data usersapimodels.CreateUserRequest) (id string, err error)
	Deactivate(caller models.Caller, id string) error
	ChangeRole(caller models.Caller, data usersapimodels.ChangeRoleRequest) error
}

var Instance Provider

func NewHandler(permissions PermissionsFunc) {
	Instance = impl{
		store:       usersstore.NewInstance(db.DB),
		audit:       auditloghandler.Instance,
		permissions: permissions,
		sessions:    connectionhub.Instance,
	}
}

type impl struct {
	store       usersstore.Provider
	audit       auditloghandler.Provider
	permissions PermissionsFunc
	sessions    SessionCloser
}

// Register самостоятельная регистрация всегда с ролью клиента
func (i impl) Register(data usersapimodels.RegisterRequest, ip string) (string, error) {
	id, err := i.createUser(data, models.ClientRole)
	if err != nil {
		return "", err
	}
	caller := models.Caller{UserID: id, UserName: data.UserName, Roles: []models.UserRole{models.ClientRole}, IP: ip}
	i.audit.Save(auditloghandler.NewRecord(caller, auditloghandler.OpCreate, auditloghandler.EntityUsers, id, roleChanges(nil, models.ClientRole)))
	return id, nil
}

func (i impl) Create(caller models.Caller, data usersapimodels.CreateUserRequest) (string, error) {
	id, err := i.createUser(data.RegisterRequest, data.Role)
	if err != nil {
		return "", err
	}
	i.audit.Save(auditloghandler.NewRecord(caller, auditloghandler.OpCreate, auditloghandler.EntityUsers, id, roleChanges(nil, data.Role)))
	return id, nil
}

func (i impl) createUser(data usersapimodels.RegisterRequest, role models.UserRole) (string, error) {
	userName := strings.TrimSpace(data.UserName)
	found, err := i.store.FindByUserName(userName)
	if err != nil {
		return "", errors.Wrap(err, "ошибка проверки имени пользователя")
	}
	if found != nil {
		return "", models.NewConflict("пользователь с именем %v уже существует", userName)
	}
	found, err = i.store.FindByEmail(data.Email)
	if err != nil {
		return "", errors.Wrap(err, "ошибка проверки почты")
	}
	if found != nil {
		return "", models.NewConflict("пользователь с почтой %v уже существует", data.Email)
	}
	hash, err := authutils.HashPassword(data.Password)
	if err != nil {
		return "", errors.Wrap(err, "ошибка хеширования пароля")
	}
	rec := dbmodels.User{
		UserName: userName,
		Email:    strings.ToLower(strings.TrimSpace(data.Email)),
		FullName: strings.TrimSpace(data.FullName),
		Password: hash,
		IsActive: true,
	}
	id, err := i.store.Create(rec, []models.UserRole{role})
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания пользователя")
	}
	log.WithField("user_id", id).
		WithField("user_name", userName).
		WithField("role", role).
		Info("создан пользователь")
	return id, nil
}

func (i impl) Login(data usersapimodels.LoginRequest, ip string) (usersapimodels.JWTResponse, error) {
	rec, err := i.store.FindByUserName(strings.TrimSpace(data.UserName))
	if err != nil {
		return usersapimodels.JWTResponse{}, errors.Wrap(err, "ошибка получения пользователя")
	}
	if rec == nil || !authutils.CheckPassword(rec.Password, data.Password) {
		return usersapimodels.JWTResponse{}, models.NewUnauthorized("неверное имя пользователя или пароль")
	}
	if !rec.IsActive {
		return usersapimodels.JWTResponse{}, models.NewForbidden("пользователь заблокирован")
	}
	token, expiresAt, err := authutils.GetToken(*rec)
	if err != nil {
		return usersapimodels.JWTResponse{}, errors.Wrap(err, "ошибка создания токена")
	}
	if err = i.store.Update(rec.ID, map[string]interface{}{"last_login": time.Now().UTC()}); err != nil {
		log.WithError(err).WithField("user_id", rec.ID).Warn("ошибка обновления даты входа")
	}
	caller := models.Caller{UserID: rec.ID, UserName: rec.UserName, Roles: rec.RoleList(), IP: ip}
	i.audit.Save(auditloghandler.NewRecord(caller, auditloghandler.OpLogin, auditloghandler.EntityUsers, rec.ID, dbmodels.EntityChanges{}))
	return usersapimodels.JWTResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (i impl) Me(userID string) (usersapimodels.MeView, error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return usersapimodels.MeView{}, errors.Wrap(err, "ошибка получения пользователя")
	}
	if rec == nil {
		return usersapimodels.MeView{}, models.NewNotFound("пользователь не найден")
	}
	result := usersapimodels.MeView{
		UserView:    usersapimodels.UserConvert(*rec),
		Permissions: map[models.Module][]models.Permission{},
	}
	if i.permissions != nil {
		result.Permissions = i.permissions(rec.RoleList())
	}
	return result, nil
}

func (i impl) List(filter usersapimodels.UserFilter) ([]usersapimodels.UserView, int64, error) {
	list, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка пользователей")
	}
	result := make([]usersapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, usersapimodels.UserConvert(rec))
	}
	return result, rowCount, nil
}

// Deactivate пользователь блокируется, записи с его участием сохраняются
func (i impl) Deactivate(caller models.Caller, id string) error {
	if id == caller.UserID {
		return models.NewValidation("нельзя заблокировать самого себя")
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения пользователя")
	}
	if rec == nil || !rec.IsActive {
		return models.NewNotFound("пользователь не найден")
	}
	if err = i.store.Update(id, map[string]interface{}{"is_active": false}); err != nil {
		return errors.Wrap(err, "ошибка блокировки пользователя")
	}
	changes := dbmodels.EntityChanges{}
	changes.Add("is_active", true, false)
	i.audit.Save(auditloghandler.NewRecord(caller, auditloghandler.OpDelete, auditloghandler.EntityUsers, id, changes))
	if i.sessions != nil {
		i.sessions.SendClose(id)
	}
	log.WithField("user_id", id).Info("пользователь заблокирован")
	return nil
}

func (i impl) ChangeRole(caller models.Caller, data usersapimodels.ChangeRoleRequest) error {
	if data.UserID == caller.UserID {
		return models.NewValidation("нельзя изменить роль самому себе")
	}
	rec, err := i.store.GetByID(data.UserID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения пользователя")
	}
	if rec == nil {
		return models.NewNotFound("пользователь не найден")
	}
	if err = i.store.SetRole(rec.ID, data.Role); err != nil {
		return errors.Wrap(err, "ошибка изменения роли")
	}
	i.audit.Save(auditloghandler.NewRecord(caller, auditloghandler.OpUpdate, auditloghandler.EntityUsers, rec.ID, roleChanges(rec.RoleList(), data.Role)))
	log.WithField("user_id", rec.ID).
		WithField("role", data.Role).
		Info("изменена роль пользователя")
	return nil
}

func roleChanges(oldRoles []models.UserRole, role models.UserRole) dbmodels.EntityChanges {
	changes := dbmodels.EntityChanges{}
	var oldValue any
	if oldRoles != nil {
		oldValue = oldRoles
	}
	changes.Add("roles", oldValue, []models.UserRole{role})
	return changes
}
