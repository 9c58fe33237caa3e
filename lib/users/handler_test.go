package usershandler

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"komreq-backend/config"
	authutils "komreq-backend/lib/utils/auth-utils"
	"komreq-backend/models"
	auditlogapimodels "komreq-backend/models/api/audit-log"
	usersapimodels "komreq-backend/models/api/users"
	dbmodels "komreq-backend/models/db"
)

type fakeStore struct {
	users []dbmodels.User
}

func (f *fakeStore) Create(rec dbmodels.User, roles []models.UserRole) (string, error) {
	rec.ID = rec.UserName + "-id"
	for _, role := range roles {
		rec.Roles = append(rec.Roles, dbmodels.UserRoleLink{UserID: rec.ID, Role: role})
	}
	f.users = append(f.users, rec)
	return rec.ID, nil
}

func (f *fakeStore) find(match func(rec dbmodels.User) bool) *dbmodels.User {
	for idx := range f.users {
		if match(f.users[idx]) {
			rec := f.users[idx]
			return &rec
		}
	}
	return nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.User, error) {
	return f.find(func(rec dbmodels.User) bool { return rec.ID == id }), nil
}

func (f *fakeStore) FindByUserName(userName string) (*dbmodels.User, error) {
	return f.find(func(rec dbmodels.User) bool { return strings.EqualFold(rec.UserName, userName) }), nil
}

func (f *fakeStore) FindByEmail(email string) (*dbmodels.User, error) {
	return f.find(func(rec dbmodels.User) bool { return strings.EqualFold(rec.Email, email) }), nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	for idx := range f.users {
		if f.users[idx].ID != id {
			continue
		}
		if value, ok := updMap["is_active"]; ok {
			f.users[idx].IsActive = value.(bool)
		}
		if value, ok := updMap["last_login"]; ok {
			lastLogin := value.(time.Time)
			f.users[idx].LastLogin = &lastLogin
		}
	}
	return nil
}

func (f *fakeStore) SetRole(id string, role models.UserRole) error {
	for idx := range f.users {
		if f.users[idx].ID == id {
			f.users[idx].Roles = []dbmodels.UserRoleLink{{UserID: id, Role: role}}
		}
	}
	return nil
}

func (f *fakeStore) List(filter usersapimodels.UserFilter) ([]dbmodels.User, int64, error) {
	return f.users, int64(len(f.users)), nil
}

type fakeAudit struct {
	saved []dbmodels.AuditLog
}

func (f *fakeAudit) List(filter auditlogapimodels.AuditLogFilter) ([]auditlogapimodels.AuditLogView, int64, error) {
	return nil, 0, nil
}

func (f *fakeAudit) Get(id uint) (auditlogapimodels.AuditLogView, error) {
	return auditlogapimodels.AuditLogView{}, nil
}

func (f *fakeAudit) Save(rec dbmodels.AuditLog) {
	f.saved = append(f.saved, rec)
}

func initTestConfig() {
	conf := &config.Configuration{}
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 3600
	conf.Auth.Issuer = "KomReq"
	conf.Auth.Audience = "KomReqClients"
	config.Conf = conf
}

var adminCaller = models.Caller{UserID: "admin-id", Roles: []models.UserRole{models.AdminRole}}

type fakeSessions struct {
	closed []string
}

func (f *fakeSessions) SendClose(userID string) {
	f.closed = append(f.closed, userID)
}

func newTestHandler() (impl, *fakeStore, *fakeAudit) {
	store := &fakeStore{}
	audit := &fakeAudit{}
	return impl{
		store:       store,
		audit:       audit,
		sessions:    &fakeSessions{},
		permissions: func(roles []models.UserRole) map[models.Module][]models.Permission {
			return map[models.Module][]models.Permission{
				models.RequestModule: {models.ViewPermission},
			}
		},
	}, store, audit
}

var registerData = usersapimodels.RegisterRequest{
	UserName: "ivanov",
	Email:    "Ivanov@Example.com",
	FullName: "Иванов Иван",
	Password: "secret1",
}

func Test_RegisterAndLogin(t *testing.T) {
	initTestConfig()
	handler, store, audit := newTestHandler()

	id, err := handler.Register(registerData, "10.0.0.1")
	require.NoError(t, err)
	require.Equal(t, []models.UserRole{models.ClientRole}, store.users[0].RoleList())
	require.Equal(t, "ivanov@example.com", store.users[0].Email)
	require.NotEqual(t, registerData.Password, store.users[0].Password)
	require.Equal(t, "CREATE_Users", audit.saved[0].Action)

	_, err = handler.Register(registerData, "10.0.0.1")
	require.True(t, models.IsErrorKind(err, models.ConflictError))

	other := registerData
	other.UserName = "petrov"
	_, err = handler.Register(other, "10.0.0.1")
	require.True(t, models.IsErrorKind(err, models.ConflictError))

	_, err = handler.Login(usersapimodels.LoginRequest{UserName: "ivanov", Password: "wrong"}, "10.0.0.1")
	require.True(t, models.IsErrorKind(err, models.UnauthorizedError))

	resp, err := handler.Login(usersapimodels.LoginRequest{UserName: "IVANOV", Password: "secret1"}, "10.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	claims, err := authutils.ParseToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, id, claims["sub"])
	require.Equal(t, []models.UserRole{models.ClientRole}, authutils.GetClaimsRoles(claims))
	require.NotNil(t, store.users[0].LastLogin)
	last := audit.saved[len(audit.saved)-1]
	require.Equal(t, "LOGIN_Users", last.Action)
	require.Equal(t, "10.0.0.1", last.IpAddress)

	me, err := handler.Me(id)
	require.NoError(t, err)
	require.Equal(t, "ivanov", me.UserName)
	require.Contains(t, me.Permissions, models.RequestModule)
}

func Test_AdminOperations(t *testing.T) {
	initTestConfig()
	handler, store, audit := newTestHandler()

	id, err := handler.Create(adminCaller, usersapimodels.CreateUserRequest{
		RegisterRequest: registerData,
		Role:            models.TechnicianRole,
	})
	require.NoError(t, err)
	require.True(t, store.users[0].HasRole(models.TechnicianRole))

	err = handler.ChangeRole(adminCaller, usersapimodels.ChangeRoleRequest{UserID: id, Role: models.ManagerRole})
	require.NoError(t, err)
	require.Equal(t, []models.UserRole{models.ManagerRole}, store.users[0].RoleList())
	require.Equal(t, "UPDATE_Users", audit.saved[len(audit.saved)-1].Action)

	err = handler.ChangeRole(adminCaller, usersapimodels.ChangeRoleRequest{UserID: "admin-id", Role: models.ClientRole})
	require.True(t, models.IsErrorKind(err, models.ValidationError))

	err = handler.Deactivate(adminCaller, id)
	require.NoError(t, err)
	require.False(t, store.users[0].IsActive)
	last := audit.saved[len(audit.saved)-1]
	require.Equal(t, "DELETE_Users", last.Action)
	require.Equal(t, "is_active", last.Details.Data[0].Field)
	require.Equal(t, []string{id}, handler.sessions.(*fakeSessions).closed)

	err = handler.Deactivate(adminCaller, id)
	require.True(t, models.IsErrorKind(err, models.NotFoundError))

	_, err = handler.Login(usersapimodels.LoginRequest{UserName: "ivanov", Password: "secret1"}, "")
	require.True(t, models.IsErrorKind(err, models.ForbiddenError))

	list, rowCount, err := handler.List(usersapimodels.UserFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.EqualValues(t, 1, rowCount)
}
